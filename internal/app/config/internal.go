package config

type InternalConfig struct {
	App    App
	JWT    JWT
	Alerts Alerts
	Cache  Cache
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	RequestTimeoutInSeconds  int
	QueuePageSizeDefault     int
}

type JWT struct {
	Secret string
}

// Alerts configures the operational alert channel for stock reconciliation
// failures.
type Alerts struct {
	StockReconciliationQueue string
}

// Cache configures the catalog read-through cache.
type Cache struct {
	CatalogTTLInSeconds int
}
