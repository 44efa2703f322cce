package requests

// UpsertAmbulanceConfig writes one vehicle configuration. Percentage ranges
// are enforced here, at configuration-write time; the tariff calculator
// trusts stored configs.
type UpsertAmbulanceConfig struct {
	CostPerKm      float64 `json:"costPerKm" validate:"required,gt=0"`
	DriverPct      float64 `json:"driverPct" validate:"gte=0,lte=1"`
	AdminPct       float64 `json:"adminPct" validate:"gte=0,lte=1"`
	MaintenancePct float64 `json:"maintenancePct" validate:"gte=0,lte=1"`
	HospitalPct    float64 `json:"hospitalPct" validate:"gte=0,lte=1"`
	TaxPct         float64 `json:"taxPct" validate:"gte=0,lte=1"`
}
