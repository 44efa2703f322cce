package models

import "time"

// Drug is a catalog entry with a live stock counter. The counter is mutated by
// dispensation decrements here and by purchase intake elsewhere; adjustment is
// a best-effort read-modify-write, not a locked operation.
type Drug struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Unit         string    `json:"unit" bson:"unit"`
	PricePerUnit int64     `json:"pricePerUnit" bson:"pricePerUnit"`
	Stock        int       `json:"stock" bson:"stock"`
	Active       bool      `json:"active" bson:"active"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ServiceItem is a flat-fee priced catalog entry (procedure, examination,
// surgery, and so on).
type ServiceItem struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Category  string `json:"category" bson:"category"`
	Name      string `json:"name" bson:"name"`
	UnitPrice int64  `json:"unitPrice" bson:"unitPrice"`
	Active    bool   `json:"active" bson:"active"`
}

// RoomTariff is one cell of the room-class tariff matrix.
type RoomTariff struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	RoomClass   string `json:"roomClass" bson:"roomClass"`
	SubCategory string `json:"subCategory" bson:"subCategory"`
	Name        string `json:"name" bson:"name"`
	DailyPrice  int64  `json:"dailyPrice" bson:"dailyPrice"`
	Active      bool   `json:"active" bson:"active"`
}

// AmbulanceConfig is one per vehicle type. Percentages are fractions in [0,1],
// validated when the configuration is written, not when a fare is computed.
type AmbulanceConfig struct {
	VehicleType    string    `json:"vehicleType" bson:"_id"`
	CostPerKm      float64   `json:"costPerKm" bson:"costPerKm"`
	DriverPct      float64   `json:"driverPct" bson:"driverPct"`
	AdminPct       float64   `json:"adminPct" bson:"adminPct"`
	MaintenancePct float64   `json:"maintenancePct" bson:"maintenancePct"`
	HospitalPct    float64   `json:"hospitalPct" bson:"hospitalPct"`
	TaxPct         float64   `json:"taxPct" bson:"taxPct"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
