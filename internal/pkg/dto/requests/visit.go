package requests

type CreateVisit struct {
	PatientID string `json:"patientId" validate:"required"`
	VisitType string `json:"visitType" validate:"required,oneof=igd rawat_jalan rawat_inap"`
	Doctor    string `json:"doctor" validate:"required"`
}

// AddService adds one billable line. Exactly one pricing path applies:
//   - ServiceItemID: flat-fee catalog entry, price is read from the catalog;
//   - RoomClass + SubCategory (category "room"): price from the tariff matrix;
//   - VehicleType + OneWayKm (category "ambulance"): price from the tariff
//     calculator;
//   - Name + UnitPrice: manual line.
type AddService struct {
	Category      string  `json:"category" validate:"required,billing_category"`
	ServiceItemID string  `json:"serviceItemId,omitempty"`
	RoomClass     string  `json:"roomClass,omitempty"`
	SubCategory   string  `json:"subCategory,omitempty"`
	VehicleType   string  `json:"vehicleType,omitempty"`
	OneWayKm      float64 `json:"oneWayKm,omitempty"`
	Name          string  `json:"name,omitempty"`
	UnitPrice     *int64  `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Quantity      *int    `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

type UpdateService struct {
	Name      string `json:"name,omitempty"`
	UnitPrice *int64 `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Quantity  *int   `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// AddPrescription adds one drug line. DrugID selects a catalog drug whose
// current price is copied onto the line; free-text lines (no DrugID) must
// carry their own price per unit.
type AddPrescription struct {
	DrugID       string `json:"drugId,omitempty"`
	Name         string `json:"name,omitempty"`
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,gte=1"`
	PricePerUnit *int64 `json:"pricePerUnit,omitempty" validate:"omitempty,gte=0"`
}

type UpdatePrescription struct {
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,gte=1"`
	PricePerUnit *int64 `json:"pricePerUnit,omitempty" validate:"omitempty,gte=0"`
}

type RecordExam struct {
	Diagnosis          string `json:"diagnosis" validate:"required"`
	LabRequested       bool   `json:"labRequested"`
	RadiologyRequested bool   `json:"radiologyRequested"`
}

type PayVisit struct {
	Method string `json:"method" validate:"required,payment_method"`
}
