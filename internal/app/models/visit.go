package models

import (
	"time"

	"simrs-service/internal/pkg/constvars"
)

type VisitStatus string

const (
	VisitInProgress VisitStatus = "in_progress"
	VisitDone       VisitStatus = "done"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// DispensationStatus is empty (not applicable) while the visit has no
// prescriptions; it becomes pending when the first prescription line is added.
type DispensationStatus string

const (
	DispensationNotApplicable DispensationStatus = ""
	DispensationPending       DispensationStatus = "pending"
	DispensationDone          DispensationStatus = "done"
)

type VisitType string

const (
	VisitTypeEmergency  VisitType = "igd"
	VisitTypeOutpatient VisitType = "rawat_jalan"
	VisitTypeInpatient  VisitType = "rawat_inap"
)

// Visit is the central aggregate one episode of care revolves around. Field
// groups are department-partitioned: clinical owns status, services,
// prescriptions and exam; cashier owns payment*; pharmacy owns dispensation*.
// Every repository write is scoped to a single field group.
type Visit struct {
	ID                 string             `json:"id" bson:"_id,omitempty"`
	RegistrationNumber string             `json:"registrationNumber" bson:"registrationNumber"`
	PatientID          string             `json:"patientId" bson:"patientId"`
	VisitType          VisitType          `json:"visitType" bson:"visitType"`
	Doctor             string             `json:"doctor" bson:"doctor"`
	Status             VisitStatus        `json:"status" bson:"status"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus" bson:"paymentStatus"`
	DispensationStatus DispensationStatus `json:"dispensationStatus,omitempty" bson:"dispensationStatus,omitempty"`

	Services      []VisitService      `json:"services" bson:"services"`
	Prescriptions []VisitPrescription `json:"prescriptions" bson:"prescriptions"`

	// TotalBiaya is derived; it is overwritten with the aggregator's result on
	// every line mutation and never incremented piecewise.
	TotalBiaya int64 `json:"totalBiaya" bson:"totalBiaya"`

	Exam *Examination `json:"exam,omitempty" bson:"exam,omitempty"`

	PaymentTime   *time.Time `json:"paymentTime,omitempty" bson:"paymentTime,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaidBy        string     `json:"paidBy,omitempty" bson:"paidBy,omitempty"`

	DispensationTime *time.Time `json:"dispensationTime,omitempty" bson:"dispensationTime,omitempty"`
	DispensedBy      string     `json:"dispensedBy,omitempty" bson:"dispensedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// VisitService is one billable action: a procedure, a room day, an ambulance
// trip. UnitPrice is in whole rupiah.
type VisitService struct {
	Category    constvars.ServiceCategory `json:"category" bson:"category"`
	Name        string                    `json:"name" bson:"name"`
	UnitPrice   int64                     `json:"unitPrice" bson:"unitPrice"`
	Quantity    int                       `json:"quantity" bson:"quantity"`
	RoomClass   string                    `json:"roomClass,omitempty" bson:"roomClass,omitempty"`
	SubCategory string                    `json:"subCategory,omitempty" bson:"subCategory,omitempty"`

	Ambulance *AmbulanceMeta `json:"ambulance,omitempty" bson:"ambulance,omitempty"`
}

func (s VisitService) Subtotal() int64 {
	return s.UnitPrice * int64(s.Quantity)
}

// AmbulanceMeta keeps the trip parameters and the computed cost breakdown so
// the fare stays auditable after the line is persisted.
type AmbulanceMeta struct {
	VehicleType string        `json:"vehicleType" bson:"vehicleType"`
	OneWayKm    float64       `json:"oneWayKm" bson:"oneWayKm"`
	Breakdown   FareBreakdown `json:"breakdown" bson:"breakdown"`
}

// FareBreakdown mirrors the tariff calculator output. Components are kept as
// floats; rounding to whole rupiah happens once, on the line-item price.
type FareBreakdown struct {
	RoundTripKm     float64 `json:"roundTripKm" bson:"roundTripKm"`
	FuelCost        float64 `json:"fuelCost" bson:"fuelCost"`
	DriverCost      float64 `json:"driverCost" bson:"driverCost"`
	AdminCost       float64 `json:"adminCost" bson:"adminCost"`
	MaintenanceCost float64 `json:"maintenanceCost" bson:"maintenanceCost"`
	HospitalCost    float64 `json:"hospitalCost" bson:"hospitalCost"`
	Subtotal        float64 `json:"subtotal" bson:"subtotal"`
	Tax             float64 `json:"tax" bson:"tax"`
	Total           float64 `json:"total" bson:"total"`
}

// VisitPrescription is one dispensed-or-to-be-dispensed drug line. DrugID is
// empty for free-text entries, which have no catalog stock to decrement.
type VisitPrescription struct {
	DrugID       string `json:"drugId,omitempty" bson:"drugId,omitempty"`
	Name         string `json:"name" bson:"name"`
	Quantity     int    `json:"quantity" bson:"quantity"`
	PricePerUnit int64  `json:"pricePerUnit" bson:"pricePerUnit"`
	TotalPrice   int64  `json:"totalPrice" bson:"totalPrice"`
}

// Examination is written by clinical staff and amendable only while the visit
// is still in progress. The two request flags are advisory: they drive queue
// visibility for lab and radiology, not whether an order may be created.
type Examination struct {
	Diagnosis          string    `json:"diagnosis" bson:"diagnosis"`
	LabRequested       bool      `json:"labRequested" bson:"labRequested"`
	RadiologyRequested bool      `json:"radiologyRequested" bson:"radiologyRequested"`
	ExaminedBy         string    `json:"examinedBy" bson:"examinedBy"`
	ExamTime           time.Time `json:"examTime" bson:"examTime"`
}
