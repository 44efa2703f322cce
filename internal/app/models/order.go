package models

import "time"

type OrderKind string

const (
	OrderKindLab       OrderKind = "lab"
	OrderKindRadiology OrderKind = "radiology"
)

type OrderStatus string

const (
	OrderRequested OrderStatus = "requested"
	OrderCompleted OrderStatus = "completed"
)

// Order is a department request-and-selection record. Its document id equals
// the visit id, so "at most one order per visit per kind" holds structurally
// instead of being a query-time check.
type Order struct {
	VisitID   string      `json:"visitId" bson:"_id"`
	PatientID string      `json:"patientId" bson:"patientId"`
	Kind      OrderKind   `json:"kind" bson:"kind"`
	Status    OrderStatus `json:"status" bson:"status"`
	Tests     []OrderTest `json:"tests" bson:"tests"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	CreatedBy string      `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string      `json:"updatedBy" bson:"updatedBy"`
}

// OrderTest is one selected test. BodySide is only meaningful for radiology
// (e.g. "left", "right", "both").
type OrderTest struct {
	Code     string `json:"code" bson:"code"`
	Group    string `json:"group" bson:"group"`
	BodySide string `json:"bodySide,omitempty" bson:"bodySide,omitempty"`
}
