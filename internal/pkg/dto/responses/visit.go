package responses

import "simrs-service/internal/app/models"

type CreateVisit struct {
	VisitID            string `json:"visitId"`
	RegistrationNumber string `json:"registrationNumber"`
}

// FinishVisit carries advisory warnings alongside the finished aggregate:
// missing exam flags do not block the transition, the actor is only warned.
type FinishVisit struct {
	Visit    *models.Visit `json:"visit"`
	Warnings []string      `json:"warnings,omitempty"`
}

type DispenseVisit struct {
	Visit  *models.Visit                `json:"visit"`
	Report *models.ReconciliationReport `json:"reconciliationReport"`
}

// QueueEntry is one row of a department work queue view. Subtotals carries the
// per-category bill breakdown and is only filled for the cashier view.
type QueueEntry struct {
	VisitID            string           `json:"visitId"`
	RegistrationNumber string           `json:"registrationNumber"`
	PatientID          string           `json:"patientId"`
	VisitType          string           `json:"visitType"`
	Doctor             string           `json:"doctor"`
	TotalBiaya         int64            `json:"totalBiaya"`
	Subtotals          map[string]int64 `json:"subtotals,omitempty"`
	PaymentStatus      string           `json:"paymentStatus,omitempty"`
	DispensationStatus string           `json:"dispensationStatus,omitempty"`
	HasOrder           bool             `json:"hasOrder,omitempty"`
}
