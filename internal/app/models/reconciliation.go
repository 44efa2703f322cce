package models

import "time"

// ReconciliationReport is the batch outcome of the best-effort stock
// decrements triggered by a dispensation. A failed item never aborts the
// transition; it is recorded here and raised as an operational alert.
type ReconciliationReport struct {
	VisitID    string               `json:"visitId"`
	Items      []ReconciliationItem `json:"items"`
	ReportedAt time.Time            `json:"reportedAt"`
}

type ReconciliationItem struct {
	DrugID      string `json:"drugId"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Decremented bool   `json:"decremented"`
	Skipped     bool   `json:"skipped,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// FailureCount reports how many catalog-linked lines could not be decremented.
// Free-text lines are skipped, not failed.
func (r *ReconciliationReport) FailureCount() int {
	count := 0
	for _, item := range r.Items {
		if !item.Decremented && !item.Skipped {
			count++
		}
	}
	return count
}
