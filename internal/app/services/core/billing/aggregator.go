package billing

import (
	"simrs-service/internal/app/models"
)

// RecomputeTotal folds service and prescription lines into the visit grand
// total. Callers overwrite totalBiaya with the result after every line
// mutation; the total is never adjusted piecewise, so it cannot drift from
// the lines it is derived from.
func RecomputeTotal(services []models.VisitService, prescriptions []models.VisitPrescription) int64 {
	var total int64
	for _, service := range services {
		total += service.UnitPrice * int64(normalizeQuantity(service.Quantity))
	}
	for _, prescription := range prescriptions {
		total += prescription.PricePerUnit * int64(normalizeQuantity(prescription.Quantity))
	}
	return total
}

// SubtotalsByCategory folds service lines into per-category subtotals, with
// prescriptions reported under the consumable category. Used by the cashier
// bill view.
func SubtotalsByCategory(services []models.VisitService, prescriptions []models.VisitPrescription) map[string]int64 {
	subtotals := make(map[string]int64)
	for _, service := range services {
		subtotals[string(service.Category)] += service.UnitPrice * int64(normalizeQuantity(service.Quantity))
	}
	for _, prescription := range prescriptions {
		subtotals["consumable"] += prescription.PricePerUnit * int64(normalizeQuantity(prescription.Quantity))
	}
	return subtotals
}

// PrescriptionTotal keeps a prescription line's stored totalPrice consistent
// with its quantity and unit price.
func PrescriptionTotal(prescription models.VisitPrescription) int64 {
	return prescription.PricePerUnit * int64(normalizeQuantity(prescription.Quantity))
}

// Request boundaries reject quantity <= 0; stored documents predating that
// guard may still carry zero, which counts as one.
func normalizeQuantity(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}
