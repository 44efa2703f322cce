package tariff

import (
	"math"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
)

// ComputeAmbulanceFare computes the distance-based fare for one trip. The
// component order is fixed: fuel from the round trip, four allocation
// components from fuel, tax from their subtotal. Intermediates stay float64;
// rounding to whole rupiah happens once, via RoundedTotal, when the fare is
// persisted as a line-item price.
//
// The stored config is trusted here; percentage ranges are validated when the
// configuration is written.
func ComputeAmbulanceFare(config models.AmbulanceConfig, oneWayKm float64) (*models.FareBreakdown, error) {
	if oneWayKm <= 0 {
		return nil, exceptions.ErrDistanceNotPositive(nil)
	}

	breakdown := &models.FareBreakdown{}
	breakdown.RoundTripKm = oneWayKm * 2
	breakdown.FuelCost = breakdown.RoundTripKm * config.CostPerKm
	breakdown.DriverCost = breakdown.FuelCost * config.DriverPct
	breakdown.AdminCost = breakdown.FuelCost * config.AdminPct
	breakdown.MaintenanceCost = breakdown.FuelCost * config.MaintenancePct
	breakdown.HospitalCost = breakdown.FuelCost * config.HospitalPct
	breakdown.Subtotal = breakdown.FuelCost + breakdown.DriverCost + breakdown.AdminCost + breakdown.MaintenanceCost + breakdown.HospitalCost
	breakdown.Tax = breakdown.Subtotal * config.TaxPct
	breakdown.Total = breakdown.Subtotal + breakdown.Tax

	return breakdown, nil
}

// RoundedTotal is the whole-rupiah price a fare is persisted at.
func RoundedTotal(breakdown *models.FareBreakdown) int64 {
	return int64(math.Round(breakdown.Total))
}

// ValidateConfig guards ambulance configuration writes: cost per km must be
// positive and every allocation percentage must be a fraction in [0,1].
func ValidateConfig(config models.AmbulanceConfig) error {
	if config.CostPerKm <= 0 {
		return exceptions.ErrCostPerKmNotPositive(nil)
	}
	percentages := []float64{
		config.DriverPct,
		config.AdminPct,
		config.MaintenancePct,
		config.HospitalPct,
		config.TaxPct,
	}
	for _, pct := range percentages {
		if pct < 0 || pct > 1 {
			return exceptions.ErrPercentageOutOfRange(nil)
		}
	}
	return nil
}
