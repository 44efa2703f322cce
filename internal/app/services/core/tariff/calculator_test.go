package tariff

import (
	"simrs-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grandmaxConfig() models.AmbulanceConfig {
	return models.AmbulanceConfig{
		VehicleType:    "GRANDMAX",
		CostPerKm:      3120,
		DriverPct:      0.16,
		AdminPct:       0.16,
		MaintenancePct: 0.25,
		HospitalPct:    0.25,
		TaxPct:         0.10,
	}
}

func TestComputeAmbulanceFare(t *testing.T) {
	t.Run("Grandmax Five Km Trip", func(t *testing.T) {
		breakdown, err := ComputeAmbulanceFare(grandmaxConfig(), 5)

		assert.NoError(t, err)
		assert.Equal(t, 10.0, breakdown.RoundTripKm)
		assert.Equal(t, 31200.0, breakdown.FuelCost)
		assert.Equal(t, 4992.0, breakdown.DriverCost)
		assert.Equal(t, 4992.0, breakdown.AdminCost)
		assert.Equal(t, 7800.0, breakdown.MaintenanceCost)
		assert.Equal(t, 7800.0, breakdown.HospitalCost)
		assert.Equal(t, 56784.0, breakdown.Subtotal)
		assert.InDelta(t, 5678.4, breakdown.Tax, 1e-9)
		assert.InDelta(t, 62462.4, breakdown.Total, 1e-9)
	})

	t.Run("Deterministic For Same Input", func(t *testing.T) {
		first, err := ComputeAmbulanceFare(grandmaxConfig(), 12.5)
		assert.NoError(t, err)
		second, err := ComputeAmbulanceFare(grandmaxConfig(), 12.5)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Total Never Below Fuel Cost", func(t *testing.T) {
		distances := []float64{0.5, 1, 3.7, 25, 180}
		for _, km := range distances {
			breakdown, err := ComputeAmbulanceFare(grandmaxConfig(), km)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, breakdown.Total, breakdown.FuelCost)
			assert.GreaterOrEqual(t, breakdown.Tax, 0.0)
		}
	})

	t.Run("Zero Distance Rejected", func(t *testing.T) {
		breakdown, err := ComputeAmbulanceFare(grandmaxConfig(), 0)

		assert.Nil(t, breakdown)
		assert.Error(t, err)
	})

	t.Run("Negative Distance Rejected", func(t *testing.T) {
		breakdown, err := ComputeAmbulanceFare(grandmaxConfig(), -3)

		assert.Nil(t, breakdown)
		assert.Error(t, err)
	})
}

func TestRoundedTotal(t *testing.T) {
	breakdown, err := ComputeAmbulanceFare(grandmaxConfig(), 5)
	assert.NoError(t, err)

	// 62462.4 rounds down; the fractional tax never compounds into the
	// persisted price.
	assert.Equal(t, int64(62462), RoundedTotal(breakdown))
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(grandmaxConfig()))
	})

	t.Run("Percentage Above One Rejected", func(t *testing.T) {
		config := grandmaxConfig()
		config.TaxPct = 1.1

		assert.Error(t, ValidateConfig(config))
	})

	t.Run("Negative Percentage Rejected", func(t *testing.T) {
		config := grandmaxConfig()
		config.MaintenancePct = -0.25

		assert.Error(t, ValidateConfig(config))
	})

	t.Run("Zero Cost Per Km Rejected", func(t *testing.T) {
		config := grandmaxConfig()
		config.CostPerKm = 0

		assert.Error(t, ValidateConfig(config))
	})
}
