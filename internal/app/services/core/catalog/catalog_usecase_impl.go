package catalog

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/app/services/core/tariff"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type CatalogUsecaseImpl struct {
	Log               *zap.Logger
	CatalogRepository CatalogRepository
}

func NewCatalogUsecase(logger *zap.Logger, catalogRepository CatalogRepository) CatalogUsecase {
	return &CatalogUsecaseImpl{
		Log:               logger,
		CatalogRepository: catalogRepository,
	}
}

// PreviewAmbulanceFare computes a fare without touching any visit, so the
// registration desk can quote a price before a trip is booked.
func (uc *CatalogUsecaseImpl) PreviewAmbulanceFare(ctx context.Context, vehicleType string, oneWayKm float64) (*models.FareBreakdown, error) {
	config, err := uc.CatalogRepository.FindAmbulanceConfig(ctx, vehicleType)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, exceptions.ErrAmbulanceConfigNotFound(nil, vehicleType)
	}
	return tariff.ComputeAmbulanceFare(*config, oneWayKm)
}

func (uc *CatalogUsecaseImpl) SaveAmbulanceConfig(ctx context.Context, vehicleType string, request *requests.UpsertAmbulanceConfig) (*models.AmbulanceConfig, error) {
	config := &models.AmbulanceConfig{
		VehicleType:    vehicleType,
		CostPerKm:      request.CostPerKm,
		DriverPct:      request.DriverPct,
		AdminPct:       request.AdminPct,
		MaintenancePct: request.MaintenancePct,
		HospitalPct:    request.HospitalPct,
		TaxPct:         request.TaxPct,
		UpdatedAt:      time.Now(),
	}

	if err := tariff.ValidateConfig(*config); err != nil {
		return nil, err
	}

	if err := uc.CatalogRepository.UpsertAmbulanceConfig(ctx, config); err != nil {
		return nil, err
	}

	uc.Log.Info("ambulance configuration saved",
		zap.String("vehicle_type", vehicleType),
		zap.Float64("cost_per_km", config.CostPerKm),
	)
	return config, nil
}
