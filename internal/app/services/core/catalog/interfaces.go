package catalog

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/dto/requests"
)

// CatalogRepository is the read side of the priced master data plus the drug
// stock counter. Find methods return (nil, nil) when nothing matches; the
// caller decides whether that is a NotFound.
type CatalogRepository interface {
	FindDrugByID(ctx context.Context, drugID string) (*models.Drug, error)
	FindServiceItemByID(ctx context.Context, itemID string) (*models.ServiceItem, error)
	FindRoomTariff(ctx context.Context, roomClass, subCategory string) (*models.RoomTariff, error)
	FindAmbulanceConfig(ctx context.Context, vehicleType string) (*models.AmbulanceConfig, error)
	UpsertAmbulanceConfig(ctx context.Context, config *models.AmbulanceConfig) error
	DecrementStock(ctx context.Context, drugID string, quantity int) error
	IncrementStock(ctx context.Context, drugID string, quantity int) error
}

type CatalogUsecase interface {
	PreviewAmbulanceFare(ctx context.Context, vehicleType string, oneWayKm float64) (*models.FareBreakdown, error)
	SaveAmbulanceConfig(ctx context.Context, vehicleType string, request *requests.UpsertAmbulanceConfig) (*models.AmbulanceConfig, error)
}
