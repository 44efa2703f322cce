package orders

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/dto/requests"
)

type OrderRepository interface {
	UpsertOrder(ctx context.Context, order *models.Order) error
	FindOrderByVisitID(ctx context.Context, kind models.OrderKind, visitID string) (*models.Order, error)
	FindVisitIDsWithOrder(ctx context.Context, kind models.OrderKind, visitIDs []string) (map[string]bool, error)
}

type OrderUsecase interface {
	UpsertOrder(ctx context.Context, kind models.OrderKind, visitID, actorName string, request *requests.UpsertOrder) (*models.Order, error)
	GetOrderByVisitID(ctx context.Context, kind models.OrderKind, visitID string) (*models.Order, error)
}
