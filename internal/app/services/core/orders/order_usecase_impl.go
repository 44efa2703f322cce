package orders

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

// VisitFinder is the slice of the visit repository the order flow needs: an
// order can only be attached to an existing visit.
type VisitFinder interface {
	FindVisitByID(ctx context.Context, visitID string) (*models.Visit, error)
}

type OrderUsecaseImpl struct {
	Log             *zap.Logger
	OrderRepository OrderRepository
	VisitFinder     VisitFinder
}

func NewOrderUsecase(logger *zap.Logger, orderRepository OrderRepository, visitFinder VisitFinder) OrderUsecase {
	return &OrderUsecaseImpl{
		Log:             logger,
		OrderRepository: orderRepository,
		VisitFinder:     visitFinder,
	}
}

// UpsertOrder saves the complete test selection for a visit. Saving twice
// leaves one document carrying the latest selection; the status is always
// forced back to requested, an upsert never completes an order.
func (uc *OrderUsecaseImpl) UpsertOrder(ctx context.Context, kind models.OrderKind, visitID, actorName string, request *requests.UpsertOrder) (*models.Order, error) {
	if len(request.Tests) == 0 {
		return nil, exceptions.ErrEmptyTestSelection(nil)
	}

	visit, err := uc.VisitFinder.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil)
	}

	now := time.Now()
	order := &models.Order{
		VisitID:   visitID,
		PatientID: visit.PatientID,
		Kind:      kind,
		Status:    models.OrderRequested,
		Tests:     make([]models.OrderTest, 0, len(request.Tests)),
		CreatedAt: now,
		CreatedBy: actorName,
		UpdatedAt: now,
		UpdatedBy: actorName,
	}
	for _, test := range request.Tests {
		order.Tests = append(order.Tests, models.OrderTest{
			Code:     test.Code,
			Group:    test.Group,
			BodySide: test.BodySide,
		})
	}

	existing, err := uc.OrderRepository.FindOrderByVisitID(ctx, kind, visitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		order.CreatedAt = existing.CreatedAt
		order.CreatedBy = existing.CreatedBy
	}

	if err := uc.OrderRepository.UpsertOrder(ctx, order); err != nil {
		return nil, err
	}

	uc.Log.Info("order saved",
		zap.String("visit_id", visitID),
		zap.String("kind", string(kind)),
		zap.Int("tests", len(order.Tests)),
	)
	return order, nil
}

func (uc *OrderUsecaseImpl) GetOrderByVisitID(ctx context.Context, kind models.OrderKind, visitID string) (*models.Order, error) {
	order, err := uc.OrderRepository.FindOrderByVisitID(ctx, kind, visitID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	return order, nil
}
