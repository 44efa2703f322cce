package orders

import (
	"context"
	"errors"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryOrderRepository struct {
	orders map[string]*models.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[string]*models.Order)}
}

func (r *memoryOrderRepository) key(kind models.OrderKind, visitID string) string {
	return string(kind) + "/" + visitID
}

func (r *memoryOrderRepository) UpsertOrder(_ context.Context, order *models.Order) error {
	stored := *order
	r.orders[r.key(order.Kind, order.VisitID)] = &stored
	return nil
}

func (r *memoryOrderRepository) FindOrderByVisitID(_ context.Context, kind models.OrderKind, visitID string) (*models.Order, error) {
	order, ok := r.orders[r.key(kind, visitID)]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (r *memoryOrderRepository) FindVisitIDsWithOrder(_ context.Context, kind models.OrderKind, visitIDs []string) (map[string]bool, error) {
	found := make(map[string]bool)
	for _, visitID := range visitIDs {
		if _, ok := r.orders[r.key(kind, visitID)]; ok {
			found[visitID] = true
		}
	}
	return found, nil
}

type stubVisitFinder struct {
	visits map[string]*models.Visit
}

func (f *stubVisitFinder) FindVisitByID(_ context.Context, visitID string) (*models.Visit, error) {
	return f.visits[visitID], nil
}

func newOrderFixture() (OrderUsecase, *memoryOrderRepository) {
	repo := newMemoryOrderRepository()
	finder := &stubVisitFinder{visits: map[string]*models.Visit{
		"visit-1": {ID: "visit-1", PatientID: "patient-1", Status: models.VisitDone},
	}}
	return NewOrderUsecase(zap.NewNop(), repo, finder), repo
}

func assertCustomError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestUpsertOrder(t *testing.T) {
	t.Run("Creates Requested Order", func(t *testing.T) {
		usecase, _ := newOrderFixture()

		order, err := usecase.UpsertOrder(context.Background(), models.OrderKindLab, "visit-1", "analis", &requests.UpsertOrder{
			Tests: []requests.OrderTest{{Code: "HB", Group: "hematology"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "visit-1", order.VisitID)
		assert.Equal(t, "patient-1", order.PatientID)
		assert.Equal(t, models.OrderRequested, order.Status)
		assert.Equal(t, "analis", order.CreatedBy)
		require.Len(t, order.Tests, 1)
	})

	t.Run("Empty Selection Rejected Before Any Write", func(t *testing.T) {
		usecase, repo := newOrderFixture()

		_, err := usecase.UpsertOrder(context.Background(), models.OrderKindLab, "visit-1", "analis", &requests.UpsertOrder{})
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientEmptyTestSelection)
		assert.Empty(t, repo.orders)
	})

	t.Run("Unknown Visit Rejected", func(t *testing.T) {
		usecase, _ := newOrderFixture()

		_, err := usecase.UpsertOrder(context.Background(), models.OrderKindLab, "missing", "analis", &requests.UpsertOrder{
			Tests: []requests.OrderTest{{Code: "HB", Group: "hematology"}},
		})
		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientVisitNotFound)
	})

	t.Run("Second Upsert Replaces Selection Keeps Creation Stamp", func(t *testing.T) {
		usecase, repo := newOrderFixture()

		first, err := usecase.UpsertOrder(context.Background(), models.OrderKindRadiology, "visit-1", "radiografer", &requests.UpsertOrder{
			Tests: []requests.OrderTest{{Code: "THORAX", Group: "xray", BodySide: "both"}},
		})
		require.NoError(t, err)

		// Pretend the department completed it in between; a later upsert still
		// forces the order back to requested.
		repo.orders[repo.key(models.OrderKindRadiology, "visit-1")].Status = models.OrderCompleted
		time.Sleep(time.Millisecond)

		second, err := usecase.UpsertOrder(context.Background(), models.OrderKindRadiology, "visit-1", "radiografer dua", &requests.UpsertOrder{
			Tests: []requests.OrderTest{
				{Code: "FEMUR", Group: "xray", BodySide: "left"},
				{Code: "CRANIUM", Group: "xray"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, models.OrderRequested, second.Status)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)
		assert.Equal(t, "radiografer", second.CreatedBy)
		assert.Equal(t, "radiografer dua", second.UpdatedBy)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
		require.Len(t, second.Tests, 2)

		assert.Len(t, repo.orders, 1)
	})

	t.Run("Kinds Are Independent", func(t *testing.T) {
		usecase, repo := newOrderFixture()

		_, err := usecase.UpsertOrder(context.Background(), models.OrderKindLab, "visit-1", "analis", &requests.UpsertOrder{
			Tests: []requests.OrderTest{{Code: "HB", Group: "hematology"}},
		})
		require.NoError(t, err)
		_, err = usecase.UpsertOrder(context.Background(), models.OrderKindRadiology, "visit-1", "radiografer", &requests.UpsertOrder{
			Tests: []requests.OrderTest{{Code: "THORAX", Group: "xray"}},
		})
		require.NoError(t, err)

		assert.Len(t, repo.orders, 2)
	})
}

func TestGetOrderByVisitID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		usecase, _ := newOrderFixture()
		_, err := usecase.UpsertOrder(context.Background(), models.OrderKindLab, "visit-1", "analis", &requests.UpsertOrder{
			Tests: []requests.OrderTest{{Code: "HB", Group: "hematology"}},
		})
		require.NoError(t, err)

		order, err := usecase.GetOrderByVisitID(context.Background(), models.OrderKindLab, "visit-1")
		require.NoError(t, err)
		assert.Equal(t, "visit-1", order.VisitID)
	})

	t.Run("Missing", func(t *testing.T) {
		usecase, _ := newOrderFixture()

		_, err := usecase.GetOrderByVisitID(context.Background(), models.OrderKindLab, "visit-1")
		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientOrderNotFound)
	})
}
