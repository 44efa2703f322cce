package visits

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

type fakeVisitRepository struct {
	visits map[string]*models.Visit
	nextID int
}

func newFakeVisitRepository() *fakeVisitRepository {
	return &fakeVisitRepository{visits: make(map[string]*models.Visit), nextID: 0}
}

func (r *fakeVisitRepository) CreateVisit(_ context.Context, visit *models.Visit) (*models.Visit, error) {
	r.nextID++
	visit.ID = "visit-" + string(rune('0'+r.nextID))
	stored := *visit
	r.visits[visit.ID] = &stored
	return visit, nil
}

func (r *fakeVisitRepository) FindVisitByID(_ context.Context, visitID string) (*models.Visit, error) {
	visit, ok := r.visits[visitID]
	if !ok {
		return nil, nil
	}
	copied := *visit
	return &copied, nil
}

func (r *fakeVisitRepository) UpdateClinicalLines(_ context.Context, visitID string, services []models.VisitService, prescriptions []models.VisitPrescription, totalBiaya int64, dispensationStatus models.DispensationStatus) error {
	visit, ok := r.visits[visitID]
	if !ok {
		return exceptions.ErrVisitNotFound(nil)
	}
	visit.Services = services
	visit.Prescriptions = prescriptions
	visit.TotalBiaya = totalBiaya
	visit.DispensationStatus = dispensationStatus
	return nil
}

func (r *fakeVisitRepository) UpdateExam(_ context.Context, visitID string, exam *models.Examination) error {
	visit, ok := r.visits[visitID]
	if !ok {
		return exceptions.ErrVisitNotFound(nil)
	}
	visit.Exam = exam
	return nil
}

func (r *fakeVisitRepository) UpdateStatus(_ context.Context, visitID string, status models.VisitStatus) error {
	visit, ok := r.visits[visitID]
	if !ok {
		return exceptions.ErrVisitNotFound(nil)
	}
	visit.Status = status
	return nil
}

func (r *fakeVisitRepository) UpdatePayment(_ context.Context, visitID, method, paidBy string, paidAt time.Time) error {
	visit, ok := r.visits[visitID]
	if !ok {
		return exceptions.ErrVisitNotFound(nil)
	}
	visit.PaymentStatus = models.PaymentPaid
	visit.PaymentMethod = method
	visit.PaidBy = paidBy
	visit.PaymentTime = &paidAt
	return nil
}

func (r *fakeVisitRepository) UpdateDispensation(_ context.Context, visitID, dispensedBy string, dispensedAt time.Time) error {
	visit, ok := r.visits[visitID]
	if !ok {
		return exceptions.ErrVisitNotFound(nil)
	}
	visit.DispensationStatus = models.DispensationDone
	visit.DispensedBy = dispensedBy
	visit.DispensationTime = &dispensedAt
	return nil
}

func (r *fakeVisitRepository) FindCashierQueue(_ context.Context, page, pageSize int) ([]models.Visit, int, error) {
	var matched []models.Visit
	for _, visit := range r.visits {
		if visit.Status == models.VisitDone && visit.PaymentStatus == models.PaymentUnpaid {
			matched = append(matched, *visit)
		}
	}
	return matched, len(matched), nil
}

func (r *fakeVisitRepository) FindPharmacyQueue(_ context.Context, page, pageSize int) ([]models.Visit, int, error) {
	var matched []models.Visit
	for _, visit := range r.visits {
		if visit.Status == models.VisitDone && visit.DispensationStatus == models.DispensationPending {
			matched = append(matched, *visit)
		}
	}
	return matched, len(matched), nil
}

func (r *fakeVisitRepository) FindExamFlagQueue(_ context.Context, flag string, page, pageSize int) ([]models.Visit, int, error) {
	var matched []models.Visit
	for _, visit := range r.visits {
		if visit.Status != models.VisitDone || visit.Exam == nil {
			continue
		}
		if (flag == "labRequested" && visit.Exam.LabRequested) || (flag == "radiologyRequested" && visit.Exam.RadiologyRequested) {
			matched = append(matched, *visit)
		}
	}
	return matched, len(matched), nil
}

type fakeCatalogRepository struct {
	drugs            map[string]*models.Drug
	serviceItems     map[string]*models.ServiceItem
	roomTariffs      map[string]*models.RoomTariff
	ambulanceConfigs map[string]*models.AmbulanceConfig
	decrements       map[string]int
	failingDrugIDs   map[string]bool
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{
		drugs:            make(map[string]*models.Drug),
		serviceItems:     make(map[string]*models.ServiceItem),
		roomTariffs:      make(map[string]*models.RoomTariff),
		ambulanceConfigs: make(map[string]*models.AmbulanceConfig),
		decrements:       make(map[string]int),
		failingDrugIDs:   make(map[string]bool),
	}
}

func (r *fakeCatalogRepository) FindDrugByID(_ context.Context, drugID string) (*models.Drug, error) {
	return r.drugs[drugID], nil
}

func (r *fakeCatalogRepository) FindServiceItemByID(_ context.Context, itemID string) (*models.ServiceItem, error) {
	return r.serviceItems[itemID], nil
}

func (r *fakeCatalogRepository) FindRoomTariff(_ context.Context, roomClass, subCategory string) (*models.RoomTariff, error) {
	return r.roomTariffs[roomClass+"/"+subCategory], nil
}

func (r *fakeCatalogRepository) FindAmbulanceConfig(_ context.Context, vehicleType string) (*models.AmbulanceConfig, error) {
	return r.ambulanceConfigs[vehicleType], nil
}

func (r *fakeCatalogRepository) UpsertAmbulanceConfig(_ context.Context, config *models.AmbulanceConfig) error {
	r.ambulanceConfigs[config.VehicleType] = config
	return nil
}

func (r *fakeCatalogRepository) DecrementStock(_ context.Context, drugID string, quantity int) error {
	if r.failingDrugIDs[drugID] {
		return exceptions.ErrInsufficientStock(nil, drugID)
	}
	if _, ok := r.drugs[drugID]; !ok {
		return exceptions.ErrDrugNotFound(nil, drugID)
	}
	r.decrements[drugID] += quantity
	return nil
}

func (r *fakeCatalogRepository) IncrementStock(_ context.Context, drugID string, quantity int) error {
	r.decrements[drugID] -= quantity
	return nil
}

type fakeOrderRepository struct {
	orders map[string]*models.Order
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[string]*models.Order)}
}

func orderKey(kind models.OrderKind, visitID string) string {
	return string(kind) + "/" + visitID
}

func (r *fakeOrderRepository) UpsertOrder(_ context.Context, order *models.Order) error {
	stored := *order
	r.orders[orderKey(order.Kind, order.VisitID)] = &stored
	return nil
}

func (r *fakeOrderRepository) FindOrderByVisitID(_ context.Context, kind models.OrderKind, visitID string) (*models.Order, error) {
	order, ok := r.orders[orderKey(kind, visitID)]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepository) FindVisitIDsWithOrder(_ context.Context, kind models.OrderKind, visitIDs []string) (map[string]bool, error) {
	found := make(map[string]bool)
	for _, visitID := range visitIDs {
		if _, ok := r.orders[orderKey(kind, visitID)]; ok {
			found[visitID] = true
		}
	}
	return found, nil
}

type visitFixture struct {
	usecase     VisitUsecase
	visitRepo   *fakeVisitRepository
	catalogRepo *fakeCatalogRepository
	orderRepo   *fakeOrderRepository
}

func newVisitFixture() *visitFixture {
	visitRepo := newFakeVisitRepository()
	catalogRepo := newFakeCatalogRepository()
	orderRepo := newFakeOrderRepository()
	return &visitFixture{
		usecase:     NewVisitUsecase(zap.NewNop(), visitRepo, catalogRepo, orderRepo),
		visitRepo:   visitRepo,
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
	}
}

func (f *visitFixture) createVisit(t *testing.T) string {
	t.Helper()
	created, err := f.usecase.CreateVisit(context.Background(), "dr. adi", &requests.CreateVisit{
		PatientID: "patient-1",
		VisitType: "igd",
		Doctor:    "dr. adi",
	})
	require.NoError(t, err)
	return created.VisitID
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func assertCustomError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestCreateVisit(t *testing.T) {
	fixture := newVisitFixture()

	created, err := fixture.usecase.CreateVisit(context.Background(), "desk staff", &requests.CreateVisit{
		PatientID: "patient-9",
		VisitType: "rawat_inap",
		Doctor:    "dr. budi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.VisitID)
	assert.Contains(t, created.RegistrationNumber, "REG-")

	visit, err := fixture.usecase.GetVisitByID(context.Background(), created.VisitID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitInProgress, visit.Status)
	assert.Equal(t, models.PaymentUnpaid, visit.PaymentStatus)
	assert.Equal(t, models.DispensationNotApplicable, visit.DispensationStatus)
	assert.Empty(t, visit.Services)
	assert.Empty(t, visit.Prescriptions)
	assert.Equal(t, int64(0), visit.TotalBiaya)
	assert.Equal(t, "desk staff", visit.CreatedBy)
}

func TestGetVisitByID_NotFound(t *testing.T) {
	fixture := newVisitFixture()

	_, err := fixture.usecase.GetVisitByID(context.Background(), "no-such-visit")
	assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientVisitNotFound)
}

func TestAddService(t *testing.T) {
	t.Run("Manual Line Recomputes Total", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		visit, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category:  "examination",
			Name:      "ER examination",
			UnitPrice: int64Ptr(100000),
			Quantity:  intPtr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(200000), visit.TotalBiaya)
		require.Len(t, visit.Services, 1)
		assert.Equal(t, 2, visit.Services[0].Quantity)
	})

	t.Run("Catalog Item Price Is Copied", func(t *testing.T) {
		fixture := newVisitFixture()
		fixture.catalogRepo.serviceItems["svc-1"] = &models.ServiceItem{
			ID: "svc-1", Category: "surgery", Name: "Appendectomy", UnitPrice: 2500000, Active: true,
		}
		visitID := fixture.createVisit(t)

		visit, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category:      "surgery",
			ServiceItemID: "svc-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Appendectomy", visit.Services[0].Name)
		assert.Equal(t, int64(2500000), visit.Services[0].UnitPrice)
		assert.Equal(t, 1, visit.Services[0].Quantity)
		assert.Equal(t, int64(2500000), visit.TotalBiaya)
	})

	t.Run("Unknown Catalog Item Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category:      "surgery",
			ServiceItemID: "missing",
		})
		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientServiceItemNotFound)
	})

	t.Run("Room Line Uses Tariff Matrix", func(t *testing.T) {
		fixture := newVisitFixture()
		fixture.catalogRepo.roomTariffs["VIP/bed"] = &models.RoomTariff{
			RoomClass: "VIP", SubCategory: "bed", Name: "VIP room day", DailyPrice: 400000, Active: true,
		}
		visitID := fixture.createVisit(t)

		visit, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category:    "room",
			RoomClass:   "VIP",
			SubCategory: "bed",
			Quantity:    intPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1200000), visit.TotalBiaya)
		assert.Equal(t, "VIP", visit.Services[0].RoomClass)
	})

	t.Run("Room Line Without Class Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "room",
		})
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientRoomClassRequired)
	})

	t.Run("Ambulance Line Uses Fare Calculator", func(t *testing.T) {
		fixture := newVisitFixture()
		fixture.catalogRepo.ambulanceConfigs["GRANDMAX"] = &models.AmbulanceConfig{
			VehicleType:    "GRANDMAX",
			CostPerKm:      3120,
			DriverPct:      0.16,
			AdminPct:       0.16,
			MaintenancePct: 0.25,
			HospitalPct:    0.25,
			TaxPct:         0.10,
		}
		visitID := fixture.createVisit(t)

		visit, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category:    "ambulance",
			VehicleType: "GRANDMAX",
			OneWayKm:    5,
			Quantity:    intPtr(4),
		})
		require.NoError(t, err)
		line := visit.Services[0]
		assert.Equal(t, int64(62462), line.UnitPrice)
		assert.Equal(t, 1, line.Quantity)
		require.NotNil(t, line.Ambulance)
		assert.Equal(t, 10.0, line.Ambulance.Breakdown.RoundTripKm)
		assert.InDelta(t, 62462.4, line.Ambulance.Breakdown.Total, 1e-9)
		assert.Equal(t, int64(62462), visit.TotalBiaya)
	})

	t.Run("Manual Line Without Price Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "misc",
			Name:     "administration",
		})
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientManualLineIncomplete)
	})
}

func TestServiceLineEdits(t *testing.T) {
	fixture := newVisitFixture()
	visitID := fixture.createVisit(t)

	_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
		Category: "room", Name: "Room day", UnitPrice: int64Ptr(150000), Quantity: intPtr(1),
	})
	require.NoError(t, err)
	visit, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
		Category: "surgery", Name: "Surgery", UnitPrice: int64Ptr(2500000), Quantity: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2650000), visit.TotalBiaya)

	visit, err = fixture.usecase.UpdateService(context.Background(), visitID, 0, &requests.UpdateService{
		Quantity: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2950000), visit.TotalBiaya)

	visit, err = fixture.usecase.RemoveService(context.Background(), visitID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(450000), visit.TotalBiaya)

	_, err = fixture.usecase.UpdateService(context.Background(), visitID, 5, &requests.UpdateService{Quantity: intPtr(1)})
	assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientLineItemNotFound)

	_, err = fixture.usecase.RemoveService(context.Background(), visitID, -1)
	assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientLineItemNotFound)
}

func TestPrescriptionLines(t *testing.T) {
	t.Run("Catalog Drug Price Is Copied", func(t *testing.T) {
		fixture := newVisitFixture()
		fixture.catalogRepo.drugs["drug-1"] = &models.Drug{
			ID: "drug-1", Name: "Paracetamol 500mg", PricePerUnit: 5000, Stock: 100, Active: true,
		}
		visitID := fixture.createVisit(t)

		visit, err := fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
			DrugID:   "drug-1",
			Quantity: intPtr(3),
		})
		require.NoError(t, err)
		require.Len(t, visit.Prescriptions, 1)
		line := visit.Prescriptions[0]
		assert.Equal(t, "Paracetamol 500mg", line.Name)
		assert.Equal(t, int64(5000), line.PricePerUnit)
		assert.Equal(t, int64(15000), line.TotalPrice)
		assert.Equal(t, int64(15000), visit.TotalBiaya)
		assert.Equal(t, models.DispensationPending, visit.DispensationStatus)
	})

	t.Run("Unknown Drug Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
			DrugID: "missing",
		})
		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientDrugNotFound)
	})

	t.Run("Free Text Needs Price", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
			Name: "Compounded syrup",
		})
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientFreeTextPriceRequired)

		visit, err := fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
			Name:         "Compounded syrup",
			PricePerUnit: int64Ptr(12000),
			Quantity:     intPtr(2),
		})
		require.NoError(t, err)
		assert.Empty(t, visit.Prescriptions[0].DrugID)
		assert.Equal(t, int64(24000), visit.TotalBiaya)
	})

	t.Run("Removing Last Prescription Clears Dispensation", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		visit, err := fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
			Name: "Ibuprofen", PricePerUnit: int64Ptr(3000), Quantity: intPtr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, models.DispensationPending, visit.DispensationStatus)

		visit, err = fixture.usecase.RemovePrescription(context.Background(), visitID, 0)
		require.NoError(t, err)
		assert.Equal(t, models.DispensationNotApplicable, visit.DispensationStatus)
		assert.Equal(t, int64(0), visit.TotalBiaya)
	})

	t.Run("Update Recomputes Line And Total", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
			Name: "Amoxicillin", PricePerUnit: int64Ptr(2000), Quantity: intPtr(10),
		})
		require.NoError(t, err)

		visit, err := fixture.usecase.UpdatePrescription(context.Background(), visitID, 0, &requests.UpdatePrescription{
			Quantity: intPtr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10000), visit.Prescriptions[0].TotalPrice)
		assert.Equal(t, int64(10000), visit.TotalBiaya)
	})
}

func TestRecordExam(t *testing.T) {
	fixture := newVisitFixture()
	visitID := fixture.createVisit(t)

	visit, err := fixture.usecase.RecordExam(context.Background(), visitID, "dr. adi", &requests.RecordExam{
		Diagnosis:    "acute appendicitis",
		LabRequested: true,
	})
	require.NoError(t, err)
	require.NotNil(t, visit.Exam)
	assert.True(t, visit.Exam.LabRequested)
	assert.Equal(t, "dr. adi", visit.Exam.ExaminedBy)

	// Amendment while still in progress overwrites the record.
	visit, err = fixture.usecase.RecordExam(context.Background(), visitID, "dr. adi", &requests.RecordExam{
		Diagnosis:          "acute appendicitis",
		RadiologyRequested: true,
	})
	require.NoError(t, err)
	assert.False(t, visit.Exam.LabRequested)
	assert.True(t, visit.Exam.RadiologyRequested)
}

func TestFinishVisit(t *testing.T) {
	t.Run("Without Services Rejected And State Unchanged", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.FinishVisit(context.Background(), visitID)
		assertCustomError(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientFinishWithoutServices)

		visit, err := fixture.usecase.GetVisitByID(context.Background(), visitID)
		require.NoError(t, err)
		assert.Equal(t, models.VisitInProgress, visit.Status)
	})

	t.Run("Missing Exam Yields Warning Not Rejection", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)
		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "examination", Name: "ER examination", UnitPrice: int64Ptr(100000),
		})
		require.NoError(t, err)

		result, err := fixture.usecase.FinishVisit(context.Background(), visitID)
		require.NoError(t, err)
		assert.Equal(t, models.VisitDone, result.Visit.Status)
		assert.Contains(t, result.Warnings, "no examination recorded for this visit")
	})

	t.Run("Requested Lab Without Order Yields Warning", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)
		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "examination", Name: "ER examination", UnitPrice: int64Ptr(100000),
		})
		require.NoError(t, err)
		_, err = fixture.usecase.RecordExam(context.Background(), visitID, "dr. adi", &requests.RecordExam{
			Diagnosis: "fracture", LabRequested: true, RadiologyRequested: true,
		})
		require.NoError(t, err)
		fixture.orderRepo.orders[orderKey(models.OrderKindRadiology, visitID)] = &models.Order{VisitID: visitID, Kind: models.OrderKindRadiology}

		result, err := fixture.usecase.FinishVisit(context.Background(), visitID)
		require.NoError(t, err)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "lab")
	})

	t.Run("Double Finish Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)
		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "misc", Name: "administration", UnitPrice: int64Ptr(10000),
		})
		require.NoError(t, err)
		_, err = fixture.usecase.FinishVisit(context.Background(), visitID)
		require.NoError(t, err)

		_, err = fixture.usecase.FinishVisit(context.Background(), visitID)
		assertCustomError(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitAlreadyDone)
	})

	t.Run("Line Edits After Finish Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)
		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "misc", Name: "administration", UnitPrice: int64Ptr(10000),
		})
		require.NoError(t, err)
		_, err = fixture.usecase.FinishVisit(context.Background(), visitID)
		require.NoError(t, err)

		_, err = fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "misc", Name: "late line", UnitPrice: int64Ptr(5000),
		})
		assertCustomError(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitAlreadyDone)

		_, err = fixture.usecase.RecordExam(context.Background(), visitID, "dr. adi", &requests.RecordExam{Diagnosis: "late"})
		assertCustomError(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientExamAlreadyLocked)

		visit, err := fixture.usecase.GetVisitByID(context.Background(), visitID)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), visit.TotalBiaya)
	})
}

func TestPayVisit(t *testing.T) {
	setupFinished := func(t *testing.T) (*visitFixture, string) {
		t.Helper()
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)
		_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
			Category: "examination", Name: "ER examination", UnitPrice: int64Ptr(100000),
		})
		require.NoError(t, err)
		_, err = fixture.usecase.FinishVisit(context.Background(), visitID)
		require.NoError(t, err)
		return fixture, visitID
	}

	t.Run("Happy Path", func(t *testing.T) {
		fixture, visitID := setupFinished(t)

		visit, err := fixture.usecase.PayVisit(context.Background(), visitID, "cashier one", &requests.PayVisit{Method: "cash"})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPaid, visit.PaymentStatus)
		assert.Equal(t, "cash", visit.PaymentMethod)
		assert.Equal(t, "cashier one", visit.PaidBy)
		require.NotNil(t, visit.PaymentTime)
	})

	t.Run("Unfinished Visit Rejected", func(t *testing.T) {
		fixture := newVisitFixture()
		visitID := fixture.createVisit(t)

		_, err := fixture.usecase.PayVisit(context.Background(), visitID, "cashier one", &requests.PayVisit{Method: "cash"})
		assertCustomError(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitNotDone)
	})

	t.Run("Double Payment Rejected", func(t *testing.T) {
		fixture, visitID := setupFinished(t)
		_, err := fixture.usecase.PayVisit(context.Background(), visitID, "cashier one", &requests.PayVisit{Method: "cash"})
		require.NoError(t, err)

		_, err = fixture.usecase.PayVisit(context.Background(), visitID, "cashier two", &requests.PayVisit{Method: "debit"})
		assertCustomError(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitAlreadyPaid)
	})
}

func TestQueueViews(t *testing.T) {
	fixture := newVisitFixture()
	visitID := fixture.createVisit(t)
	_, err := fixture.usecase.AddService(context.Background(), visitID, &requests.AddService{
		Category: "examination", Name: "ER examination", UnitPrice: int64Ptr(100000),
	})
	require.NoError(t, err)
	_, err = fixture.usecase.AddPrescription(context.Background(), visitID, &requests.AddPrescription{
		Name: "Ibuprofen", PricePerUnit: int64Ptr(3000), Quantity: intPtr(2),
	})
	require.NoError(t, err)
	_, err = fixture.usecase.RecordExam(context.Background(), visitID, "dr. adi", &requests.RecordExam{
		Diagnosis: "fracture", LabRequested: true,
	})
	require.NoError(t, err)
	_, err = fixture.usecase.FinishVisit(context.Background(), visitID)
	require.NoError(t, err)

	cashier, total, err := fixture.usecase.GetCashierQueue(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, cashier, 1)
	assert.Equal(t, visitID, cashier[0].VisitID)
	assert.Equal(t, int64(106000), cashier[0].TotalBiaya)
	assert.Equal(t, string(models.PaymentUnpaid), cashier[0].PaymentStatus)
	assert.Equal(t, int64(100000), cashier[0].Subtotals["examination"])
	assert.Equal(t, int64(6000), cashier[0].Subtotals["consumable"])

	pharmacyQueue, _, err := fixture.usecase.GetPharmacyQueue(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, pharmacyQueue, 1)
	assert.Equal(t, string(models.DispensationPending), pharmacyQueue[0].DispensationStatus)

	labQueue, _, err := fixture.usecase.GetLabQueue(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, labQueue, 1)
	assert.False(t, labQueue[0].HasOrder)

	fixture.orderRepo.orders[orderKey(models.OrderKindLab, visitID)] = &models.Order{VisitID: visitID, Kind: models.OrderKindLab}
	labQueue, _, err = fixture.usecase.GetLabQueue(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.True(t, labQueue[0].HasOrder)

	radiologyQueue, _, err := fixture.usecase.GetRadiologyQueue(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Empty(t, radiologyQueue)
}
