package visits

import (
	"context"
	"fmt"
	"simrs-service/internal/app/models"
	"simrs-service/internal/app/services/core/billing"
	"simrs-service/internal/app/services/core/catalog"
	"simrs-service/internal/app/services/core/orders"
	"simrs-service/internal/app/services/core/tariff"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VisitUsecaseImpl struct {
	Log               *zap.Logger
	VisitRepository   VisitRepository
	CatalogRepository catalog.CatalogRepository
	OrderRepository   orders.OrderRepository
}

func NewVisitUsecase(logger *zap.Logger, visitRepository VisitRepository, catalogRepository catalog.CatalogRepository, orderRepository orders.OrderRepository) VisitUsecase {
	return &VisitUsecaseImpl{
		Log:               logger,
		VisitRepository:   visitRepository,
		CatalogRepository: catalogRepository,
		OrderRepository:   orderRepository,
	}
}

func (uc *VisitUsecaseImpl) CreateVisit(ctx context.Context, actorName string, request *requests.CreateVisit) (*responses.CreateVisit, error) {
	now := time.Now()
	visit := &models.Visit{
		RegistrationNumber: buildRegistrationNumber(now),
		PatientID:          request.PatientID,
		VisitType:          models.VisitType(request.VisitType),
		Doctor:             request.Doctor,
		Status:             models.VisitInProgress,
		PaymentStatus:      models.PaymentUnpaid,
		DispensationStatus: models.DispensationNotApplicable,
		Services:           []models.VisitService{},
		Prescriptions:      []models.VisitPrescription{},
		TotalBiaya:         0,
		CreatedAt:          now,
		CreatedBy:          actorName,
		UpdatedAt:          now,
	}

	created, err := uc.VisitRepository.CreateVisit(ctx, visit)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("visit created",
		zap.String("visit_id", created.ID),
		zap.String("registration_number", created.RegistrationNumber),
		zap.String("visit_type", string(created.VisitType)),
	)
	return &responses.CreateVisit{
		VisitID:            created.ID,
		RegistrationNumber: created.RegistrationNumber,
	}, nil
}

// buildRegistrationNumber yields a human-quotable number: date plus a random
// suffix. Uniqueness per day is as good as the uuid fragment.
func buildRegistrationNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("REG-%s-%s", now.Format("20060102"), suffix)
}

func (uc *VisitUsecaseImpl) GetVisitByID(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil)
	}
	return visit, nil
}

// findEditableVisit loads the visit and rejects line edits once the clinical
// phase is closed. Nothing is written before this check passes.
func (uc *VisitUsecaseImpl) findEditableVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.GetVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitInProgress {
		return nil, exceptions.ErrVisitAlreadyDone(nil)
	}
	return visit, nil
}

func (uc *VisitUsecaseImpl) AddService(ctx context.Context, visitID string, request *requests.AddService) (*models.Visit, error) {
	visit, err := uc.findEditableVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	line, err := uc.buildServiceLine(ctx, request)
	if err != nil {
		return nil, err
	}

	visit.Services = append(visit.Services, *line)
	return uc.saveClinicalLines(ctx, visit)
}

// buildServiceLine resolves the pricing path for a new line: flat-fee catalog
// item, room tariff matrix, ambulance fare calculator, or a manual price.
func (uc *VisitUsecaseImpl) buildServiceLine(ctx context.Context, request *requests.AddService) (*models.VisitService, error) {
	category := constvars.ServiceCategory(request.Category)
	quantity := 1
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	if request.ServiceItemID != "" {
		item, err := uc.CatalogRepository.FindServiceItemByID(ctx, request.ServiceItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, exceptions.ErrServiceItemNotFound(nil, request.ServiceItemID)
		}
		return &models.VisitService{
			Category:  category,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  quantity,
		}, nil
	}

	if category == constvars.CategoryRoom {
		if request.RoomClass == "" || request.SubCategory == "" {
			return nil, exceptions.ErrRoomClassRequired(nil)
		}
		roomTariff, err := uc.CatalogRepository.FindRoomTariff(ctx, request.RoomClass, request.SubCategory)
		if err != nil {
			return nil, err
		}
		if roomTariff == nil {
			return nil, exceptions.ErrRoomTariffNotFound(nil, request.RoomClass)
		}
		return &models.VisitService{
			Category:    category,
			Name:        roomTariff.Name,
			UnitPrice:   roomTariff.DailyPrice,
			Quantity:    quantity,
			RoomClass:   roomTariff.RoomClass,
			SubCategory: roomTariff.SubCategory,
		}, nil
	}

	if category == constvars.CategoryAmbulance && request.VehicleType != "" {
		config, err := uc.CatalogRepository.FindAmbulanceConfig(ctx, request.VehicleType)
		if err != nil {
			return nil, err
		}
		if config == nil {
			return nil, exceptions.ErrAmbulanceConfigNotFound(nil, request.VehicleType)
		}
		breakdown, err := tariff.ComputeAmbulanceFare(*config, request.OneWayKm)
		if err != nil {
			return nil, err
		}
		return &models.VisitService{
			Category:  category,
			Name:      fmt.Sprintf("ambulance trip (%s, %.1f km)", config.VehicleType, request.OneWayKm),
			UnitPrice: tariff.RoundedTotal(breakdown),
			// A trip is a single billable event regardless of requested quantity.
			Quantity: 1,
			Ambulance: &models.AmbulanceMeta{
				VehicleType: config.VehicleType,
				OneWayKm:    request.OneWayKm,
				Breakdown:   *breakdown,
			},
		}, nil
	}

	if request.Name == "" || request.UnitPrice == nil {
		return nil, exceptions.ErrManualLineIncomplete(nil)
	}
	return &models.VisitService{
		Category:  category,
		Name:      request.Name,
		UnitPrice: *request.UnitPrice,
		Quantity:  quantity,
	}, nil
}

func (uc *VisitUsecaseImpl) UpdateService(ctx context.Context, visitID string, index int, request *requests.UpdateService) (*models.Visit, error) {
	visit, err := uc.findEditableVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(visit.Services) {
		return nil, exceptions.ErrLineItemNotFound(nil)
	}

	line := &visit.Services[index]
	if request.Name != "" {
		line.Name = request.Name
	}
	if request.UnitPrice != nil {
		line.UnitPrice = *request.UnitPrice
	}
	if request.Quantity != nil {
		line.Quantity = *request.Quantity
	}
	return uc.saveClinicalLines(ctx, visit)
}

func (uc *VisitUsecaseImpl) RemoveService(ctx context.Context, visitID string, index int) (*models.Visit, error) {
	visit, err := uc.findEditableVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(visit.Services) {
		return nil, exceptions.ErrLineItemNotFound(nil)
	}

	visit.Services = append(visit.Services[:index], visit.Services[index+1:]...)
	return uc.saveClinicalLines(ctx, visit)
}

func (uc *VisitUsecaseImpl) AddPrescription(ctx context.Context, visitID string, request *requests.AddPrescription) (*models.Visit, error) {
	visit, err := uc.findEditableVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	quantity := 1
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	line := models.VisitPrescription{Quantity: quantity}
	if request.DrugID != "" {
		drug, err := uc.CatalogRepository.FindDrugByID(ctx, request.DrugID)
		if err != nil {
			return nil, err
		}
		if drug == nil {
			return nil, exceptions.ErrDrugNotFound(nil, request.DrugID)
		}
		line.DrugID = drug.ID
		line.Name = drug.Name
		line.PricePerUnit = drug.PricePerUnit
	} else {
		if request.Name == "" || request.PricePerUnit == nil {
			return nil, exceptions.ErrFreeTextPriceRequired(nil)
		}
		line.Name = request.Name
		line.PricePerUnit = *request.PricePerUnit
	}
	line.TotalPrice = billing.PrescriptionTotal(line)

	visit.Prescriptions = append(visit.Prescriptions, line)
	return uc.saveClinicalLines(ctx, visit)
}

func (uc *VisitUsecaseImpl) UpdatePrescription(ctx context.Context, visitID string, index int, request *requests.UpdatePrescription) (*models.Visit, error) {
	visit, err := uc.findEditableVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(visit.Prescriptions) {
		return nil, exceptions.ErrLineItemNotFound(nil)
	}

	line := &visit.Prescriptions[index]
	if request.Quantity != nil {
		line.Quantity = *request.Quantity
	}
	if request.PricePerUnit != nil {
		line.PricePerUnit = *request.PricePerUnit
	}
	line.TotalPrice = billing.PrescriptionTotal(*line)
	return uc.saveClinicalLines(ctx, visit)
}

func (uc *VisitUsecaseImpl) RemovePrescription(ctx context.Context, visitID string, index int) (*models.Visit, error) {
	visit, err := uc.findEditableVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(visit.Prescriptions) {
		return nil, exceptions.ErrLineItemNotFound(nil)
	}

	visit.Prescriptions = append(visit.Prescriptions[:index], visit.Prescriptions[index+1:]...)
	return uc.saveClinicalLines(ctx, visit)
}

// saveClinicalLines is the single exit point for every line mutation: the
// total is recomputed from the full lists and the dispensation marker is
// re-derived, then the whole clinical field group is written at once.
func (uc *VisitUsecaseImpl) saveClinicalLines(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	visit.TotalBiaya = billing.RecomputeTotal(visit.Services, visit.Prescriptions)
	visit.DispensationStatus = deriveDispensationStatus(visit)

	err := uc.VisitRepository.UpdateClinicalLines(ctx, visit.ID, visit.Services, visit.Prescriptions, visit.TotalBiaya, visit.DispensationStatus)
	if err != nil {
		return nil, err
	}
	return visit, nil
}

func deriveDispensationStatus(visit *models.Visit) models.DispensationStatus {
	if visit.DispensationStatus == models.DispensationDone {
		return models.DispensationDone
	}
	if len(visit.Prescriptions) == 0 {
		return models.DispensationNotApplicable
	}
	return models.DispensationPending
}

func (uc *VisitUsecaseImpl) RecordExam(ctx context.Context, visitID, actorName string, request *requests.RecordExam) (*models.Visit, error) {
	visit, err := uc.GetVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitInProgress {
		return nil, exceptions.ErrExamAlreadyLocked(nil)
	}

	visit.Exam = &models.Examination{
		Diagnosis:          request.Diagnosis,
		LabRequested:       request.LabRequested,
		RadiologyRequested: request.RadiologyRequested,
		ExaminedBy:         actorName,
		ExamTime:           time.Now(),
	}
	if err := uc.VisitRepository.UpdateExam(ctx, visitID, visit.Exam); err != nil {
		return nil, err
	}
	return visit, nil
}

// FinishVisit closes the clinical phase. The only hard gate is at least one
// billed service; everything else surfaces as an advisory warning so the desk
// can chase it without blocking the cashier.
func (uc *VisitUsecaseImpl) FinishVisit(ctx context.Context, visitID string) (*responses.FinishVisit, error) {
	visit, err := uc.GetVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitInProgress {
		return nil, exceptions.ErrVisitAlreadyDone(nil)
	}
	if len(visit.Services) == 0 {
		return nil, exceptions.ErrFinishWithoutServices(nil)
	}

	var warnings []string
	if visit.Exam == nil {
		warnings = append(warnings, "no examination recorded for this visit")
	} else {
		if visit.Exam.LabRequested {
			if warning := uc.missingOrderWarning(ctx, models.OrderKindLab, visit.ID); warning != "" {
				warnings = append(warnings, warning)
			}
		}
		if visit.Exam.RadiologyRequested {
			if warning := uc.missingOrderWarning(ctx, models.OrderKindRadiology, visit.ID); warning != "" {
				warnings = append(warnings, warning)
			}
		}
	}

	if err := uc.VisitRepository.UpdateStatus(ctx, visitID, models.VisitDone); err != nil {
		return nil, err
	}
	visit.Status = models.VisitDone

	uc.Log.Info("visit finished",
		zap.String("visit_id", visit.ID),
		zap.Int64("total_biaya", visit.TotalBiaya),
		zap.Int("warnings", len(warnings)),
	)
	return &responses.FinishVisit{Visit: visit, Warnings: warnings}, nil
}

func (uc *VisitUsecaseImpl) missingOrderWarning(ctx context.Context, kind models.OrderKind, visitID string) string {
	order, err := uc.OrderRepository.FindOrderByVisitID(ctx, kind, visitID)
	if err != nil {
		uc.Log.Warn("order lookup failed while finishing visit",
			zap.String("visit_id", visitID),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return ""
	}
	if order == nil {
		return fmt.Sprintf("%s requested but no %s order submitted", kind, kind)
	}
	return ""
}

func (uc *VisitUsecaseImpl) PayVisit(ctx context.Context, visitID, actorName string, request *requests.PayVisit) (*models.Visit, error) {
	visit, err := uc.GetVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitDone {
		return nil, exceptions.ErrVisitNotDone(nil)
	}
	if visit.PaymentStatus == models.PaymentPaid {
		return nil, exceptions.ErrVisitAlreadyPaid(nil)
	}
	if visit.TotalBiaya == 0 {
		return nil, exceptions.ErrPayZeroTotal(nil)
	}

	paidAt := time.Now()
	if err := uc.VisitRepository.UpdatePayment(ctx, visitID, request.Method, actorName, paidAt); err != nil {
		return nil, err
	}

	visit.PaymentStatus = models.PaymentPaid
	visit.PaymentMethod = request.Method
	visit.PaidBy = actorName
	visit.PaymentTime = &paidAt

	uc.Log.Info("payment recorded",
		zap.String("visit_id", visit.ID),
		zap.String("method", request.Method),
		zap.Int64("total_biaya", visit.TotalBiaya),
	)
	return visit, nil
}

func (uc *VisitUsecaseImpl) GetCashierQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error) {
	visits, total, err := uc.VisitRepository.FindCashierQueue(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]responses.QueueEntry, 0, len(visits))
	for _, visit := range visits {
		entry := buildQueueEntry(visit)
		entry.PaymentStatus = string(visit.PaymentStatus)
		entry.Subtotals = billing.SubtotalsByCategory(visit.Services, visit.Prescriptions)
		entries = append(entries, entry)
	}
	return entries, total, nil
}

func (uc *VisitUsecaseImpl) GetPharmacyQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error) {
	visits, total, err := uc.VisitRepository.FindPharmacyQueue(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]responses.QueueEntry, 0, len(visits))
	for _, visit := range visits {
		entry := buildQueueEntry(visit)
		entry.DispensationStatus = string(visit.DispensationStatus)
		entries = append(entries, entry)
	}
	return entries, total, nil
}

func (uc *VisitUsecaseImpl) GetLabQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error) {
	return uc.getExamFlagQueue(ctx, "labRequested", models.OrderKindLab, page, pageSize)
}

func (uc *VisitUsecaseImpl) GetRadiologyQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error) {
	return uc.getExamFlagQueue(ctx, "radiologyRequested", models.OrderKindRadiology, page, pageSize)
}

func (uc *VisitUsecaseImpl) getExamFlagQueue(ctx context.Context, flag string, kind models.OrderKind, page, pageSize int) ([]responses.QueueEntry, int, error) {
	visits, total, err := uc.VisitRepository.FindExamFlagQueue(ctx, flag, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	visitIDs := make([]string, 0, len(visits))
	for _, visit := range visits {
		visitIDs = append(visitIDs, visit.ID)
	}
	withOrder, err := uc.OrderRepository.FindVisitIDsWithOrder(ctx, kind, visitIDs)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]responses.QueueEntry, 0, len(visits))
	for _, visit := range visits {
		entry := buildQueueEntry(visit)
		entry.HasOrder = withOrder[visit.ID]
		entries = append(entries, entry)
	}
	return entries, total, nil
}

func buildQueueEntry(visit models.Visit) responses.QueueEntry {
	return responses.QueueEntry{
		VisitID:            visit.ID,
		RegistrationNumber: visit.RegistrationNumber,
		PatientID:          visit.PatientID,
		VisitType:          string(visit.VisitType),
		Doctor:             visit.Doctor,
		TotalBiaya:         visit.TotalBiaya,
	}
}
