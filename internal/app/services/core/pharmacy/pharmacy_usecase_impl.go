package pharmacy

import (
	"context"
	"errors"
	"simrs-service/internal/app/models"
	"simrs-service/internal/app/services/core/catalog"
	"simrs-service/internal/app/services/core/visits"
	"simrs-service/internal/app/services/shared/alerts"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type PharmacyUsecaseImpl struct {
	Log               *zap.Logger
	VisitRepository   visits.VisitRepository
	CatalogRepository catalog.CatalogRepository
	AlertPublisher    alerts.StockAlertPublisher
}

func NewPharmacyUsecase(logger *zap.Logger, visitRepository visits.VisitRepository, catalogRepository catalog.CatalogRepository, alertPublisher alerts.StockAlertPublisher) PharmacyUsecase {
	return &PharmacyUsecaseImpl{
		Log:               logger,
		VisitRepository:   visitRepository,
		CatalogRepository: catalogRepository,
		AlertPublisher:    alertPublisher,
	}
}

// DispenseVisit moves the dispensation to done, then reconciles drug stock
// line by line. The status transition is committed before any stock work and
// no stock failure rolls it back: a wrong counter is an inventory problem to
// fix by hand, not a reason to hold medication back. Every line's outcome
// lands in the reconciliation report; reports with failures are raised as
// operational alerts.
func (uc *PharmacyUsecaseImpl) DispenseVisit(ctx context.Context, visitID, actorName string) (*responses.DispenseVisit, error) {
	visit, err := uc.VisitRepository.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil)
	}
	if visit.Status != models.VisitDone {
		return nil, exceptions.ErrVisitNotDone(nil)
	}
	if visit.DispensationStatus == models.DispensationDone {
		return nil, exceptions.ErrVisitAlreadyDispensed(nil)
	}
	if len(visit.Prescriptions) == 0 {
		return nil, exceptions.ErrDispenseNoPrescription(nil)
	}

	dispensedAt := time.Now()
	if err := uc.VisitRepository.UpdateDispensation(ctx, visitID, actorName, dispensedAt); err != nil {
		return nil, err
	}
	visit.DispensationStatus = models.DispensationDone
	visit.DispensedBy = actorName
	visit.DispensationTime = &dispensedAt

	report := uc.reconcileStock(ctx, visit)
	if report.FailureCount() > 0 {
		if err := uc.AlertPublisher.PublishReconciliationReport(ctx, report); err != nil {
			uc.Log.Error("failed to raise stock reconciliation alert",
				zap.String("visit_id", visitID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("visit dispensed",
		zap.String("visit_id", visitID),
		zap.Int("prescriptions", len(visit.Prescriptions)),
		zap.Int("stock_failures", report.FailureCount()),
	)
	return &responses.DispenseVisit{Visit: visit, Report: report}, nil
}

func (uc *PharmacyUsecaseImpl) reconcileStock(ctx context.Context, visit *models.Visit) *models.ReconciliationReport {
	report := &models.ReconciliationReport{
		VisitID:    visit.ID,
		Items:      make([]models.ReconciliationItem, 0, len(visit.Prescriptions)),
		ReportedAt: time.Now(),
	}

	for _, prescription := range visit.Prescriptions {
		item := models.ReconciliationItem{
			DrugID:   prescription.DrugID,
			Name:     prescription.Name,
			Quantity: prescription.Quantity,
		}

		if prescription.DrugID == "" {
			item.Skipped = true
			item.Reason = "free-text line, no catalog stock to adjust"
			report.Items = append(report.Items, item)
			continue
		}

		err := uc.CatalogRepository.DecrementStock(ctx, prescription.DrugID, prescription.Quantity)
		if err != nil {
			item.Reason = reconciliationReason(err)
			uc.Log.Error("stock decrement failed during dispensation",
				zap.String("visit_id", visit.ID),
				zap.String("drug_id", prescription.DrugID),
				zap.Int("quantity", prescription.Quantity),
				zap.Error(err),
			)
		} else {
			item.Decremented = true
		}
		report.Items = append(report.Items, item)
	}
	return report
}

func reconciliationReason(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.DevMessage
	}
	return err.Error()
}
