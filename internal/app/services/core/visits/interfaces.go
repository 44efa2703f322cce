package visits

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
	"time"
)

// VisitRepository persists the visit aggregate. Every update method writes a
// single department-owned field group; there is no whole-document save, so a
// clinical write can never clobber a concurrent cashier or pharmacy write.
type VisitRepository interface {
	CreateVisit(ctx context.Context, visit *models.Visit) (*models.Visit, error)
	FindVisitByID(ctx context.Context, visitID string) (*models.Visit, error)

	UpdateClinicalLines(ctx context.Context, visitID string, services []models.VisitService, prescriptions []models.VisitPrescription, totalBiaya int64, dispensationStatus models.DispensationStatus) error
	UpdateExam(ctx context.Context, visitID string, exam *models.Examination) error
	UpdateStatus(ctx context.Context, visitID string, status models.VisitStatus) error
	UpdatePayment(ctx context.Context, visitID, method, paidBy string, paidAt time.Time) error
	UpdateDispensation(ctx context.Context, visitID, dispensedBy string, dispensedAt time.Time) error

	FindCashierQueue(ctx context.Context, page, pageSize int) ([]models.Visit, int, error)
	FindPharmacyQueue(ctx context.Context, page, pageSize int) ([]models.Visit, int, error)
	FindExamFlagQueue(ctx context.Context, flag string, page, pageSize int) ([]models.Visit, int, error)
}

type VisitUsecase interface {
	CreateVisit(ctx context.Context, actorName string, request *requests.CreateVisit) (*responses.CreateVisit, error)
	GetVisitByID(ctx context.Context, visitID string) (*models.Visit, error)

	AddService(ctx context.Context, visitID string, request *requests.AddService) (*models.Visit, error)
	UpdateService(ctx context.Context, visitID string, index int, request *requests.UpdateService) (*models.Visit, error)
	RemoveService(ctx context.Context, visitID string, index int) (*models.Visit, error)

	AddPrescription(ctx context.Context, visitID string, request *requests.AddPrescription) (*models.Visit, error)
	UpdatePrescription(ctx context.Context, visitID string, index int, request *requests.UpdatePrescription) (*models.Visit, error)
	RemovePrescription(ctx context.Context, visitID string, index int) (*models.Visit, error)

	RecordExam(ctx context.Context, visitID, actorName string, request *requests.RecordExam) (*models.Visit, error)
	FinishVisit(ctx context.Context, visitID string) (*responses.FinishVisit, error)
	PayVisit(ctx context.Context, visitID, actorName string, request *requests.PayVisit) (*models.Visit, error)

	GetCashierQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error)
	GetPharmacyQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error)
	GetLabQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error)
	GetRadiologyQueue(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error)
}
