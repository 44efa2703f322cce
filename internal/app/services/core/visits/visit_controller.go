package visits

import (
	"context"
	"net/http"
	"simrs-service/internal/app/config"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VisitController struct {
	Log            *zap.Logger
	VisitUsecase   VisitUsecase
	InternalConfig *config.InternalConfig
}

func NewVisitController(logger *zap.Logger, visitUsecase VisitUsecase, internalConfig *config.InternalConfig) *VisitController {
	return &VisitController{
		Log:            logger,
		VisitUsecase:   visitUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *VisitController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func actorName(r *http.Request) string {
	name, _ := r.Context().Value(constvars.ContextKeyActorName).(string)
	return name
}

func lineIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, exceptions.ErrLineItemNotFound(err)
	}
	return index, nil
}

func (ctrl *VisitController) respond(w http.ResponseWriter, message string, result interface{}, err error) {
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *VisitController) CreateVisit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateVisit)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.CreateVisit(ctx, actorName(r), request)
	if err != nil {
		ctrl.respond(w, "", nil, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVisitSuccessMessage, result)
}

func (ctrl *VisitController) GetVisitByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.GetVisitByID(ctx, chi.URLParam(r, "visitID"))
	ctrl.respond(w, constvars.GetVisitSuccessMessage, result, err)
}

func (ctrl *VisitController) AddService(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddService)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.AddService(ctx, chi.URLParam(r, "visitID"), request)
	ctrl.respond(w, constvars.AddServiceSuccessMessage, result, err)
}

func (ctrl *VisitController) UpdateService(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateService)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.UpdateService(ctx, chi.URLParam(r, "visitID"), index, request)
	ctrl.respond(w, constvars.UpdateServiceSuccessMessage, result, err)
}

func (ctrl *VisitController) RemoveService(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.RemoveService(ctx, chi.URLParam(r, "visitID"), index)
	ctrl.respond(w, constvars.RemoveServiceSuccessMessage, result, err)
}

func (ctrl *VisitController) AddPrescription(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddPrescription)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.AddPrescription(ctx, chi.URLParam(r, "visitID"), request)
	ctrl.respond(w, constvars.AddPrescriptionSuccessMessage, result, err)
}

func (ctrl *VisitController) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePrescription)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.UpdatePrescription(ctx, chi.URLParam(r, "visitID"), index, request)
	ctrl.respond(w, constvars.UpdatePrescriptionSuccessMessage, result, err)
}

func (ctrl *VisitController) RemovePrescription(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.RemovePrescription(ctx, chi.URLParam(r, "visitID"), index)
	ctrl.respond(w, constvars.RemovePrescriptionSuccessMessage, result, err)
}

func (ctrl *VisitController) RecordExam(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RecordExam)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.RecordExam(ctx, chi.URLParam(r, "visitID"), actorName(r), request)
	ctrl.respond(w, constvars.RecordExamSuccessMessage, result, err)
}

func (ctrl *VisitController) FinishVisit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.FinishVisit(ctx, chi.URLParam(r, "visitID"))
	ctrl.respond(w, constvars.FinishVisitSuccessMessage, result, err)
}

func (ctrl *VisitController) PayVisit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PayVisit)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.VisitUsecase.PayVisit(ctx, chi.URLParam(r, "visitID"), actorName(r), request)
	ctrl.respond(w, constvars.PayVisitSuccessMessage, result, err)
}

func (ctrl *VisitController) pagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 {
		pageSize = ctrl.InternalConfig.App.QueuePageSizeDefault
	}
	return page, pageSize
}

type queueFetcher func(ctx context.Context, page, pageSize int) ([]responses.QueueEntry, int, error)

func (ctrl *VisitController) serveQueue(w http.ResponseWriter, r *http.Request, fetch queueFetcher) {
	page, pageSize := ctrl.pagination(r)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	entries, total, err := fetch(ctx, page, pageSize)
	if err != nil {
		ctrl.respond(w, "", nil, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetQueueSuccessMessage, pagination, entries)
}

func (ctrl *VisitController) GetCashierQueue(w http.ResponseWriter, r *http.Request) {
	ctrl.serveQueue(w, r, ctrl.VisitUsecase.GetCashierQueue)
}

func (ctrl *VisitController) GetPharmacyQueue(w http.ResponseWriter, r *http.Request) {
	ctrl.serveQueue(w, r, ctrl.VisitUsecase.GetPharmacyQueue)
}

func (ctrl *VisitController) GetLabQueue(w http.ResponseWriter, r *http.Request) {
	ctrl.serveQueue(w, r, ctrl.VisitUsecase.GetLabQueue)
}

func (ctrl *VisitController) GetRadiologyQueue(w http.ResponseWriter, r *http.Request) {
	ctrl.serveQueue(w, r, ctrl.VisitUsecase.GetRadiologyQueue)
}
