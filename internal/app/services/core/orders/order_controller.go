package orders

import (
	"context"
	"net/http"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OrderController struct {
	Log            *zap.Logger
	OrderUsecase   OrderUsecase
	InternalConfig *config.InternalConfig
}

func NewOrderController(logger *zap.Logger, orderUsecase OrderUsecase, internalConfig *config.InternalConfig) *OrderController {
	return &OrderController{
		Log:            logger,
		OrderUsecase:   orderUsecase,
		InternalConfig: internalConfig,
	}
}

func orderKindFromPath(r *http.Request) (models.OrderKind, error) {
	kind := chi.URLParam(r, "kind")
	switch kind {
	case "lab":
		return models.OrderKindLab, nil
	case "radiology":
		return models.OrderKindRadiology, nil
	default:
		return "", exceptions.ErrUnknownOrderKind(nil)
	}
}

func (ctrl *OrderController) UpsertOrder(w http.ResponseWriter, r *http.Request) {
	kind, err := orderKindFromPath(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	visitID := chi.URLParam(r, "visitID")

	request := new(requests.UpsertOrder)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	actorName, _ := r.Context().Value(constvars.ContextKeyActorName).(string)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.OrderUsecase.UpsertOrder(ctx, kind, visitID, actorName, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertOrderSuccessMessage, result)
}

func (ctrl *OrderController) GetOrderByVisitID(w http.ResponseWriter, r *http.Request) {
	kind, err := orderKindFromPath(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	visitID := chi.URLParam(r, "visitID")

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.OrderUsecase.GetOrderByVisitID(ctx, kind, visitID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrderSuccessMessage, result)
}
