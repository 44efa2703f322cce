package pharmacy

import (
	"context"
	"net/http"
	"simrs-service/internal/app/config"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PharmacyController struct {
	Log             *zap.Logger
	PharmacyUsecase PharmacyUsecase
	InternalConfig  *config.InternalConfig
}

func NewPharmacyController(logger *zap.Logger, pharmacyUsecase PharmacyUsecase, internalConfig *config.InternalConfig) *PharmacyController {
	return &PharmacyController{
		Log:             logger,
		PharmacyUsecase: pharmacyUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *PharmacyController) DispenseVisit(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, "visitID")
	actorName, _ := r.Context().Value(constvars.ContextKeyActorName).(string)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.PharmacyUsecase.DispenseVisit(ctx, visitID, actorName)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DispenseSuccessMessage, result)
}
