package catalog

import (
	"context"
	"net/http"
	"simrs-service/internal/app/config"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase CatalogUsecase
	InternalConfig *config.InternalConfig
}

func NewCatalogController(logger *zap.Logger, catalogUsecase CatalogUsecase, internalConfig *config.InternalConfig) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CatalogController) PreviewAmbulanceFare(w http.ResponseWriter, r *http.Request) {
	vehicleType := chi.URLParam(r, "vehicleType")
	oneWayKm, err := strconv.ParseFloat(r.URL.Query().Get("oneWayKm"), 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDistanceNotPositive(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.CatalogUsecase.PreviewAmbulanceFare(ctx, vehicleType, oneWayKm)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComputeFareSuccessMessage, result)
}

func (ctrl *CatalogController) UpsertAmbulanceConfig(w http.ResponseWriter, r *http.Request) {
	vehicleType := chi.URLParam(r, "vehicleType")

	request := new(requests.UpsertAmbulanceConfig)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.CatalogUsecase.SaveAmbulanceConfig(ctx, vehicleType, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertAmbulanceConfigSuccessMessage, result)
}
