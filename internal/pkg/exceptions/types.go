package exceptions

import (
	"fmt"
	"simrs-service/internal/pkg/constvars"
)

// Input validation (rejected synchronously, before any write is attempted)
var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrQuantityNotPositive = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientQuantityNotPositive, constvars.ErrDevInvalidInput)
	}
	ErrUnknownCategory = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownCategory, constvars.ErrDevInvalidInput)
	}
	ErrUnknownPaymentMethod = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownPaymentMethod, constvars.ErrDevInvalidInput)
	}
	ErrUnknownOrderKind = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownOrderKind, constvars.ErrDevInvalidInput)
	}
	ErrDistanceNotPositive = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientDistanceNotPositive, constvars.ErrDevInvalidInput)
	}
	ErrCostPerKmNotPositive = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCostPerKmNotPositive, constvars.ErrDevInvalidInput)
	}
	ErrPercentageOutOfRange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPercentageOutOfRange, constvars.ErrDevInvalidInput)
	}
	ErrEmptyTestSelection = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientEmptyTestSelection, constvars.ErrDevInvalidInput)
	}
	ErrRoomClassRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientRoomClassRequired, constvars.ErrDevInvalidInput)
	}
	ErrFreeTextPriceRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientFreeTextPriceRequired, constvars.ErrDevInvalidInput)
	}
	ErrManualLineIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientManualLineIncomplete, constvars.ErrDevInvalidInput)
	}
)

// Not found
var (
	ErrVisitNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientVisitNotFound, constvars.ErrDevVisitNotFound)
	}
	ErrOrderNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientOrderNotFound, constvars.ErrDevOrderNotFound)
	}
	ErrDrugNotFound = func(err error, drugID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDrugNotFound, fmt.Sprintf(constvars.ErrDevCatalogEntryMissing, drugID))
	}
	ErrServiceItemNotFound = func(err error, itemID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientServiceItemNotFound, fmt.Sprintf(constvars.ErrDevCatalogEntryMissing, itemID))
	}
	ErrRoomTariffNotFound = func(err error, class string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRoomTariffNotFound, fmt.Sprintf(constvars.ErrDevCatalogEntryMissing, class))
	}
	ErrAmbulanceConfigNotFound = func(err error, vehicleType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAmbulanceConfigNotFound, fmt.Sprintf(constvars.ErrDevCatalogEntryMissing, vehicleType))
	}
	ErrLineItemNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientLineItemNotFound, constvars.ErrDevInvalidInput)
	}
)

// Precondition failed (illegal state transition, no partial state change)
var (
	ErrVisitAlreadyDone = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitAlreadyDone, constvars.ErrDevPreconditionFailed)
	}
	ErrVisitNotDone = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitNotDone, constvars.ErrDevPreconditionFailed)
	}
	ErrVisitAlreadyPaid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitAlreadyPaid, constvars.ErrDevIllegalStatusTransition)
	}
	ErrVisitAlreadyDispensed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientVisitAlreadyDispensed, constvars.ErrDevIllegalStatusTransition)
	}
	ErrFinishWithoutServices = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientFinishWithoutServices, constvars.ErrDevPreconditionFailed)
	}
	ErrPayZeroTotal = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientPayZeroTotal, constvars.ErrDevPreconditionFailed)
	}
	ErrDispenseNoPrescription = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientDispenseNoPrescription, constvars.ErrDevPreconditionFailed)
	}
	ErrExamAlreadyLocked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientExamAlreadyLocked, constvars.ErrDevPreconditionFailed)
	}
	ErrInsufficientStock = func(err error, drugID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInsufficientStock, fmt.Sprintf(constvars.ErrDevStockDecrementFailed, drugID))
	}
)

// Authorization
var (
	ErrNotAuthorized = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevPreconditionFailed)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, "auth token missing")
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, "auth token invalid or expired")
	}
)

// External write failures
var (
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelData)
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}
)

// Default server
var (
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
