package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s",
	"max":              "must be at most %s",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"billing_category": "must be a known billing category",
	"payment_method":   "must be a known payment method",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients. Every rejected operation names the violated
// precondition or input so the acting department can correct it.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"

	ErrClientVisitNotFound           = "visit not found"
	ErrClientDrugNotFound            = "drug not found in catalog"
	ErrClientServiceItemNotFound     = "service item not found in catalog"
	ErrClientRoomTariffNotFound      = "room tariff not found for the given class"
	ErrClientAmbulanceConfigNotFound = "ambulance vehicle configuration not found"
	ErrClientOrderNotFound           = "order not found for this visit"
	ErrClientLineItemNotFound        = "line item not found on this visit"

	ErrClientVisitAlreadyDone       = "visit is already finished, line items can no longer be edited"
	ErrClientVisitNotDone           = "visit is not finished yet"
	ErrClientVisitAlreadyPaid       = "visit is already paid"
	ErrClientVisitAlreadyDispensed  = "prescriptions for this visit are already dispensed"
	ErrClientFinishWithoutServices  = "cannot finish a visit with no billed services"
	ErrClientPayZeroTotal           = "cannot take payment for a visit with a zero total"
	ErrClientDispenseNoPrescription = "cannot dispense a visit that has no prescriptions"

	ErrClientQuantityNotPositive   = "quantity must be at least 1"
	ErrClientUnknownCategory       = "billing category is not recognized"
	ErrClientDistanceNotPositive   = "trip distance must be greater than zero"
	ErrClientCostPerKmNotPositive  = "cost per km must be greater than zero"
	ErrClientPercentageOutOfRange  = "cost allocation percentages must be between 0 and 1"
	ErrClientEmptyTestSelection    = "an order must name at least one test"
	ErrClientInsufficientStock     = "not enough stock for the requested quantity"
	ErrClientRoomClassRequired     = "room lines require an explicit room class and sub category"
	ErrClientExamAlreadyLocked     = "examination record can no longer be amended"
	ErrClientUnknownPaymentMethod  = "payment method is not recognized"
	ErrClientUnknownOrderKind      = "order kind must be lab or radiology"
	ErrClientCatalogPriceMissing   = "catalog entry has no active price"
	ErrClientFreeTextPriceRequired = "free-text prescription lines must carry a price per unit"
	ErrClientManualLineIncomplete  = "manual lines must carry a name and a unit price"
)

// Error messages for developers
const (
	ErrDevInvalidInput     = "invalid input"
	ErrDevCannotParseJSON  = "cannot parse JSON"
	ErrDevValidationFailed = "validation failed"

	ErrDevVisitNotFound       = "visit document not found"
	ErrDevOrderNotFound       = "order document not found"
	ErrDevCatalogEntryMissing = "catalog entry not found: %s"

	ErrDevPreconditionFailed      = "state transition precondition failed"
	ErrDevIllegalStatusTransition = "illegal status transition"

	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document in database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate database documents"

	// Redis
	ErrDevRedisGetData = "failed to get data from redis"
	ErrDevRedisSetData = "failed to set data to redis"
	ErrDevRedisDelData = "failed to delete data from redis"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"

	// Stock reconciliation
	ErrDevStockDecrementFailed = "failed to decrement stock for drug %s"
)
