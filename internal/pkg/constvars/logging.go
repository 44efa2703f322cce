package constvars

const (
	LoggingRequestIDKey = "request_id"
	LoggingVisitIDKey   = "visit_id"
	LoggingDrugIDKey    = "drug_id"
	LoggingQuantityKey  = "quantity"
	LoggingActorKey     = "actor"
	LoggingRoleKey      = "role"
)
