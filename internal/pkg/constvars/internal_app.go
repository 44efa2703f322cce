package constvars

type ContextKey string

const (
	ContextKeyRole      ContextKey = "role"
	ContextKeyActorName ContextKey = "actorName"
	ContextKeyRequestID ContextKey = "requestID"
)

// Department roles as supplied by the authentication collaborator. The core
// never computes these, it only consumes them for authorization decisions.
const (
	RoleClinical  = "clinical"
	RoleCashier   = "cashier"
	RolePharmacy  = "pharmacy"
	RoleLab       = "lab"
	RoleRadiology = "radiology"
	RoleAdmin     = "admin"
)

const (
	ResourceVisits  = "visits"
	ResourceOrders  = "orders"
	ResourceQueues  = "queues"
	ResourceCatalog = "catalog"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
