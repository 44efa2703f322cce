package constvars

const (
	MongoCollectionVisits           = "visits"
	MongoCollectionLabOrders        = "lab_orders"
	MongoCollectionRadiologyOrders  = "radiology_orders"
	MongoCollectionDrugs            = "drugs"
	MongoCollectionServiceItems     = "service_items"
	MongoCollectionRoomTariffs      = "room_tariffs"
	MongoCollectionAmbulanceConfigs = "ambulance_configs"
)
