package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Visit-related messages
	CreateVisitSuccessMessage        = "visit created successfully"
	GetVisitSuccessMessage           = "get visit successfully"
	AddServiceSuccessMessage         = "service line added successfully"
	UpdateServiceSuccessMessage      = "service line updated successfully"
	RemoveServiceSuccessMessage      = "service line removed successfully"
	AddPrescriptionSuccessMessage    = "prescription line added successfully"
	UpdatePrescriptionSuccessMessage = "prescription line updated successfully"
	RemovePrescriptionSuccessMessage = "prescription line removed successfully"
	RecordExamSuccessMessage         = "examination recorded successfully"
	FinishVisitSuccessMessage        = "visit finished successfully"
	PayVisitSuccessMessage           = "payment recorded successfully"
	DispenseSuccessMessage           = "prescriptions dispensed successfully"

	// Order-related messages
	UpsertOrderSuccessMessage = "order saved successfully"
	GetOrderSuccessMessage    = "get order successfully"

	// Queue-related messages
	GetQueueSuccessMessage = "get queue successfully"

	// Catalog-related messages
	ComputeFareSuccessMessage           = "ambulance fare computed successfully"
	UpsertAmbulanceConfigSuccessMessage = "ambulance configuration saved successfully"
)
