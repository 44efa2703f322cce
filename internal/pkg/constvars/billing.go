package constvars

// ServiceCategory is the closed billing taxonomy for visit service lines.
// Any category outside this set is rejected when a line is created.
type ServiceCategory string

const (
	CategoryRoom        ServiceCategory = "room"
	CategoryExamination ServiceCategory = "examination"
	CategoryLaboratory  ServiceCategory = "laboratory"
	CategoryRadiology   ServiceCategory = "radiology"
	CategorySurgery     ServiceCategory = "surgery"
	CategoryDelivery    ServiceCategory = "delivery"
	CategoryConsumable  ServiceCategory = "consumable"
	CategoryAmbulance   ServiceCategory = "ambulance"
	CategoryMisc        ServiceCategory = "misc"
)

// KnownServiceCategories lists all supported billing categories. Useful for validation.
var KnownServiceCategories = []ServiceCategory{
	CategoryRoom,
	CategoryExamination,
	CategoryLaboratory,
	CategoryRadiology,
	CategorySurgery,
	CategoryDelivery,
	CategoryConsumable,
	CategoryAmbulance,
	CategoryMisc,
}

func IsKnownServiceCategory(category string) bool {
	for _, known := range KnownServiceCategories {
		if string(known) == category {
			return true
		}
	}
	return false
}

// Payment methods accepted by the cashier.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodDebit    = "debit"
	PaymentMethodTransfer = "transfer"
	PaymentMethodBPJS     = "bpjs"
)

var KnownPaymentMethods = []string{
	PaymentMethodCash,
	PaymentMethodDebit,
	PaymentMethodTransfer,
	PaymentMethodBPJS,
}
