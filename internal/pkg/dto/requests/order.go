package requests

type UpsertOrder struct {
	Tests []OrderTest `json:"tests" validate:"required,min=1,dive"`
}

type OrderTest struct {
	Code     string `json:"code" validate:"required"`
	Group    string `json:"group" validate:"required"`
	BodySide string `json:"bodySide,omitempty" validate:"omitempty,oneof=left right both"`
}
