package model

type CalculationRequest struct {
	Profile ProfileInput `json:"profile"`
}

// CompareRequest asks for two calculations and the fields that differ between them.
type CompareRequest struct {
	Base    ProfileInput `json:"base"`
	Variant ProfileInput `json:"variant"`
}
