package dto

// OfferResponse describes a priced sub-type of a space.
type OfferResponse struct {
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Period string `json:"period"`
}

// SpaceResponse describes a catalog space type with its offers.
type SpaceResponse struct {
	Type    string          `json:"type"`
	Name    string          `json:"name"`
	Options []OfferResponse `json:"options"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}
