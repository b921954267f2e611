package dto

// CollectionsResponse lists the collections exposed by the API.
type CollectionsResponse struct {
	Collections []string `json:"collections" example:"prices,market_data,agents"`
}

// CreatedResponse is returned by POST /api/v1/collections/{collection}.
type CreatedResponse struct {
	ID string `json:"id" example:"66f1c0a4e13b2a0d9c8b4567"` // Identifier assigned to the stored document
}
