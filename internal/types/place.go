package types

// Suggestion is a nearby attraction returned by the place-details endpoint.
type Suggestion struct {
	Name        string    `json:"name"`
	Coords      []float64 `json:"coords"`
	Description string    `json:"description"`
}

// PlaceDetails is the response for GET /place/{name}.
// Coordinates and Suggestions are always populated, via AI generation or
// the deterministic fallback catalog.
type PlaceDetails struct {
	Coordinates []float64    `json:"coordinates"`
	Suggestions []Suggestion `json:"suggestions"`
}

type ChatRequest struct {
	Message      string `json:"message"`
	Location     string `json:"location,omitempty"`
	UserLocation string `json:"userLocation,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	NodeServer  string `json:"node_server"`
	Environment string `json:"environment"`
}
