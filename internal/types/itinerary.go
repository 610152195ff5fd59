package types

// Place is a stop on an itinerary. Coords is [lat, lon] and is empty when
// geocoding failed for the place.
type Place struct {
	Name   string    `json:"name"`
	Coords []float64 `json:"coords,omitempty"`
}

// HasCoords reports whether the place carries a usable coordinate pair.
func (p Place) HasCoords() bool {
	return len(p.Coords) == 2
}

// TripOptions mirrors the loosely typed options object sent by the frontend.
// Days/Budget/People may arrive as numbers, strings or be absent entirely;
// consumers coerce them with defaults instead of rejecting the request.
type TripOptions struct {
	Days   any `json:"days,omitempty"`
	Budget any `json:"budget,omitempty"`
	People any `json:"people,omitempty"`
}

type ItineraryRequest struct {
	Places       []string `json:"places"`
	UserLocation string   `json:"userLocation,omitempty"`
	Days         any      `json:"days,omitempty"`
	Budget       any      `json:"budget,omitempty"`
	People       any      `json:"people,omitempty"`
	Template     string   `json:"template,omitempty"`
	Format       string   `json:"format,omitempty"`
	ReturnText   bool     `json:"returnText,omitempty"`
}

// Options collects the loose per-trip fields into a TripOptions.
func (r ItineraryRequest) Options() TripOptions {
	return TripOptions{Days: r.Days, Budget: r.Budget, People: r.People}
}

type DownloadRequest struct {
	ItineraryText string  `json:"itineraryText"`
	Places        []Place `json:"places,omitempty"`
	Template      string  `json:"template,omitempty"`
	Format        string  `json:"format,omitempty"`
	Destination   string  `json:"destination,omitempty"`
	Days          any     `json:"days,omitempty"`
	Budget        any     `json:"budget,omitempty"`
	People        any     `json:"people,omitempty"`
}

// AdventurePayload is the summary forwarded to the companion Node server
// after an itinerary has been generated.
type AdventurePayload struct {
	Destination string      `json:"destination"`
	Places      []Place     `json:"places"`
	Itinerary   TextPayload `json:"itinerary"`
	Options     TripOptions `json:"options"`
}

type TextPayload struct {
	Text string `json:"text"`
}

// RenderedDocument is the downloadable result of the rendering chain.
// The tier that produced it is intentionally not recorded here.
type RenderedDocument struct {
	Data     []byte
	Filename string
	MIMEType string
}
