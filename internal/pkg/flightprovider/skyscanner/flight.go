package skyscanner

type AutoCompleteResponse struct {
	Status bool         `json:"status"`
	Data   []Suggestion `json:"data"`
}

type Suggestion struct {
	Presentation Presentation `json:"presentation"`
	Navigation   Navigation   `json:"navigation"`
}

type Presentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

type Navigation struct {
	EntityID             string       `json:"entityId"`
	EntityType           string       `json:"entityType"`
	LocalizedName        string       `json:"localizedName"`
	RelevantFlightParams FlightParams `json:"relevantFlightParams"`
}

type FlightParams struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId"`
	FlightPlaceType string `json:"flightPlaceType"`
	LocalizedName   string `json:"localizedName"`
}

type SearchOneWayResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Itineraries struct {
			Buckets []Bucket `json:"buckets"`
		} `json:"itineraries"`
	} `json:"data"`
}

type Bucket struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Items []Itinerary `json:"items"`
}

type Itinerary struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
	Legs  []Leg  `json:"legs"`
}

type Price struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

type Leg struct {
	ID                string   `json:"id"`
	Origin            Place    `json:"origin"`
	Destination       Place    `json:"destination"`
	DurationInMinutes int      `json:"durationInMinutes"`
	StopCount         int      `json:"stopCount"`
	Departure         string   `json:"departure"`
	Arrival           string   `json:"arrival"`
	Carriers          Carriers `json:"carriers"`
}

type Place struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
	City        string `json:"city"`
}

type Carriers struct {
	Marketing []Carrier `json:"marketing"`
}

type Carrier struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}
