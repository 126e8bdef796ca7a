package trip

import "github.com/ijalalfrz/trip-flight-planner/internal/app/dto"

// Expand lists every one-way query of a leg: origins outermost, then
// destinations, then dates. Row order in the sheet follows this order.
func Expand(spec dto.TripSpec, leg dto.Leg) []dto.FlightQuery {
	legSpec := spec.Leg(leg)
	if legSpec == nil {
		return []dto.FlightQuery{}
	}

	queries := make([]dto.FlightQuery, 0,
		len(legSpec.Origins)*len(legSpec.Destinations)*len(legSpec.Dates))

	for _, origin := range legSpec.Origins {
		for _, destination := range legSpec.Destinations {
			for _, date := range legSpec.Dates {
				queries = append(queries, dto.FlightQuery{
					Origin:      origin,
					Destination: destination,
					Date:        date,
				})
			}
		}
	}

	return queries
}
