package sheet

import (
	"fmt"
	"strings"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/utils"
)

var Header = []interface{}{"Origin", "Destination", "Date", "Departs", "Arrives", "Price", "Carrier"}

// BuildRows lays out a trip result as sheet rows: the header, the outbound
// flights, then one blank separator row and the inbound flights when there
// are any.
func BuildRows(result dto.TripResult) [][]interface{} {
	rows := make([][]interface{}, 0, len(result.Outbound)+len(result.Inbound)+2)
	rows = append(rows, Header)

	for _, f := range result.Outbound {
		rows = append(rows, flightRow(f))
	}

	if len(result.Inbound) == 0 {
		return rows
	}

	rows = append(rows, []interface{}{})

	for _, f := range result.Inbound {
		rows = append(rows, flightRow(f))
	}

	return rows
}

func flightRow(f dto.FlightResult) []interface{} {
	return []interface{}{
		f.Origin,
		f.Destination,
		hyperlink(f.URL, utils.FormatDisplayDate(f.Date)),
		utils.FormatClock(f.DepartsAt),
		utils.FormatClock(f.ArrivesAt),
		f.Price,
		f.Carrier,
	}
}

func hyperlink(url, label string) string {
	return fmt.Sprintf("=HYPERLINK(%s,%s)", quote(url), quote(label))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
