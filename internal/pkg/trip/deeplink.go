package trip

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/utils"
)

const DefaultSiteURL = "https://www.skyscanner.net"

// one adult, economy, no alternative airports, one-way
var deepLinkParams = url.Values{
	"adultsv2":            {"1"},
	"cabinclass":          {"economy"},
	"childrenv2":          {""},
	"inboundaltsenabled":  {"false"},
	"outboundaltsenabled": {"false"},
	"preferdirects":       {"false"},
	"rtn":                 {"0"},
}

// DeepLink builds the booking page URL of a one-way search, e.g.
// https://www.skyscanner.net/transport/flights/BUD/CFU/20250911/?adultsv2=1&...
func DeepLink(siteURL string, origin, destination *dto.CityDescriptor, date string) string {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}

	return fmt.Sprintf("%s/transport/flights/%s/%s/%s/?%s",
		strings.TrimRight(siteURL, "/"),
		url.PathEscape(origin.SkyID),
		url.PathEscape(destination.SkyID),
		utils.CompactDate(date),
		deepLinkParams.Encode())
}
