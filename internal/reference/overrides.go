package reference

import "strings"

type routeKey struct{ from, to string }

// RouteOverride forces the carrier list of a city pair, in both directions.
type RouteOverride struct {
	From     string
	To       string
	Carriers []string
}

// routeOverrides replace the general eligibility rules for specific pairs.
var routeOverrides = []RouteOverride{
	{From: "RMO", To: "IAS", Carriers: []string{"HiSky"}},
}

func buildOverrides(table []RouteOverride) map[routeKey][]string {
	out := make(map[routeKey][]string, len(table)*2)
	for _, o := range table {
		from, to := strings.ToUpper(o.From), strings.ToUpper(o.To)
		out[routeKey{from, to}] = o.Carriers
		out[routeKey{to, from}] = o.Carriers
	}
	return out
}

// OverrideCarriers returns the forced carriers of a route, if any. Names that
// do not resolve to a roster airline are skipped.
func (c *Catalog) OverrideCarriers(from, to string) ([]Airline, bool) {
	names, ok := c.overrides[routeKey{strings.ToUpper(from), strings.ToUpper(to)}]
	if !ok {
		return nil, false
	}
	out := make([]Airline, 0, len(names))
	for _, n := range names {
		if a, ok := c.Airline(n); ok {
			out = append(out, a)
		}
	}
	return out, len(out) > 0
}
