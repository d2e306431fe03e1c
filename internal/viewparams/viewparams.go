package viewparams

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query string keys
const (
	KeyLat    = "lat"
	KeyLon    = "lon"
	KeyRadius = "radio"
	KeyLabel  = "loc"
)

// Defaults used when a parameter is absent or unparseable (Plaza de Bolívar).
const (
	DefaultLat    = 4.5981
	DefaultLon    = -74.0760
	DefaultRadius = 500.0
	DefaultLabel  = "Bogotá"
)

// ViewParameters are resolved once per page load and passed by value.
type ViewParameters struct {
	Lat    float64 `json:"lat" yaml:"lat"`
	Lon    float64 `json:"lon" yaml:"lon"`
	Radius float64 `json:"radio" yaml:"radio"`
	Label  string  `json:"loc" yaml:"loc"`
}

func Defaults() ViewParameters {
	return ViewParameters{
		Lat:    DefaultLat,
		Lon:    DefaultLon,
		Radius: DefaultRadius,
		Label:  DefaultLabel,
	}
}

// Resolve reads the view parameters from q, using the built-in defaults.
func Resolve(q url.Values) ViewParameters {
	return ResolveWith(q, Defaults())
}

// ResolveWith reads the view parameters from q. Any value that is missing or
// does not parse falls back to the matching field of def. Nothing is reported.
func ResolveWith(q url.Values, def ViewParameters) ViewParameters {
	label := q.Get(KeyLabel)
	if label == "" {
		label = def.Label
	}

	return ViewParameters{
		Lat:    ParseFloatOrDefault(q.Get(KeyLat), def.Lat),
		Lon:    ParseFloatOrDefault(q.Get(KeyLon), def.Lon),
		Radius: ParseFloatOrDefault(q.Get(KeyRadius), def.Radius),
		Label:  label,
	}
}

// ParseFloatOrDefault returns raw as a float, or def when raw is empty, not
// a number, NaN or infinite.
func ParseFloatOrDefault(raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Query encodes p with the same keys Resolve reads.
func (p ViewParameters) Query() url.Values {
	q := url.Values{}
	q.Set(KeyLat, strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set(KeyLon, strconv.FormatFloat(p.Lon, 'f', -1, 64))
	q.Set(KeyRadius, strconv.FormatFloat(p.Radius, 'f', -1, 64))
	q.Set(KeyLabel, p.Label)
	return q
}

// Link builds a shareable viewer URL from base, replacing its query string.
func (p ViewParameters) Link(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}
	u.RawQuery = p.Query().Encode()
	return u.String(), nil
}
