package page

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported panel languages, the first one is the fallback.
var Supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(Supported)

// caption keys
const (
	keyRadius    = "Radius"
	keyLatitude  = "Latitude"
	keyLongitude = "Longitude"
	keyMeters    = "meters"
	keyLoading   = "Loading 3D viewer..."
)

var translations = map[string]map[language.Tag]string{
	keyRadius:    {language.Spanish: "Radio", language.English: "Radius"},
	keyLatitude:  {language.Spanish: "Latitud", language.English: "Latitude"},
	keyLongitude: {language.Spanish: "Longitud", language.English: "Longitude"},
	keyMeters:    {language.Spanish: "metros", language.English: "meters"},
	keyLoading:   {language.Spanish: "Cargando visor 3D...", language.English: "Loading 3D viewer..."},
}

func init() {
	for key, byLang := range translations {
		for tag, text := range byLang {
			if err := message.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
}

// Captions are the fixed panel texts next to the labels.
type Captions struct {
	Radius    string
	Latitude  string
	Longitude string
	Meters    string
	Loading   string
}

func CaptionsFor(tag language.Tag) Captions {
	p := message.NewPrinter(tag)
	return Captions{
		Radius:    p.Sprintf(keyRadius),
		Latitude:  p.Sprintf(keyLatitude),
		Longitude: p.Sprintf(keyLongitude),
		Meters:    p.Sprintf(keyMeters),
		Loading:   p.Sprintf(keyLoading),
	}
}

// MatchLanguage picks a supported language from an Accept-Language header
// or language tag. It returns fallback when nothing matches.
func MatchLanguage(accept string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}
