package viewparams

import "strconv"

// Ids of the optional label elements on the viewer page.
const (
	TitleElement  = "titulo"
	RadiusElement = "lblRadio"
	LatElement    = "lblLat"
	LonElement    = "lblLon"
)

// PinMarker prefixes the location title.
const PinMarker = "📍 "

// TextElement is a page element whose displayed text can be replaced.
type TextElement interface {
	SetText(text string)
}

// ElementLookup finds page elements by id. Missing elements report false.
type ElementLookup interface {
	Element(id string) (TextElement, bool)
}

// Labels is the display text written into the page panel.
type Labels struct {
	Title  string `json:"title"`
	Radius string `json:"radius"`
	Lat    string `json:"lat"`
	Lon    string `json:"lon"`
}

func (p ViewParameters) Labels() Labels {
	return Labels{
		Title:  PinMarker + p.Label,
		Radius: strconv.FormatFloat(p.Radius, 'f', -1, 64),
		Lat:    strconv.FormatFloat(p.Lat, 'f', 4, 64),
		Lon:    strconv.FormatFloat(p.Lon, 'f', 4, 64),
	}
}

// ApplyLabels writes the labels of p into doc. The panel is recognised by
// its title element: without it nothing is written. The remaining elements
// are each written only if present. It reports whether the panel was found.
func ApplyLabels(doc ElementLookup, p ViewParameters) bool {
	if doc == nil {
		return false
	}
	title, ok := doc.Element(TitleElement)
	if !ok || title == nil {
		return false
	}

	labels := p.Labels()
	title.SetText(labels.Title)

	for id, text := range map[string]string{
		RadiusElement: labels.Radius,
		LatElement:    labels.Lat,
		LonElement:    labels.Lon,
	} {
		if el, ok := doc.Element(id); ok && el != nil {
			el.SetText(text)
		}
	}

	return true
}
