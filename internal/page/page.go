// Package page models the viewer HTML page: the elements the viewer and the
// label panel write into, and the template that ships the scene to CesiumJS.
package page

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/text/language"

	"github.com/curbz/visor3d/internal/czml"
	"github.com/curbz/visor3d/internal/viewparams"
)

//go:embed templates/index.html.tmpl
var indexTemplate string

var tmpl = template.Must(template.New("index").Parse(indexTemplate))

type Options struct {
	Container     string
	ShowPanel     bool
	Title         string
	CesiumBaseURL string
	IonToken      string
}

type Element struct {
	ID   string
	Text string
}

func (e *Element) SetText(text string) {
	e.Text = text
}

type Document struct {
	opts     Options
	lang     language.Tag
	elements map[string]*Element
}

// New lays out the page. The container element is always present; the
// label elements only when the panel is shown.
func New(opts Options, lang language.Tag) *Document {
	d := &Document{
		opts:     opts,
		lang:     lang,
		elements: make(map[string]*Element),
	}
	if opts.Container != "" {
		d.add(opts.Container)
	}
	if opts.ShowPanel {
		d.add(viewparams.TitleElement)
		d.add(viewparams.RadiusElement)
		d.add(viewparams.LatElement)
		d.add(viewparams.LonElement)
	}
	return d
}

func (d *Document) add(id string) {
	d.elements[id] = &Element{ID: id}
}

func (d *Document) Element(id string) (viewparams.TextElement, bool) {
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *Document) HasElement(id string) bool {
	_, ok := d.elements[id]
	return ok
}

// Text returns the current text of an element, empty if it does not exist.
func (d *Document) Text(id string) string {
	if el, ok := d.elements[id]; ok {
		return el.Text
	}
	return ""
}

func (d *Document) Lang() language.Tag {
	return d.lang
}

type panelData struct {
	Title  string
	Radius string
	Lat    string
	Lon    string
}

type templateData struct {
	Lang          string
	Title         string
	Container     string
	Panel         *panelData
	Captions      Captions
	CesiumBaseURL string
	IonToken      string
	Scene         template.JS
}

// Render writes the page with env embedded for the bootstrap script. Nothing
// is written if env cannot be encoded.
func (d *Document) Render(w io.Writer, env czml.Envelope) error {
	// json.Marshal escapes <, > and & so the result is safe inside <script>
	scene, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("error encoding scene: %w", err)
	}

	data := templateData{
		Lang:          d.lang.String(),
		Title:         d.opts.Title,
		Container:     d.opts.Container,
		Captions:      CaptionsFor(d.lang),
		CesiumBaseURL: d.opts.CesiumBaseURL,
		IonToken:      d.opts.IonToken,
		Scene:         template.JS(scene),
	}
	if d.HasElement(viewparams.TitleElement) {
		data.Panel = &panelData{
			Title:  d.Text(viewparams.TitleElement),
			Radius: d.Text(viewparams.RadiusElement),
			Lat:    d.Text(viewparams.LatElement),
			Lon:    d.Text(viewparams.LonElement),
		}
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("error rendering viewer page: %w", err)
	}
	return nil
}
