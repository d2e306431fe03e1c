package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curbz/visor3d/internal/geojson"
)

func (s *Server) buildFor(c *gin.Context) (*build, bool) {
	b, err := s.build(c.Request.URL.Query(), c.GetHeader("Accept-Language"))
	if err != nil {
		s.log.WithError(err).Error("building scene")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return b, true
}

// writeJSON encodes v before writing the header. Encoding errors give a 500.
func (s *Server) writeJSON(c *gin.Context, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).Error("encoding response")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// getPage renders the viewer page.
//
// Example: GET /?lat=10&lon=-75&radio=1000&loc=Medellín
func (s *Server) getPage(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := b.doc.Render(&buf, b.scene.Envelope()); err != nil {
		s.log.WithError(err).Error("rendering page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// getParams returns the resolved parameters and the panel texts.
func (s *Server) getParams(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"params": b.params,
		"labels": b.params.Labels(),
	})
}

// getScene returns the envelope the page bootstrap consumes.
func (s *Server) getScene(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}
	s.writeJSON(c, b.scene.Envelope())
}

func (s *Server) getCZML(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}
	s.writeJSON(c, b.scene.Packets())
}

func (s *Server) getGeoJSON(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}

	raw, err := geojson.Export(b.scene.State(), geojson.DefaultSegments).MarshalJSON()
	if err != nil {
		s.log.WithError(err).Error("encoding geojson")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", raw)
}

// getLink returns a shareable viewer URL for the resolved parameters.
func (s *Server) getLink(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}

	base := s.cfg.Server.PublicURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host + "/"
	}

	link, err := b.params.Link(base)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}
