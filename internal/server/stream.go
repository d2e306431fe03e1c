package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/curbz/visor3d/internal/czml"
	"github.com/curbz/visor3d/internal/viewer"
	"github.com/curbz/visor3d/pkg/util"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Stream message types, sent in this order.
const (
	MessageOptions = "options"
	MessagePacket  = "packet"
	MessageFlight  = "flight"
)

type StreamMessage struct {
	Type        string          `json:"type"`
	Scene       string          `json:"scene"`
	Container   string          `json:"container,omitempty"`
	Options     *viewer.Options `json:"options,omitempty"`
	ShowCredits *bool           `json:"showCredits,omitempty"`
	Packet      *czml.Packet    `json:"packet,omitempty"`
	Flight      *czml.Flight    `json:"flight,omitempty"`
}

// StreamMessages splits an envelope into the websocket message sequence:
// viewer options, one message per CZML packet, then the camera flight.
func StreamMessages(env czml.Envelope) []StreamMessage {
	msgs := make([]StreamMessage, 0, len(env.CZML)+2)

	opts := env.Options
	credits := env.ShowCredits
	msgs = append(msgs, StreamMessage{
		Type:        MessageOptions,
		Scene:       env.ID,
		Container:   env.Container,
		Options:     &opts,
		ShowCredits: &credits,
	})

	for i := range env.CZML {
		msgs = append(msgs, StreamMessage{Type: MessagePacket, Scene: env.ID, Packet: &env.CZML[i]})
	}

	if env.Flight != nil {
		msgs = append(msgs, StreamMessage{Type: MessageFlight, Scene: env.ID, Flight: env.Flight})
	}

	return msgs
}

// stream sends the scene over a websocket and closes it. The client gets no
// completion signal other than the close frame.
//
// Example: ws://localhost:8080/ws?lat=10&lon=-75&radio=1000&loc=Medellín
func (s *Server) stream(c *gin.Context) {
	b, ok := s.buildFor(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade error")
		return
	}
	defer conn.Close()

	logger := s.log.WithField("scene", b.scene.ID())
	msgs := StreamMessages(b.scene.Envelope())
	for _, msg := range msgs {
		if err := util.SendJSON(conn, msg); err != nil {
			logger.WithError(err).Warn("websocket write error")
			return
		}
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second)); err != nil {
		logger.WithError(err).Debug("websocket close error")
	}
	logger.WithFields(log.Fields{"messages": len(msgs)}).Info("scene streamed")
}
