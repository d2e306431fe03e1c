// Command scenedump connects to a running viewer's websocket stream and
// prints each scene message as one JSON line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/curbz/visor3d/internal/viewparams"
)

func main() {
	def := viewparams.Defaults()

	base := flag.String("url", "ws://127.0.0.1:8080/ws", "viewer websocket endpoint")
	lat := flag.Float64("lat", def.Lat, "centre latitude in degrees")
	lon := flag.Float64("lon", def.Lon, "centre longitude in degrees")
	radius := flag.Float64("radio", def.Radius, "circle radius in metres")
	label := flag.String("loc", def.Label, "location label")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	p := viewparams.ViewParameters{Lat: *lat, Lon: *lon, Radius: *radius, Label: *label}
	wsURL, err := streamURL(*base, p)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	n, err := dump(wsURL, os.Stdout)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	log.Debugf("received %d messages", n)
}

// streamURL replaces the query of base with the encoded parameters,
// accepting http(s) addresses as well.
func streamURL(base string, p viewparams.ViewParameters) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("error parsing url %q: %w", base, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.RawQuery = p.Query().Encode()
	return u.String(), nil
}

// dump reads messages until the server closes the stream normally.
func dump(wsURL string, out io.Writer) (int, error) {
	log.Debugf("connecting to %s", wsURL)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return 0, fmt.Errorf("could not connect to %s: %w", wsURL, err)
	}
	defer conn.Close()

	n := 0
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return n, nil
			}
			return n, fmt.Errorf("read error: %w", err)
		}

		var compact json.RawMessage = message
		line, err := json.Marshal(compact)
		if err != nil {
			return n, fmt.Errorf("invalid message: %w", err)
		}
		fmt.Fprintln(out, string(line))
		n++
	}
}
