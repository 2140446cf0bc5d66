package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/session"
)

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.load(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer conn.Close()
	// the server's read and write timeouts outlive the hijack
	conn.NetConn().SetDeadline(time.Time{})

	log := g.log.WithField("session", s.ID())
	log.Debug("websocket connected")

	if err := g.runGameLoop(conn, s, log); err != nil {
		if !websocket.IsCloseError(err,
			websocket.CloseNormalClosure, websocket.CloseGoingAway,
		) {
			log.WithError(err).Warn("websocket closed")
		}
		return
	}
	log.Debug("websocket done")
}

// runGameLoop answers every text message with the board after executing
// its commands. A bad command is reported to the client and the rest of
// the message is dropped.
func (g *GameHandler) runGameLoop(
	conn *websocket.Conn, s *session.Session, log logrus.FieldLogger,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		log.Debug("\t> ", message)

		var reply any
		for _, line := range byPiece(message, "\n") {
			if err := executeCommand(s, line); err != nil {
				reply = wrapError(err)
				break
			}
		}
		if reply == nil {
			reply = NewGameDTO(s.Snapshot())
		}

		if err := conn.WriteJSON(reply); err != nil {
			return err
		}
	}
}
