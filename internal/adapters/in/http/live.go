package http

import (
	"net/http"
	"sync"

	"marketplace/internal/core/application/fleet"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"
)

// FleetSnapshot handles GET /api/v1/fleet/live, the polling fallback of the
// live channel.
func (s *Server) FleetSnapshot(c echo.Context) error {
	locations, err := s.hub.Snapshot(actorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fleet.SnapshotPayload{Couriers: locations})
}

// PostPing handles POST /api/v1/fleet/pings for couriers without a socket.
// Rejected samples are dropped silently, as on the socket.
func (s *Server) PostPing(c echo.Context) error {
	actor := actorFrom(c)
	if actor.Role() != kernel.RoleCourier {
		return errs.NewForbiddenError(actor.String(), "report locations")
	}

	var body fleet.PingInput
	if err := bind(c, &body); err != nil {
		return err
	}

	s.hub.Ingest(actor.ID(), body)
	return c.NoContent(http.StatusAccepted)
}

// FleetLive handles GET /api/v1/fleet/ws. Managers receive frames for their
// scope; couriers stream location frames and go offline when the socket
// closes.
func (s *Server) FleetLive(c echo.Context) error {
	actor := actorFrom(c)

	var serve func(*websocket.Conn)
	switch {
	case actor.Role().IsManager():
		serve = func(ws *websocket.Conn) { s.watch(ws, actor) }
	case actor.Role() == kernel.RoleCourier:
		serve = func(ws *websocket.Conn) { s.report(ws, actor.ID()) }
	default:
		return errs.NewForbiddenError(actor.String(), "open the live channel")
	}

	websocket.Handler(serve).ServeHTTP(c.Response(), c.Request())
	return nil
}

func (s *Server) watch(ws *websocket.Conn, actor kernel.Actor) {
	defer func() {
		_ = ws.Close()
	}()

	conn := &liveConn{ws: ws}
	sub, err := s.hub.Subscribe(actor)
	if err != nil {
		_ = conn.send(fleet.NewErrorFrame(err.Error()))
		return
	}
	defer s.hub.Unsubscribe(sub)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			var raw []byte
			if err := websocket.Message.Receive(ws, &raw); err != nil {
				return
			}
			if err := conn.send(fleet.NewErrorFrame("live viewers cannot send frames")); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case frame, ok := <-sub.Frames():
			if !ok {
				return
			}
			if err := conn.send(frame); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

func (s *Server) report(ws *websocket.Conn, courierID kernel.UUID) {
	defer func() {
		_ = ws.Close()
	}()
	defer s.hub.GoOffline(courierID)

	conn := &liveConn{ws: ws}
	for {
		var raw []byte
		if err := websocket.Message.Receive(ws, &raw); err != nil {
			return
		}

		ping, err := fleet.DecodePing(raw)
		if err != nil {
			if sendErr := conn.send(fleet.NewErrorFrame(err.Error())); sendErr != nil {
				return
			}
			continue
		}
		s.hub.Ingest(courierID, ping)
	}
}

// liveConn serialises writes to one socket.
type liveConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *liveConn) send(frame fleet.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return websocket.JSON.Send(c.ws, frame)
}
