// Package bridge exposes the controller to browser based UIs over a
// websocket connection.
//
// Every connection gets its own controller. The server sends the initial
// frame right after the connection is established and then answers each
// request with exactly one response.
package bridge

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/controller"
)

const writeTimeout = 5 * time.Second

// Handler upgrades HTTP requests to websocket sessions.
type Handler struct {
	points   foiltool.PointSet
	angle    float64
	scale    float64
	upgrader websocket.Upgrader
}

// NewHandler creates a handler that serves the given point set.
func NewHandler(points foiltool.PointSet) *Handler {
	return &Handler{
		points: points,
		angle:  controller.DefaultAngle,
		scale:  controller.DefaultScale,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
	}
}

// WithDefaults sets the initial angle and scale for new sessions.
func (h *Handler) WithDefaults(angle, scale float64) *Handler {
	h.angle = angle
	h.scale = scale
	return h
}

// AllowOrigin replaces the same-origin check of the upgrader.
func (h *Handler) AllowOrigin(check func(r *http.Request) bool) *Handler {
	h.upgrader.CheckOrigin = check
	return h
}

// AllowOrigins accepts connections from pages served by any of the given
// origins, in addition to same-origin requests.
// "*" accepts every origin; "null" matches pages opened from a file.
func (h *Handler) AllowOrigins(origins ...string) *Handler {
	if len(origins) == 0 {
		return h
	}
	return h.AllowOrigin(OriginChecker(origins...))
}

// OriginChecker returns a check that accepts requests without an Origin
// header, same-origin requests and requests from one of the given origins.
func OriginChecker(origins ...string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimSuffix(strings.ToLower(strings.TrimSpace(o)), "/")] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed["*"] {
			return true
		}
		if allowed[strings.ToLower(origin)] {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		logging.Info("Reject websocket connection from origin %q", origin)
		return false
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		logging.Warning("Websocket upgrade from %v failed: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	logging.Info("Session started for %v", r.RemoteAddr)
	s := &session{
		conn: conn,
		ctrl: controller.New(h.points).WithDefaults(h.angle, h.scale),
	}
	s.run()
	logging.Info("Session ended for %v", r.RemoteAddr)
}

type session struct {
	conn *websocket.Conn
	ctrl *controller.Controller
}

func (s *session) run() {
	frame, err := s.ctrl.Render()
	if !s.send(respond(frame, err)) {
		return
	}

	for {
		var req Request
		err := s.conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warning("Read failed: %v", err)
			}
			return
		}

		if !s.send(s.handle(req)) {
			return
		}
	}
}

func (s *session) handle(req Request) Response {
	if req.Type == TypeReset {
		return respond(s.ctrl.Reset())
	}

	e, err := req.Event()
	if err != nil {
		return Response{Error: err.Error()}
	}

	frame, err := s.ctrl.HandleEvent(e)
	if err == nil && frame == nil {
		return Response{Ignored: true}
	}
	return respond(frame, err)
}

func (s *session) send(res Response) bool {
	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err := s.conn.WriteJSON(res)
	if err != nil {
		logging.Warning("Write failed: %v", err)
		return false
	}
	return true
}

func respond(frame *controller.RenderCommand, err error) Response {
	if err != nil {
		return Response{Error: err.Error()}
	}
	return Response{Frame: frame}
}
