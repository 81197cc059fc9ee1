package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/metrics"
	"github.com/lintang-b-s/navtrace/pkg/navigation"
	"go.uber.org/zap"
)

const (
	ActionNext  = "next"
	ActionPrev  = "prev"
	ActionJump  = "jump"
	ActionFirst = "first"
	ActionLast  = "last"
)

type stepRequest struct {
	Action string `json:"action" validate:"required,oneof=next prev jump first last"`
	Step   int    `json:"step"`
}

// Session is one websocket client stepping through a single traced route.
// the cursor is owned by the session, the result is shared read-only.
type Session struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id     string
	result *engine.Result
	cursor navigation.Cursor
	hub    *Hub
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) readRequest() (*stepRequest, error) {
	s.io.Lock()
	defer s.io.Unlock()

	h, r, err := wsutil.NextReader(s.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(s.conn, ws.StateServerSide)(h, r)
	}

	req := &stepRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

// apply moves the cursor. unknown actions never reach here, they fail validation.
func (s *Session) apply(req *stepRequest) {
	switch req.Action {
	case ActionNext:
		s.cursor = s.cursor.Next()
	case ActionPrev:
		s.cursor = s.cursor.Prev()
	case ActionJump:
		s.cursor = s.cursor.Jump(req.Step)
	case ActionFirst:
		s.cursor = s.cursor.First()
	case ActionLast:
		s.cursor = s.cursor.Last()
	}
}

func (s *Session) currentView() envelope {
	view := navigation.View(s.cursor, s.result.Nodes)
	return envelope{"data": NewStepViewResponse(s.result.ID, view)}
}

// Step reads one request and answers with the step the cursor lands on.
func (s *Session) Step() error {
	req, err := s.readRequest()
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	if err := validateStruct(req); err != nil {
		return s.write(newErrorEnvelope(http.StatusBadRequest, err.Error()))
	}

	s.apply(req)
	return s.write(s.currentView())
}

// Serve sends the first step and then answers requests until the client leaves.
func (s *Session) Serve() error {
	if err := s.write(s.currentView()); err != nil {
		return err
	}
	for {
		if err := s.Step(); err != nil {
			return err
		}
	}
}

func (s *Session) write(x interface{}) error {
	w := wsutil.NewWriter(s.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	s.io.Lock()
	defer s.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// isClosed reports whether err is a normal end of a websocket session.
func isClosed(err error) bool {
	var closed wsutil.ClosedError
	return errors.As(err, &closed) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}

type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		log:      log,
	}
}

func (h *Hub) Register(conn io.ReadWriteCloser, result *engine.Result) *Session {
	session := &Session{
		conn:   conn,
		id:     uuid.NewString(),
		result: result,
		cursor: navigation.NewCursor(result.Trace),
		hub:    h,
	}

	h.mu.Lock()
	h.sessions[session.id] = session
	h.mu.Unlock()
	metrics.StepSessionsActive.Inc()

	return session
}

func (h *Hub) Remove(session *Session) {
	h.mu.Lock()
	if _, ok := h.sessions[session.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.sessions, session.id)
	h.mu.Unlock()

	metrics.StepSessionsActive.Dec()
	_ = session.conn.Close()
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// RemoveAll closes every open session, used on shutdown.
func (h *Hub) RemoveAll() {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		h.Remove(s)
	}
}

// stepper godoc
//
//	@Summary		step through a traced route over a websocket
//	@Description	the server sends step 0, then answers every {"action": "next"|"prev"|"jump"|"first"|"last", "step": k} with the step view the cursor lands on
//	@Tags			trace
//	@Param			id	path	string	true	"trace id"
//	@Success		101
//	@Failure		404	{object}	errorResponse
//	@Router			/trace/{id}/ws [get]
func (api *traceAPI) stepper(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := api.traceService.GetResult(p.ByName("id"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.String("id", res.ID), zap.Error(err))
		return
	}
	// the http server deadlines still apply to the hijacked connection.
	_ = conn.SetDeadline(time.Time{})

	session := api.hub.Register(conn, res)
	api.log.Info("established websocket connection", zap.String("session", session.ID()),
		zap.String("trace", res.ID), zap.String("remote", conn.RemoteAddr().String()),
		zap.String("protocol", hs.Protocol))

	go func() {
		defer api.hub.Remove(session)
		if err := session.Serve(); err != nil && !isClosed(err) {
			api.log.Error("websocket session", zap.String("session", session.ID()), zap.Error(err))
		}
		api.log.Info("websocket session closed", zap.String("session", session.ID()))
	}()
}
