package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/metrics"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
)

// Session is one websocket client streaming the progress of a GRASP run.
type Session struct {
	io   sync.Mutex
	conn net.Conn

	// maxMessageBytes caps the request message, summed over its fragments. 0 = no cap.
	maxMessageBytes int64

	id  uint
	hub *Hub
}

// readMessage reads one client data message frame by frame, answering control frames on the
// way. A frame that would push the message past maxMessageBytes is rejected from its header,
// before its payload is read.
func (s *Session) readMessage() ([]byte, error) {
	controlHandler := wsutil.ControlFrameHandler(s.conn, ws.StateServerSide)

	var msg []byte
	for {
		h, err := ws.ReadHeader(s.conn)
		if err != nil {
			return nil, err
		}
		if h.OpCode.IsControl() {
			if err := controlHandler(h, io.LimitReader(s.conn, h.Length)); err != nil {
				return nil, err
			}
			continue
		}
		if s.maxMessageBytes > 0 && int64(len(msg))+h.Length > s.maxMessageBytes {
			return nil, util.WrapErrorf(nil, util.ErrTooLarge, "body must not be larger than %d bytes", s.maxMessageBytes)
		}

		payload := make([]byte, h.Length)
		if _, err := io.ReadFull(s.conn, payload); err != nil {
			return nil, err
		}
		if h.Masked {
			ws.Cipher(payload, h.Mask, 0)
		}
		msg = append(msg, payload...)
		if h.Fin {
			return msg, nil
		}
	}
}

func (s *Session) readRequest() (*graspRequest, error) {
	s.io.Lock()
	defer s.io.Unlock()

	msg, err := s.readMessage()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()

	req := &graspRequest{}
	if err := dec.Decode(req); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "body contains badly-formed JSON: %v", err)
	}
	return req, nil
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

func (s *Session) writeError(err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = util.MessageInternalServerError
	}
	return s.write(envelope{"type": "error", "error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}})
}

const (
	CLOSE_LINGER      = 500 * time.Millisecond
	CLOSE_DRAIN_BYTES = 1 << 20
)

// close sends a close frame, then drains what the client still has in flight for a short while.
// Closing with unread input makes the kernel reset the connection, and the client may lose the
// frames written just before.
func (s *Session) close() error {
	s.io.Lock()
	defer s.io.Unlock()

	_ = ws.WriteFrame(s.conn, ws.NewCloseFrame(ws.NewCloseFrameBody(ws.StatusNormalClosure, "")))
	if cw, ok := s.conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}
	_ = s.conn.SetReadDeadline(time.Now().Add(CLOSE_LINGER))
	_, _ = io.Copy(io.Discard, io.LimitReader(s.conn, CLOSE_DRAIN_BYTES))
	return s.conn.Close()
}

/*
Solve reads one GRASP request from the client, sends an "iteration" message after every
completed iteration and a final "result" (or "error") message. The run is canceled as soon as a
progress message can not be delivered.
*/
func (s *Session) Solve(ctx context.Context, service MaxCutService) error {
	req, err := s.readRequest()
	if err != nil {
		switch statusOf(err) {
		case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
			return s.writeError(err)
		}
		return err
	}

	if err := util.ValidateStruct(req); err != nil {
		return s.writeError(err)
	}

	graph, err := service.BuildGraph(req.Graph.NumVertices, req.Graph.toEdges())
	if err != nil {
		return s.writeError(err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var writeErr error
	cfg := req.Config.toConfig()
	cfg.OnIteration = func(ev grasp.IterationEvent) {
		if writeErr != nil {
			return
		}
		if writeErr = s.write(newProgressMessage(ev)); writeErr != nil {
			cancel()
		}
	}

	res, err := service.Solve(ctx, graph, cfg)
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		return s.writeError(err)
	}

	return s.write(envelope{"type": "result", "data": NewGraspResponse(res)})
}

type Hub struct {
	mu  sync.RWMutex
	seq uint
	ns  map[uint]*Session
}

func NewHub() *Hub {
	return &Hub{
		ns: make(map[uint]*Session),
	}
}

func (h *Hub) Register(conn net.Conn, maxMessageBytes int64) *Session {
	session := &Session{
		hub:             h,
		conn:            conn,
		maxMessageBytes: maxMessageBytes,
	}

	h.mu.Lock()
	session.id = h.seq
	h.ns[session.id] = session
	h.seq++
	h.mu.Unlock()

	metrics.SetWebsocketSessions(h.Count())
	return session
}

// Remove closes the session connection and forgets it.
func (h *Hub) Remove(session *Session) {
	h.mu.Lock()
	if _, ok := h.ns[session.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.ns, session.id)
	h.mu.Unlock()

	metrics.SetWebsocketSessions(h.Count())
	_ = session.close()
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.ns)
}

func (h *Hub) RemoveAll() {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.ns))
	for _, s := range h.ns {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		h.Remove(s)
	}
}
