// Package ws hosts the broker's transport: a JSON-frame WebSocket surface
// for clients and an HTTP ingress for the business backend.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"resto-live/auth"
	"resto-live/contract"
	"resto-live/domain"
	"resto-live/domain/event"
	apperrors "resto-live/errors"
	"resto-live/internal"
	"resto-live/observability"
	"resto-live/sink"

	"github.com/samber/lo"
	"golang.org/x/net/websocket"
)

type identityContextKey struct{}

// Server authenticates inbound connections and bridges them to the broker.
// It owns the transport-level writes; the broker never blocks on I/O.
type Server struct {
	broker          contract.IBroker
	verifier        auth.TokenVerifier
	monitoring      *observability.MonitoringManager
	log             *slog.Logger
	bufferSize      int
	deliveryTimeout time.Duration
	shutdownTimeout time.Duration
	httpServer      *http.Server
}

func NewServer(
	log *slog.Logger,
	config internal.Config,
	broker contract.IBroker,
	verifier auth.TokenVerifier,
	monitoring *observability.MonitoringManager,
) *Server {
	s := &Server{
		broker:          broker,
		verifier:        verifier,
		monitoring:      monitoring,
		log:             log,
		bufferSize:      config.ConnectionBufferSize,
		deliveryTimeout: config.DeliveryTimeout,
		shutdownTimeout: config.ShutdownTimeout,
	}
	s.httpServer = &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the routes; split out so tests can mount it on httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	wsHandler := websocket.Handler(s.handleConn)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// The token is verified before the upgrade: a bad token never
		// creates a session or any partial state.
		identity, err := s.verifier.Verify(tokenFromRequest(r))
		if err != nil {
			s.monitoring.IncrAuthFailures()
			s.log.Warn("websocket unauthorized", "remote", r.RemoteAddr, "err", err)
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
		wsHandler.ServeHTTP(w, r.WithContext(ctx))
	})

	mux.HandleFunc("/events", s.handlePublishHTTP)

	return mux
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// handleConn runs one authenticated connection until the client drops.
// Frames are dispatched synchronously in arrival order; deliveries are
// pumped from the session's sink by a dedicated goroutine.
func (s *Server) handleConn(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	identity, ok := conn.Request().Context().Value(identityContextKey{}).(domain.Identity)
	if !ok {
		// The /ws route always verifies before upgrading.
		s.log.Error("websocket connection without identity")
		return
	}

	ctx := conn.Request().Context()
	snk := sink.NewSink(s.log, s.bufferSize)
	session := s.broker.Connect(ctx, identity, snk)
	defer func() {
		s.broker.Disconnect(session.ID)
		if n := snk.Dropped(); n > 0 {
			s.monitoring.AddDropped(n)
			s.log.Warn("deliveries dropped on slow connection",
				"session_id", session.ID, "dropped", n)
		}
	}()

	p := newPeer(conn, s.deliveryTimeout)
	done := make(chan struct{})
	defer close(done)
	go s.pumpDeliveries(done, snk, p, session.ID)

	table := s.dispatchTable()
	decoder := json.NewDecoder(conn)
	for {
		var frame Frame
		if err := decoder.Decode(&frame); err != nil {
			if !errors.Is(err, io.EOF) {
				s.log.Debug("websocket read ended", "session_id", session.ID, "err", err)
			}
			return
		}

		handler, ok := table[frame.Type]
		if !ok {
			s.monitoring.IncrInvalidRequests()
			s.log.Warn("unsupported frame type ignored",
				"session_id", session.ID, "type", frame.Type)
			_ = p.writeError("INVALID_ARGUMENT", fmt.Sprintf("unsupported frame type %q", frame.Type))
			continue
		}
		handler(ctx, session.ID, p, frame)
	}
}

func (s *Server) pumpDeliveries(done <-chan struct{}, snk *sink.Sink, p *peer, id domain.SessionID) {
	for {
		select {
		case <-done:
			return
		case d := <-snk.Deliveries:
			if err := p.write(Frame{Type: d.Name, Payload: d.Payload}); err != nil {
				s.log.Debug("failed to push delivery", "session_id", id, "err", err)
				return
			}
		}
	}
}

type frameHandler func(ctx context.Context, id domain.SessionID, p *peer, frame Frame)

// dispatchTable maps inbound message-type strings to their handlers.
// Domain event types all relay into Publish.
func (s *Server) dispatchTable() map[string]frameHandler {
	table := map[string]frameHandler{
		"join:restaurant": s.handleJoinRestaurant,
		"join:table":      s.handleJoinTable,
		"leave":           s.handleLeave,
	}
	relayed := []event.Type{
		event.TypeOrderCreated,
		event.TypeOrderStatusUpdated,
		event.TypeKotStatusUpdated,
		event.TypeTableStatusChanged,
		event.TypeNotificationSend,
		event.TypeStaffClockIn,
		event.TypeStaffClockOut,
	}
	for _, eventType := range relayed {
		table[string(eventType)] = s.handleRelay
	}
	return table
}

func (s *Server) handleJoinRestaurant(_ context.Context, id domain.SessionID, p *peer, frame Frame) {
	var payload joinRestaurantPayload
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		s.rejectRoomRequest(id, p, fmt.Errorf("%w: %v", apperrors.ErrInvalidRoomRequest, err))
		return
	}
	if err := s.broker.JoinRestaurant(id, payload.RestaurantID); err != nil {
		s.rejectRoomRequest(id, p, err)
		return
	}
	_ = p.writeAck("join:restaurant", roomNames(
		domain.RestaurantRoom(payload.RestaurantID),
		domain.KitchenRoom(payload.RestaurantID)))
}

func (s *Server) handleJoinTable(_ context.Context, id domain.SessionID, p *peer, frame Frame) {
	var payload joinTablePayload
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		s.rejectRoomRequest(id, p, fmt.Errorf("%w: %v", apperrors.ErrInvalidRoomRequest, err))
		return
	}
	if err := s.broker.JoinTable(id, payload.TableID); err != nil {
		s.rejectRoomRequest(id, p, err)
		return
	}
	_ = p.writeAck("join:table", roomNames(domain.TableRoom(payload.TableID)))
}

func (s *Server) handleLeave(_ context.Context, id domain.SessionID, p *peer, frame Frame) {
	var payload leavePayload
	if err := json.Unmarshal(frame.Payload, &payload); err != nil || payload.Room == "" {
		s.rejectRoomRequest(id, p, fmt.Errorf("%w: missing room", apperrors.ErrInvalidRoomRequest))
		return
	}
	if err := s.broker.Leave(id, domain.RoomID(payload.Room)); err != nil {
		s.rejectRoomRequest(id, p, err)
		return
	}
	_ = p.writeAck("leave", []string{payload.Room})
}

// rejectRoomRequest logs and ignores a malformed join/leave: the session's
// prior membership is unaffected.
func (s *Server) rejectRoomRequest(id domain.SessionID, p *peer, err error) {
	s.monitoring.IncrInvalidRequests()
	s.log.Warn("room request ignored", "session_id", id, "err", err)
	_ = p.writeError("INVALID_ARGUMENT", err.Error())
}

// handleRelay lets a connected client forward a domain event, e.g. the
// dashboard relaying a backend notification.
func (s *Server) handleRelay(ctx context.Context, id domain.SessionID, p *peer, frame Frame) {
	evt, err := event.Parse(frame.Type, frame.Payload)
	if err != nil {
		s.monitoring.IncrInvalidRequests()
		s.log.Warn("malformed event dropped", "session_id", id, "type", frame.Type, "err", err)
		_ = p.writeError("INVALID_ARGUMENT", err.Error())
		return
	}
	s.broker.Publish(ctx, evt)
}

// handlePublishHTTP is the business backend's ingress for domain events.
func (s *Server) handlePublishHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := s.verifier.Verify(tokenFromRequest(r)); err != nil {
		s.monitoring.IncrAuthFailures()
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var request publishRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid event envelope", http.StatusBadRequest)
		return
	}
	evt, err := event.Parse(request.Type, request.Payload)
	if err != nil {
		s.monitoring.IncrInvalidRequests()
		s.log.Warn("malformed event dropped", "type", request.Type, "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.broker.Publish(r.Context(), evt)
	w.WriteHeader(http.StatusAccepted)
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.log.Info("broker listening", "addr", s.httpServer.Addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func roomNames(rooms ...domain.RoomID) []string {
	return lo.Map(rooms, func(room domain.RoomID, _ int) string {
		return string(room)
	})
}
