package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"resto-live/contract"
	"resto-live/domain"
	"resto-live/domain/event"
	apperrors "resto-live/errors"
	"resto-live/observability"
)

// Broker is the single per-process owner of session and membership state.
// It is constructed once and passed by reference to the transport layer.
//
// Room joins are gated on authentication only: any authenticated session
// may join any restaurant's or table's rooms. Known gap, kept on purpose.
type Broker struct {
	registry   contract.IRegistry
	router     *Router
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewBroker(log *slog.Logger, registry contract.IRegistry, monitoring *observability.MonitoringManager) *Broker {
	return &Broker{
		registry:   registry,
		router:     NewRouter(log, registry, monitoring),
		monitoring: monitoring,
		log:        log,
	}
}

// Connect creates the session for an already-verified identity and
// auto-subscribes it to user:{userId} and {role}:{userId}. The gateway
// refuses the connection before ever calling this on a bad token.
func (b *Broker) Connect(_ context.Context, identity domain.Identity, sink contract.EventSink) domain.Session {
	session := domain.NewSession(identity)
	b.registry.AddSession(session, sink)
	b.monitoring.IncrSessions()
	b.log.Info("session connected",
		"session_id", session.ID,
		"user_id", identity.UserID,
		"role", identity.Role)
	return session
}

// JoinRestaurant subscribes the session to both the restaurant room and
// the kitchen room: one request, two distinct audiences.
func (b *Broker) JoinRestaurant(id domain.SessionID, restaurantID string) error {
	if restaurantID == "" {
		return fmt.Errorf("%w: empty restaurantId", apperrors.ErrInvalidRoomRequest)
	}
	return b.registry.Join(id,
		domain.RestaurantRoom(restaurantID),
		domain.KitchenRoom(restaurantID))
}

func (b *Broker) JoinTable(id domain.SessionID, tableID string) error {
	if tableID == "" {
		return fmt.Errorf("%w: empty tableId", apperrors.ErrInvalidRoomRequest)
	}
	return b.registry.Join(id, domain.TableRoom(tableID))
}

// Leave exists for completeness; no current event flow triggers it.
func (b *Broker) Leave(id domain.SessionID, room domain.RoomID) error {
	return b.registry.Leave(id, room)
}

// Publish broadcasts a domain event to every member of its target rooms,
// fire-and-forget.
func (b *Broker) Publish(ctx context.Context, evt event.DomainEvent) {
	b.router.Publish(ctx, evt)
}

// Disconnect purges the session and all its memberships. Atomic relative
// to concurrent publishes: once it returns the session receives nothing.
func (b *Broker) Disconnect(id domain.SessionID) {
	b.registry.RemoveSession(id)
	b.monitoring.DecrSessions()
	b.log.Info("session disconnected", "session_id", id)
}
