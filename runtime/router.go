package runtime

import (
	"context"
	"log/slog"
	"sync"

	"resto-live/contract"
	"resto-live/domain"
	"resto-live/domain/event"
	"resto-live/observability"
)

// route binds one target room to the outbound name the event takes there.
type route struct {
	room domain.RoomID
	name string
}

// Router maps a domain event to its target rooms and broadcasts it to
// their current members. Delivery is best-effort and at-most-once per
// connected member; an empty room is a silent no-op.
//
// Publishes are serialized by the router mutex so that, for any single
// room, members see events in Publish invocation order. No ordering holds
// across rooms.
type Router struct {
	mu         sync.Mutex
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, monitoring *observability.MonitoringManager) *Router {
	return &Router{registry: registry, monitoring: monitoring, log: log}
}

// Publish fans the event out, fire-and-forget. Sinks are pushed while the
// registry read lock is held, so a completed disconnect can never be
// reached by a later publish.
func (r *Router) Publish(ctx context.Context, evt event.DomainEvent) {
	routes := routesFor(evt)
	if len(routes) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var delivered uint64
	for _, rt := range routes {
		d := event.Delivery{Name: rt.name, Payload: evt.Payload()}
		r.registry.ForEachMember(rt.room, func(id domain.SessionID, sink contract.EventSink) {
			if err := sink.Consume(ctx, d); err != nil {
				r.log.Debug("delivery skipped", "session_id", id, "room", rt.room, "err", err)
				return
			}
			delivered++
		})
	}
	r.monitoring.IncrEventsPublished()
	r.monitoring.AddDeliveries(delivered)
}

// routesFor is the routing table. A session subscribed to several target
// rooms receives each distinct outbound message once per room it holds;
// identical (room, name) pairs produced by one event collapse to one.
func routesFor(evt event.DomainEvent) []route {
	var routes []route
	switch e := evt.(type) {
	case event.OrderCreated:
		routes = []route{
			{domain.RestaurantRoom(e.RestaurantID), event.NameOrderNew},
			{domain.KitchenRoom(e.RestaurantID), event.NameKotNew},
		}
	case event.OrderStatusUpdated:
		if e.CustomerID != nil {
			routes = append(routes, route{domain.UserRoom(*e.CustomerID), event.NameOrderUpdate})
		}
		if e.WaiterID != nil {
			routes = append(routes, route{domain.UserRoom(*e.WaiterID), event.NameOrderUpdate})
		}
		routes = append(routes, route{domain.RestaurantRoom(e.RestaurantID), event.NameOrderUpdate})
	case event.KotStatusUpdated:
		routes = []route{
			{domain.RestaurantRoom(e.RestaurantID), event.NameKotUpdate},
			{domain.KitchenRoom(e.RestaurantID), event.NameKotUpdate},
		}
	case event.TableStatusChanged:
		routes = []route{
			{domain.RestaurantRoom(e.RestaurantID), event.NameTableUpdate},
			{domain.TableRoom(e.TableID), event.NameTableUpdate},
		}
	case event.NotificationSend:
		routes = []route{{domain.UserRoom(e.UserID), event.NameNotificationNew}}
	case event.StaffClockIn:
		routes = []route{{domain.RestaurantRoom(e.RestaurantID), event.NameStaffAttendance}}
	case event.StaffClockOut:
		routes = []route{{domain.RestaurantRoom(e.RestaurantID), event.NameStaffAttendance}}
	}
	return dedupe(routes)
}

func dedupe(routes []route) []route {
	seen := make(map[route]struct{}, len(routes))
	out := routes[:0]
	for _, rt := range routes {
		if _, ok := seen[rt]; ok {
			continue
		}
		seen[rt] = struct{}{}
		out = append(out, rt)
	}
	return out
}
