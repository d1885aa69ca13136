package runtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"resto-live/domain"
	"resto-live/domain/event"
	apperrors "resto-live/errors"
	"resto-live/observability"

	"github.com/stretchr/testify/require"
)

func newTestBroker() (*Broker, *Registry) {
	log := discardLogger()
	registry := NewRegistry()
	return NewBroker(log, registry, observability.NewMonitoringManager(log, time.Minute)), registry
}

func connect(b *Broker, userID, role string) (domain.Session, *captureSink) {
	capture := &captureSink{}
	session := b.Connect(context.Background(), domain.Identity{UserID: userID, Role: role}, capture)
	return session, capture
}

func TestBroker_Connect_MembershipIsExactlyIdentityRooms(t *testing.T) {
	req := require.New(t)
	broker, registry := newTestBroker()

	session, _ := connect(broker, "u1", "waiter")

	req.Equal(domain.Identity{UserID: "u1", Role: "waiter"}, session.Identity)
	req.ElementsMatch(
		[]domain.RoomID{"user:u1", "waiter:u1"},
		registry.Rooms(session.ID))
}

func TestBroker_JoinRestaurant_SubscribesBothAudiences(t *testing.T) {
	req := require.New(t)
	broker, registry := newTestBroker()
	session, _ := connect(broker, "u1", "owner")

	req.NoError(broker.JoinRestaurant(session.ID, "45"))

	rooms := registry.Rooms(session.ID)
	req.Contains(rooms, domain.RestaurantRoom("45"))
	req.Contains(rooms, domain.KitchenRoom("45"))
}

func TestBroker_Join_RejectsEmptyIDs(t *testing.T) {
	req := require.New(t)
	broker, registry := newTestBroker()
	session, _ := connect(broker, "u1", "owner")

	req.ErrorIs(broker.JoinRestaurant(session.ID, ""), apperrors.ErrInvalidRoomRequest)
	req.ErrorIs(broker.JoinTable(session.ID, ""), apperrors.ErrInvalidRoomRequest)

	// Prior membership is unaffected by a malformed request.
	req.ElementsMatch(
		[]domain.RoomID{"user:u1", "owner:u1"},
		registry.Rooms(session.ID))
}

func TestBroker_Publish_OrderCreatedFanout(t *testing.T) {
	req := require.New(t)
	broker, _ := newTestBroker()
	ctx := context.Background()

	staff, staffSink := connect(broker, "u1", "owner")
	display, displaySink := connect(broker, "u2", "kitchen")
	_, unrelatedSink := connect(broker, "u3", "waiter")

	req.NoError(broker.JoinRestaurant(staff.ID, "45"))
	req.NoError(broker.JoinRestaurant(display.ID, "45"))

	broker.Publish(ctx, event.OrderCreated{
		RestaurantID: "45",
		Raw:          json.RawMessage(`{"orderId":"o1","restaurantId":"45"}`),
	})

	// Members of both rooms get both distinct messages, one per room.
	req.ElementsMatch([]string{"order:new", "kot:new"}, staffSink.Names())
	req.ElementsMatch([]string{"order:new", "kot:new"}, displaySink.Names())
	// Sessions in neither room get nothing.
	req.Zero(unrelatedSink.Len())
}

func TestBroker_Publish_ConditionalRouting(t *testing.T) {
	req := require.New(t)
	broker, _ := newTestBroker()
	ctx := context.Background()
	customerID := "c1"

	_, customerSink := connect(broker, "c1", "customer")
	staff, staffSink := connect(broker, "u1", "owner")
	_, waiterSink := connect(broker, "w1", "waiter")

	req.NoError(broker.JoinRestaurant(staff.ID, "7"))

	broker.Publish(ctx, event.OrderStatusUpdated{
		RestaurantID: "7",
		CustomerID:   &customerID,
		Raw:          json.RawMessage(`{"orderId":"o1","restaurantId":"7","status":"ready","customerId":"c1"}`),
	})

	// No waiterId in the event: only user:c1 and restaurant:7 are reached.
	req.Equal([]string{"order:update"}, customerSink.Names())
	req.Equal([]string{"order:update"}, staffSink.Names())
	req.Zero(waiterSink.Len())
}

func TestBroker_Publish_TableStatusScenario(t *testing.T) {
	req := require.New(t)
	broker, _ := newTestBroker()
	ctx := context.Background()

	a, aSink := connect(broker, "u1", "owner")
	b, bSink := connect(broker, "u2", "waiter")
	_, cSink := connect(broker, "u3", "waiter")

	req.NoError(broker.JoinRestaurant(a.ID, "45"))
	req.NoError(broker.JoinRestaurant(b.ID, "45"))

	payload := json.RawMessage(`{"tableId":"9","restaurantId":"45","status":"occupied"}`)
	broker.Publish(ctx, event.TableStatusChanged{RestaurantID: "45", TableID: "9", Raw: payload})

	req.Equal([]string{"table:update"}, aSink.Names())
	req.JSONEq(string(payload), string(aSink.deliveries[0].Payload))
	req.Equal([]string{"table:update"}, bSink.Names())
	req.Zero(cSink.Len())
}

func TestBroker_Publish_NotificationIgnoresOtherMemberships(t *testing.T) {
	req := require.New(t)
	broker, _ := newTestBroker()
	ctx := context.Background()

	target, targetSink := connect(broker, "u1", "owner")
	other, otherSink := connect(broker, "u2", "waiter")
	req.NoError(broker.JoinRestaurant(target.ID, "45"))
	req.NoError(broker.JoinRestaurant(other.ID, "45"))
	req.NoError(broker.JoinTable(other.ID, "9"))

	broker.Publish(ctx, event.NotificationSend{
		UserID: "u1",
		Raw:    json.RawMessage(`{"userId":"u1","message":"Low stock"}`),
	})

	req.Equal([]string{"notification:new"}, targetSink.Names())
	req.Zero(otherSink.Len())
}

func TestBroker_Disconnect_Completeness(t *testing.T) {
	req := require.New(t)
	broker, registry := newTestBroker()
	ctx := context.Background()

	session, capture := connect(broker, "u1", "waiter")
	req.NoError(broker.JoinRestaurant(session.ID, "45"))
	req.NoError(broker.JoinTable(session.ID, "9"))

	broker.Disconnect(session.ID)

	req.Nil(registry.Rooms(session.ID))

	broker.Publish(ctx, event.OrderCreated{RestaurantID: "45"})
	broker.Publish(ctx, event.TableStatusChanged{RestaurantID: "45", TableID: "9"})
	broker.Publish(ctx, event.NotificationSend{UserID: "u1"})
	req.Zero(capture.Len())
}

func TestBroker_ConcurrentPublishAndDisconnect(t *testing.T) {
	req := require.New(t)
	broker, _ := newTestBroker()
	ctx := context.Background()

	const sessions = 20
	ids := make([]domain.SessionID, 0, sessions)
	for i := 0; i < sessions; i++ {
		session, _ := connect(broker, "u", "waiter")
		req.NoError(broker.JoinRestaurant(session.ID, "45"))
		ids = append(ids, session.ID)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			broker.Publish(ctx, event.KotStatusUpdated{RestaurantID: "45"})
		}
	}()
	go func() {
		defer wg.Done()
		for _, id := range ids {
			broker.Disconnect(id)
		}
	}()
	wg.Wait()

	// Post-condition only: no panics, no dangling members.
	broker.Publish(ctx, event.KotStatusUpdated{RestaurantID: "45"})
}
