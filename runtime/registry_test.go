package runtime

import (
	"context"
	"sync"
	"testing"

	"resto-live/contract"
	"resto-live/domain"
	"resto-live/domain/event"
	apperrors "resto-live/errors"

	"github.com/stretchr/testify/require"
)

// captureSink records deliveries so tests can assert on fan-out results.
type captureSink struct {
	mu         sync.Mutex
	deliveries []event.Delivery
}

func (s *captureSink) Consume(_ context.Context, d event.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries = append(s.deliveries, d)
	return nil
}

func (s *captureSink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		names = append(names, d.Name)
	}
	return names
}

func (s *captureSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deliveries)
}

func newTestSession(userID, role string) domain.Session {
	return domain.NewSession(domain.Identity{UserID: userID, Role: role})
}

func TestRegistry_AddSession_AutoJoinsIdentityRooms(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newTestSession("u1", "waiter")

	// When a freshly authenticated session is registered
	registry.AddSession(session, &captureSink{})

	// Then its membership is exactly the two identity rooms
	req.ElementsMatch(
		[]domain.RoomID{"user:u1", "waiter:u1"},
		registry.Rooms(session.ID))
}

func TestRegistry_Join_IsIdempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newTestSession("u1", "owner")
	registry.AddSession(session, &captureSink{})

	// When the same room is joined twice
	req.NoError(registry.Join(session.ID, domain.RestaurantRoom("45"), domain.KitchenRoom("45")))
	req.NoError(registry.Join(session.ID, domain.RestaurantRoom("45"), domain.KitchenRoom("45")))

	// Then membership is the same as after a single join
	req.ElementsMatch(
		[]domain.RoomID{"user:u1", "owner:u1", "restaurant:45", "kitchen:45"},
		registry.Rooms(session.ID))
}

func TestRegistry_Join_UnknownSession(t *testing.T) {
	registry := NewRegistry()
	err := registry.Join("nope", domain.TableRoom("9"))
	require.ErrorIs(t, err, apperrors.ErrUnknownSession)
}

func TestRegistry_Leave(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newTestSession("u1", "waiter")
	registry.AddSession(session, &captureSink{})
	req.NoError(registry.Join(session.ID, domain.TableRoom("9")))

	t.Run("explicit room can be left", func(t *testing.T) {
		req.NoError(registry.Leave(session.ID, domain.TableRoom("9")))
		req.NotContains(registry.Rooms(session.ID), domain.TableRoom("9"))
	})

	t.Run("leaving a room never joined is a no-op", func(t *testing.T) {
		req.NoError(registry.Leave(session.ID, domain.TableRoom("42")))
	})

	t.Run("identity rooms cannot be left", func(t *testing.T) {
		err := registry.Leave(session.ID, domain.UserRoom("u1"))
		req.ErrorIs(err, apperrors.ErrInvalidRoomRequest)

		err = registry.Leave(session.ID, domain.RoleRoom("waiter", "u1"))
		req.ErrorIs(err, apperrors.ErrInvalidRoomRequest)

		req.ElementsMatch(
			[]domain.RoomID{"user:u1", "waiter:u1"},
			registry.Rooms(session.ID))
	})
}

func TestRegistry_RemoveSession_PurgesEveryMembership(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newTestSession("u1", "owner")
	other := newTestSession("u2", "waiter")
	registry.AddSession(session, &captureSink{})
	registry.AddSession(other, &captureSink{})
	req.NoError(registry.Join(session.ID, domain.RestaurantRoom("45"), domain.KitchenRoom("45")))
	req.NoError(registry.Join(other.ID, domain.RestaurantRoom("45")))

	// When the session is removed
	registry.RemoveSession(session.ID)

	// Then it belongs to zero rooms and no dangling membership remains
	req.Nil(registry.Rooms(session.ID))
	members := 0
	registry.ForEachMember(domain.RestaurantRoom("45"), func(id domain.SessionID, _ contract.EventSink) {
		members++
		req.Equal(other.ID, id)
	})
	req.Equal(1, members)

	// And the now-empty kitchen room index entry is gone
	registry.ForEachMember(domain.KitchenRoom("45"), func(domain.SessionID, contract.EventSink) {
		t.Fatal("kitchen room should be empty")
	})

	// Removing twice is harmless
	registry.RemoveSession(session.ID)
}

func TestRegistry_ForEachMember_EmptyRoomIsSilentNoOp(t *testing.T) {
	registry := NewRegistry()
	registry.ForEachMember(domain.TableRoom("9"), func(domain.SessionID, contract.EventSink) {
		t.Fatal("no members expected")
	})
}
