package runtime

import (
	"fmt"
	"sync"

	"resto-live/contract"
	"resto-live/domain"
	apperrors "resto-live/errors"

	"github.com/samber/lo"
)

type Set map[domain.SessionID]struct{}

type member struct {
	session domain.Session
	sink    contract.EventSink
	rooms   map[domain.RoomID]struct{}
}

// Registry owns the only shared mutable state of the broker: the session
// records and the room -> members index. Every mutation and every fan-out
// read goes through its RWMutex, so a publish never observes a
// half-updated member set.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[domain.SessionID]*member
	roomMembers map[domain.RoomID]Set
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[domain.SessionID]*member),
		roomMembers: make(map[domain.RoomID]Set),
	}
}

// AddSession registers a freshly authenticated session and subscribes it
// to its two identity rooms in the same critical section, so no publish
// can ever see the session outside them.
func (r *Registry) AddSession(session domain.Session, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := &member{
		session: session,
		sink:    sink,
		rooms:   make(map[domain.RoomID]struct{}),
	}
	r.sessions[session.ID] = m
	for _, room := range session.Identity.IdentityRooms() {
		r.subscribe(m, room)
	}
}

// Join subscribes a session to additional rooms. Re-joining a room the
// session already holds is a no-op.
func (r *Registry) Join(id domain.SessionID, rooms ...domain.RoomID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.sessions[id]
	if !ok {
		return apperrors.ErrUnknownSession
	}
	for _, room := range rooms {
		r.subscribe(m, room)
	}
	return nil
}

// Leave unsubscribes a session from one explicitly joined room. Identity
// rooms are not leavable: a session is a member of them for its whole
// lifetime. Leaving a room the session never joined is a no-op.
func (r *Registry) Leave(id domain.SessionID, room domain.RoomID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.sessions[id]
	if !ok {
		return apperrors.ErrUnknownSession
	}
	for _, identityRoom := range m.session.Identity.IdentityRooms() {
		if room == identityRoom {
			return fmt.Errorf("%w: cannot leave identity room %s", apperrors.ErrInvalidRoomRequest, room)
		}
	}
	r.unsubscribe(id, m, room)
	return nil
}

// RemoveSession purges a session and all its memberships atomically.
// Once it returns, no subsequent publish can reach the session.
func (r *Registry) RemoveSession(id domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.sessions[id]
	if !ok {
		return
	}
	for room := range m.rooms {
		r.unsubscribe(id, m, room)
	}
	delete(r.sessions, id)
}

// Rooms returns the current membership set of a session.
func (r *Registry) Rooms(id domain.SessionID) []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.sessions[id]
	if !ok {
		return nil
	}
	return lo.Keys(m.rooms)
}

// ForEachMember runs fn for every current member of a room while holding
// the read lock. Callers must not block inside fn; sinks are buffered and
// non-blocking for exactly this reason. A room with no members is a
// silent no-op.
func (r *Registry) ForEachMember(room domain.RoomID, fn func(id domain.SessionID, sink contract.EventSink)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := range r.roomMembers[room] {
		if m, ok := r.sessions[id]; ok {
			fn(id, m.sink)
		}
	}
}

func (r *Registry) subscribe(m *member, room domain.RoomID) {
	m.rooms[room] = struct{}{}
	if _, ok := r.roomMembers[room]; !ok {
		r.roomMembers[room] = make(Set)
	}
	r.roomMembers[room][m.session.ID] = struct{}{}
}

func (r *Registry) unsubscribe(id domain.SessionID, m *member, room domain.RoomID) {
	delete(m.rooms, room)
	if members, ok := r.roomMembers[room]; ok {
		delete(members, id)

		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(r.roomMembers, room)
		}
	}
}
