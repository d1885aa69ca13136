package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionID string

// Identity is decoded from a verified token and never changes for the
// lifetime of its session.
type Identity struct {
	UserID string
	Role   string
}

// IdentityRooms are the two rooms every session of this identity is
// auto-subscribed to on connect and cannot leave.
func (i Identity) IdentityRooms() []RoomID {
	return []RoomID{UserRoom(i.UserID), RoleRoom(i.Role, i.UserID)}
}

// Session is the server-side state for one authenticated connection.
// Memberships are owned by the registry, not by the session itself.
type Session struct {
	ID        SessionID
	Identity  Identity
	CreatedAt time.Time
}

func NewSession(identity Identity) Session {
	return Session{
		ID:        SessionID(uuid.NewString()),
		Identity:  identity,
		CreatedAt: time.Now().UTC(),
	}
}
