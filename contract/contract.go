//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"resto-live/domain"
	"resto-live/domain/event"
)

// EventSink is the delivery end of one connection. Consume must never
// block the caller: fan-out happens under the registry read lock.
type EventSink interface {
	Consume(ctx context.Context, d event.Delivery) error
}

type IRegistry interface {
	AddSession(session domain.Session, sink EventSink)
	RemoveSession(id domain.SessionID)
	Join(id domain.SessionID, rooms ...domain.RoomID) error
	Leave(id domain.SessionID, room domain.RoomID) error
	Rooms(id domain.SessionID) []domain.RoomID
	ForEachMember(room domain.RoomID, fn func(id domain.SessionID, sink EventSink))
}

// IBroker is the single per-process object owning the membership index.
// The gateway, membership manager, router and disconnect handler are all
// methods on it; no ambient global state exists.
type IBroker interface {
	Connect(ctx context.Context, identity domain.Identity, sink EventSink) domain.Session
	JoinRestaurant(id domain.SessionID, restaurantID string) error
	JoinTable(id domain.SessionID, tableID string) error
	Leave(id domain.SessionID, room domain.RoomID) error
	Publish(ctx context.Context, evt event.DomainEvent)
	Disconnect(id domain.SessionID)
}

type Worker interface {
	Run(ctx context.Context) error
}
