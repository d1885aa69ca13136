// Package event models the domain events flowing through the broker.
//
// Each inbound type is a tagged struct carrying only its routing keys,
// decoded with explicit presence checks; the original payload rides along
// as raw JSON and is delivered unmodified.
package event

import "encoding/json"

type Type string

const (
	TypeOrderCreated       Type = "order.created"
	TypeOrderStatusUpdated Type = "order.status_updated"
	TypeKotStatusUpdated   Type = "kot.status_updated"
	TypeTableStatusChanged Type = "table.status_changed"
	TypeNotificationSend   Type = "notification.send"
	TypeStaffClockIn       Type = "staff.clock_in"
	TypeStaffClockOut      Type = "staff.clock_out"
)

// Outbound message names.
const (
	NameOrderNew        = "order:new"
	NameKotNew          = "kot:new"
	NameOrderUpdate     = "order:update"
	NameKotUpdate       = "kot:update"
	NameTableUpdate     = "table:update"
	NameNotificationNew = "notification:new"
	NameStaffAttendance = "staff:attendance"
)

type DomainEvent interface {
	EventType() Type
	Payload() json.RawMessage
}

// Delivery is one outbound message bound for every member of a room.
type Delivery struct {
	Name    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type OrderCreated struct {
	RestaurantID string
	Raw          json.RawMessage
}

func (e OrderCreated) EventType() Type          { return TypeOrderCreated }
func (e OrderCreated) Payload() json.RawMessage { return e.Raw }

// OrderStatusUpdated routes to the customer and the waiter only when the
// backend included them; the restaurant room is always reached.
type OrderStatusUpdated struct {
	RestaurantID string
	CustomerID   *string
	WaiterID     *string
	Raw          json.RawMessage
}

func (e OrderStatusUpdated) EventType() Type          { return TypeOrderStatusUpdated }
func (e OrderStatusUpdated) Payload() json.RawMessage { return e.Raw }

type KotStatusUpdated struct {
	RestaurantID string
	Raw          json.RawMessage
}

func (e KotStatusUpdated) EventType() Type          { return TypeKotStatusUpdated }
func (e KotStatusUpdated) Payload() json.RawMessage { return e.Raw }

type TableStatusChanged struct {
	RestaurantID string
	TableID      string
	Raw          json.RawMessage
}

func (e TableStatusChanged) EventType() Type          { return TypeTableStatusChanged }
func (e TableStatusChanged) Payload() json.RawMessage { return e.Raw }

type NotificationSend struct {
	UserID string
	Raw    json.RawMessage
}

func (e NotificationSend) EventType() Type          { return TypeNotificationSend }
func (e NotificationSend) Payload() json.RawMessage { return e.Raw }

type StaffClockIn struct {
	RestaurantID string
	Raw          json.RawMessage
}

func (e StaffClockIn) EventType() Type          { return TypeStaffClockIn }
func (e StaffClockIn) Payload() json.RawMessage { return e.Raw }

type StaffClockOut struct {
	RestaurantID string
	Raw          json.RawMessage
}

func (e StaffClockOut) EventType() Type          { return TypeStaffClockOut }
func (e StaffClockOut) Payload() json.RawMessage { return e.Raw }
