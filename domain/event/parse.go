package event

import (
	"encoding/json"
	"fmt"

	apperrors "resto-live/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Routing-key views of the inbound payloads. Only the fields the router
// needs are decoded and validated here; everything else passes through
// untouched (schema validation belongs to the originating backend).
type orderCreatedKeys struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
}

type orderStatusUpdatedKeys struct {
	RestaurantID string  `json:"restaurantId" validate:"required"`
	CustomerID   *string `json:"customerId"`
	WaiterID     *string `json:"waiterId"`
}

type kotStatusUpdatedKeys struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
}

type tableStatusChangedKeys struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	TableID      string `json:"tableId" validate:"required"`
}

type notificationSendKeys struct {
	UserID string `json:"userId" validate:"required"`
}

type staffAttendanceKeys struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
}

// Parse decodes the routing keys of a raw domain event. The returned event
// keeps the original payload verbatim for delivery.
func Parse(eventType string, payload json.RawMessage) (DomainEvent, error) {
	switch Type(eventType) {
	case TypeOrderCreated:
		var keys orderCreatedKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return OrderCreated{RestaurantID: keys.RestaurantID, Raw: payload}, nil
	case TypeOrderStatusUpdated:
		var keys orderStatusUpdatedKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return OrderStatusUpdated{
			RestaurantID: keys.RestaurantID,
			CustomerID:   normalize(keys.CustomerID),
			WaiterID:     normalize(keys.WaiterID),
			Raw:          payload,
		}, nil
	case TypeKotStatusUpdated:
		var keys kotStatusUpdatedKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return KotStatusUpdated{RestaurantID: keys.RestaurantID, Raw: payload}, nil
	case TypeTableStatusChanged:
		var keys tableStatusChangedKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return TableStatusChanged{RestaurantID: keys.RestaurantID, TableID: keys.TableID, Raw: payload}, nil
	case TypeNotificationSend:
		var keys notificationSendKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return NotificationSend{UserID: keys.UserID, Raw: payload}, nil
	case TypeStaffClockIn:
		var keys staffAttendanceKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return StaffClockIn{RestaurantID: keys.RestaurantID, Raw: payload}, nil
	case TypeStaffClockOut:
		var keys staffAttendanceKeys
		if err := decode(payload, &keys); err != nil {
			return nil, err
		}
		return StaffClockOut{RestaurantID: keys.RestaurantID, Raw: payload}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownEventType, eventType)
	}
}

func decode(payload json.RawMessage, keys any) error {
	if err := json.Unmarshal(payload, keys); err != nil {
		return fmt.Errorf("decode routing keys: %w", err)
	}
	if err := validate.Struct(keys); err != nil {
		return fmt.Errorf("missing routing keys: %w", err)
	}
	return nil
}

// normalize treats an explicitly empty id the same as an absent one.
func normalize(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
