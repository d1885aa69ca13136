package event

import (
	"encoding/json"
	"testing"

	apperrors "resto-live/errors"

	"github.com/stretchr/testify/require"
)

func TestParse_OrderCreated(t *testing.T) {
	req := require.New(t)
	payload := json.RawMessage(`{"orderId":"o1","restaurantId":"45","items":["dosa"]}`)

	evt, err := Parse("order.created", payload)

	req.NoError(err)
	created, ok := evt.(OrderCreated)
	req.True(ok)
	req.Equal("45", created.RestaurantID)
	// Business fields ride along untouched.
	req.JSONEq(string(payload), string(evt.Payload()))
}

func TestParse_OrderStatusUpdated_OptionalRecipients(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantCustomer *string
		wantWaiter   *string
	}{
		{"both present", `{"restaurantId":"7","status":"ready","customerId":"c1","waiterId":"w1"}`, ptr("c1"), ptr("w1")},
		{"customer only", `{"restaurantId":"7","status":"ready","customerId":"c1"}`, ptr("c1"), nil},
		{"neither", `{"restaurantId":"7","status":"ready"}`, nil, nil},
		{"empty ids treated as absent", `{"restaurantId":"7","customerId":"","waiterId":""}`, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			evt, err := Parse("order.status_updated", json.RawMessage(tt.payload))
			req.NoError(err)

			updated, ok := evt.(OrderStatusUpdated)
			req.True(ok)
			req.Equal("7", updated.RestaurantID)
			req.Equal(tt.wantCustomer, updated.CustomerID)
			req.Equal(tt.wantWaiter, updated.WaiterID)
		})
	}
}

func TestParse_MissingRoutingKeys(t *testing.T) {
	tests := []struct {
		eventType string
		payload   string
	}{
		{"order.created", `{"orderId":"o1"}`},
		{"order.status_updated", `{"status":"ready"}`},
		{"kot.status_updated", `{"kotId":"k1"}`},
		{"table.status_changed", `{"restaurantId":"45"}`},
		{"notification.send", `{"message":"hi"}`},
		{"staff.clock_in", `{"staffId":"s1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			_, err := Parse(tt.eventType, json.RawMessage(tt.payload))
			require.Error(t, err)
		})
	}
}

func TestParse_UnknownTypeAndGarbage(t *testing.T) {
	req := require.New(t)

	_, err := Parse("order.deleted", json.RawMessage(`{"restaurantId":"45"}`))
	req.ErrorIs(err, apperrors.ErrUnknownEventType)

	_, err = Parse("order.created", json.RawMessage(`not-json`))
	req.Error(err)
}

func TestParse_StaffClockInAndOut(t *testing.T) {
	req := require.New(t)
	payload := json.RawMessage(`{"staffId":"s1","restaurantId":"45"}`)

	in, err := Parse("staff.clock_in", payload)
	req.NoError(err)
	req.Equal(TypeStaffClockIn, in.EventType())

	out, err := Parse("staff.clock_out", payload)
	req.NoError(err)
	req.Equal(TypeStaffClockOut, out.EventType())
}

func ptr(s string) *string { return &s }
