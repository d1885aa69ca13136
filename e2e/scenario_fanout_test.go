package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/net/websocket"
)

type FanoutSuite struct {
	BaseWsSuite
}

func TestFanoutScenarios(t *testing.T) {
	suite.Run(t, new(FanoutSuite))
}

// A connected owner joins their restaurant and sees both the staff view
// and the kitchen view of a freshly created order.
func (s *FanoutSuite) TestOrderCreatedReachesRestaurantAndKitchen() {
	t := s.T()
	owner := s.DialWs(t, "Owner joins restaurant 45", "owner-1", "owner")

	s.WriteFrame(t, owner, "join:restaurant", map[string]string{"restaurantId": "45"})
	ack := s.ReadFrame(t, owner, 5*time.Second)
	s.Require().Equal("ack", ack.Type)

	relay := s.DialWs(t, "Backend relays order.created", "backend-1", "service")
	s.WriteFrame(t, relay, "order.created", map[string]any{
		"orderId":      "o-100",
		"restaurantId": "45",
		"items":        []string{"paneer tikka"},
	})

	first := s.ReadFrame(t, owner, 5*time.Second)
	second := s.ReadFrame(t, owner, 5*time.Second)
	names := []string{first.Type, second.Type}
	s.Require().ElementsMatch([]string{"order:new", "kot:new"}, names)
}

func (s *FanoutSuite) TestNotificationReachesUserOnly() {
	t := s.T()
	target := s.DialWs(t, "Waiter u1 connects", "u1", "waiter")
	bystander := s.DialWs(t, "Waiter u2 connects", "u2", "waiter")

	// Ack round-trips guarantee both sessions are registered before the
	// notification is relayed.
	s.WriteFrame(t, target, "join:table", map[string]string{"tableId": "sync"})
	s.Require().Equal("ack", s.ReadFrame(t, target, 5*time.Second).Type)
	s.WriteFrame(t, bystander, "join:table", map[string]string{"tableId": "sync"})
	s.Require().Equal("ack", s.ReadFrame(t, bystander, 5*time.Second).Type)

	relay := s.DialWs(t, "Backend relays notification.send", "backend-1", "service")
	s.WriteFrame(t, relay, "notification.send", map[string]string{
		"userId":  "u1",
		"message": "Low stock",
	})

	frame := s.ReadFrame(t, target, 5*time.Second)
	s.Require().Equal("notification:new", frame.Type)

	// The bystander must stay silent: expect the short read to time out.
	s.Require().NoError(bystander.SetReadDeadline(time.Now().Add(500 * time.Millisecond)))
	var stray wsFrame
	s.Require().Error(websocket.JSON.Receive(bystander, &stray))
}
