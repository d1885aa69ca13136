package e2e

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"resto-live/auth"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"golang.org/x/net/websocket"
)

type wsFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BrokerAddr == "" {
		s.T().Skip("BROKER_ADDR not set, skipping e2e scenarios")
	}
}

// DialWs opens an authenticated websocket against the running broker,
// printing a colorized header for the step in logs.
func (s *BaseWsSuite) DialWs(t *testing.T, name, userID, role string) *websocket.Conn {
	t.Helper()

	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	token, err := auth.GenerateToken(s.Config.JWTSecret, userID, role, time.Hour)
	s.Require().NoError(err)

	origin := fmt.Sprintf("http://%s", s.Config.BrokerAddr)
	url := fmt.Sprintf("ws://%s/ws?token=%s", s.Config.BrokerAddr, token)
	conn, err := websocket.Dial(url, "", origin)
	s.Require().NoError(err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

// ReadFrame blocks for the next frame or fails the test on timeout.
func (s *BaseWsSuite) ReadFrame(t *testing.T, conn *websocket.Conn, timeout time.Duration) wsFrame {
	t.Helper()
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(timeout)))
	var frame wsFrame
	s.Require().NoError(websocket.JSON.Receive(conn, &frame))
	return frame
}

func (s *BaseWsSuite) WriteFrame(t *testing.T, conn *websocket.Conn, frameType string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)
	s.Require().NoError(websocket.JSON.Send(conn, wsFrame{Type: frameType, Payload: raw}))
}
