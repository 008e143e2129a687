package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

type HubSuite struct {
	suite.Suite
	hub    *Hub
	server *httptest.Server
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubSuite))
}

func (s *HubSuite) SetupTest() {
	s.hub = NewHub(testutil.NopLogger())
	go s.hub.Run()
	s.server = httptest.NewServer(http.HandlerFunc(s.hub.ServeWS))
}

func (s *HubSuite) TearDownTest() {
	s.server.Close()
	s.hub.Close()
}

func (s *HubSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HubSuite) waitForClients(n int) {
	s.Require().Eventually(func() bool {
		return s.hub.ClientCount() == n
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *HubSuite) TestNotifyDeliversEvent() {
	conn := s.dial()
	defer conn.Close()
	s.waitForClients(1)

	s.hub.Notify(context.Background(), model.Event{
		Type:       model.EventRentPaid,
		Round:      4,
		PlayerID:   2,
		PlayerName: "Bob",
		Payload:    model.RentPaidPayload{Property: "Central", Owner: "Alice", Rent: 50},
	})

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, data, err := conn.ReadMessage()
	s.Require().NoError(err)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(data, &got))
	s.Equal("rent_paid", got["type"])
	s.Equal(float64(4), got["round"])
	s.Equal("Bob", got["player_name"])
	s.Equal(map[string]any{"property": "Central", "owner": "Alice", "rent": float64(50)}, got["payload"])
}

func (s *HubSuite) TestEventsArriveInOrder() {
	conn := s.dial()
	defer conn.Close()
	s.waitForClients(1)

	for _, t := range []model.EventType{model.EventRoundStarted, model.EventTurnStarted, model.EventDiceRolled} {
		s.hub.Notify(context.Background(), model.Event{Type: t})
	}

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	for _, want := range []string{"round_started", "turn_started", "dice_rolled"} {
		var got model.Event
		s.Require().NoError(conn.ReadJSON(&got))
		s.Equal(model.EventType(want), got.Type)
	}
}

func (s *HubSuite) TestDisconnectUnregisters() {
	conn := s.dial()
	s.waitForClients(1)

	s.Require().NoError(conn.Close())
	s.waitForClients(0)
}

func (s *HubSuite) TestCloseDisconnectsClients() {
	conn := s.dial()
	defer conn.Close()
	s.waitForClients(1)

	s.hub.Close()
	s.waitForClients(0)

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := conn.ReadMessage()
	s.Error(err)
}
