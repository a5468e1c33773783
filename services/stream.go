package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mekbib/bingo-gateway/game"
	"github.com/mekbib/bingo-gateway/utils/logger"

	"github.com/gorilla/websocket"
)

const reconnectDelay = 3 * time.Second

// streamMessage is the wire shape of upstream round events.
type streamMessage struct {
	Type       string  `json:"type"`
	Value      int     `json:"value,omitempty"`
	Phase      string  `json:"phase,omitempty"`
	Count      int     `json:"count,omitempty"`
	CardNumber int     `json:"cardNumber,omitempty"`
	Stake      float64 `json:"stake,omitempty"`
	GameID     string  `json:"gameId,omitempty"`
	Balance    float64 `json:"balance,omitempty"`
}

// parseEvent decodes one upstream message into a session event.
func parseEvent(data []byte) (game.Event, error) {
	var msg streamMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode stream message: %w", err)
	}
	switch msg.Type {
	case "number_called":
		return game.NumberCalled{Value: msg.Value}, nil
	case "phase_changed":
		return game.PhaseChanged{Phase: game.Phase(msg.Phase)}, nil
	case "player_count":
		return game.PlayerCountChanged{Count: msg.Count}, nil
	case "round_assigned":
		return game.RoundAssigned{
			CardNumber: msg.CardNumber,
			Stake:      msg.Stake,
			GameID:     msg.GameID,
		}, nil
	case "balance":
		return game.BalanceChanged{Balance: msg.Balance}, nil
	default:
		return nil, fmt.Errorf("unknown stream message type %q", msg.Type)
	}
}

// Stream keeps a websocket connection to the upstream round feed,
// applies its events to the round service and carries the player's
// claim/leave actions back.
type Stream struct {
	url     string
	session string
	rounds  *RoundService
	send    chan []byte
}

func NewStream(url, session string, rounds *RoundService) *Stream {
	return &Stream{
		url:     url,
		session: session,
		rounds:  rounds,
		send:    make(chan []byte, 16),
	}
}

// Run dials the upstream feed and pumps events until the context is
// cancelled, reconnecting with a flat delay. Round state is torn down
// whenever the connection drops so no stale calls survive.
func (s *Stream) Run(ctx context.Context) {
	for {
		if err := s.connectOnce(ctx); err != nil {
			logger.Errorf("[stream] %v", err)
		}
		s.rounds.Disconnected()

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *Stream) connectOnce(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url+"?session="+s.session, nil)
	if err != nil {
		return fmt.Errorf("dial upstream: %w", err)
	}
	defer conn.Close()
	logger.Infof("[stream] connected to %s", s.url)

	done := make(chan struct{})
	go s.writePump(ctx, conn, done)
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read upstream: %w", err)
		}
		ev, err := parseEvent(data)
		if err != nil {
			logger.Warnf("[stream] dropping message: %v", err)
			continue
		}
		s.rounds.HandleEvent(ev)
	}
}

func (s *Stream) writePump(ctx context.Context, conn *websocket.Conn, done chan struct{}) {
	for {
		select {
		case msg := <-s.send:
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Errorf("[stream] write: %v", err)
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Stream) sendAction(action string) {
	msg, _ := json.Marshal(map[string]string{"action": action})
	select {
	case s.send <- msg:
	default:
		logger.Warnf("[stream] dropping outbound %q, send buffer full", action)
	}
}

// SendClaim submits a bingo claim upstream for adjudication.
func (s *Stream) SendClaim() { s.sendAction("bingo") }

// SendLeave tells the server the player left the round.
func (s *Stream) SendLeave() { s.sendAction("leave") }
