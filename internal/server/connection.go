package server

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lox/postrainer/internal/trainer"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrSendBufferFull = errors.New("send buffer full")

	errPeerClosed = errors.New("peer closed connection")
)

// Connection is one client's drill session: a websocket plus the controller
// that owns the client's rounds.
type Connection struct {
	id         string
	conn       *websocket.Conn
	ctrl       *trainer.Controller
	clock      quartz.Clock
	tickPeriod time.Duration
	send       chan *Message
	logger     *log.Logger
}

// NewConnection creates a new connection wrapper
func NewConnection(id string, conn *websocket.Conn, ctrl *trainer.Controller, clock quartz.Clock, tickPeriod time.Duration, logger *log.Logger) *Connection {
	return &Connection{
		id:         id,
		conn:       conn,
		ctrl:       ctrl,
		clock:      clock,
		tickPeriod: tickPeriod,
		send:       make(chan *Message, 256),
		logger:     logger.WithPrefix("conn").With("session", id),
	}
}

// Run serves the session until the peer disconnects or ctx is cancelled.
func (c *Connection) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.Close() // Unblocks the read loop
	})
	defer stop()

	c.sendMessage(MessageTypeWelcome, WelcomeData{SessionID: c.id}, "")
	c.pushSnapshot()

	g.Go(func() error { return c.readPump(ctx) })
	g.Go(func() error { return c.writePump(ctx) })
	g.Go(func() error { return c.tickLoop(ctx) })

	err := g.Wait()
	if errors.Is(err, errPeerClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readPump handles incoming messages from the client
func (c *Connection) readPump(ctx context.Context) error {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
				return err
			}
			return errPeerClosed
		}

		if err := c.handleMessage(&msg); err != nil {
			return err
		}
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump(ctx context.Context) error {
	ticker := c.clock.NewTicker(pingPeriod, "conn", "ping")
	defer ticker.Stop()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return err
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}

		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return ctx.Err()
		}
	}
}

// tickLoop drives the controller countdown and pushes a snapshot every tick
func (c *Connection) tickLoop(ctx context.Context) error {
	last := c.clock.Now()
	w := c.clock.TickerFunc(ctx, c.tickPeriod, func() error {
		now := c.clock.Now()
		c.ctrl.Tick(now.Sub(last))
		last = now
		c.pushSnapshot()
		return nil
	}, "conn", "tick")
	return w.Wait()
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) error {
	c.logger.Debug("Received message", "type", msg.Type)

	switch msg.Type {
	case MessageTypeConfigure:
		var data ConfigureData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse configure data", msg.RequestID)
			return nil
		}
		if err := c.ctrl.Configure(data); err != nil {
			c.sendError("invalid_config", err.Error(), msg.RequestID)
			return nil
		}

	case MessageTypeSetTimer:
		var data SetTimerData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse timer data", msg.RequestID)
			return nil
		}
		c.ctrl.SetTimer(data.Seconds)

	case MessageTypeAnswerSeat:
		var data SeatAnswerData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse seat answer", msg.RequestID)
			return nil
		}
		c.sendAnswerResult(c.ctrl.SubmitSeatAnswer(data.Seat), msg.RequestID)

	case MessageTypeAnswerLabel:
		var data LabelAnswerData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse label answer", msg.RequestID)
			return nil
		}
		c.sendAnswerResult(c.ctrl.SubmitLabelAnswer(data.Label), msg.RequestID)

	case MessageTypeAnswerIP:
		var data IPAnswerData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse IP answer", msg.RequestID)
			return nil
		}
		c.sendAnswerResult(c.ctrl.SubmitIPAnswer(data.IP), msg.RequestID)

	default:
		c.sendError("unknown_message", "Unknown message type: "+string(msg.Type), msg.RequestID)
		return nil
	}

	c.pushSnapshot()
	return nil
}

func (c *Connection) sendAnswerResult(advanced bool, requestID string) {
	snap := c.ctrl.Snapshot()
	c.sendMessage(MessageTypeAnswerResult, AnswerResultData{
		Advanced: advanced,
		Outcome:  snap.Outcome.String(),
	}, requestID)
}

func (c *Connection) pushSnapshot() {
	c.sendMessage(MessageTypeSnapshot, SnapshotDataFromTrainer(c.ctrl.Snapshot()), "")
}

func (c *Connection) sendError(code, message, requestID string) {
	c.sendMessage(MessageTypeError, ErrorData{Code: code, Message: message}, requestID)
}

// sendMessage queues a message for the write pump. Messages are dropped when
// the buffer is full; the next snapshot supersedes them.
func (c *Connection) sendMessage(messageType MessageType, data interface{}, requestID string) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		c.logger.Error("Failed to create message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = requestID

	select {
	case c.send <- msg:
	default:
		c.logger.Warn("Connection send buffer full, dropping message", "type", messageType, "error", ErrSendBufferFull)
	}
}
