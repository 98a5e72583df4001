package server

import (
	"encoding/json"
	"time"

	"github.com/lox/postrainer/internal/drill"
	"github.com/lox/postrainer/internal/trainer"
)

// MessageType identifies the payload carried by a Message
type MessageType string

// Client → Server message types
const (
	MessageTypeConfigure   MessageType = "configure"
	MessageTypeSetTimer    MessageType = "set_timer"
	MessageTypeAnswerSeat  MessageType = "answer_seat"
	MessageTypeAnswerLabel MessageType = "answer_label"
	MessageTypeAnswerIP    MessageType = "answer_ip"
)

// Server → Client message types
const (
	MessageTypeWelcome      MessageType = "welcome"
	MessageTypeSnapshot     MessageType = "snapshot"
	MessageTypeAnswerResult MessageType = "answer_result"
	MessageTypeError        MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type ConfigureData = trainer.Config

type SetTimerData struct {
	Seconds float64 `json:"seconds"`
}

type SeatAnswerData struct {
	Seat int `json:"seat"`
}

type LabelAnswerData struct {
	Label string `json:"label"`
}

type IPAnswerData struct {
	IP bool `json:"ip"`
}

// Server → Client Messages

type WelcomeData struct {
	SessionID string `json:"sessionId"`
}

type AnswerResultData struct {
	Advanced bool   `json:"advanced"`
	Outcome  string `json:"outcome"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuestionData is what a client needs to render the question. It never
// carries the correct answer.
type QuestionData struct {
	Mode       string `json:"mode"`
	Label      string `json:"label,omitempty"`
	TargetSeat *int   `json:"targetSeat,omitempty"`
	Ask        string `json:"ask,omitempty"`
}

// SnapshotData is the wire form of a trainer snapshot. Per-seat labels stay
// hidden while a question is live; only the set of labels in use is sent so
// clients can enable the matching buttons.
type SnapshotData struct {
	Round       int            `json:"round"`
	Config      trainer.Config `json:"config"`
	ActiveSeats []int          `json:"activeSeats"`
	Button      int            `json:"button"`
	SmallBlind  int            `json:"smallBlind"`
	BigBlind    int            `json:"bigBlind"`
	Actions     []string       `json:"actions"`
	LabelsInUse []string       `json:"labelsInUse"`
	Question    *QuestionData  `json:"question,omitempty"`

	TimeRemainingMs       int64   `json:"timeRemainingMs"`
	TimeRemainingFraction float64 `json:"timeRemainingFraction"`
	Status                string  `json:"status"`
	Outcome               string  `json:"outcome"`
	Flashing              bool    `json:"flashing"`
}

// SnapshotDataFromTrainer converts a trainer snapshot to its wire form
func SnapshotDataFromTrainer(s trainer.Snapshot) SnapshotData {
	actions := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		actions[i] = a.String()
	}

	return SnapshotData{
		Round:                 s.Round,
		Config:                s.Config,
		ActiveSeats:           s.Seating.Active,
		Button:                s.Seating.Button,
		SmallBlind:            s.Labels.SeatOf(drill.LabelSB),
		BigBlind:              s.Labels.SeatOf(drill.LabelBB),
		Actions:               actions,
		LabelsInUse:           s.LabelsInUse(),
		Question:              questionDataFromDrill(s.Question),
		TimeRemainingMs:       s.TimeRemaining.Milliseconds(),
		TimeRemainingFraction: s.TimeRemainingFraction,
		Status:                s.Status.String(),
		Outcome:               s.Outcome.String(),
		Flashing:              s.Flashing,
	}
}

func questionDataFromDrill(q drill.Question) *QuestionData {
	if q == nil {
		return nil
	}

	data := &QuestionData{Mode: q.Mode().String()}
	switch q := q.(type) {
	case drill.PosToSeat:
		data.Label = q.Label
	case drill.SeatToPos:
		data.TargetSeat = &q.TargetSeat
	case drill.SeatIP:
		data.TargetSeat = &q.TargetSeat
	case drill.IPToSeat:
		data.Ask = q.Ask.String()
	}
	return data
}
