package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/postrainer/internal/drill"
)

// ErrEmptyInput is returned for blank input lines
var ErrEmptyInput = errors.New("empty input")

// CommandKind identifies what an input line asks for
type CommandKind int

const (
	CommandAnswer CommandKind = iota
	CommandPlayers
	CommandTimer
	CommandNaming
	CommandMode
	CommandQuit
	CommandHelp
)

// Command is a parsed input line
type Command struct {
	Kind    CommandKind
	Answer  drill.Answer
	Players int
	Seconds float64
	Value   string
}

// ParseInput turns an input line into a command. Answers are a seat number
// (0-9), a position label, or ip/oop. Settings start with a colon:
//
//	:players 6    :timer 7.5    :naming A    :mode seatIp    :help    :quit
func ParseInput(input string) (Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{}, ErrEmptyInput
	}

	if strings.HasPrefix(input, ":") {
		return parseSetting(input[1:])
	}

	switch strings.ToLower(input) {
	case "ip":
		return Command{Kind: CommandAnswer, Answer: drill.IPAnswer(true)}, nil
	case "oop":
		return Command{Kind: CommandAnswer, Answer: drill.IPAnswer(false)}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	if seat, err := strconv.Atoi(input); err == nil {
		if seat < 0 || seat >= drill.NumSeats {
			return Command{}, fmt.Errorf("seat must be 0-%d, got %d", drill.NumSeats-1, seat)
		}
		return Command{Kind: CommandAnswer, Answer: drill.SeatAnswer(seat)}, nil
	}

	label := strings.ToUpper(input)
	if drill.ConventionA.Rank(label) < 0 && drill.ConventionB.Rank(label) < 0 {
		return Command{}, fmt.Errorf("unknown input %q (try a seat, a position, ip or oop)", input)
	}
	return Command{Kind: CommandAnswer, Answer: drill.LabelAnswer(label)}, nil
}

func parseSetting(s string) (Command, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing command after ':'")
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]

	switch name {
	case "q", "quit":
		return Command{Kind: CommandQuit}, nil
	case "h", "help":
		return Command{Kind: CommandHelp}, nil
	}

	if len(args) != 1 {
		return Command{}, fmt.Errorf(":%s takes exactly one argument", name)
	}
	arg := args[0]

	switch name {
	case "players", "p":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("invalid player count %q", arg)
		}
		return Command{Kind: CommandPlayers, Players: n}, nil

	case "timer", "t":
		secs, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return Command{}, fmt.Errorf("invalid timer %q", arg)
		}
		return Command{Kind: CommandTimer, Seconds: secs}, nil

	case "naming", "n":
		c, err := drill.ParseConvention(arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandNaming, Value: c.String()}, nil

	case "mode", "m":
		m, err := drill.ParseMode(arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandMode, Value: m.String()}, nil

	default:
		return Command{}, fmt.Errorf("unknown command :%s", name)
	}
}
