package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/postrainer/internal/drill"
	"github.com/lox/postrainer/internal/statistics"
	"github.com/lox/postrainer/internal/trainer"
)

const (
	frameInterval = time.Second / 30
	historyHeight = 8
	sidebarWidth  = 28
)

// frameMsg drives the countdown; it carries the frame time.
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the Bubble Tea model for the drill
type Model struct {
	ctrl   *trainer.Controller
	logger *log.Logger

	// UI components
	input   textinput.Model
	timer   progress.Model
	history viewport.Model

	// State
	stats     *statistics.Statistics
	entries   []string
	notice    string
	noticeErr bool
	lastRound int
	lastFrame time.Time
	showHelp  bool
	quitting  bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a drill model around ctrl
func NewModel(ctrl *trainer.Controller, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "seat, position, ip/oop, or :help"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	vp := viewport.New(sidebarWidth, historyHeight)

	return &Model{
		ctrl:      ctrl,
		logger:    logger.WithPrefix("tui"),
		input:     ti,
		timer:     progress.New(progress.WithSolidFill("#04B575"), progress.WithoutPercentage(), progress.WithWidth(40)),
		history:   vp,
		stats:     statistics.New(),
		lastRound: ctrl.Snapshot().Round,
	}
}

// Stats returns the session tallies so far
func (m *Model) Stats() statistics.Counts {
	return m.stats.Counts()
}

// Statistics returns the full session results
func (m *Model) Statistics() *statistics.Statistics {
	return m.stats
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, nextFrame())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.ctrl.Tick(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		m.observe()
		cmds = append(cmds, nextFrame())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timer.Width = max(10, min(60, msg.Width-sidebarWidth-10))
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			if m.handleInput(line) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleInput applies one input line. It reports whether to quit.
func (m *Model) handleInput(line string) bool {
	cmd, err := ParseInput(line)
	if errors.Is(err, ErrEmptyInput) {
		return false
	}
	if err != nil {
		m.setNotice(err.Error(), true)
		return false
	}

	switch cmd.Kind {
	case CommandQuit:
		return true

	case CommandHelp:
		m.showHelp = !m.showHelp

	case CommandAnswer:
		m.submit(cmd.Answer)

	case CommandTimer:
		m.ctrl.SetTimer(cmd.Seconds)
		m.setNotice(fmt.Sprintf("Timer set to %.1fs", m.ctrl.Config().TimerSeconds), false)

	case CommandPlayers, CommandNaming, CommandMode:
		cfg := m.ctrl.Config()
		switch cmd.Kind {
		case CommandPlayers:
			cfg.Players = cmd.Players
		case CommandNaming:
			cfg.Naming = cmd.Value
		case CommandMode:
			cfg.Mode = cmd.Value
		}
		if err := m.ctrl.Configure(cfg); err != nil {
			m.setNotice(err.Error(), true)
			return false
		}
		cfg = m.ctrl.Config()
		m.setNotice(fmt.Sprintf("%d players, naming %s, mode %s", cfg.Players, cfg.Naming, cfg.Mode), false)
		m.lastRound = m.ctrl.Snapshot().Round
	}
	return false
}

func (m *Model) submit(answer drill.Answer) {
	snap := m.ctrl.Snapshot()
	if snap.Question == nil {
		return
	}
	if !drill.Accepts(snap.Question, answer) {
		m.setNotice(fmt.Sprintf("%s questions don't take that answer", snap.Question.Mode()), true)
		return
	}

	elapsed := time.Duration(snap.Config.TimerSeconds*float64(time.Second)) - snap.TimeRemaining
	mode := snap.Question.Mode().String()
	if m.ctrl.Submit(answer) {
		m.notice = ""
		m.stats.Add(statistics.Result{Mode: mode, Outcome: statistics.Correct, Elapsed: elapsed})
	} else {
		m.stats.Add(statistics.Result{Mode: mode, Outcome: statistics.Wrong, Elapsed: elapsed})
		m.addEntry(fmt.Sprintf("#%d %s", snap.Round, ErrorStyle.Render("wrong")))
	}
	m.observe()
}

// observe records round changes driven by the controller. Correct answers
// are tallied in submit, expiries here.
func (m *Model) observe() {
	snap := m.ctrl.Snapshot()
	if snap.Round == m.lastRound {
		return
	}

	switch snap.Outcome {
	case trainer.OutcomeCorrect:
		m.addEntry(fmt.Sprintf("#%d %s", m.lastRound, SuccessStyle.Render("correct")))
	case trainer.OutcomeTimeExpired:
		m.stats.Add(statistics.Result{
			Mode:    snap.Config.Mode,
			Outcome: statistics.Expired,
			Elapsed: time.Duration(snap.Config.TimerSeconds * float64(time.Second)),
		})
		m.addEntry(fmt.Sprintf("#%d %s", m.lastRound, WarningStyle.Render("time")))
	}
	m.lastRound = snap.Round
}

func (m *Model) addEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.history.SetContent(strings.Join(m.entries, "\n"))
	m.history.GotoBottom()
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// View renders the drill
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap),
		"",
		m.renderQuestion(snap),
		"",
		m.renderSeats(snap),
		"",
		m.renderAnswerBar(snap),
		m.timer.ViewAs(snap.TimeRemainingFraction),
		"",
		m.input.View(),
		m.renderNotice(snap),
	)

	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Render(m.renderSidebar())

	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().PaddingRight(2).Render(main), sidebar)
}

func (m *Model) renderHeader(snap trainer.Snapshot) string {
	return HeaderStyle.Render(" Position Trainer ") + " " + InfoStyle.Render(fmt.Sprintf(
		"round %d · %d players · naming %s · %s",
		snap.Round, snap.Config.Players, snap.Config.Naming, snap.Config.Mode))
}

func (m *Model) renderQuestion(snap trainer.Snapshot) string {
	if snap.Question == nil {
		if snap.Outcome == trainer.OutcomeTimeExpired {
			return ErrorStyle.Render("Time's up!")
		}
		return InfoStyle.Render("...")
	}
	return QuestionStyle.Render(QuestionText(snap.Question))
}

// QuestionText renders the prompt for a question
func QuestionText(q drill.Question) string {
	switch q := q.(type) {
	case drill.PosToSeat:
		return fmt.Sprintf("Which seat is %s?", q.Label)
	case drill.SeatToPos:
		return fmt.Sprintf("What position is seat %d?", q.TargetSeat)
	case drill.SeatIP:
		return fmt.Sprintf("%s Is seat %d IP or OOP?", scenarioText(q.Scenario), q.TargetSeat)
	case drill.IPToSeat:
		return fmt.Sprintf("%s Which seat is %s?", scenarioText(q.Scenario), q.Ask)
	default:
		return ""
	}
}

func scenarioText(sc drill.Scenario) string {
	response := "calls"
	if sc.OtherAction == drill.ThreeBet {
		response = "3bets"
	}
	return fmt.Sprintf("Seat %d opens, seat %d %s.", sc.OpenSeat, sc.OtherSeat, response)
}

// askedSeat returns the seat a question points at, or -1
func askedSeat(q drill.Question) int {
	switch q := q.(type) {
	case drill.SeatToPos:
		return q.TargetSeat
	case drill.SeatIP:
		return q.TargetSeat
	default:
		return -1
	}
}

// roleChip returns the dealer/blind marker for a seat. Heads-up the button
// posts the small blind, so only SB and BB are shown.
func roleChip(snap trainer.Snapshot, seat int) string {
	switch seat {
	case snap.Labels.SeatOf(drill.LabelBB):
		return "BB"
	case snap.Labels.SeatOf(drill.LabelSB):
		return "SB"
	}
	if len(snap.Seating.Active) > 2 && seat == snap.Seating.Button {
		return "D"
	}
	return ""
}

func (m *Model) renderSeats(snap trainer.Snapshot) string {
	asked := askedSeat(snap.Question)

	var rows []string
	for seat := range drill.NumSeats {
		if !snap.Active[seat] {
			rows = append(rows, EmptySeatStyle.Render(fmt.Sprintf("  seat %d  -", seat)))
			continue
		}

		marker := "  "
		style := SeatStyle
		if seat == asked {
			marker = "▶ "
			style = AskedSeatStyle
		}
		if snap.Flashing && seat == asked {
			style = ErrorStyle
		}

		row := style.Render(fmt.Sprintf("%sseat %d", marker, seat))
		row += " " + ChipStyle.Render(fmt.Sprintf("%-3s", roleChip(snap, seat)))
		if action := snap.Actions[seat]; action != drill.NoAction {
			row += " " + actionStyle(action).Render(action.String())
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func actionStyle(a drill.Action) lipgloss.Style {
	switch a {
	case drill.OpenRaise, drill.ThreeBet:
		return WarningStyle
	case drill.Call:
		return SuccessStyle
	default:
		return InfoStyle
	}
}

// renderAnswerBar shows the inputs that count for the live question
func (m *Model) renderAnswerBar(snap trainer.Snapshot) string {
	if snap.Question == nil {
		return ""
	}

	switch snap.Question.Mode() {
	case drill.ModeSeatToPos:
		inUse := make(map[string]bool)
		for _, label := range snap.LabelsInUse() {
			inUse[label] = true
		}
		var buttons []string
		for _, label := range snap.Convention.CanonicalOrder() {
			if inUse[label] {
				buttons = append(buttons, ActionsStyle.Render("["+label+"]"))
			} else {
				buttons = append(buttons, InfoStyle.Render("["+label+"]"))
			}
		}
		return strings.Join(buttons, " ")

	case drill.ModeSeatIP:
		return ActionsStyle.Render("[ip]") + " " + ActionsStyle.Render("[oop]")

	default:
		return InfoStyle.Render("answer with a seat number")
	}
}

func (m *Model) renderNotice(snap trainer.Snapshot) string {
	switch {
	case snap.Flashing && snap.Outcome == trainer.OutcomeWrongAnswer:
		return ErrorStyle.Render("✗ wrong, try again")
	case m.notice != "" && m.noticeErr:
		return ErrorStyle.Render(m.notice)
	case m.notice != "":
		return InfoStyle.Render(m.notice)
	}
	return InfoStyle.Render("Enter to submit • :help • Ctrl+C to quit")
}

func (m *Model) renderSidebar() string {
	var content strings.Builder

	counts := m.stats.Counts()
	content.WriteString(HandInfoStyle.Render("Session"))
	content.WriteString("\n")
	content.WriteString(SuccessStyle.Render(fmt.Sprintf("correct %d", counts.Correct)))
	content.WriteString("  ")
	content.WriteString(ErrorStyle.Render(fmt.Sprintf("wrong %d", counts.Wrong)))
	content.WriteString("\n")
	content.WriteString(WarningStyle.Render(fmt.Sprintf("timed out %d", counts.Expired)))
	content.WriteString("\n")
	if counts.Attempts() > 0 {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("accuracy %.0f%%", counts.Accuracy()*100)))
		if mean := m.stats.Total.MeanResponse(); mean > 0 {
			content.WriteString(InfoStyle.Render(fmt.Sprintf(" · avg %.1fs", mean)))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")

	if m.showHelp {
		content.WriteString(InfoStyle.Render(helpText))
		return content.String()
	}

	content.WriteString(m.history.View())
	return content.String()
}

const helpText = `Answers:
  0-9       seat
  UTG, CO   position
  ip / oop  seatIp mode

Settings:
  :players N
  :timer S
  :naming A|B
  :mode posToSeat|seatToPos|
        seatIp|ipToSeat
  :quit`
