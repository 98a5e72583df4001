package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/postrainer/internal/drill"
	"github.com/lox/postrainer/internal/randutil"
	"github.com/lox/postrainer/internal/trainer"
	"github.com/lox/postrainer/internal/tui"
)

type QuizCmd struct {
	DrillFlags

	Rounds  int  `short:"r" default:"5" help:"Number of rounds to print"`
	NoColor bool `help:"Disable colors"`
}

func (c *QuizCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.DrillFlags)
	if err != nil {
		return err
	}
	if c.NoColor {
		tui.DisableColor()
	}

	settings, err := cfg.TrainerConfig().Normalize()
	if err != nil {
		return err
	}
	mode, err := drill.ParseMode(settings.Mode)
	if err != nil {
		return err
	}
	convention, err := drill.ParseConvention(settings.Naming)
	if err != nil {
		return err
	}

	src := randutil.NewSource(cfg.Drill.Seed)
	for i := range max(c.Rounds, 0) {
		round, err := drill.NewRound(src, mode, convention, settings.Players)
		if err != nil {
			return err
		}
		printRound(os.Stdout, i+1, settings, round)
	}
	return nil
}

func printRound(w io.Writer, n int, settings trainer.Config, round drill.Round) {
	rows := make([][]string, 0, len(round.Seating.Active))
	for _, seat := range round.Seating.Active {
		marker := ""
		if seat == round.Seating.Button {
			marker = "D"
		}
		rows = append(rows, []string{
			strconv.Itoa(seat),
			marker,
			round.Labels[seat],
			round.Actions[seat].String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tui.InfoStyle).
		Headers("SEAT", "", "POSITION", "ACTION").
		Rows(rows...)

	_, _ = fmt.Fprintln(w, tui.HeaderStyle.Render(fmt.Sprintf(" Round %d ", n))+" "+
		tui.InfoStyle.Render(fmt.Sprintf("%d players · naming %s · %s", settings.Players, settings.Naming, settings.Mode)))
	_, _ = fmt.Fprintln(w, t.Render())
	_, _ = fmt.Fprintln(w, tui.QuestionStyle.Render(tui.QuestionText(round.Question)))
	_, _ = fmt.Fprintln(w, tui.SuccessStyle.Render("Answer: "+answerText(round.Question)))
	_, _ = fmt.Fprintln(w)
}

// answerText renders the correct answer of q
func answerText(q drill.Question) string {
	switch q := q.(type) {
	case drill.PosToSeat:
		return fmt.Sprintf("seat %d", q.TargetSeat)
	case drill.SeatToPos:
		return q.CorrectLabel
	case drill.SeatIP:
		if q.IsIP {
			return "IP"
		}
		return "OOP"
	case drill.IPToSeat:
		return fmt.Sprintf("seat %d", q.CorrectSeat)
	default:
		return "?"
	}
}
