// Package drill implements the round generator and answer grading for the
// table-position trainer.
//
// A round seats between two and ten players around a fixed ten-seat table,
// places the button, labels every active seat (UTG, HJ, CO, BTN, SB, BB, ...),
// synthesizes a preflop action scenario and asks one question in one of four
// modes.
//
// # Deterministic Testing
//
// Every function that needs randomness takes a randutil.Source, so tests can
// pass a seeded PCG or a scripted source:
//
//	src := randutil.New(42)
//	r, err := drill.NewRound(src, drill.ModeSeatIP, drill.ConventionB, 6)
//
// # Architecture
//
// NewRound composes the stages in dependency order:
//   - Allocate: active seats and button
//   - ComputeLabels: pure function of seats, button and naming convention
//   - GenerateActions / GenerateActionsForOpen: preflop scenario
//   - GenerateQuestion: the question and, for IP modes, the matching scenario
//
// Validate grades an Answer against a Question by exhaustive type switch.
package drill
