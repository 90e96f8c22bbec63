package renderer

import (
	"dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/game/state"
)

// GameOverCall records one ShowGameOver call
type GameOverCall struct {
	Victory bool
	Score   int
	Moves   int
}

// Script is a Renderer that replays a fixed list of intents and records what
// it was asked to show. Once the intents run out it asks to quit.
type Script struct {
	Intents []input.Intent

	Frames    []state.Snapshot
	Stats     [][3]int
	Messages  []string
	GameOvers []GameOverCall
	Clears    int
	Inited    bool

	next int
}

// NewScript creates a scripted renderer for the given intents
func NewScript(intents ...input.Intent) *Script {
	return &Script{Intents: intents}
}

func (s *Script) Init() { s.Inited = true }

func (s *Script) Clear() { s.Clears++ }

func (s *Script) RenderFrame(g *state.Game) {
	s.Frames = append(s.Frames, g.Snapshot())
}

func (s *Script) UpdateStats(health, moves, score int) {
	s.Stats = append(s.Stats, [3]int{health, moves, score})
}

func (s *Script) ShowMessage(msg string) {
	s.Messages = append(s.Messages, msg)
}

func (s *Script) ShowGameOver(victory bool, score, moves int) {
	s.GameOvers = append(s.GameOvers, GameOverCall{Victory: victory, Score: score, Moves: moves})
}

func (s *Script) GetInput() input.Intent {
	if s.next >= len(s.Intents) {
		return input.Intent{Action: input.ActionQuit}
	}
	intent := s.Intents[s.next]
	s.next++
	return intent
}

func (s *Script) StyleText(text string, style TextStyle) string {
	return text
}
