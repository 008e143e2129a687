package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/mcoot/monopoly-go/internal/model"
)

// ErrScriptExhausted is returned when a ScriptedInput queue runs dry
var ErrScriptExhausted = errors.New("scripted input exhausted")

// ScriptedInput answers every prompt from per-prompt queues. It serves as
// both the in-game input provider and the session setup input.
type ScriptedInput struct {
	mu sync.Mutex

	// In-game answers
	TurnActions   []model.TurnAction
	Dice          [][2]int
	Purchases     []bool
	JailActions   []model.JailAction
	PlayerChoices []model.PlayerID
	RoundActions  []model.RoundAction
	DebugActions  []model.DebugAction
	CashDeltas    []int
	Positions     []int

	// Setup answers
	DebugModes   []bool
	UseSaves     []bool
	SaveFiles    []string
	MapFiles     []string
	PlayerCounts []int
	PlayerNames  []string

	// Notices records every message passed to Notice
	Notices []string

	// PurchaseOffers records the squares offered for purchase
	PurchaseOffers []model.Square
}

// NewScriptedInput creates an empty ScriptedInput
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

func pop[T any](queue *[]T) (T, error) {
	var zero T
	if len(*queue) == 0 {
		return zero, ErrScriptExhausted
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v, nil
}

func (s *ScriptedInput) ChooseTurnAction(ctx context.Context, player *model.Player, debug bool) (model.TurnAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.TurnActions)
}

func (s *ScriptedInput) RollDice(ctx context.Context, player *model.Player) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := pop(&s.Dice)
	return d[0], d[1], err
}

func (s *ScriptedInput) ConfirmPurchase(ctx context.Context, player *model.Player, square model.Square) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PurchaseOffers = append(s.PurchaseOffers, square)
	return pop(&s.Purchases)
}

func (s *ScriptedInput) ChooseJailAction(ctx context.Context, player *model.Player) (model.JailAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.JailActions)
}

func (s *ScriptedInput) ChoosePlayer(ctx context.Context, players []*model.Player) (model.PlayerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.PlayerChoices)
}

func (s *ScriptedInput) ChooseRoundAction(ctx context.Context, round int) (model.RoundAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.RoundActions)
}

func (s *ScriptedInput) ChooseDebugAction(ctx context.Context) (model.DebugAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.DebugActions)
}

func (s *ScriptedInput) DebugCashDelta(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.CashDeltas)
}

func (s *ScriptedInput) DebugPosition(ctx context.Context, mapSize int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.Positions)
}

func (s *ScriptedInput) ChooseDebugMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.DebugModes)
}

func (s *ScriptedInput) ChooseUseSave(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.UseSaves)
}

func (s *ScriptedInput) ChooseSaveFile(ctx context.Context, saves []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.SaveFiles)
}

func (s *ScriptedInput) ChooseMapFile(ctx context.Context, maps []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.MapFiles)
}

func (s *ScriptedInput) ChoosePlayerCount(ctx context.Context, min, max int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.PlayerCounts)
}

func (s *ScriptedInput) ChoosePlayerName(ctx context.Context, index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pop(&s.PlayerNames)
}

func (s *ScriptedInput) Notice(ctx context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notices = append(s.Notices, message)
}

// Remaining returns the number of unanswered in-game prompts still queued
func (s *ScriptedInput) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.TurnActions) + len(s.Dice) + len(s.Purchases) + len(s.JailActions) +
		len(s.PlayerChoices) + len(s.RoundActions) + len(s.DebugActions) +
		len(s.CashDeltas) + len(s.Positions)
}
