package game

import (
	"context"

	"github.com/mcoot/monopoly-go/internal/model"
)

// Input answers the questions the turn engine asks while a game runs.
// Errors abort the game; they are reserved for I/O failure and cancellation.
// Out-of-range choices are returned as-is and handled as invalid choices.
type Input interface {
	ChooseTurnAction(ctx context.Context, player *model.Player, debug bool) (model.TurnAction, error)
	RollDice(ctx context.Context, player *model.Player) (int, int, error)
	ConfirmPurchase(ctx context.Context, player *model.Player, square model.Square) (bool, error)
	ChooseJailAction(ctx context.Context, player *model.Player) (model.JailAction, error)
	ChoosePlayer(ctx context.Context, players []*model.Player) (model.PlayerID, error)
	ChooseRoundAction(ctx context.Context, round int) (model.RoundAction, error)
	ChooseDebugAction(ctx context.Context) (model.DebugAction, error)
	DebugCashDelta(ctx context.Context) (int, error)
	// DebugPosition returns the position to teleport to, or 0 to cancel
	DebugPosition(ctx context.Context, mapSize int) (int, error)
}

// Notifier receives one-way notifications of every state transition
type Notifier interface {
	Notify(ctx context.Context, event model.Event)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(ctx context.Context, event model.Event)

func (f NotifierFunc) Notify(ctx context.Context, event model.Event) {
	f(ctx, event)
}

// MultiNotifier fans each event out to every notifier in order
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, event model.Event) {
	for _, n := range m {
		n.Notify(ctx, event)
	}
}
