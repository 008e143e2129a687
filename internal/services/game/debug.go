package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/monopoly-go/internal/model"
)

// handleDebug runs one debug menu action. It returns true when the action
// ends the player's turn, which happens when it leaves them bankrupt.
func (c *Controller) handleDebug(ctx context.Context, p *model.Player) (bool, error) {
	action, err := c.input.ChooseDebugAction(ctx)
	if err != nil {
		return false, err
	}

	switch action {
	case model.DebugActionEditCash:
		delta, err := c.input.DebugCashDelta(ctx)
		if err != nil {
			return false, err
		}
		p.Cash += delta
		c.logger.Warn("debug cash edit",
			slog.Int("player_id", int(p.ID)),
			slog.Int("amount", delta),
		)
		c.emit(ctx, model.EventCashEdited, p, model.CashPayload{Amount: delta, Cash: p.Cash})
		c.checkBankruptcy(ctx, p)
		return p.Bankrupt, nil

	case model.DebugActionTeleport:
		pos, err := c.input.DebugPosition(ctx, c.state.MapSize)
		if err != nil {
			return false, err
		}
		if pos == 0 {
			return false, nil
		}
		if err := c.state.SetPosition(p.ID, pos); err != nil {
			c.emit(ctx, model.EventInvalidChoice, p, model.ErrorPayload{Message: err.Error()})
			return false, nil
		}
		c.logger.Warn("debug teleport",
			slog.Int("player_id", int(p.ID)),
			slog.Int("position", pos),
		)
		c.emit(ctx, model.EventMoved, p, model.MovedPayload{To: pos, Square: *c.state.Squares[pos].Clone()})
		if err := c.ResolveSquare(ctx, p.ID, pos); err != nil {
			return false, err
		}
		return p.Bankrupt, nil

	default:
		c.emit(ctx, model.EventInvalidChoice, p, nil)
		return false, nil
	}
}
