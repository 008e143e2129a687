package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/monopoly-go/internal/model"
)

// NextPosition returns the 1-based position reached by moving steps squares
// forward from pos on a board of the given size
func NextPosition(pos, steps, size int) int {
	if size <= 0 {
		return pos
	}
	return ((pos+steps-1)%size+size)%size + 1
}

// PassesGo returns true if a move wraps around the board without landing
// exactly on position 1
func PassesGo(pos, steps, size int) bool {
	return pos+steps > size && NextPosition(pos, steps, size) != 1
}

// throwDice asks the input for a roll and moves the player by it
func (c *Controller) throwDice(ctx context.Context, p *model.Player) error {
	d1, d2, err := c.input.RollDice(ctx, p)
	if err != nil {
		return err
	}
	c.emit(ctx, model.EventDiceRolled, p, model.DiceRolledPayload{Dice1: d1, Dice2: d2})
	return c.Move(ctx, p.ID, d1, d2)
}

// Move advances the player by the sum of the dice, pays the pass-Go salary
// when the move wraps, and resolves the square landed on
func (c *Controller) Move(ctx context.Context, id model.PlayerID, d1, d2 int) error {
	p, err := c.state.Player(id)
	if err != nil {
		return err
	}

	steps := d1 + d2
	from := p.Position
	to := NextPosition(from, steps, c.state.MapSize)

	if PassesGo(from, steps, c.state.MapSize) {
		p.Cash += model.GoSalary
		c.emit(ctx, model.EventPassedGo, p, model.CashPayload{Amount: model.GoSalary, Cash: p.Cash})
	}

	p.Position = to
	payload := model.MovedPayload{From: from, To: to, Steps: steps}
	if sq := c.state.Squares[to]; sq != nil {
		payload.Square = *sq.Clone()
	}
	c.emit(ctx, model.EventMoved, p, payload)

	c.logger.Debug("player moved",
		slog.Int("player_id", int(p.ID)),
		slog.Int("round", c.state.RoundNum),
		slog.Int("from", from),
		slog.Int("position", to),
	)

	return c.ResolveSquare(ctx, id, to)
}
