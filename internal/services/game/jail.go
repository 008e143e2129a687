package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/monopoly-go/internal/model"
)

// handleJail plays the turn of a jailed player. It always ends the turn.
func (c *Controller) handleJail(ctx context.Context, p *model.Player) error {
	if p.JailTurns >= model.MaxJailTurns {
		return c.forceRelease(ctx, p)
	}

	action, err := c.input.ChooseJailAction(ctx, p)
	if err != nil {
		return err
	}

	switch action {
	case model.JailActionRoll:
		d1, d2, err := c.input.RollDice(ctx, p)
		if err != nil {
			return err
		}
		c.emit(ctx, model.EventDiceRolled, p, model.DiceRolledPayload{Dice1: d1, Dice2: d2})
		if d1 != d2 {
			p.JailTurns++
			c.emit(ctx, model.EventJailRollFailed, p, nil)
			return nil
		}
		release(p)
		c.logger.Info("released on doubles", slog.Int("player_id", int(p.ID)), slog.Int("round", c.state.RoundNum))
		c.emit(ctx, model.EventJailReleased, p, nil)
		// The doubles that freed the player also move them
		return c.Move(ctx, p.ID, d1, d2)

	case model.JailActionPayFine:
		if p.Cash < model.JailFine {
			c.emit(ctx, model.EventJailFineUnaffordable, p, model.CashPayload{Amount: -model.JailFine, Cash: p.Cash})
			return nil
		}
		return c.payFine(ctx, p)

	default:
		c.emit(ctx, model.EventInvalidChoice, p, nil)
		return nil
	}
}

// forceRelease ends a third jailed turn: the fine is paid if possible,
// otherwise the player goes bankrupt and forfeits their properties
func (c *Controller) forceRelease(ctx context.Context, p *model.Player) error {
	if p.Cash >= model.JailFine {
		return c.payFine(ctx, p)
	}
	c.declareBankrupt(ctx, p)
	return nil
}

func (c *Controller) payFine(ctx context.Context, p *model.Player) error {
	p.Cash -= model.JailFine
	release(p)
	c.logger.Info("jail fine paid",
		slog.Int("player_id", int(p.ID)),
		slog.Int("round", c.state.RoundNum),
		slog.Int("amount", model.JailFine),
	)
	c.emit(ctx, model.EventJailFinePaid, p, model.CashPayload{Amount: -model.JailFine, Cash: p.Cash})
	c.emit(ctx, model.EventJailReleased, p, nil)
	return c.throwDice(ctx, p)
}

func release(p *model.Player) {
	p.InJail = false
	p.JailTurns = 0
}
