package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/monopoly-go/internal/dependencies/random"
	"github.com/mcoot/monopoly-go/internal/model"
)

// ChanceAmounts returns every cash delta a chance square can draw:
// multiples of 10 from -300 to 200, excluding zero
func ChanceAmounts() []int {
	amounts := make([]int, 0, 50)
	for i := -30; i <= 20; i++ {
		if i != 0 {
			amounts = append(amounts, i*10)
		}
	}
	return amounts
}

// IncomeTax returns 10% of cash rounded down to a multiple of 10. Solvent
// players never hold negative cash, so the zero floor never changes a tax.
func IncomeTax(cash int) int {
	if cash <= 0 {
		return 0
	}
	return cash / 100 * 10
}

// ResolveSquare applies the effect of the square at pos to the player
func (c *Controller) ResolveSquare(ctx context.Context, id model.PlayerID, pos int) error {
	p, err := c.state.Player(id)
	if err != nil {
		return err
	}

	sq, err := c.state.Square(pos)
	if err != nil {
		c.logger.Warn("landed on undefined square",
			slog.Int("player_id", int(p.ID)),
			slog.Int("position", pos),
		)
		c.emit(ctx, model.EventNoEffect, p, model.SquarePayload{Position: pos})
		return nil
	}

	switch sq.Kind {
	case model.SquareProperty:
		return c.resolveProperty(ctx, p, pos, sq)

	case model.SquareChance:
		amount := random.Choice(c.random, ChanceAmounts())
		p.Cash += amount
		c.emit(ctx, model.EventChanceDrawn, p, model.CashPayload{Amount: amount, Cash: p.Cash})
		c.checkBankruptcy(ctx, p)

	case model.SquareIncomeTax:
		tax := IncomeTax(p.Cash)
		p.Cash -= tax
		c.emit(ctx, model.EventTaxPaid, p, model.CashPayload{Amount: -tax, Cash: p.Cash})
		c.checkBankruptcy(ctx, p)

	case model.SquareGoToJail:
		c.sendToJail(ctx, p)

	case model.SquareGo:
		p.Cash += model.GoSalary
		c.emit(ctx, model.EventGoSalary, p, model.CashPayload{Amount: model.GoSalary, Cash: p.Cash})

	default:
		c.emit(ctx, model.EventNoEffect, p, model.SquarePayload{Position: pos, Name: sq.Name})
	}
	return nil
}

func (c *Controller) resolveProperty(ctx context.Context, p *model.Player, pos int, sq *model.Square) error {
	switch {
	case !sq.IsOwned():
		buy, err := c.input.ConfirmPurchase(ctx, p, *sq.Clone())
		if err != nil {
			return err
		}
		payload := model.PropertyPayload{Property: sq.Name, Price: sq.Price}
		if !buy {
			c.emit(ctx, model.EventPurchaseDeclined, p, payload)
			return nil
		}
		if p.Cash < sq.Price {
			c.emit(ctx, model.EventPurchaseFailed, p, payload)
			return nil
		}
		p.Cash -= sq.Price
		if err := c.state.AssignProperty(p.ID, pos); err != nil {
			return err
		}
		c.logger.Info("property purchased",
			slog.Int("player_id", int(p.ID)),
			slog.Int("round", c.state.RoundNum),
			slog.String("property", sq.Name),
			slog.Int("amount", sq.Price),
		)
		c.emit(ctx, model.EventPurchaseSucceeded, p, payload)

	case sq.Owner == p.Name:
		c.emit(ctx, model.EventOwnProperty, p, model.PropertyPayload{Property: sq.Name, Price: sq.Price})

	default:
		owner, rent := sq.Owner, sq.Rent
		p.Cash -= rent
		// A bankrupt payer forfeits the rent; the owner is not credited
		if c.checkBankruptcy(ctx, p) {
			c.logger.Info("rent lost to bankruptcy",
				slog.Int("player_id", int(p.ID)),
				slog.String("owner", owner),
				slog.Int("amount", rent),
			)
			return nil
		}
		if recipient := c.state.PlayerByName(owner); recipient != nil {
			recipient.Cash += rent
		}
		c.emit(ctx, model.EventRentPaid, p, model.RentPaidPayload{Property: sq.Name, Owner: owner, Rent: rent})
	}
	return nil
}

// sendToJail moves the player to the In Jail square. Without one the player
// stays where they are.
func (c *Controller) sendToJail(ctx context.Context, p *model.Player) {
	pos, ok := c.state.JailPosition()
	if !ok {
		c.logger.Warn("no jail square on map",
			slog.Int("player_id", int(p.ID)),
			slog.String("error", model.ErrNoJailSquare.Error()),
		)
		c.emit(ctx, model.EventJailMissing, p, model.ErrorPayload{Message: model.ErrNoJailSquare.Error()})
		return
	}

	p.Position = pos
	p.InJail = true
	c.logger.Info("player jailed",
		slog.Int("player_id", int(p.ID)),
		slog.Int("round", c.state.RoundNum),
		slog.Int("position", pos),
	)
	c.emit(ctx, model.EventJailed, p, model.SquarePayload{Position: pos, Name: c.state.Squares[pos].Name})
}

// checkBankruptcy declares the player bankrupt if their cash is negative.
// It returns true only when bankruptcy is newly triggered.
func (c *Controller) checkBankruptcy(ctx context.Context, p *model.Player) bool {
	if p.Cash >= 0 || p.Bankrupt {
		return false
	}
	c.declareBankrupt(ctx, p)
	return true
}

// declareBankrupt marks the player bankrupt and forfeits all their properties
func (c *Controller) declareBankrupt(ctx context.Context, p *model.Player) {
	p.Bankrupt = true
	forfeited := len(p.Properties)
	if err := c.state.ReleaseProperties(p.ID); err != nil {
		c.logger.Warn("failed to release properties",
			slog.Int("player_id", int(p.ID)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("player bankrupt",
		slog.Int("player_id", int(p.ID)),
		slog.Int("round", c.state.RoundNum),
		slog.Int("cash", p.Cash),
		slog.Int("forfeited", forfeited),
	)
	c.emit(ctx, model.EventBankrupt, p, model.CashPayload{Cash: p.Cash})
}
