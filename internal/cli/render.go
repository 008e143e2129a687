package cli

import (
	"context"
	"strings"

	"github.com/mcoot/monopoly-go/internal/model"
)

// Notify renders a game event as console text
func (c *Console) Notify(ctx context.Context, event model.Event) {
	switch p := event.Payload.(type) {
	case model.GameStartedPayload:
		c.println("Game Start! Player List:")
		for _, player := range p.Players {
			c.printf("%s: Initial cash $%d\n", player.Name, player.Cash)
		}

	case model.DebugModePayload:
		if p.Enabled {
			c.println("Debug mode is enabled.")
		}

	case model.TurnStartedPayload:
		c.printf("\n%s's turn!\n", p.Player.Name)
		c.printf("Money: $%d\n", p.Player.Cash)
		c.printf("Position: Square %d\n", p.Player.Position)
		c.printf("Properties owned: %s\n", propertyList(p.Player.Properties))
		if p.Player.InJail {
			c.printf("In jail for %d turns!\n", p.Player.JailTurns)
		}

	case model.DiceRolledPayload:
		c.printf("You rolled %d and %d!\n", p.Dice1, p.Dice2)

	case model.MovedPayload:
		c.printf("You moved to Square %d: %s.\n", p.To, p.Square.Name)

	case model.PropertyPayload:
		c.renderProperty(event.Type, p)

	case model.RentPaidPayload:
		c.printf("%s paid rent $%d to %s.\n", event.PlayerName, p.Rent, p.Owner)

	case model.CashPayload:
		c.renderCash(event, p)

	case model.SquarePayload:
		if event.Type == model.EventJailed {
			c.println("You were sent to jail!")
			return
		}
		name := p.Name
		if name == "" {
			name = "an undefined square"
		}
		c.printf("You reached %s, nothing happens here.\n", name)

	case model.BoardPayload:
		c.println("Current map:")
		for _, pos := range p.Board.Positions() {
			sq := p.Board.Get(pos)
			c.printf("Position %d: %s (%s)\n", pos, sq.Name, sq.Kind)
		}

	case model.PlayersPayload:
		for _, player := range p.Players {
			c.renderPlayer(player)
		}

	case model.NextPlayerPayload:
		c.printf("Next player is %s.\n", p.Name)

	case model.GameSavedPayload:
		c.printf("Game saved as %s.\n", p.SaveName)

	case model.GameOverPayload:
		c.println("\nGame Over!")
		if p.RoundLimit {
			c.printf("Round %d has been reached!\n", event.Round-1)
		}
		switch len(p.Winners) {
		case 0:
			c.println("Nobody wins.")
		case 1:
			c.printf("Congratulations %s!\n", p.Winners[0])
		default:
			c.printf("Draw! Winners: %s\n", strings.Join(p.Winners, ", "))
		}

	case model.ErrorPayload:
		c.renderError(event.Type, p)

	default:
		c.renderPlain(event)
	}
}

func (c *Console) renderProperty(t model.EventType, p model.PropertyPayload) {
	switch t {
	case model.EventPurchaseSucceeded:
		c.printf("You successfully bought %s!\n", p.Property)
	case model.EventPurchaseFailed:
		c.printf("Your funds are insufficient to buy %s!\n", p.Property)
	case model.EventPurchaseDeclined:
		c.println("You chose not to buy this property.")
	case model.EventOwnProperty:
		c.printf("You reached your property %s.\n", p.Property)
	}
}

func (c *Console) renderCash(event model.Event, p model.CashPayload) {
	switch event.Type {
	case model.EventPassedGo:
		c.printf("You passed the starting point and received $%d salary!\n", p.Amount)
	case model.EventGoSalary:
		c.printf("You landed on Go and received $%d salary!\n", p.Amount)
	case model.EventChanceDrawn:
		c.println("You reached a chance square!")
		c.println("Drawing a chance card...")
		if p.Amount > 0 {
			c.printf("Good luck! You received $%d!\n", p.Amount)
		} else {
			c.printf("Unlucky! You lost $%d!\n", -p.Amount)
		}
	case model.EventTaxPaid:
		c.printf("You need to pay income tax $%d.\n", -p.Amount)
	case model.EventJailFinePaid:
		c.printf("You paid the $%d fine.\n", -p.Amount)
	case model.EventJailFineUnaffordable:
		c.println("Your funds are insufficient to pay the fine, so you cannot get out of jail.")
	case model.EventCashEdited:
		c.printf("Cash changed by $%d. Balance: $%d\n", p.Amount, p.Cash)
	case model.EventBankrupt:
		c.printf("%s is bankrupt! All properties have been confiscated.\n", event.PlayerName)
	}
}

func (c *Console) renderError(t model.EventType, p model.ErrorPayload) {
	switch t {
	case model.EventJailMissing:
		c.println("No jail square was found, so you cannot be sent to jail.")
	case model.EventSaveFailed:
		c.printf("Failed to save the game: %s\n", p.Message)
	default:
		c.println("Invalid choice, please enter again.")
	}
}

// renderPlain renders events that carry no payload
func (c *Console) renderPlain(event model.Event) {
	switch event.Type {
	case model.EventRoundStarted:
		c.printf("\n----------Round %d Start!----------\n", event.Round)
	case model.EventRoundEnded:
		c.printf("\n----------Round %d End!----------\n", event.Round)
	case model.EventJailReleased:
		c.println("You are released from jail!")
	case model.EventJailRollFailed:
		c.println("You did not roll double points, so you remain in jail.")
	case model.EventInvalidChoice:
		c.println("Invalid choice, please enter again.")
	}
}

func (c *Console) renderPlayer(p model.Player) {
	c.printf("Player %s status:\n", p.Name)
	c.printf("Money: $%d\n", p.Cash)
	c.printf("Position: Square %d\n", p.Position)
	c.printf("Properties: %s\n", propertyList(p.Properties))
	if p.InJail {
		c.println("In jail: Yes")
		c.printf("In jail for %d turns\n", p.JailTurns)
	} else {
		c.println("In jail: No")
	}
	if p.Bankrupt {
		c.println("Bankrupt: Yes")
	}
}

func propertyList(props []string) string {
	if len(props) == 0 {
		return "None"
	}
	return strings.Join(props, ", ")
}
