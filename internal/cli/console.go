package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/services/dice"
	"github.com/mcoot/monopoly-go/internal/services/game"
	"github.com/mcoot/monopoly-go/internal/services/session"
)

// ErrInputClosed is returned once the console's input reaches EOF
var ErrInputClosed = errors.New("input closed")

// Ensure Console implements the prompt and notification interfaces
var (
	_ game.Input         = (*Console)(nil)
	_ game.Notifier      = (*Console)(nil)
	_ session.SetupInput = (*Console)(nil)
)

// Console plays the game over a line-oriented text terminal. It asks every
// question on out, reads answers from in, and renders every game event.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	roller *dice.Roller
}

// NewConsole creates a console reading from in and writing to out. Dice are
// thrown with roller.
func NewConsole(in io.Reader, out io.Writer, roller *dice.Roller) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		roller: roller,
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}

// readLine returns the next trimmed line. Reads block, so cancellation is
// only noticed between lines.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readChoice reads a menu option. Anything that is not a number is returned
// as 0 so the caller treats it as an invalid choice.
func (c *Console) readChoice(ctx context.Context, prompt string) (int, error) {
	c.printf("%s", prompt)
	line, err := c.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// readInt asks until a number is entered
func (c *Console) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("Invalid input, please enter a number.")
	}
}

// readYesNo asks until y or n is entered
func (c *Console) readYesNo(ctx context.Context, question string) (bool, error) {
	c.println(question + " (y/n)")
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		c.println("Invalid input, please enter 'y' or 'n'.")
	}
}

// chooseFile lists files and asks for one by number. 0 means go back.
func (c *Console) chooseFile(ctx context.Context, title, noun string, files []string) (string, error) {
	c.println(title)
	for i, f := range files {
		c.printf("%d. %s\n", i+1, f)
	}
	for {
		n, err := c.readInt(ctx, fmt.Sprintf("Please enter the %s number (0 to go back): ", noun))
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", nil
		}
		if n >= 1 && n <= len(files) {
			c.printf("You selected %s\n", files[n-1])
			return files[n-1], nil
		}
		c.println("Out of range, please enter again.")
	}
}

// Setup prompts

func (c *Console) ChooseDebugMode(ctx context.Context) (bool, error) {
	c.println("Welcome to Monopoly!")
	return c.readYesNo(ctx, "Do you want to enable debug mode?")
}

func (c *Console) ChooseUseSave(ctx context.Context) (bool, error) {
	return c.readYesNo(ctx, "Do you want to use a save file?")
}

func (c *Console) ChooseSaveFile(ctx context.Context, saves []string) (string, error) {
	return c.chooseFile(ctx, "Please select a save file:", "file", saves)
}

func (c *Console) ChooseMapFile(ctx context.Context, maps []string) (string, error) {
	return c.chooseFile(ctx, "Please select a game map:", "map", maps)
}

func (c *Console) ChoosePlayerCount(ctx context.Context, min, max int) (int, error) {
	return c.readInt(ctx, fmt.Sprintf("Please enter the number of players (%d-%d): ", min, max))
}

func (c *Console) ChoosePlayerName(ctx context.Context, index int) (string, error) {
	c.printf("Please enter the name of player %d (press Enter to use the default name):\n", index)
	return c.readLine(ctx)
}

func (c *Console) Notice(ctx context.Context, message string) {
	c.println(message)
}

// In-game prompts

func (c *Console) ChooseTurnAction(ctx context.Context, player *model.Player, debug bool) (model.TurnAction, error) {
	c.println("What would you like to do?")
	c.println("1. Roll dice")
	c.println("2. View map")
	c.println("3. View a player's status")
	c.println("4. View all players' status")
	c.println("5. View next player")
	if debug {
		c.println("6. Debug actions")
	}
	n, err := c.readChoice(ctx, "Please enter the option number: ")
	return model.TurnAction(n), err
}

func (c *Console) RollDice(ctx context.Context, player *model.Player) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	d1, d2 := c.roller.Roll()
	return d1, d2, nil
}

func (c *Console) ConfirmPurchase(ctx context.Context, player *model.Player, square model.Square) (bool, error) {
	c.printf("You reached %s!\n", square.Name)
	return c.readYesNo(ctx, fmt.Sprintf("This property is unowned, priced at $%d. Do you want to buy it?", square.Price))
}

func (c *Console) ChooseJailAction(ctx context.Context, player *model.Player) (model.JailAction, error) {
	c.println("You are in jail, you can choose:")
	c.println("1. Roll dice to try to get double points out of jail")
	c.printf("2. Pay a $%d fine to get out of jail\n", model.JailFine)
	n, err := c.readChoice(ctx, "Please enter the option number: ")
	return model.JailAction(n), err
}

func (c *Console) ChoosePlayer(ctx context.Context, players []*model.Player) (model.PlayerID, error) {
	c.println("Which player do you want to view?")
	for _, p := range players {
		c.printf("%d. %s\n", p.ID, p.Name)
	}
	n, err := c.readChoice(ctx, "Please enter the player number: ")
	return model.PlayerID(n), err
}

func (c *Console) ChooseRoundAction(ctx context.Context, round int) (model.RoundAction, error) {
	c.println("Choose your next action:")
	c.println("1. Start next round")
	c.println("2. Save and quit")
	n, err := c.readChoice(ctx, "Please enter the option number: ")
	return model.RoundAction(n), err
}

func (c *Console) ChooseDebugAction(ctx context.Context) (model.DebugAction, error) {
	c.println("Debug actions:")
	c.println("1. Edit cash")
	c.println("2. Teleport")
	n, err := c.readChoice(ctx, "Please enter the option number: ")
	return model.DebugAction(n), err
}

func (c *Console) DebugCashDelta(ctx context.Context) (int, error) {
	return c.readInt(ctx, "Enter the amount to add (negative to deduct): ")
}

func (c *Console) DebugPosition(ctx context.Context, mapSize int) (int, error) {
	for {
		n, err := c.readInt(ctx, fmt.Sprintf("Enter a position (1-%d, 0 to cancel): ", mapSize))
		if err != nil {
			return 0, err
		}
		if n >= 0 && n <= mapSize {
			return n, nil
		}
		c.println("Out of range, please enter again.")
	}
}
