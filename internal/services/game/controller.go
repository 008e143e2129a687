package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/monopoly-go/internal/dependencies/clock"
	"github.com/mcoot/monopoly-go/internal/dependencies/random"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/services/scoring"
	"github.com/mcoot/monopoly-go/internal/storage"
)

// Outcome describes how a call to Run finished
type Outcome struct {
	Saved     bool
	SaveName  string
	Winners   []string
	Standings []model.Standing
}

// Controller drives the rounds and turns of one game. It is single-threaded:
// all state is mutated in place by the goroutine calling Run.
type Controller struct {
	state          *model.GameState
	input          Input
	notifier       Notifier
	storage        storage.Storage
	scoringService *scoring.Service
	random         random.Random
	clock          clock.Clock
	logger         *slog.Logger
	debug          bool
}

// NewController creates a controller for the given game
func NewController(
	state *model.GameState,
	input Input,
	notifier Notifier,
	storage storage.Storage,
	scoringService *scoring.Service,
	random random.Random,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		state:          state,
		input:          input,
		notifier:       notifier,
		storage:        storage,
		scoringService: scoringService,
		random:         random,
		clock:          clock,
		logger:         logger,
	}
}

// State returns the game being played
func (c *Controller) State() *model.GameState {
	return c.state
}

// SetDebug enables or disables the debug actions menu
func (c *Controller) SetDebug(enabled bool) {
	c.debug = enabled
}

// Debug returns true if debug actions are enabled
func (c *Controller) Debug() bool {
	return c.debug
}

func (c *Controller) emit(ctx context.Context, t model.EventType, p *model.Player, payload any) {
	event := model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		Round:     c.state.RoundNum,
		Payload:   payload,
	}
	if p != nil {
		event.PlayerID = p.ID
		event.PlayerName = p.Name
	}
	c.notifier.Notify(ctx, event)
}

func (c *Controller) snapshot() []model.Player {
	players := c.state.OrderedPlayers()
	out := make([]model.Player, len(players))
	for i, p := range players {
		out[i] = *p.Clone()
	}
	return out
}

// Run plays rounds until the game is over or the players save and exit.
// Game-over is checked after every turn, at the end of every round and again
// once the round counter has advanced.
func (c *Controller) Run(ctx context.Context) (*Outcome, error) {
	c.logger.Info("game started",
		slog.Int("players", c.state.PlayersNum),
		slog.Int("round", c.state.RoundNum),
		slog.Int("map_size", c.state.MapSize),
	)
	c.emit(ctx, model.EventGameStarted, nil, model.GameStartedPayload{Players: c.snapshot()})
	if c.debug {
		c.emit(ctx, model.EventDebugMode, nil, model.DebugModePayload{Enabled: true})
	}

	for !c.scoringService.IsGameOver(c.state) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		over, err := c.playRound(ctx)
		if err != nil {
			return nil, err
		}
		if over {
			break
		}

		c.emit(ctx, model.EventRoundEnded, nil, nil)
		c.state.RoundNum++

		if c.scoringService.IsGameOver(c.state) {
			break
		}

		name, saved, err := c.roundBreak(ctx)
		if err != nil {
			return nil, err
		}
		if saved {
			return &Outcome{Saved: true, SaveName: name}, nil
		}
	}

	return c.EndGame(ctx), nil
}

// playRound gives every solvent player a turn in ascending id order. It
// returns true if the game ended part way through.
func (c *Controller) playRound(ctx context.Context) (bool, error) {
	c.emit(ctx, model.EventRoundStarted, nil, nil)
	for _, id := range c.state.PlayerIDs() {
		if c.state.Players[id].Bankrupt {
			continue
		}
		if err := c.PlayTurn(ctx, id); err != nil {
			return false, err
		}
		if c.scoringService.IsGameOver(c.state) {
			return true, nil
		}
	}
	return false, nil
}

// roundBreak offers the choice between continuing and saving. A failed save
// is reported and the choice offered again.
func (c *Controller) roundBreak(ctx context.Context) (string, bool, error) {
	for {
		action, err := c.input.ChooseRoundAction(ctx, c.state.RoundNum)
		if err != nil {
			return "", false, err
		}

		switch action {
		case model.RoundActionContinue:
			return "", false, nil

		case model.RoundActionSaveAndExit:
			name, err := c.storage.SaveGame(ctx, c.state)
			if err != nil {
				c.logger.Error("failed to save game",
					slog.Int("round", c.state.RoundNum),
					slog.String("error", err.Error()),
				)
				c.emit(ctx, model.EventSaveFailed, nil, model.ErrorPayload{Message: err.Error()})
				continue
			}
			c.logger.Info("game saved", slog.String("save", name), slog.Int("round", c.state.RoundNum))
			c.emit(ctx, model.EventGameSaved, nil, model.GameSavedPayload{SaveName: name})
			return name, true, nil

		default:
			c.emit(ctx, model.EventInvalidChoice, nil, nil)
		}
	}
}

// PlayTurn plays one full turn for the player. Jailed players go through
// the jail sequence; everyone else chooses from the action menu until they
// roll the dice.
func (c *Controller) PlayTurn(ctx context.Context, id model.PlayerID) error {
	p, err := c.state.Player(id)
	if err != nil {
		return err
	}
	c.emit(ctx, model.EventTurnStarted, p, model.TurnStartedPayload{Player: *p.Clone()})

	if p.InJail {
		return c.handleJail(ctx, p)
	}

	for {
		action, err := c.input.ChooseTurnAction(ctx, p, c.debug)
		if err != nil {
			return err
		}

		switch action {
		case model.ActionRollDice:
			return c.throwDice(ctx, p)

		case model.ActionViewMap:
			c.emit(ctx, model.EventMapViewed, p, model.BoardPayload{Board: *c.state.Board().Clone()})

		case model.ActionViewPlayer:
			target, err := c.input.ChoosePlayer(ctx, c.state.OrderedPlayers())
			if err != nil {
				return err
			}
			tp, err := c.state.Player(target)
			if err != nil {
				c.emit(ctx, model.EventInvalidChoice, p, model.ErrorPayload{Message: err.Error()})
				continue
			}
			c.emit(ctx, model.EventPlayersViewed, p, model.PlayersPayload{Players: []model.Player{*tp.Clone()}})

		case model.ActionViewAllPlayers:
			c.emit(ctx, model.EventPlayersViewed, p, model.PlayersPayload{Players: c.snapshot()})

		case model.ActionViewNextPlayer:
			next := c.state.Players[c.state.NextPlayerID(id)]
			c.emit(ctx, model.EventNextPlayerViewed, p, model.NextPlayerPayload{Name: next.Name})

		case model.ActionDebug:
			if !c.debug {
				c.emit(ctx, model.EventInvalidChoice, p, nil)
				continue
			}
			done, err := c.handleDebug(ctx, p)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		default:
			c.emit(ctx, model.EventInvalidChoice, p, nil)
		}
	}
}

// EndGame announces the winners: every player holding the most cash
func (c *Controller) EndGame(ctx context.Context) *Outcome {
	outcome := &Outcome{
		Winners:   c.scoringService.WinnerNames(c.state),
		Standings: c.scoringService.Standings(c.state),
	}
	roundLimit := c.scoringService.RoundLimitReached(c.state)

	c.logger.Info("game over",
		slog.Int("round", c.state.RoundNum),
		slog.Any("winners", outcome.Winners),
		slog.Bool("round_limit", roundLimit),
	)
	c.emit(ctx, model.EventGameOver, nil, model.GameOverPayload{Winners: outcome.Winners, RoundLimit: roundLimit})
	return outcome
}
