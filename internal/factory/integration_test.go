package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/monopoly-go/internal/dependencies/mocks"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/services/game"
	"github.com/mcoot/monopoly-go/internal/services/scoring"
	"github.com/mcoot/monopoly-go/internal/storage"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	mapDir := s.T().TempDir()
	s.app = NewTestApp(mapDir)
	s.ctx = context.Background()
	err := s.app.BoardService.SaveMap(s.ctx, filepath.Join(mapDir, "standard.json"), testutil.StandardBoard())
	s.Require().NoError(err)
}

func (s *IntegrationSuite) TearDownTest() {
	s.NoError(s.app.Close())
}

// Test: new game from a map file, one round played, saved, resumed and
// played to the round cap
func (s *IntegrationSuite) TestSaveAndResume() {
	// Step 1: Set up a new two player game on the standard map
	in := mocks.NewScriptedInput()
	in.DebugModes = []bool{false}
	in.UseSaves = []bool{false}
	in.MapFiles = []string{"standard.json"}
	in.PlayerCounts = []int{2}
	in.PlayerNames = []string{"Alice", "Bob"}

	setup, err := s.app.SessionService.Start(s.ctx, in)
	s.Require().NoError(err)
	s.False(setup.Debug)
	s.Equal(2, setup.State.PlayersNum)

	// Step 2: Round 1. Alice draws the lowest chance card, Bob pays tax.
	in.TurnActions = []model.TurnAction{model.ActionRollDice, model.ActionRollDice}
	in.Dice = [][2]int{{1, 1}, {1, 2}}
	in.RoundActions = []model.RoundAction{model.RoundActionSaveAndExit}
	s.app.MockRandom.QueueIntn(0)

	recorder := mocks.NewRecordingNotifier()
	controller := s.app.NewGameController(setup.State, in, game.MultiNotifier{recorder, s.app.Hub})
	outcome, err := controller.Run(s.ctx)
	s.Require().NoError(err)
	s.True(outcome.Saved)
	s.Equal(storage.SaveName(2), outcome.SaveName)
	s.True(recorder.Has(model.EventChanceDrawn))
	s.True(recorder.Has(model.EventTaxPaid))

	saves, err := s.app.Storage.ListSaves(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{storage.SaveName(2)}, saves)

	// Step 3: Resume the save
	in.DebugModes = []bool{false}
	in.UseSaves = []bool{true}
	in.SaveFiles = []string{storage.SaveName(2)}

	resumed, err := s.app.SessionService.Start(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(storage.SaveName(2), resumed.SaveName)
	s.Equal(2, resumed.State.RoundNum)

	alice := resumed.State.PlayerByName("Alice")
	bob := resumed.State.PlayerByName("Bob")
	s.Require().NotNil(alice)
	s.Require().NotNil(bob)
	s.Equal(1200, alice.Cash)
	s.Equal(3, alice.Position)
	s.Equal(1350, bob.Cash)
	s.Equal(4, bob.Position)

	// Step 4: Round 2 is the last. Alice buys Stanley, Bob lands on it.
	s.app.ScoringService = scoring.New(2)
	in.TurnActions = []model.TurnAction{model.ActionRollDice, model.ActionRollDice}
	in.Dice = [][2]int{{2, 2}, {1, 2}}
	in.Purchases = []bool{true}

	recorder.Reset()
	controller = s.app.NewGameController(resumed.State, in, recorder)
	outcome, err = controller.Run(s.ctx)
	s.Require().NoError(err)
	s.False(outcome.Saved)

	s.Equal(1070, alice.Cash)
	s.Equal(1330, bob.Cash)
	s.Equal([]string{"Stanley"}, alice.Properties)
	s.Equal([]string{"Bob"}, outcome.Winners)
	s.True(recorder.Has(model.EventRentPaid))
	s.True(recorder.Has(model.EventGameOver))
	s.Equal(0, in.Remaining())
}

// Test: resuming with no saves falls back to a new game
func (s *IntegrationSuite) TestNoSavesFallsBackToNewGame() {
	in := mocks.NewScriptedInput()
	in.DebugModes = []bool{true}
	in.UseSaves = []bool{true, false}
	in.MapFiles = []string{"standard.json"}
	in.PlayerCounts = []int{3}
	in.PlayerNames = []string{"", "", ""}

	setup, err := s.app.SessionService.Start(s.ctx, in)
	s.Require().NoError(err)
	s.True(setup.Debug)
	s.Contains(in.Notices, "No save files available.")

	names := make([]string, 0, 3)
	for _, p := range setup.State.OrderedPlayers() {
		names = append(names, p.Name)
	}
	s.Equal([]string{"Player1", "Player2", "Player3"}, names)
}

func (s *IntegrationSuite) TestNewStorageTypes() {
	app, err := New(Config{StorageType: "memory"})
	s.Require().NoError(err)
	s.NoError(app.Close())

	app, err = New(Config{StorageType: "file", SaveDir: s.T().TempDir()})
	s.Require().NoError(err)
	s.NoError(app.Close())

	app, err = New(Config{StorageType: "sqlite", SQLitePath: filepath.Join(s.T().TempDir(), "saves.db")})
	s.Require().NoError(err)
	s.NoError(app.Close())

	_, err = New(Config{StorageType: "redis"})
	s.Error(err)

	_, err = New(Config{StorageType: "floppy"})
	s.Error(err)
}
