package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/monopoly-go/internal/dependencies/mocks"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	store, err := Open(filepath.Join(s.T().TempDir(), "saves.db"), s.clock)
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

func (s *StorageSuite) TestOpenRequiresPath() {
	_, err := Open("  ", s.clock)
	s.Error(err)
}

func (s *StorageSuite) TestSaveAndLoadGame() {
	state := testutil.NewState("Alice", "Bob", "Carol")
	state.RoundNum = 6
	s.Require().NoError(state.AssignProperty(3, 10))
	state.Players[1].Bankrupt = true

	name, err := s.storage.SaveGame(s.ctx, state)
	s.Require().NoError(err)
	s.Equal("save_round_6.save", name)

	loaded, err := s.storage.LoadGame(s.ctx, name)
	s.Require().NoError(err)
	s.Equal(3, loaded.PlayersNum)
	s.Equal(6, loaded.RoundNum)
	s.True(loaded.Players[1].Bankrupt)
	s.Equal("Carol", loaded.Squares[10].Owner)
}

func (s *StorageSuite) TestSaveSameRoundReplaces() {
	state := testutil.NewState("Alice", "Bob")
	_, err := s.storage.SaveGame(s.ctx, state)
	s.Require().NoError(err)

	state.Players[1].Cash = 42
	_, err = s.storage.SaveGame(s.ctx, state)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadGame(s.ctx, "save_round_1.save")
	s.Require().NoError(err)
	s.Equal(42, loaded.Players[1].Cash)

	names, err := s.storage.ListSaves(s.ctx)
	s.Require().NoError(err)
	s.Len(names, 1)
}

func (s *StorageSuite) TestLoadGameNotFound() {
	_, err := s.storage.LoadGame(s.ctx, "save_round_2.save")
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *StorageSuite) TestListSavesOrderedByRound() {
	state := testutil.NewState("Alice", "Bob")
	for _, round := range []int{20, 1, 5} {
		state.RoundNum = round
		_, err := s.storage.SaveGame(s.ctx, state)
		s.Require().NoError(err)
	}

	names, err := s.storage.ListSaves(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"save_round_1.save", "save_round_5.save", "save_round_20.save"}, names)
}

func (s *StorageSuite) TestListSavesEmpty() {
	names, err := s.storage.ListSaves(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *StorageSuite) TestDeleteSave() {
	name, err := s.storage.SaveGame(s.ctx, testutil.NewState("Alice", "Bob"))
	s.Require().NoError(err)

	s.Require().NoError(s.storage.DeleteSave(s.ctx, name))

	_, err = s.storage.LoadGame(s.ctx, name)
	s.ErrorIs(err, model.ErrSaveNotFound)
}
