package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndLoadGame() {
	state := testutil.NewState("Alice", "Bob")
	state.RoundNum = 4
	state.Players[1].Cash = 1200

	name, err := s.storage.SaveGame(s.ctx, state)
	s.Require().NoError(err)
	s.Equal("save_round_4.save", name)

	loaded, err := s.storage.LoadGame(s.ctx, name)
	s.Require().NoError(err)
	s.Equal(4, loaded.RoundNum)
	s.Equal(1200, loaded.Players[1].Cash)
	s.Equal("Bob", loaded.Players[2].Name)
}

func (s *StorageSuite) TestLoadedGameIsIndependentCopy() {
	state := testutil.NewState("Alice", "Bob")
	name, _ := s.storage.SaveGame(s.ctx, state)

	state.Players[1].Cash = 5

	loaded, err := s.storage.LoadGame(s.ctx, name)
	s.Require().NoError(err)
	s.Equal(model.StartingCash, loaded.Players[1].Cash)
}

func (s *StorageSuite) TestLoadGameNotFound() {
	_, err := s.storage.LoadGame(s.ctx, "save_round_9.save")
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *StorageSuite) TestListSavesInRoundOrder() {
	state := testutil.NewState("Alice", "Bob")
	for _, round := range []int{12, 3, 7} {
		state.RoundNum = round
		_, err := s.storage.SaveGame(s.ctx, state)
		s.Require().NoError(err)
	}

	names, err := s.storage.ListSaves(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"save_round_3.save", "save_round_7.save", "save_round_12.save"}, names)
}

func (s *StorageSuite) TestDeleteSave() {
	name, _ := s.storage.SaveGame(s.ctx, testutil.NewState("Alice", "Bob"))

	s.Require().NoError(s.storage.DeleteSave(s.ctx, name))

	_, err := s.storage.LoadGame(s.ctx, name)
	s.ErrorIs(err, model.ErrSaveNotFound)
}
