package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/storage/file"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

type CommandSuite struct {
	suite.Suite
	dir     string
	saveDir string
	mapDir  string
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func (s *CommandSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.saveDir = filepath.Join(s.dir, "save")
	s.mapDir = filepath.Join(s.dir, "map")
}

// run executes the root command against the temp directories
func (s *CommandSuite) run(args ...string) (string, error) {
	base := []string{
		"--env-file", filepath.Join(s.dir, "missing.env"),
		"--storage", "file",
		"--save-dir", s.saveDir,
		"--map-dir", s.mapDir,
		"--log-level", "error",
	}
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append(base, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CommandSuite) writeSave(state *model.GameState) string {
	name, err := file.New(s.saveDir).SaveGame(context.Background(), state)
	s.Require().NoError(err)
	return name
}

func (s *CommandSuite) TestMapNewThenValidate() {
	path := filepath.Join(s.mapDir, "starter.json")

	out, err := s.run("map", "new", path, "--size", "12")
	s.Require().NoError(err)
	s.Contains(out, "Wrote 12-square map to")

	out, err = s.run("map", "validate", path)
	s.Require().NoError(err)
	s.Contains(out, "is a valid map.")
	s.NotContains(out, "Square 1:")

	out, err = s.run("map", "show", path)
	s.Require().NoError(err)
	s.Contains(out, "Square 1: Go")
	s.Contains(out, "Square 12:")
}

func (s *CommandSuite) TestMapNewRefusesOverwrite() {
	path := filepath.Join(s.dir, "starter.json")
	_, err := s.run("map", "new", path)
	s.Require().NoError(err)

	_, err = s.run("map", "new", path)
	s.ErrorContains(err, "already exists")

	_, err = s.run("map", "new", path, "--force")
	s.NoError(err)
}

func (s *CommandSuite) TestMapValidateReportsProblems() {
	b := testutil.StandardBoard()
	delete(b.Squares, 1)
	data, err := json.Marshal(b)
	s.Require().NoError(err)
	path := filepath.Join(s.dir, "broken.json")
	s.Require().NoError(os.WriteFile(path, data, 0644))

	out, err := s.run("map", "validate", path)
	s.ErrorIs(err, errInvalidMap)
	s.Contains(out, "is not a valid map:")
}

func (s *CommandSuite) TestMapValidateJSON() {
	path := filepath.Join(s.dir, "starter.json")
	_, err := s.run("map", "new", path)
	s.Require().NoError(err)

	out, err := s.run("-o", "json", "map", "validate", path)
	s.Require().NoError(err)

	var report MapReport
	s.Require().NoError(json.Unmarshal([]byte(out), &report))
	s.True(report.Valid)
	s.Equal(path, report.Path)
	s.Empty(report.Problems)
}

func (s *CommandSuite) TestMapValidateMissingFile() {
	_, err := s.run("map", "validate", filepath.Join(s.dir, "nope.json"))
	s.ErrorIs(err, model.ErrMapNotFound)
}

func (s *CommandSuite) TestSavesListEmpty() {
	out, err := s.run("saves", "list")
	s.Require().NoError(err)
	s.Contains(out, "No save files available.")
}

func (s *CommandSuite) TestSavesShowAndDelete() {
	state := testutil.NewState("Alice", "Bob")
	state.RoundNum = 4
	state.PlayerByName("Alice").Cash = 1600
	name := s.writeSave(state)
	s.Equal("save_round_4.save", name)

	out, err := s.run("saves", "list")
	s.Require().NoError(err)
	s.Contains(out, name)

	out, err = s.run("saves", "show", name)
	s.Require().NoError(err)
	s.Contains(out, "Round: 4")
	s.Contains(out, "Alice: $1600 at Square 1")
	s.Contains(out, "1. Alice $1600 (winner)")
	s.Contains(out, "2. Bob $1500")

	out, err = s.run("saves", "delete", name)
	s.Require().NoError(err)
	s.Contains(out, "Deleted save_round_4.save.")

	_, err = s.run("saves", "show", name)
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *CommandSuite) TestInvalidOutputFormat() {
	_, err := s.run("-o", "yaml", "saves", "list")
	s.ErrorContains(err, "invalid output format")
}

func (s *CommandSuite) TestPlayWithClosedInputExitsCleanly() {
	_, err := s.run("play")
	s.NoError(err)
}
