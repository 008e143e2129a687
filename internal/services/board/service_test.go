package board

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	dir     string
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	s.dir = s.T().TempDir()
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

// ParseMap tests

func (s *ServiceSuite) TestParseMapFileFormat() {
	data := `{
		"map_size": 8,
		"squares": {
			"1": {"square_type": "Go", "name": "Go"},
			"2": {"square_type": "Property", "name": "Central", "price": 200, "rent": 50, "owner": null},
			"3": {"square_type": "Chance", "name": "Chance"},
			"4": {"square_type": "Income Tax", "name": "Income Tax"},
			"5": {"square_type": "Property", "name": "Wan Chai", "price": 300, "rent": 80, "owner": ""},
			"6": {"square_type": "In Jail/Just Visiting", "name": "In Jail/Just Visiting"},
			"7": {"square_type": "Free Parking", "name": "Free Parking"},
			"8": {"square_type": "Go to Jail", "name": "Go to Jail"}
		}
	}`

	b, err := s.service.ParseMap([]byte(data))
	s.Require().NoError(err)
	s.Equal(8, b.Size)
	s.Equal(model.SquareProperty, b.Get(2).Kind)
	s.Equal(200, b.Get(2).Price)
	s.Equal(50, b.Get(2).Rent)
	s.False(b.Get(2).IsOwned())
	s.False(b.Get(5).IsOwned())
	s.Equal(model.SquareGoToJail, b.Get(8).Kind)
}

func (s *ServiceSuite) TestParseMapMalformedJSON() {
	_, err := s.service.ParseMap([]byte("{"))
	s.ErrorIs(err, model.ErrInvalidMap)
}

func (s *ServiceSuite) TestParseMapReportsEveryProblem() {
	b := testutil.StandardBoard()
	b.Set(1, model.NewProperty("Central", 10, 1))

	data, err := json.Marshal(b)
	s.Require().NoError(err)

	parsed, err := s.service.ParseMap(data)
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrInvalidMap)
	s.NotNil(parsed)

	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Problems, "Map must have exactly one 'Go' square, but has 0.")
	s.Contains(verr.Problems, "Duplicate property names found. Each property must have a unique name.")
}

func (s *ServiceSuite) TestParseMapUnknownKindIsKept() {
	b := testutil.StandardBoard()
	b.Set(9, &model.Square{Kind: "Lottery", Name: "Lottery"})
	data, err := json.Marshal(b)
	s.Require().NoError(err)

	parsed, err := s.service.ParseMap(data)
	s.Require().NoError(err)
	s.Equal(model.SquareKind("Lottery"), parsed.Get(9).Kind)
	s.False(parsed.Get(9).Kind.IsKnown())
}

func (s *ServiceSuite) TestParseMapNullSquare() {
	data := []byte(`{"map_size": 8, "squares": {
		"1": {"square_type": "Go", "name": "Go"},
		"2": null,
		"9": null
	}}`)

	var b *model.Board
	var err error
	s.Require().NotPanics(func() {
		b, err = s.service.ParseMap(data)
	})
	s.ErrorIs(err, model.ErrInvalidMap)

	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Problems, "Squares are undefined at positions [2 3 4 5 6 7 8].")
	s.Contains(verr.Problems, "Square at position 9 is outside the map (1-8).")
	s.NotPanics(func() { Summary(b) })
}

// LoadMap tests

func (s *ServiceSuite) TestLoadMapNotFound() {
	_, err := s.service.LoadMap(s.ctx, filepath.Join(s.dir, "missing.json"))
	s.ErrorIs(err, model.ErrMapNotFound)
}

func (s *ServiceSuite) TestLoadMapInvalid() {
	path := s.writeFile("bad.json", `{"map_size": 3, "squares": {}}`)

	_, err := s.service.LoadMap(s.ctx, path)
	s.ErrorIs(err, model.ErrInvalidMap)
}

// SaveMap tests

func (s *ServiceSuite) TestSaveMapRoundTrip() {
	path := filepath.Join(s.dir, "nested", "standard.json")
	s.Require().NoError(s.service.SaveMap(s.ctx, path, testutil.StandardBoard()))

	loaded, err := s.service.LoadMap(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(testutil.StandardBoard(), loaded)
}

func (s *ServiceSuite) TestSaveMapRefusesInvalidMap() {
	path := filepath.Join(s.dir, "bad.json")
	err := s.service.SaveMap(s.ctx, path, model.NewBoard(8))
	s.ErrorIs(err, model.ErrInvalidMap)

	_, statErr := os.Stat(path)
	s.True(os.IsNotExist(statErr))
}

// ListMaps tests

func (s *ServiceSuite) TestListMaps() {
	s.writeFile("b.json", "{}")
	s.writeFile("a.json", "{}")
	s.writeFile("classic", "{}")
	s.writeFile("notes.txt", "")
	s.writeFile(".hidden.json", "{}")
	s.Require().NoError(os.Mkdir(filepath.Join(s.dir, "sub.json"), 0755))

	names, err := s.service.ListMaps(s.dir)
	s.Require().NoError(err)
	s.Equal([]string{"a.json", "b.json", "classic", "notes.txt"}, names)
}

func (s *ServiceSuite) TestListMapsMissingDirectory() {
	names, err := s.service.ListMaps(filepath.Join(s.dir, "nope"))
	s.Require().NoError(err)
	s.Empty(names)
}

// Summary tests

func (s *ServiceSuite) TestSummary() {
	b := model.NewBoard(3)
	b.Set(1, model.NewSquare(model.SquareGo))
	b.Set(2, model.NewProperty("Central", 200, 50))

	s.Equal([]string{
		"Square 1: Go, Go",
		"Square 2: Property, Central (Price: 200, Rent: 50)",
		"Square 3: Undefined",
	}, Summary(b))
}

// StarterMap tests

func (s *ServiceSuite) TestStarterMapIsValid() {
	for _, size := range []int{8, 9, 10, 16, 40} {
		b, err := StarterMap(size)
		s.Require().NoError(err, "size %d", size)
		s.Empty(b.Validate(), "size %d", size)
		s.Equal(size, b.Size)
	}
}

func (s *ServiceSuite) TestStarterMapTooSmall() {
	_, err := StarterMap(7)
	s.ErrorIs(err, model.ErrInvalidMap)
}
