package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Game rules
const (
	StartingCash     = 1500
	GoSalary         = 1500
	JailFine         = 150
	MaxJailTurns     = 2
	DefaultMaxRounds = 100
	MinPlayers       = 2
	MaxPlayers       = 6
	MaxNameLength    = 20
)

// GameState is the aggregate of everything a running game mutates. It owns
// every Square and Player record; other components address them by position
// or PlayerID only.
type GameState struct {
	MapSize    int                  `json:"map_size"`
	Squares    map[int]*Square      `json:"squares"`
	Players    map[PlayerID]*Player `json:"players"`
	PlayersNum int                  `json:"-"`
	RoundNum   int                  `json:"round_num"`
}

// NewGameState sets up a fresh game on a copy of the board. Empty names are
// replaced with a default of the form "Player<n>".
func NewGameState(board *Board, names []string) *GameState {
	b := board.Clone()
	state := &GameState{
		MapSize:    b.Size,
		Squares:    b.Squares,
		Players:    make(map[PlayerID]*Player, len(names)),
		PlayersNum: len(names),
		RoundNum:   1,
	}
	for i, name := range names {
		id := PlayerID(i + 1)
		if name == "" {
			name = DefaultPlayerName(id)
		}
		state.Players[id] = &Player{
			ID:         id,
			Name:       name,
			Cash:       StartingCash,
			Position:   1,
			Properties: []string{},
		}
	}
	return state
}

// DefaultPlayerName returns the name given to a player who did not choose one
func DefaultPlayerName(id PlayerID) string {
	return fmt.Sprintf("Player%d", id)
}

// Board returns a board view over the game's squares
func (g *GameState) Board() *Board {
	return &Board{Size: g.MapSize, Squares: g.Squares}
}

// Player returns the player with the given ID
func (g *GameState) Player(id PlayerID) (*Player, error) {
	p, ok := g.Players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return p, nil
}

// Square returns the square at the given position
func (g *GameState) Square(pos int) (*Square, error) {
	sq, ok := g.Squares[pos]
	if !ok {
		return nil, fmt.Errorf("%w: position %d", ErrSquareNotFound, pos)
	}
	return sq, nil
}

// PlayerByName returns the player with the given name, or nil
func (g *GameState) PlayerByName(name string) *Player {
	for _, id := range g.PlayerIDs() {
		if g.Players[id].Name == name {
			return g.Players[id]
		}
	}
	return nil
}

// PlayerIDs returns all player IDs in turn order
func (g *GameState) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(g.Players))
	for id := range g.Players {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// OrderedPlayers returns all players in turn order
func (g *GameState) OrderedPlayers() []*Player {
	ids := g.PlayerIDs()
	players := make([]*Player, len(ids))
	for i, id := range ids {
		players[i] = g.Players[id]
	}
	return players
}

// NextPlayerID returns the ID that follows id in turn order, wrapping around.
// Bankrupt players are not skipped.
func (g *GameState) NextPlayerID(id PlayerID) PlayerID {
	if g.PlayersNum == 0 {
		return id
	}
	return PlayerID(int(id)%g.PlayersNum + 1)
}

// ActivePlayers returns the players who are not bankrupt
func (g *GameState) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.OrderedPlayers() {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Positions returns the defined square positions in ascending order
func (g *GameState) Positions() []int {
	return g.Board().Positions()
}

// JailPosition returns the position of the In Jail/Just Visiting square
func (g *GameState) JailPosition() (int, bool) {
	for _, pos := range g.Positions() {
		if g.Squares[pos].Kind == SquareInJail {
			return pos, true
		}
	}
	return 0, false
}

// AdjustCash adds delta (which may be negative) to the player's cash
func (g *GameState) AdjustCash(id PlayerID, delta int) error {
	p, err := g.Player(id)
	if err != nil {
		return err
	}
	p.Cash += delta
	return nil
}

// SetPosition moves the player to pos without applying any effect
func (g *GameState) SetPosition(id PlayerID, pos int) error {
	p, err := g.Player(id)
	if err != nil {
		return err
	}
	if _, err := g.Square(pos); err != nil {
		return err
	}
	p.Position = pos
	return nil
}

// AssignProperty records the player as owner of the property at pos on both
// sides of the ownership relation
func (g *GameState) AssignProperty(id PlayerID, pos int) error {
	p, err := g.Player(id)
	if err != nil {
		return err
	}
	sq, err := g.Square(pos)
	if err != nil {
		return err
	}
	sq.Owner = p.Name
	if !p.Owns(sq.Name) {
		p.Properties = append(p.Properties, sq.Name)
	}
	return nil
}

// ReleaseProperties clears the player's holdings and every square that
// names them as owner
func (g *GameState) ReleaseProperties(id PlayerID) error {
	p, err := g.Player(id)
	if err != nil {
		return err
	}
	for _, sq := range g.Squares {
		if sq.IsProperty() && sq.Owner == p.Name {
			sq.Owner = ""
		}
	}
	p.Properties = []string{}
	return nil
}

// CheckConsistency verifies that every player's property list matches the
// squares that name them as owner, and that bankrupt players own nothing
func (g *GameState) CheckConsistency() error {
	owned := make(map[string][]string)
	for _, pos := range g.Positions() {
		sq := g.Squares[pos]
		if sq.IsOwned() {
			owned[sq.Owner] = append(owned[sq.Owner], sq.Name)
		}
	}
	for _, p := range g.OrderedPlayers() {
		want := slices.Clone(owned[p.Name])
		have := slices.Clone(p.Properties)
		sort.Strings(want)
		sort.Strings(have)
		if !slices.Equal(want, have) {
			return fmt.Errorf("player %q holds %v but owns squares %v", p.Name, have, want)
		}
		if p.Bankrupt && len(have) > 0 {
			return fmt.Errorf("bankrupt player %q still holds %v", p.Name, have)
		}
		delete(owned, p.Name)
	}
	if len(owned) > 0 {
		owners := make([]string, 0, len(owned))
		for owner := range owned {
			owners = append(owners, owner)
		}
		sort.Strings(owners)
		return fmt.Errorf("squares %v are owned by unknown player %q", owned[owners[0]], owners[0])
	}
	return nil
}

// Clone returns a deep copy of the state
func (g *GameState) Clone() *GameState {
	c := &GameState{
		MapSize:    g.MapSize,
		Squares:    make(map[int]*Square, len(g.Squares)),
		Players:    make(map[PlayerID]*Player, len(g.Players)),
		PlayersNum: g.PlayersNum,
		RoundNum:   g.RoundNum,
	}
	for pos, sq := range g.Squares {
		c.Squares[pos] = sq.Clone()
	}
	for id, p := range g.Players {
		c.Players[id] = p.Clone()
	}
	return c
}

// UnmarshalJSON restores a saved game, deriving the fields the save format
// does not carry
func (g *GameState) UnmarshalJSON(data []byte) error {
	type stateAlias GameState
	var raw stateAlias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = GameState(raw)
	if g.Squares == nil {
		g.Squares = make(map[int]*Square)
	}
	if g.Players == nil {
		g.Players = make(map[PlayerID]*Player)
	}
	for pos, sq := range g.Squares {
		if sq == nil {
			return fmt.Errorf("square %d is null", pos)
		}
	}
	for id, p := range g.Players {
		if p == nil {
			return fmt.Errorf("player %d is null", id)
		}
		p.ID = id
		if p.Properties == nil {
			p.Properties = []string{}
		}
	}
	g.PlayersNum = len(g.Players)
	if g.RoundNum == 0 {
		g.RoundNum = 1
	}
	return nil
}
