package model

import "slices"

// PlayerID identifies a player within a game (1..N, in turn order)
type PlayerID int

// Player is the mutable record of one participant
type Player struct {
	ID         PlayerID `json:"-"`
	Name       string   `json:"name"`
	Cash       int      `json:"cash"` // May go negative until the bankruptcy check runs
	Position   int      `json:"position"`
	InJail     bool     `json:"in_jail"`
	JailTurns  int      `json:"jail_turns"` // Failed release attempts, 0..MaxJailTurns
	Bankrupt   bool     `json:"bankrupt"`
	Properties []string `json:"properties"`
}

// IsActive returns true if the player still takes turns
func (p *Player) IsActive() bool {
	return !p.Bankrupt
}

// Owns returns true if the named property is in the player's holdings
func (p *Player) Owns(property string) bool {
	return slices.Contains(p.Properties, property)
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	c.Properties = slices.Clone(p.Properties)
	if c.Properties == nil {
		c.Properties = []string{}
	}
	return &c
}
