package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Game flow events
	EventGameStarted  EventType = "game_started"
	EventRoundStarted EventType = "round_started"
	EventRoundEnded   EventType = "round_ended"
	EventTurnStarted  EventType = "turn_started"
	EventGameSaved    EventType = "game_saved"
	EventSaveFailed   EventType = "save_failed"
	EventGameOver     EventType = "game_over"
	EventDebugMode    EventType = "debug_mode"

	// Movement events
	EventDiceRolled EventType = "dice_rolled"
	EventPassedGo   EventType = "passed_go"
	EventMoved      EventType = "moved"

	// Square effect events
	EventPurchaseSucceeded EventType = "purchase_succeeded"
	EventPurchaseFailed    EventType = "purchase_failed"
	EventPurchaseDeclined  EventType = "purchase_declined"
	EventOwnProperty       EventType = "own_property"
	EventRentPaid          EventType = "rent_paid"
	EventChanceDrawn       EventType = "chance_drawn"
	EventTaxPaid           EventType = "tax_paid"
	EventGoSalary          EventType = "go_salary"
	EventNoEffect          EventType = "no_effect"
	EventBankrupt          EventType = "bankrupt"

	// Jail events
	EventJailed               EventType = "jailed"
	EventJailMissing          EventType = "jail_missing"
	EventJailReleased         EventType = "jail_released"
	EventJailRollFailed       EventType = "jail_roll_failed"
	EventJailFinePaid         EventType = "jail_fine_paid"
	EventJailFineUnaffordable EventType = "jail_fine_unaffordable"

	// Menu events
	EventInvalidChoice    EventType = "invalid_choice"
	EventMapViewed        EventType = "map_viewed"
	EventPlayersViewed    EventType = "players_viewed"
	EventNextPlayerViewed EventType = "next_player_viewed"
	EventCashEdited       EventType = "cash_edited"
)

// Event is a one-way notification of a game state transition. PlayerID is
// zero for game-wide events.
type Event struct {
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Round      int       `json:"round"`
	PlayerID   PlayerID  `json:"player_id,omitempty"`
	PlayerName string    `json:"player_name,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Players []Player `json:"players"`
}

// TurnStartedPayload contains the acting player's status at the start of a turn
type TurnStartedPayload struct {
	Player Player `json:"player"`
}

// DiceRolledPayload contains data for dice rolled events
type DiceRolledPayload struct {
	Dice1 int `json:"dice1"`
	Dice2 int `json:"dice2"`
}

// MovedPayload contains data for moved events
type MovedPayload struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Steps  int    `json:"steps"`
	Square Square `json:"square"`
}

// PropertyPayload contains data for purchase and own-property events
type PropertyPayload struct {
	Property string `json:"property"`
	Price    int    `json:"price"`
}

// RentPaidPayload contains data for rent paid events
type RentPaidPayload struct {
	Property string `json:"property"`
	Owner    string `json:"owner"`
	Rent     int    `json:"rent"`
}

// CashPayload contains the amount of a cash change. Negative amounts are losses.
type CashPayload struct {
	Amount int `json:"amount"`
	Cash   int `json:"cash"` // Balance after the change
}

// SquarePayload identifies a square
type SquarePayload struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

// BoardPayload contains the full map for map viewed events
type BoardPayload struct {
	Board Board `json:"board"`
}

// PlayersPayload contains player snapshots for player viewed events
type PlayersPayload struct {
	Players []Player `json:"players"`
}

// NextPlayerPayload contains data for next player viewed events
type NextPlayerPayload struct {
	Name string `json:"name"`
}

// GameSavedPayload contains data for game saved events
type GameSavedPayload struct {
	SaveName string `json:"save_name"`
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Winners    []string `json:"winners"`
	RoundLimit bool     `json:"round_limit"` // True if the game ended on the round cap
}

// DebugModePayload contains data for debug mode events
type DebugModePayload struct {
	Enabled bool `json:"enabled"`
}

// ErrorPayload reports a non-fatal failure
type ErrorPayload struct {
	Message string `json:"message"`
}
