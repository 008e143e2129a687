package model

// TurnAction is a choice from the per-turn action menu
type TurnAction int

const (
	ActionRollDice TurnAction = iota + 1
	ActionViewMap
	ActionViewPlayer
	ActionViewAllPlayers
	ActionViewNextPlayer
	ActionDebug
)

// JailAction is a choice offered to a jailed player
type JailAction int

const (
	JailActionRoll JailAction = iota + 1
	JailActionPayFine
)

// RoundAction is the choice offered between rounds
type RoundAction int

const (
	RoundActionContinue RoundAction = iota + 1
	RoundActionSaveAndExit
)

// DebugAction is a choice from the debug menu
type DebugAction int

const (
	DebugActionEditCash DebugAction = iota + 1
	DebugActionTeleport
)
