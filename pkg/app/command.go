// Package app holds the interaction state machine: a Session applies logical
// commands to the navigation state, and Run drives a Session with an input
// Source and a render Target.
package app

// Command is one logical user action. Raw key handling lives in the input
// collaborator; the session only ever sees these values.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandMoveUp:
		return "move-up"
	case CommandMoveDown:
		return "move-down"
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	default:
		return "none"
	}
}

// State is the session lifecycle.
type State int

const (
	StateRunning State = iota
	StateExiting
)

func (s State) String() string {
	if s == StateExiting {
		return "exiting"
	}
	return "running"
}
