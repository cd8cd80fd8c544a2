package model

import (
	"github.com/pkg/errors"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/engine"
)

type CommandType string

const (
	CommandTouch  CommandType = "touch"
	CommandResume CommandType = "resume"
	CommandExit   CommandType = "exit"
	CommandStart  CommandType = "start"
)

// Command is sent by a client to drive the host.
type Command struct {
	Type      CommandType `json:"type"`
	Direction string      `json:"direction,omitempty"`
	Portal    string      `json:"portal,omitempty"`

	// Client is set by the bridge from the connection.
	Client string `json:"-"`
}

func (c Command) Validate() error {
	switch c.Type {
	case CommandTouch:
		if _, ok := engine.ParseDirection(c.Direction); !ok {
			return errors.Errorf("touch: unknown direction %q", c.Direction)
		}
	case CommandResume:
		if _, err := content.ParseKind(c.Portal); err != nil {
			return errors.Wrap(err, "resume")
		}
	case CommandExit, CommandStart:
	default:
		return errors.Errorf("unknown command %q", c.Type)
	}
	return nil
}

// TouchDirection is the parsed direction of a valid touch command.
func (c Command) TouchDirection() engine.Direction {
	d, _ := engine.ParseDirection(c.Direction)
	return d
}

// ResumeKind is the parsed portal of a valid resume command; empty resumes
// without cooldown.
func (c Command) ResumeKind() content.Kind {
	k, _ := content.ParseKind(c.Portal)
	return k
}
