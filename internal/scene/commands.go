package scene

import "fmt"

// Command is one symbol of the closed input alphabet.
type Command int

const (
	ToggleCurve Command = iota
	Rotate
	ToggleLighting
	ToggleTexture
	SetRed
	SetGreen
	SetBlue
	SetWhite
)

var commandNames = [...]string{
	ToggleCurve:    "toggleCurve",
	Rotate:         "rotate",
	ToggleLighting: "toggleLighting",
	ToggleTexture:  "toggleTexture",
	SetRed:         "setRed",
	SetGreen:       "setGreen",
	SetBlue:        "setBlue",
	SetWhite:       "setWhite",
}

// Commands lists every command in declaration order.
func Commands() []Command {
	out := make([]Command, len(commandNames))
	for i := range commandNames {
		out[i] = Command(i)
	}
	return out
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand returns the command whose String form is name (e.g. "toggleCurve").
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}
