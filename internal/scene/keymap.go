package scene

import "sort"

// KeyMap maps an input rune to the commands it dispatches, in order.
// A rune bound to several commands runs all of them for a single key press.
type KeyMap struct {
	keys map[rune][]Command
}

// DefaultBindings are the classic keys. 'r' is bound to both Rotate and SetRed:
// one press rotates and then paints the cube red. See KeyMap.Conflicts.
func DefaultBindings() map[Command]rune {
	return map[Command]rune{
		ToggleCurve:    'c',
		Rotate:         'r',
		ToggleLighting: 'l',
		ToggleTexture:  't',
		SetRed:         'r',
		SetGreen:       'g',
		SetBlue:        'b',
		SetWhite:       'w',
	}
}

// NewKeyMap builds a key map from per-command bindings. Commands sharing a rune are dispatched
// in command declaration order. Commands without a binding are unreachable from the keyboard.
func NewKeyMap(bindings map[Command]rune) *KeyMap {
	km := &KeyMap{keys: make(map[rune][]Command)}
	for _, cmd := range Commands() {
		r, ok := bindings[cmd]
		if !ok || r == 0 {
			continue
		}
		km.keys[r] = append(km.keys[r], cmd)
	}
	return km
}

// Lookup returns the commands bound to r (nil if none).
func (km *KeyMap) Lookup(r rune) []Command {
	return km.keys[r]
}

// Dispatch applies every command bound to r to st. Unbound runes are ignored and return false.
func (km *KeyMap) Dispatch(st *State, r rune) (bool, error) {
	cmds := km.keys[r]
	if len(cmds) == 0 {
		return false, nil
	}
	for _, cmd := range cmds {
		if err := st.Apply(cmd); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Conflicts returns the runes bound to more than one command, sorted.
func (km *KeyMap) Conflicts() []rune {
	var out []rune
	for r, cmds := range km.keys {
		if len(cmds) > 1 {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
