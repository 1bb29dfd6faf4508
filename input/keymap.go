package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/constants"
)

// Rune aliases for keys that are awkward to write in config files
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Keymap binds the debug toggle and manual burst keys
// Quit is fixed: q, Esc, Ctrl-C
type Keymap struct {
	Debug rune
	Burst rune
}

// DefaultKeymap returns d for debug and c for confetti
func DefaultKeymap() Keymap {
	return Keymap{Debug: constants.KeyToggleDebug, Burst: constants.KeyBurst}
}

// NewKeymap parses key names, a single character or an alias like "space"
func NewKeymap(debug, burst string) (Keymap, error) {
	d, err := ParseKey(debug)
	if err != nil {
		return Keymap{}, fmt.Errorf("debug key: %w", err)
	}
	b, err := ParseKey(burst)
	if err != nil {
		return Keymap{}, fmt.Errorf("burst key: %w", err)
	}
	if d == b {
		return Keymap{}, fmt.Errorf("debug and burst keys are both %q", d)
	}
	if d == constants.KeyQuit || b == constants.KeyQuit {
		return Keymap{}, fmt.Errorf("%q is reserved for quit", constants.KeyQuit)
	}
	return Keymap{Debug: d, Burst: b}, nil
}

// ParseKey resolves a key name to a rune
func ParseKey(name string) (rune, error) {
	if r, ok := runeAliases[name]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("invalid key %q: want a single character or one of space, backslash", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

// Resolve maps a key press to an action, unbound keys yield ActionNone
func (m Keymap) Resolve(k Key) Action {
	switch k.Code {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	if k.Mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return ActionNone
	}

	switch k.Rune {
	case m.Debug:
		return ActionToggleDebug
	case m.Burst:
		return ActionBurst
	case constants.KeyQuit:
		return ActionQuit
	default:
		return ActionNone
	}
}
