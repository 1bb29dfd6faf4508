package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventKind discriminates input events
type EventKind uint8

const (
	EventKey EventKind = iota
	EventResize
)

// Key is a decoded key press
type Key struct {
	Code tcell.Key
	Rune rune // Set when Code is tcell.KeyRune
	Mod  tcell.ModMask
}

// Event is a host event delivered to the frame loop
type Event struct {
	Kind EventKind
	Key  Key
	Cols int // Resize only
	Rows int
}

// Translate converts a tcell event, ok is false for events the loop does not consume
func Translate(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k := Key{Code: e.Key(), Mod: e.Modifiers()}
		if k.Code == tcell.KeyRune {
			k.Rune = e.Rune()
		}
		return Event{Kind: EventKey, Key: k}, true
	case *tcell.EventResize:
		cols, rows := e.Size()
		return Event{Kind: EventResize, Cols: cols, Rows: rows}, true
	default:
		return Event{}, false
	}
}
