package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Source is a blocking host event source, tcell.Screen satisfies it
type Source interface {
	PollEvent() tcell.Event
}

// Pump forwards translated events from src to out until src is closed or ctx is done
// PollEvent returns nil once the screen is finalized, which ends the pump
func Pump(ctx context.Context, src Source, out chan<- Event) error {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return nil
		}

		translated, ok := Translate(ev)
		if !ok {
			continue
		}

		select {
		case out <- translated:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
