package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResolve(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		name string
		key  Key
		want Action
	}{
		{"debug key", Key{Code: tcell.KeyRune, Rune: 'd'}, ActionToggleDebug},
		{"burst key", Key{Code: tcell.KeyRune, Rune: 'c'}, ActionBurst},
		{"quit rune", Key{Code: tcell.KeyRune, Rune: 'q'}, ActionQuit},
		{"escape", Key{Code: tcell.KeyEscape}, ActionQuit},
		{"ctrl-c", Key{Code: tcell.KeyCtrlC, Mod: tcell.ModCtrl}, ActionQuit},
		{"unbound rune", Key{Code: tcell.KeyRune, Rune: 'x'}, ActionNone},
		{"uppercase not bound", Key{Code: tcell.KeyRune, Rune: 'D'}, ActionNone},
		{"alt modified", Key{Code: tcell.KeyRune, Rune: 'd', Mod: tcell.ModAlt}, ActionNone},
		{"arrow", Key{Code: tcell.KeyUp}, ActionNone},
		{"enter", Key{Code: tcell.KeyEnter}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Resolve(tt.key))
		})
	}
}

func TestNewKeymap(t *testing.T) {
	km, err := NewKeymap("x", "space")
	require.NoError(t, err)
	assert.Equal(t, 'x', km.Debug)
	assert.Equal(t, ' ', km.Burst)
	assert.Equal(t, ActionBurst, km.Resolve(Key{Code: tcell.KeyRune, Rune: ' '}))

	_, err = NewKeymap("d", "d")
	assert.ErrorContains(t, err, "both")

	_, err = NewKeymap("q", "c")
	assert.ErrorContains(t, err, "reserved")

	_, err = NewKeymap("dd", "c")
	assert.ErrorContains(t, err, "debug key")

	_, err = NewKeymap("d", "")
	assert.ErrorContains(t, err, "burst key")
}

func TestParseKey(t *testing.T) {
	r, err := ParseKey("backslash")
	require.NoError(t, err)
	assert.Equal(t, '\\', r)

	r, err = ParseKey("é")
	require.NoError(t, err)
	assert.Equal(t, 'é', r)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "toggle_debug", ActionToggleDebug.String())
	assert.Equal(t, "unknown", Action(99).String())
}

func TestTranslateResize(t *testing.T) {
	ev, ok := Translate(tcell.NewEventResize(120, 40))
	require.True(t, ok)
	assert.Equal(t, EventResize, ev.Kind)
	assert.Equal(t, 120, ev.Cols)
	assert.Equal(t, 40, ev.Rows)

	_, ok = Translate(tcell.NewEventInterrupt(nil))
	assert.False(t, ok)
}

// scriptedSource replays events, then reports a closed screen
type scriptedSource struct {
	events []tcell.Event
}

func (s *scriptedSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestPumpForwardsUntilClosed(t *testing.T) {
	src := &scriptedSource{events: []tcell.Event{
		tcell.NewEventResize(80, 24),
		tcell.NewEventInterrupt(nil),
		tcell.NewEventResize(100, 30),
	}}
	out := make(chan Event, 4)

	require.NoError(t, Pump(context.Background(), src, out))
	close(out)

	var got []Event
	for ev := range out {
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	assert.Equal(t, 80, got[0].Cols)
	assert.Equal(t, 100, got[1].Cols)
}

// endlessSource never closes, used to verify cancellation while blocked on send
type endlessSource struct{}

func (endlessSource) PollEvent() tcell.Event {
	return tcell.NewEventResize(1, 1)
}

func TestPumpStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Event) // Unbuffered, nobody reads

	done := make(chan error, 1)
	go func() { done <- Pump(ctx, endlessSource{}, out) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("pump did not stop after cancel")
	}
}
