package constants

// Default key bindings
const (
	KeyToggleDebug = 'd'
	KeyBurst       = 'c'
	KeyQuit        = 'q'
)
