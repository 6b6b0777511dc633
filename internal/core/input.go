package core

// Key is a semantic key, abstracted from physical key codes.
// The set is closed; hosts translate their own key events into it.
type Key int

const (
	KeyLeft   Key = iota // A, Left arrow - move paddle left
	KeyRight             // D, Right arrow - move paddle right
	KeyLaunch            // Space - release the ball
	KeyUp                // W, Up arrow - previous level in menu
	KeyDown              // S, Down arrow - next level in menu
	KeyEnter             // Enter - confirm in menu and win screen
	KeyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyLaunch:
		return "Launch"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// KeyState is the held/released table the host refreshes before each frame.
type KeyState [KeyCount]bool

// Set marks a key as held or released. Unknown keys are ignored.
func (s *KeyState) Set(k Key, held bool) {
	if k < 0 || k >= KeyCount {
		return
	}
	s[k] = held
}

// Held reports whether a key is currently held.
func (s KeyState) Held(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s[k]
}

// Pressed reports whether k is held now but was not held in prev.
func (s KeyState) Pressed(prev KeyState, k Key) bool {
	return s.Held(k) && !prev.Held(k)
}

// Clear releases every key.
func (s *KeyState) Clear() {
	*s = KeyState{}
}
