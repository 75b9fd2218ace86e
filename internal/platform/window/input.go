package window

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/moonrunner/internal/core"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
)

// controls is one frame of player input, already decoded from devices.
type controls struct {
	jump      bool
	fastFall  bool
	start     bool
	confirm   bool
	back      bool
	backspace bool
	quit      bool
	chars     []rune
}

// readControls polls keyboard, mouse and touch for this frame.
func readControls(height int) controls {
	c := controls{
		jump:      anyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
		fastFall:  anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		start:     anyJustPressed(ebiten.KeyR),
		confirm:   anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		back:      anyJustPressed(ebiten.KeyEscape),
		backspace: anyJustPressed(ebiten.KeyBackspace),
		quit:      anyJustPressed(ebiten.KeyQ),
		chars:     ebiten.AppendInputChars(nil),
	}
	if c.confirm {
		c.start = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		c.apply(pointerAction(y, height))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		_, y := ebiten.TouchPosition(id)
		c.apply(pointerAction(y, height))
	}
	return c
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pointerAction maps a click or tap: the upper half jumps, the lower half
// fast-falls.
func pointerAction(y, height int) core.Action {
	if y < height/2 {
		return core.ActionJump
	}
	return core.ActionFastFall
}

func (c *controls) apply(a core.Action) {
	switch a {
	case core.ActionJump:
		c.jump = true
	case core.ActionFastFall:
		c.fastFall = true
	}
}

// nameEntry collects a leaderboard name from typed characters.
type nameEntry struct {
	buf []rune
}

// Append adds printable letters and digits up to the name length.
func (n *nameEntry) Append(chars []rune) {
	for _, r := range chars {
		if len(n.buf) >= leaderboard.NameLen {
			return
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' {
			n.buf = append(n.buf, unicode.ToUpper(r))
		}
	}
}

// Backspace removes the last character.
func (n *nameEntry) Backspace() {
	if len(n.buf) > 0 {
		n.buf = n.buf[:len(n.buf)-1]
	}
}

// Reset clears the name.
func (n *nameEntry) Reset() {
	n.buf = n.buf[:0]
}

// Text returns the raw characters typed so far.
func (n nameEntry) Text() string {
	return string(n.buf)
}

// Value returns the name to store.
func (n nameEntry) Value() string {
	return leaderboard.SanitizeName(string(n.buf))
}
