package tui

import (
	"time"

	"github.com/vovakirdan/friday-breakfast/internal/game"
)

// keyHold emulates key-up events. Terminals only report presses and
// auto-repeats, so a steering key counts as held until no repeat has
// arrived for the hold window.
type keyHold struct {
	window time.Duration
	seen   map[game.Key]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{
		window: window,
		seen:   make(map[game.Key]time.Time),
	}
}

// press records a press or repeat. It returns true when the key was not
// already held.
func (h *keyHold) press(k game.Key, now time.Time) bool {
	_, held := h.seen[k]
	h.seen[k] = now
	return !held
}

// expire releases every key whose last repeat is older than the window and
// returns them.
func (h *keyHold) expire(now time.Time) []game.Key {
	var released []game.Key
	for _, k := range []game.Key{game.KeyLeft, game.KeyRight, game.KeyUp} {
		last, ok := h.seen[k]
		if ok && now.Sub(last) > h.window {
			delete(h.seen, k)
			released = append(released, k)
		}
	}
	return released
}

// held reports whether k is currently held.
func (h *keyHold) held(k game.Key) bool {
	_, ok := h.seen[k]
	return ok
}

// clear forgets every key.
func (h *keyHold) clear() {
	clear(h.seen)
}
