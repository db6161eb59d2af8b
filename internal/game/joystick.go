package game

import (
	"math"
	"sync"

	"github.com/vovakirdan/friday-breakfast/internal/core"
)

// Key identifies a steering key of the keyboard fallback.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Joystick maps pointer drags and steering keys to a direction vector.
//
// Both components of the vector lie in [-1, 1] and Y is never positive:
// the player can be steered up or sideways but never back down the floor.
// Input handlers and the frame driver may run on different goroutines, so
// all state is guarded by a mutex.
type Joystick struct {
	mu     sync.Mutex
	radius float64 // maximum knob travel in pointer units
	center Vec2    // widget center, placed by the presentation layer
	origin Vec2    // center captured when the current drag began
	active bool
	knob   Vec2 // clamped offset of the knob from origin
	dir    Vec2

	left, right, up bool
}

// NewJoystick creates a joystick with the given knob radius.
func NewJoystick(radius float64) *Joystick {
	return &Joystick{radius: radius}
}

// SetOrigin places the widget center in pointer coordinates.
// A drag in progress keeps the origin it started with.
func (j *Joystick) SetOrigin(x, y float64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.center = Vec2{X: x, Y: y}
}

// SetPointer begins a drag at (x, y), or moves the drag already in progress.
func (j *Joystick) SetPointer(x, y float64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.active {
		j.active = true
		j.origin = j.center
	}
	j.dir, j.knob = MapOffset(x-j.origin.X, y-j.origin.Y, j.radius)
}

// Release ends the drag and stops the player.
func (j *Joystick) Release() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.active = false
	j.knob = Vec2{}
	j.dir = Vec2{}
}

// SetKey records a steering key press or release and recomputes the vector.
// Left and right held together cancel out.
func (j *Joystick) SetKey(k Key, pressed bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	switch k {
	case KeyLeft:
		j.left = pressed
	case KeyRight:
		j.right = pressed
	case KeyUp:
		j.up = pressed
	default:
		return
	}

	var x, y float64
	if j.left {
		x--
	}
	if j.right {
		x++
	}
	if j.up {
		y = -1
	}
	j.dir = Vec2{X: x, Y: y}
}

// Vector returns the current steering direction.
func (j *Joystick) Vector() Vec2 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dir
}

// Knob returns the knob offset from the widget center, for drawing.
func (j *Joystick) Knob() Vec2 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.knob
}

// Active reports whether a drag is in progress.
func (j *Joystick) Active() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.active
}

// Radius returns the maximum knob travel.
func (j *Joystick) Radius() float64 {
	return j.radius
}

// Reset drops any drag and held keys.
func (j *Joystick) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.active = false
	j.knob = Vec2{}
	j.dir = Vec2{}
	j.left, j.right, j.up = false, false, false
}

// MapOffset converts a drag offset into a steering direction and the
// clamped knob offset. The offset is clamped to radius, normalized by it,
// and the vertical component is limited to non-positive values.
// Degenerate input (zero radius, zero or non-finite offset) yields zero.
func MapOffset(dx, dy, radius float64) (dir, knob Vec2) {
	if !(radius > 0) || !core.Finite(radius) || !core.Finite(dx) || !core.Finite(dy) {
		return Vec2{}, Vec2{}
	}

	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Vec2{}, Vec2{}
	}
	if dist > radius {
		scale := radius / dist
		dx *= scale
		dy *= scale
	}
	knob = Vec2{X: dx, Y: dy}

	nx := core.ClampF(dx/radius, -1, 1)
	ny := core.ClampF(dy/radius, -1, 1)
	return Vec2{X: nx, Y: math.Min(0, ny)}, knob
}
