package game

import (
	"math"
	"sync"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMapOffset(t *testing.T) {
	diag := 36 / math.Sqrt2

	tests := []struct {
		name           string
		dx, dy, radius float64
		wantDir        Vec2
		wantKnob       Vec2
	}{
		{"centered", 0, 0, 36, Vec2{}, Vec2{}},
		{"full right", 36, 0, 36, Vec2{X: 1}, Vec2{X: 36}},
		{"beyond radius clamps", 72, 0, 36, Vec2{X: 1}, Vec2{X: 36}},
		{"half up", 0, -18, 36, Vec2{Y: -0.5}, Vec2{Y: -18}},
		{"down is ignored", 0, 36, 36, Vec2{}, Vec2{Y: 36}},
		{"down-left keeps x", -18, 18, 36, Vec2{X: -0.5}, Vec2{X: -18, Y: 18}},
		{"far diagonal", -100, -100, 36, Vec2{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}, Vec2{X: -diag, Y: -diag}},
		{"zero radius", 10, 10, 0, Vec2{}, Vec2{}},
		{"negative radius", 10, 10, -5, Vec2{}, Vec2{}},
		{"NaN offset", math.NaN(), 0, 36, Vec2{}, Vec2{}},
		{"infinite offset", math.Inf(1), 0, 36, Vec2{}, Vec2{}},
		{"infinite radius", 1, 1, math.Inf(1), Vec2{}, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, knob := MapOffset(tt.dx, tt.dy, tt.radius)
			if !near(dir.X, tt.wantDir.X) || !near(dir.Y, tt.wantDir.Y) {
				t.Errorf("dir = %+v, want %+v", dir, tt.wantDir)
			}
			if !near(knob.X, tt.wantKnob.X) || !near(knob.Y, tt.wantKnob.Y) {
				t.Errorf("knob = %+v, want %+v", knob, tt.wantKnob)
			}
		})
	}
}

func TestMapOffsetBounds(t *testing.T) {
	for dx := -100.0; dx <= 100; dx += 7 {
		for dy := -100.0; dy <= 100; dy += 7 {
			dir, knob := MapOffset(dx, dy, 36)
			if dir.X < -1 || dir.X > 1 || dir.Y < -1 || dir.Y > 0 {
				t.Fatalf("MapOffset(%v, %v) dir = %+v out of range", dx, dy, dir)
			}
			if math.Hypot(knob.X, knob.Y) > 36+eps {
				t.Fatalf("MapOffset(%v, %v) knob = %+v beyond radius", dx, dy, knob)
			}
		}
	}
}

func TestJoystickDrag(t *testing.T) {
	j := NewJoystick(36)
	j.SetOrigin(100, 100)

	if j.Active() {
		t.Fatal("joystick should start inactive")
	}

	j.SetPointer(100, 64)
	if !j.Active() {
		t.Fatal("SetPointer should begin a drag")
	}
	if v := j.Vector(); !near(v.X, 0) || !near(v.Y, -1) {
		t.Errorf("Vector() = %+v, want {0 -1}", v)
	}

	// Moving the widget mid-drag keeps the captured origin.
	j.SetOrigin(0, 0)
	j.SetPointer(136, 100)
	if v := j.Vector(); !near(v.X, 1) || !near(v.Y, 0) {
		t.Errorf("Vector() = %+v, want {1 0}", v)
	}
	if k := j.Knob(); !near(k.X, 36) || !near(k.Y, 0) {
		t.Errorf("Knob() = %+v, want {36 0}", k)
	}

	j.Release()
	if j.Active() {
		t.Error("Release should end the drag")
	}
	if v := j.Vector(); v != (Vec2{}) {
		t.Errorf("Vector() after Release = %+v, want zero", v)
	}
	if k := j.Knob(); k != (Vec2{}) {
		t.Errorf("Knob() after Release = %+v, want zero", k)
	}

	// The next drag picks up the new origin.
	j.SetPointer(0, 18)
	if v := j.Vector(); v != (Vec2{}) {
		t.Errorf("downward drag Vector() = %+v, want zero", v)
	}
}

func TestJoystickKeys(t *testing.T) {
	tests := []struct {
		name  string
		press []Key
		want  Vec2
	}{
		{"none", nil, Vec2{}},
		{"left", []Key{KeyLeft}, Vec2{X: -1}},
		{"right", []Key{KeyRight}, Vec2{X: 1}},
		{"up", []Key{KeyUp}, Vec2{Y: -1}},
		{"up right", []Key{KeyUp, KeyRight}, Vec2{X: 1, Y: -1}},
		{"left and right cancel", []Key{KeyLeft, KeyRight}, Vec2{}},
		{"all", []Key{KeyLeft, KeyRight, KeyUp}, Vec2{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJoystick(36)
			for _, k := range tt.press {
				j.SetKey(k, true)
			}
			if v := j.Vector(); v != tt.want {
				t.Errorf("Vector() = %+v, want %+v", v, tt.want)
			}
		})
	}
}

func TestJoystickKeyRelease(t *testing.T) {
	j := NewJoystick(36)
	j.SetKey(KeyUp, true)
	j.SetKey(KeyLeft, true)
	j.SetKey(KeyUp, false)

	if v := j.Vector(); v != (Vec2{X: -1}) {
		t.Errorf("Vector() = %+v, want {-1 0}", v)
	}

	j.SetKey(KeyLeft, false)
	if v := j.Vector(); v != (Vec2{}) {
		t.Errorf("Vector() = %+v, want zero", v)
	}
}

func TestJoystickReset(t *testing.T) {
	j := NewJoystick(36)
	j.SetKey(KeyUp, true)
	j.SetPointer(10, -10)
	j.Reset()

	if j.Active() || j.Vector() != (Vec2{}) || j.Knob() != (Vec2{}) {
		t.Errorf("Reset left state behind: active=%v vector=%+v knob=%+v", j.Active(), j.Vector(), j.Knob())
	}

	// Held keys are forgotten too.
	j.SetKey(KeyRight, true)
	if v := j.Vector(); v != (Vec2{X: 1}) {
		t.Errorf("Vector() = %+v, want {1 0}", v)
	}
}

func TestKeyString(t *testing.T) {
	if KeyLeft.String() != "Left" || KeyRight.String() != "Right" || KeyUp.String() != "Up" {
		t.Error("unexpected key names")
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q", Key(99).String())
	}
}

func TestJoystickConcurrentAccess(t *testing.T) {
	j := NewJoystick(36)
	j.SetOrigin(100, 100)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 500 {
			j.SetPointer(100+float64(i%80-40), 100+float64(i%60-30))
			if i%50 == 0 {
				j.Release()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := range 500 {
			j.SetKey(Key(i%3), i%2 == 0)
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		v := j.Vector()
		if v.Y > eps {
			t.Fatalf("Vector().Y = %g, should never point down", v.Y)
		}
		if v.X < -1-eps || v.X > 1+eps || v.Y < -1-eps {
			t.Fatalf("Vector() = %+v out of range", v)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}
