package frame

// Event is an input the camera controller understands.
type Event interface {
	event()
}

// Wheel is a scroll step. DeltaY uses pixel-style units (about 100 per notch,
// positive when scrolling down).
type Wheel struct {
	DeltaY float64
	Shift  bool
}

// Direction is a discrete movement relative to the camera.
type Direction uint8

const (
	MoveForward Direction = iota + 1
	MoveBack
	MoveLeft
	MoveRight
)

// Move translates the camera by one unit.
type Move struct {
	Dir Direction
}

// PointerMove reports the pointer offset within the surface.
type PointerMove struct {
	X, Y int
}

// Resize reports a new surface size in pixels.
type Resize struct {
	W, H int
}

func (Wheel) event()       {}
func (Move) event()        {}
func (PointerMove) event() {}
func (Resize) event()      {}

const (
	wheelAngleScale = 1000
	wheelZoomScale  = 100
	moveStep        = 1
)

// Update applies ev to s and reports whether the camera or light changed.
//
// Resize never changes state: the host invalidates the renderer's grid instead.
func Update(s State, ev Event) (State, bool) {
	switch ev := ev.(type) {
	case Wheel:
		if ev.DeltaY == 0 {
			return s, false
		}
		if ev.Shift {
			d := s.Orbit.Distance + ev.DeltaY/wheelZoomScale
			if d < 0 {
				d = 0
			}
			if d == s.Orbit.Distance {
				return s, false
			}
			s.Orbit.Distance = d
			return s, true
		}
		s.Orbit.Angle += ev.DeltaY / wheelAngleScale
		return s, true

	case Move:
		dir := s.Orbit.Dir()
		switch ev.Dir {
		case MoveForward:
			s.Pan = s.Pan.Add(dir.Scale(moveStep))
		case MoveBack:
			s.Pan = s.Pan.Sub(dir.Scale(moveStep))
		case MoveRight:
			s.Pan = s.Pan.Add(Right(dir).Scale(moveStep))
		case MoveLeft:
			s.Pan = s.Pan.Sub(Right(dir).Scale(moveStep))
		default:
			return s, false
		}
		return s, true
	}
	return s, false
}
