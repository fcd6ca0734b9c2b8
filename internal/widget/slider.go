package widget

import (
	"fmt"
	"math"
)

// Slider holds a value in [Min, Max]. Every mutation is clamped.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Init  float64

	val       float64
	observers observers[func(float64)]
}

// NewSlider returns a slider at init. init is clamped into [min, max]; min
// and max are swapped when given in reverse.
func NewSlider(label string, min, max, init float64) *Slider {
	if min > max {
		min, max = max, min
	}
	s := &Slider{Label: label, Min: min, Max: max}
	s.Init = s.clamp(init)
	s.val = s.Init
	return s
}

func (s *Slider) Value() float64 { return s.val }

// Set moves the slider to v (clamped) and notifies observers when the value
// actually changed. It reports whether it did.
func (s *Slider) Set(v float64) bool {
	v = s.clamp(v)
	if v == s.val {
		return false
	}
	s.val = v
	for _, fn := range s.observers.snapshot() {
		fn(v)
	}
	return true
}

// Step moves the slider by delta.
func (s *Slider) Step(delta float64) bool {
	return s.Set(s.val + delta)
}

// Fraction is the relative position of the value in the range, in [0, 1].
func (s *Slider) Fraction() float64 {
	span := s.Max - s.Min
	if span == 0 {
		return 0
	}
	return (s.val - s.Min) / span
}

// SetFraction maps f in [0, 1] onto the range; used for pointer drags.
func (s *Slider) SetFraction(f float64) bool {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return s.Set(s.Min + f*(s.Max-s.Min))
}

func (s *Slider) Reset() bool { return s.Set(s.Init) }

// OnChanged registers fn and returns an id for Disconnect.
func (s *Slider) OnChanged(fn func(float64)) int {
	return s.observers.add(fn)
}

func (s *Slider) Disconnect(id int) bool {
	return s.observers.remove(id)
}

func (s *Slider) String() string {
	return fmt.Sprintf("%s %.3f [%.3f, %.3f]", s.Label, s.val, s.Min, s.Max)
}

func (s *Slider) clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = s.val
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}
