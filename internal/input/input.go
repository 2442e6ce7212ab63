// Package input maps polled device input onto raw scroll deltas.
package input

// Sample holds the polled state of inputs for a single frame.
type Sample struct {
	Quit             bool
	ToggleFullscreen bool
	ToggleHUD        bool
	Next             bool
	Prev             bool

	// WheelY is the vertical wheel offset; positive scrolls up.
	WheelY float64
}

// Mapper converts samples into scroll deltas. Positive deltas move forward
// through the slides, like scrolling down a page.
type Mapper struct {
	WheelScale float64
	KeyStep    float64
}

// Deltas returns the raw scroll samples carried by s, one per input source,
// in the order they should be applied.
func (m Mapper) Deltas(s Sample) []float64 {
	var out []float64
	if s.WheelY != 0 {
		out = append(out, -s.WheelY*m.WheelScale)
	}
	if s.Next {
		out = append(out, m.KeyStep)
	}
	if s.Prev {
		out = append(out, -m.KeyStep)
	}
	return out
}
