// Package sprite implements sprite-sheet animation: time-driven frame
// selection, sheet geometry and rasterising frames into the cell screen.
package sprite

import (
	"errors"
	"fmt"
	"math"
)

// Keyframe is one entry of a FrameTable: from Offset seconds into the loop
// the animation shows sheet frame Frame.
type Keyframe struct {
	Offset float64
	Frame  int
}

// FrameTable is the timing curve of one looping animation.
// Offsets are strictly increasing and the last offset is the loop period.
type FrameTable []Keyframe

// NewFrameTable pairs the manifest's parallel offset and frame lists.
func NewFrameTable(offsets []float64, frames []int) (FrameTable, error) {
	if len(offsets) != len(frames) {
		return nil, fmt.Errorf("sprite: %d offsets but %d frames", len(offsets), len(frames))
	}

	table := make(FrameTable, len(offsets))
	for i := range offsets {
		table[i] = Keyframe{Offset: offsets[i], Frame: frames[i]}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks the table invariants.
func (t FrameTable) Validate() error {
	if len(t) == 0 {
		return errors.New("sprite: frame table is empty")
	}
	for i, k := range t {
		if k.Frame < 0 {
			return fmt.Errorf("sprite: keyframe %d has negative frame %d", i, k.Frame)
		}
		if math.IsNaN(k.Offset) || math.IsInf(k.Offset, 0) {
			return fmt.Errorf("sprite: keyframe %d has non-finite offset", i)
		}
		if i > 0 && k.Offset <= t[i-1].Offset {
			return fmt.Errorf("sprite: keyframe %d offset %.3f is not after %.3f", i, k.Offset, t[i-1].Offset)
		}
	}
	return nil
}

// Period returns the loop length in seconds.
func (t FrameTable) Period() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Offset
}

// MaxFrame returns the highest sheet frame the table references.
func (t FrameTable) MaxFrame() int {
	highest := 0
	for _, k := range t {
		highest = max(highest, k.Frame)
	}
	return highest
}

// boundaryEpsilon absorbs the rounding math.Mod leaves when elapsed time
// lands on a keyframe offset that is not an exact binary fraction.
const boundaryEpsilon = 1e-9

// SelectFrame returns the sheet frame to show elapsed seconds after the
// animation started. Elapsed time wraps at the table's period; the frame
// belongs to the last keyframe whose offset is strictly before the wrapped
// time, or the first keyframe when none is.
//
// Times within boundaryEpsilon of a keyframe offset count as on it, and
// times within boundaryEpsilon of the period wrap to zero: 0.1+0.3 wraps to
// 0.10000000000000003 under a 0.3 s period and still selects the frame
// before the 0.1 keyframe.
//
// The table must be non-empty.
func SelectFrame(t FrameTable, elapsed float64) int {
	period := t.Period()
	if len(t) == 1 || period <= 0 {
		return t[0].Frame
	}

	elapsed = math.Mod(math.Max(elapsed, 0), period)
	if period-elapsed <= boundaryEpsilon {
		elapsed = 0
	}

	index := 0
	for i, k := range t {
		if k.Offset >= elapsed-boundaryEpsilon {
			break
		}
		index = i
	}
	return t[index].Frame
}
