package input

import "dungeondaily/pkg/engine/world"

// DefaultSwipeThreshold is the minimum travel in pixels before a touch counts as a swipe
const DefaultSwipeThreshold = 30

// SwipeDetector turns touch travel into a direction. The axis with the larger
// absolute travel wins (ties go to the vertical axis), and travel shorter than
// Threshold along that axis is ignored until the finger moves further.
type SwipeDetector struct {
	Threshold float64

	startX, startY float64
	tracking       bool
}

// NewSwipeDetector creates a detector, using DefaultSwipeThreshold when threshold <= 0
func NewSwipeDetector(threshold float64) *SwipeDetector {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeDetector{Threshold: threshold}
}

// Begin records where a touch started
func (s *SwipeDetector) Begin(x, y float64) {
	s.startX, s.startY = x, y
	s.tracking = true
}

// Tracking reports whether a touch is in progress and has not fired yet
func (s *SwipeDetector) Tracking() bool {
	return s.tracking
}

// Cancel forgets the current touch
func (s *SwipeDetector) Cancel() {
	s.tracking = false
}

// Move reports the swipe direction once the touch at (x, y) has travelled far
// enough. A touch fires at most once; call Begin again for the next swipe.
func (s *SwipeDetector) Move(x, y float64) (world.Direction, bool) {
	if !s.tracking {
		return world.Up, false
	}

	dir, ok := ClassifySwipe(s.startX-x, s.startY-y, s.Threshold)
	if ok {
		s.tracking = false
	}
	return dir, ok
}

// ClassifySwipe maps a start-minus-end displacement to a direction.
// Positive xDiff means the finger moved left, positive yDiff means it moved up.
func ClassifySwipe(xDiff, yDiff, threshold float64) (world.Direction, bool) {
	absX, absY := abs(xDiff), abs(yDiff)

	if absX > absY {
		if absX < threshold {
			return world.Up, false
		}
		if xDiff > 0 {
			return world.Left, true
		}
		return world.Right, true
	}

	if absY < threshold {
		return world.Up, false
	}
	if yDiff > 0 {
		return world.Up, true
	}
	return world.Down, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
