package input

import (
	"testing"

	"dungeondaily/pkg/engine/world"
)

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name         string
		xDiff, yDiff float64
		want         world.Direction
		wantOK       bool
	}{
		{"finger left", 40, 0, world.Left, true},
		{"finger right", -40, 5, world.Right, true},
		{"finger up", 3, 40, world.Up, true},
		{"finger down", 10, -50, world.Down, true},
		{"diagonal tie goes vertical", 35, 35, world.Up, true},
		{"too short horizontal", 29, 0, world.Up, false},
		{"too short vertical", 0, -20, world.Up, false},
		{"exactly threshold", 30, 0, world.Left, true},
		{"no travel", 0, 0, world.Up, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifySwipe(tt.xDiff, tt.yDiff, DefaultSwipeThreshold)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ClassifySwipe(%v, %v) = %s, %v, want %s, %v", tt.xDiff, tt.yDiff, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSwipeDetector_FiresOnce(t *testing.T) {
	s := NewSwipeDetector(0)
	if s.Threshold != DefaultSwipeThreshold {
		t.Fatalf("Threshold = %v, want default", s.Threshold)
	}

	if _, ok := s.Move(0, 0); ok {
		t.Error("Move before Begin should not fire")
	}

	s.Begin(100, 100)
	if _, ok := s.Move(95, 100); ok {
		t.Error("short travel should not fire")
	}
	if !s.Tracking() {
		t.Error("detector should keep tracking after short travel")
	}

	dir, ok := s.Move(60, 100)
	if !ok || dir != world.Left {
		t.Errorf("Move(60,100) = %s, %v, want Left, true", dir, ok)
	}
	if _, ok := s.Move(0, 100); ok {
		t.Error("a touch should fire at most once")
	}
}

func TestSwipeDetector_CustomThreshold(t *testing.T) {
	s := NewSwipeDetector(80)
	s.Begin(0, 0)
	if _, ok := s.Move(0, 50); ok {
		t.Error("travel below custom threshold should not fire")
	}
	if dir, ok := s.Move(0, 90); !ok || dir != world.Down {
		t.Errorf("Move(0,90) = %s, %v, want Down, true", dir, ok)
	}

	s.Begin(0, 0)
	s.Cancel()
	if _, ok := s.Move(200, 0); ok {
		t.Error("cancelled touch should not fire")
	}
}
