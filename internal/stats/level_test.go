package stats

import "testing"

func TestLevel_Curve(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{900, 4},
		{-50, 1}, // negative clamps rather than panicking
	}
	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevel_NonDecreasing(t *testing.T) {
	prev := Level(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := Level(xp)
		if cur < prev {
			t.Fatalf("Level decreased at xp=%d: %d -> %d", xp, prev, cur)
		}
		prev = cur
	}
}

func TestXPThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{-3, 0},
		{1, 100},
		{2, 400},
		{3, 900},
	}
	for _, tt := range tests {
		if got := XPThreshold(tt.level); got != tt.want {
			t.Errorf("XPThreshold(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelProgress_AtExactThresholdIsZero(t *testing.T) {
	// xp=900 is exactly the start of level 4.
	if got := Level(900); got != 4 {
		t.Fatalf("Level(900) = %d, want 4", got)
	}
	if got := LevelProgress(900); got != 0 {
		t.Errorf("LevelProgress(900) = %f, want 0", got)
	}
}

func TestLevelProgress_JustBelowNextThreshold(t *testing.T) {
	if got := LevelProgress(399); got >= 100 {
		t.Errorf("LevelProgress(399) = %f, want < 100", got)
	}
	if got := LevelProgress(399); got <= 0 {
		t.Errorf("LevelProgress(399) = %f, want > 0", got)
	}
}

func TestApplyToggle_OnThenOffRestoresXP(t *testing.T) {
	start := 250
	up := ApplyToggle(start, true)
	if up != start+XPPerCompletion {
		t.Errorf("toggle on: got %d, want %d", up, start+XPPerCompletion)
	}
	down := ApplyToggle(up, false)
	if down != start {
		t.Errorf("toggle off: got %d, want %d", down, start)
	}
}

func TestApplyToggle_ClampsAtZero(t *testing.T) {
	if got := ApplyToggle(5, false); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
	if got := ApplyToggle(0, false); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}
