package stats

import "math"

// XP rewards for completion events.
const (
	XPPerCompletion = 10
	XPPerStreakDay  = 5
	XPPerPerfectDay = 25
)

// Level converts cumulative XP into a level number. The curve is quadratic:
// level N starts at N²×100 XP, so Level is non-decreasing and always ≥ 1
// for non-negative XP.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// XPThreshold returns the cumulative XP at which the given level ends and
// level+1 begins. Levels at or below zero have a threshold of 0.
func XPThreshold(level int) int {
	if level <= 0 {
		return 0
	}
	return level * level * 100
}

// LevelProgress returns the fractional progress through the current level as
// a percentage in [0, 100). Thresholds strictly increase for valid levels, so
// the denominator is never zero.
func LevelProgress(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	level := Level(xp)
	floor := XPThreshold(level - 1)
	ceiling := XPThreshold(level)
	return float64(xp-floor) / float64(ceiling-floor) * 100
}

// ApplyToggle returns the new XP total after a completion is toggled on or
// off, clamped at zero on the way down.
func ApplyToggle(xp int, completed bool) int {
	if completed {
		return xp + XPPerCompletion
	}
	xp -= XPPerCompletion
	if xp < 0 {
		xp = 0
	}
	return xp
}
