package progression

// levelFloors mirrors the backend's level table for progress-bar rendering
// only. The client never derives level from XP with it; level always comes
// from the backend.
var levelFloors = map[int]int{
	1:  0,
	2:  100,
	3:  250,
	4:  500,
	5:  1000,
	6:  2000,
	7:  3500,
	8:  5000,
	9:  7500,
	10: 10000,
}

// MaxLevel is the highest level in the mirrored table.
const MaxLevel = 10

// LevelFloor returns the XP at which the given level begins.
func LevelFloor(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelFloors[level]
}

// NextLevelAt returns the XP total required for the next level, or -1 at
// the level cap.
func NextLevelAt(level int) int {
	if level >= MaxLevel {
		return -1
	}
	if level < 1 {
		level = 1
	}
	return levelFloors[level+1]
}

// ProgressToNext returns the fill fraction [0,1] of the progress bar from
// the current level floor to the next, given backend-reported xp and level.
func ProgressToNext(xp, level int) float64 {
	next := NextLevelAt(level)
	if next < 0 {
		return 1
	}
	floor := LevelFloor(level)
	span := next - floor
	if span <= 0 {
		return 1
	}
	frac := float64(xp-floor) / float64(span)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
