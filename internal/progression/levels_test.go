package progression

import "testing"

func TestNextLevelAt(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 250},
		{5, 2000},
		{9, 10000},
		{10, -1},
		{99, -1},
	}

	for _, tt := range tests {
		got := NextLevelAt(tt.level)
		if got != tt.want {
			t.Errorf("NextLevelAt(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestProgressToNext(t *testing.T) {
	tests := []struct {
		name  string
		xp    int
		level int
		want  float64
	}{
		{"level start", 0, 1, 0},
		{"halfway", 50, 1, 0.5},
		{"level boundary", 100, 1, 1},
		{"mid level 2", 175, 2, 0.5},
		{"max level always full", 12000, 10, 1},
		{"xp below floor clamps", 0, 3, 0},
	}

	for _, tt := range tests {
		got := ProgressToNext(tt.xp, tt.level)
		if got != tt.want {
			t.Errorf("%s: ProgressToNext(%d, %d) = %v, want %v", tt.name, tt.xp, tt.level, got, tt.want)
		}
	}
}

func TestLookupAchievement_UnknownID(t *testing.T) {
	info := LookupAchievement("secret_badge")
	if info.Name != "Secret badge" {
		t.Errorf("expected derived name, got %q", info.Name)
	}
	info = LookupAchievement("first_lesson")
	if info.Name != "First Steps" {
		t.Errorf("expected catalog name, got %q", info.Name)
	}
}
