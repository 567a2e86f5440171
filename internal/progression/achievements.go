package progression

import "strings"

// AchievementInfo is display metadata for an achievement id. The backend
// owns unlocking; this catalog only decorates ids for rendering.
type AchievementInfo struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

var achievementCatalog = map[string]AchievementInfo{
	"first_lesson": {
		ID: "first_lesson", Name: "First Steps",
		Description: "Complete your first lesson", Icon: "🌱",
	},
	"streak_3": {
		ID: "streak_3", Name: "On a Roll",
		Description: "Keep a 3-day streak", Icon: "🔥",
	},
	"streak_7": {
		ID: "streak_7", Name: "Week Warrior",
		Description: "Keep a 7-day streak", Icon: "⚡",
	},
	"perfect_lesson": {
		ID: "perfect_lesson", Name: "Flawless",
		Description: "Score 100% on a lesson", Icon: "💯",
	},
	"level_5": {
		ID: "level_5", Name: "Rising Star",
		Description: "Reach level 5", Icon: "⭐",
	},
	"kannada_champion": {
		ID: "kannada_champion", Name: "Kannada Champion",
		Description: "Reach level 10", Icon: "🏆",
	},
}

// catalogOrder fixes the display order of known achievements.
var catalogOrder = []string{
	"first_lesson", "streak_3", "streak_7",
	"perfect_lesson", "level_5", "kannada_champion",
}

// CatalogAchievements returns the known achievements in display order.
func CatalogAchievements() []AchievementInfo {
	out := make([]AchievementInfo, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		out = append(out, achievementCatalog[id])
	}
	return out
}

// LookupAchievement returns display info for an id. Unknown ids (newer
// backend than client) degrade to a readable name derived from the id.
func LookupAchievement(id string) AchievementInfo {
	if info, ok := achievementCatalog[id]; ok {
		return info
	}
	name := strings.ReplaceAll(id, "_", " ")
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return AchievementInfo{ID: id, Name: name, Icon: "🎖"}
}
