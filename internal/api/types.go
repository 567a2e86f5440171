package api

import "encoding/json"

// GuestUser is the response to creating a guest account.
type GuestUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
}

// Profile is the authoritative progression snapshot for a user.
type Profile struct {
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	XP           int      `json:"xp"`
	Level        int      `json:"level"`
	Streak       int      `json:"streak"`
	Achievements []string `json:"achievements"`
}

// Achievement is a backend-defined unlockable milestone.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xp_reward"`
}

// Lesson is one exercise with a type-discriminated content payload.
// Content stays raw here; the lessons package owns the typed decode.
type Lesson struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

// Track is a named, ordered collection of lessons.
type Track struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	Lessons       []Lesson `json:"lessons"`
	LessonCount   int      `json:"lesson_count,omitempty"`
	HasSimulation bool     `json:"has_simulation,omitempty"`
	AgeRestricted bool     `json:"age_restricted,omitempty"`
}

// SubmitLessonInput carries a finished lesson attempt to the backend.
// The backend owns all XP, level, streak and achievement computation.
type SubmitLessonInput struct {
	UserID    string `json:"user_id"`
	TrackID   string `json:"track_id"`
	LessonID  string `json:"lesson_id"`
	Score     int    `json:"score"`
	TimeSpent int    `json:"time_spent"`
}

// LessonResult is the authoritative progression delta for a submission.
type LessonResult struct {
	Success         bool          `json:"success"`
	XPEarned        int           `json:"xp_earned"`
	TotalXP         int           `json:"total_xp"`
	Level           int           `json:"level"`
	LevelUp         bool          `json:"level_up"`
	Streak          int           `json:"streak"`
	NewAchievements []Achievement `json:"new_achievements"`
	XPForNextLevel  int           `json:"xp_for_next_level"`
	NextLevelTotal  int           `json:"next_level_total"`
	LessonCompleted bool          `json:"lesson_completed"`
}

// LeaderboardEntry is one row of the global leaderboard, in backend order.
type LeaderboardEntry struct {
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
}

// LeaderboardPage is the full leaderboard response.
type LeaderboardPage struct {
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	TotalPlayers int                `json:"total_players"`
}

// UserStats are display-only derived stats from the progress endpoint.
type UserStats struct {
	GlobalRank       int `json:"global_rank"`
	LessonsCompleted int `json:"lessons_completed"`
	TotalTimeSpent   int `json:"total_time_spent"`
}

// UserProgress wraps the stats block of the progress endpoint.
type UserProgress struct {
	Stats UserStats `json:"stats"`
}

// DuelRound is the target word for one duel round. The word is carried in
// both scripts; the letters slice is the multiset the player arranges.
type DuelRound struct {
	Kannada     string   `json:"kannada"`
	Roman       string   `json:"roman"`
	Letters     []string `json:"letters"`
	ImageBase64 string   `json:"image_base64"`
}

// ConversationTurn is one turn of a simulation transcript. The history
// slice round-trips to the backend wholesale on every converse call.
type ConversationTurn struct {
	Role    string `json:"role"` // system | user | assistant
	Content string `json:"content"`
}

// StartSimulationInput opens a simulation conversation.
type StartSimulationInput struct {
	SimulationType string `json:"simulation_type"`
	UserID         string `json:"user_id"`
	AgeVerified    bool   `json:"age_verified"`
}

// ConverseInput carries one recorded user turn plus the full history.
type ConverseInput struct {
	SimulationType string             `json:"simulation_type"`
	History        []ConversationTurn `json:"history"`
	UserID         string             `json:"user_id"`
}

// SimulationReply is the backend's response to a start or converse call.
type SimulationReply struct {
	Text            string             `json:"text"`
	AudioURL        string             `json:"audio_url"`
	History         []ConversationTurn `json:"history"`
	EndConversation bool               `json:"end_conversation,omitempty"`
	Score           int                `json:"score,omitempty"`
	Feedback        map[string]string  `json:"feedback,omitempty"`
}

// RoomSession holds credentials for the real-time media room.
type RoomSession struct {
	RoomName    string `json:"room_name"`
	AccessToken string `json:"access_token"`
	LiveKitURL  string `json:"livekit_url"`
}
