// Package simulation carries a voice conversation transcript across
// otherwise-stateless backend calls and owns the session's terminal
// lifecycle.
package simulation

// Info describes one practice scenario the backend can run.
type Info struct {
	ID            string
	Title         string
	Description   string
	Difficulty    string
	XPReward      int
	AgeRestricted bool
}

// Catalog lists every scenario, in display order. The backend owns the
// conversation logic; this is just the menu.
var Catalog = []Info{
	{
		ID:          "auto_driver_sim",
		Title:       "Auto Driver Negotiation",
		Description: "Practice bargaining for a fair auto fare",
		Difficulty:  "intermediate",
		XPReward:    100,
	},
	{
		ID:          "salary_negotiation_sim",
		Title:       "Salary Negotiation",
		Description: "Simulate a conversation with your manager",
		Difficulty:  "advanced",
		XPReward:    150,
	},
	{
		ID:          "crush_conversation_sim",
		Title:       "Coffee Date",
		Description: "Practice casual conversation with someone you like",
		Difficulty:  "intermediate",
		XPReward:    100,
	},
	{
		ID:            "road_rage_sim",
		Title:         "Road Incident Handler",
		Description:   "Learn to de-escalate tense traffic situations",
		Difficulty:    "advanced",
		XPReward:      200,
		AgeRestricted: true,
	},
}

// Lookup returns the catalog entry for a scenario id.
func Lookup(id string) (Info, bool) {
	for _, info := range Catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}
