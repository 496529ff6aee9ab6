package airquality

// Level is a national AQI category band.
type Level struct {
	Name     string `json:"name"`
	Max      int    `json:"max"`
	Color    string `json:"color"`
	Advisory string `json:"advisory"`
}

var levels = []Level{
	{"Good", 50, "#22C55E", "Minimal impact. A good day for outdoor activity."},
	{"Satisfactory", 100, "#EAB308", "Minor breathing discomfort for sensitive people."},
	{"Moderate", 200, "#F97316", "Breathing discomfort for people with lung or heart disease, children and older adults."},
	{"Poor", 300, "#EF4444", "Breathing discomfort on prolonged exposure. Limit outdoor exertion."},
	{"Very Poor", 400, "#A855F7", "Respiratory illness on prolonged exposure. Avoid outdoor activity."},
	{"Severe", MaxIndex, "#7C2D12", "Affects healthy people and seriously impacts those with existing disease. Stay indoors."},
}

// LevelFor returns the category for index.
func LevelFor(index int) Level {
	for _, l := range levels {
		if index <= l.Max {
			return l
		}
	}
	return levels[len(levels)-1]
}

// Levels returns all category bands in ascending order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}
