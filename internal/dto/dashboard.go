package dto

// WeeklyStats is the aggregate bundle computed over the trailing seven-day
// window. Every field is nullable: a nil value means "no data" for that
// statistic and is rendered as JSON null.
type WeeklyStats struct {
	AvgMood       *float64 `json:"avgMood"`
	MaxMood       *int     `json:"maxMood"`
	MinMood       *int     `json:"minMood"`
	CommonEmotion *string  `json:"commonEmotion"`
	AvgSleep      *float64 `json:"avgSleep"`
}

// DashboardResponse is everything the dashboard view needs: the latest
// entries, the weekly aggregates, the consecutive-day streak and the current
// week's reflection if one has been saved.
type DashboardResponse struct {
	Entries          []EntryResponse     `json:"entries"`
	WeeklyStats      WeeklyStats         `json:"weeklyStats"`
	Streak           int                 `json:"streak"`
	WeeklyReflection *ReflectionResponse `json:"weeklyReflection"`
}
