package models

// Entry is a single journal record. Mood is the only required rating; the
// mood scale (1-5) is implied by the UI and deliberately not enforced here.
// All other ratings and texts are optional, modelled as pointers so that
// "absent" is distinguishable from zero.
type Entry struct {
	EntryID string `json:"entryID" db:"entry_id"`
	UserID  string `json:"userID" db:"user_id"`

	Content string  `json:"content" db:"content"`
	Mood    int     `json:"mood" db:"mood"`
	Emotion *string `json:"emotion,omitempty" db:"emotion"`
	Energy  *int    `json:"energy,omitempty" db:"energy"`
	Sleep   *int    `json:"sleep,omitempty" db:"sleep"`

	// Physical sensation ratings
	JawTension        *int `json:"jawTension,omitempty" db:"jaw_tension"`
	ShoulderTension   *int `json:"shoulderTension,omitempty" db:"shoulder_tension"`
	StomachDiscomfort *int `json:"stomachDiscomfort,omitempty" db:"stomach_discomfort"`
	Headache          *int `json:"headache,omitempty" db:"headache"`

	// Cognitive reframing log
	TriggerEvent    *string `json:"triggerEvent,omitempty" db:"trigger_event"`
	NegativeThought *string `json:"negativeThought,omitempty" db:"negative_thought"`
	ReframedThought *string `json:"reframedThought,omitempty" db:"reframed_thought"`

	// Gratitude & affirmation
	Gratitude1  *string `json:"gratitude1,omitempty" db:"gratitude_1"`
	Gratitude2  *string `json:"gratitude2,omitempty" db:"gratitude_2"`
	Gratitude3  *string `json:"gratitude3,omitempty" db:"gratitude_3"`
	Affirmation *string `json:"affirmation,omitempty" db:"affirmation"`

	AuditFields
}
