package storage

const (
	ModeOnline   = "online"
	ModePresence = "presence"
)

const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// Event is a scheduled occurrence. Date is a "YYYY-MM-DD" calendar date,
// comparable lexicographically; StartTime and EndTime are "HH:MM" on that
// same day. Duration is derived as endTime minus startTime in minutes and
// goes negative when endTime precedes startTime; that value is stored and
// passed through unchanged. Recurrence is a stored tag only, never
// expanded into repeated occurrences.
type Event struct {
	ID         int64  `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	Date       string `db:"date" json:"date"`
	StartTime  string `db:"start_time" json:"startTime"`
	EndTime    string `db:"end_time" json:"endTime"`
	Duration   int    `db:"duration" json:"duration"`
	Mode       string `db:"mode" json:"mode"`
	Location   string `db:"location" json:"location"`
	MeetingURL string `db:"meeting_url" json:"meetingUrl"`
	EntityID   int64  `db:"entity_id" json:"entityId"`
	Materials  string `db:"materials" json:"materials"`
	Notes      string `db:"notes" json:"notes"`
	Recurrence string `db:"recurrence" json:"recurrence"`
	CreatedAt  int64  `db:"created_at" json:"createdAt"`
	UpdatedAt  int64  `db:"updated_at" json:"updatedAt"`
}

// EventPatch carries the fields of a partial update; nil fields keep the
// stored value. ID and CreatedAt are never patched.
type EventPatch struct {
	Title      *string
	Date       *string
	StartTime  *string
	EndTime    *string
	Duration   *int
	Mode       *string
	Location   *string
	MeetingURL *string
	EntityID   *int64
	Materials  *string
	Notes      *string
	Recurrence *string
	UpdatedAt  *int64
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.Mode != nil {
		e.Mode = *p.Mode
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.MeetingURL != nil {
		e.MeetingURL = *p.MeetingURL
	}
	if p.EntityID != nil {
		e.EntityID = *p.EntityID
	}
	if p.Materials != nil {
		e.Materials = *p.Materials
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Recurrence != nil {
		e.Recurrence = *p.Recurrence
	}
	if p.UpdatedAt != nil {
		e.UpdatedAt = *p.UpdatedAt
	}
}
