package model

// ScheduleMinutes is the fixed length of the party schedule.
const ScheduleMinutes = 60

// ScheduleSlot is one minute of the activity schedule.
type ScheduleSlot struct {
	Minute int    `json:"minute"`
	Text   string `json:"text"`
}

// NormalizeSchedule returns exactly ScheduleMinutes slots ordered by minute.
// Text from slots with a valid minute is kept; later duplicates win.
func NormalizeSchedule(slots []ScheduleSlot) []ScheduleSlot {
	out := make([]ScheduleSlot, ScheduleMinutes)
	for m := range out {
		out[m].Minute = m
	}
	for _, s := range slots {
		if s.Minute < 0 || s.Minute >= ScheduleMinutes {
			continue
		}
		out[s.Minute].Text = s.Text
	}
	return out
}
