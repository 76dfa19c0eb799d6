package models

// TimeSlot is a bookable date/time window for an activity with a finite
// number of remaining spots.
type TimeSlot struct {
	ID         string `bson:"id" json:"id"`
	ActivityID string `bson:"activityId,omitempty" json:"activityId,omitempty"`
	Date       string `bson:"date" json:"date"`   // e.g. "2026-09-12"
	Label      string `bson:"label" json:"label"` // e.g. "Sat 10:00–11:30"
	Start      int    `bson:"start" json:"start"` // minutes from midnight
	End        int    `bson:"end" json:"end"`     // minutes from midnight
	SpotsLeft  int    `bson:"spotsLeft" json:"spotsLeft"`
	Capacity   int    `bson:"capacity" json:"capacity"` // total spots when published
}

// Fits reports whether the slot can still accommodate a party of the given size.
func (s TimeSlot) Fits(partySize int) bool {
	return s.SpotsLeft >= partySize
}
