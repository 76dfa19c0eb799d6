package models

// Activity is a bookable offering for children within an age band. CreditCost
// is per child per booking.
type Activity struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Venue       string     `bson:"venue" json:"venue"`
	Category    string     `bson:"category" json:"category"`
	Icon        string     `bson:"icon,omitempty" json:"icon,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	MinAge      int        `bson:"minAge" json:"minAge"`
	MaxAge      int        `bson:"maxAge" json:"maxAge"`
	CreditCost  int        `bson:"creditCost" json:"creditCost"`
	Slots       []TimeSlot `bson:"slots,omitempty" json:"slots,omitempty"`
}

// AgeEligible reports whether a child of the given age falls within the
// activity's inclusive age band.
func (a Activity) AgeEligible(age int) bool {
	return age >= a.MinAge && age <= a.MaxAge
}
