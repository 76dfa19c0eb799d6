package models

import "time"

// Child is a guardian's registered child. BirthDate is stored as a
// "2006-01-02" date string.
type Child struct {
	ID         string    `bson:"id" json:"id"`
	GuardianID string    `bson:"guardianId" json:"guardianId"`
	Name       string    `bson:"name" json:"name"`
	BirthDate  string    `bson:"birthDate" json:"birthDate"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AgeAt returns the child's age in whole years at the given time, or -1 when
// the birthdate cannot be parsed.
func (c Child) AgeAt(now time.Time) int {
	birth, err := time.Parse("2006-01-02", c.BirthDate)
	if err != nil {
		return -1
	}
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	if age < 0 {
		return -1
	}
	return age
}

// ChildOption is the wizard-facing view of a child, with eligibility derived
// against one activity's age band.
type ChildOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Eligible bool   `json:"eligible"`
}
