// File: booking/catalog.go
package booking

import (
	"fmt"
	"time"

	"kidsbook/models"
)

// Static catalog of activity definitions, in display order. Serves discovery
// and acts as the fallback data source when an activity has not been listed
// in the database.
var activityCatalog = []models.Activity{
	{
		ID:          "swim-starters",
		Name:        "Swim Starters",
		Venue:       "Riverside Aquatic Centre",
		Category:    "Sports",
		Icon:        "🏊",
		Description: "Beginner swim classes in small groups.",
		MinAge:      5,
		MaxAge:      9,
		CreditCost:  2,
	},
	{
		ID:          "junior-climbers",
		Name:        "Junior Climbers",
		Venue:       "Boulder Barn",
		Category:    "Sports",
		Icon:        "🧗",
		Description: "Indoor climbing with certified instructors.",
		MinAge:      7,
		MaxAge:      12,
		CreditCost:  3,
	},
	{
		ID:          "mini-makers",
		Name:        "Mini Makers",
		Venue:       "The Craft Loft",
		Category:    "Arts & Crafts",
		Icon:        "🎨",
		Description: "Hands-on craft sessions for younger kids.",
		MinAge:      4,
		MaxAge:      8,
		CreditCost:  1,
	},
	{
		ID:          "code-club",
		Name:        "Code Club",
		Venue:       "City Library Makerspace",
		Category:    "STEM",
		Icon:        "💻",
		Description: "Block-based programming for beginners.",
		MinAge:      8,
		MaxAge:      13,
		CreditCost:  2,
	},
	{
		ID:          "forest-explorers",
		Name:        "Forest Explorers",
		Venue:       "Elm Park Rangers Station",
		Category:    "Outdoors",
		Icon:        "🌲",
		Description: "Guided nature walks and den building.",
		MinAge:      5,
		MaxAge:      11,
		CreditCost:  2,
	},
}

// GetCatalogActivities returns the static activity definitions in catalog
// order, optionally filtered to those a child of the given age could attend.
// age < 0 disables the filter.
func GetCatalogActivities(age int) []models.Activity {
	activities := make([]models.Activity, 0, len(activityCatalog))
	for _, activity := range activityCatalog {
		if age >= 0 && !activity.AgeEligible(age) {
			continue
		}
		activities = append(activities, activity)
	}
	return activities
}

// GetCatalogActivity returns the catalog entry with demo slots attached for
// the next two weekends.
func GetCatalogActivity(activityID string) (*models.Activity, error) {
	for _, activity := range activityCatalog {
		if activity.ID == activityID {
			activity.Slots = defaultSlots(activity.ID, time.Now())
			return &activity, nil
		}
	}
	return nil, fmt.Errorf("activity with ID %s not found", activityID)
}

// defaultSlots builds weekend morning/afternoon slots for the next two
// Saturdays. Used only for catalog activities with no listed schedule.
func defaultSlots(activityID string, now time.Time) []models.TimeSlot {
	daysUntilSaturday := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	if daysUntilSaturday == 0 {
		daysUntilSaturday = 7
	}
	firstSaturday := now.AddDate(0, 0, daysUntilSaturday)

	var slots []models.TimeSlot
	for week := 0; week < 2; week++ {
		day := firstSaturday.AddDate(0, 0, week*7)
		date := day.Format("2006-01-02")
		slots = append(slots,
			models.TimeSlot{
				ID:         fmt.Sprintf("%s-%s-am", activityID, date),
				ActivityID: activityID,
				Date:       date,
				Label:      "Sat 10:00–11:30",
				Start:      600,
				End:        690,
				SpotsLeft:  8,
				Capacity:   8,
			},
			models.TimeSlot{
				ID:         fmt.Sprintf("%s-%s-pm", activityID, date),
				ActivityID: activityID,
				Date:       date,
				Label:      "Sat 14:00–15:30",
				Start:      840,
				End:        930,
				SpotsLeft:  8,
				Capacity:   8,
			},
		)
	}
	return slots
}
