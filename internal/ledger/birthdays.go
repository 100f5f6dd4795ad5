package ledger

import (
	"sort"
	"time"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// BirthdayWindowDays is how far ahead upcoming birthdays are listed
const BirthdayWindowDays = 7

// UpcomingBirthdays lists active members whose next birthday is within window days of today,
// today included, soonest first. Members without a readable birth date are skipped.
func UpcomingBirthdays(members []models.Member, today time.Time, window int) []models.Birthday {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	out := make([]models.Birthday, 0)
	for _, m := range members {
		if !m.Active || m.BirthDate == "" {
			continue
		}
		born, ok := parseISODate(m.BirthDate)
		if !ok {
			continue
		}

		next := time.Date(start.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(start) {
			next = time.Date(start.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		}
		days := int(next.Sub(start).Hours() / 24)
		if days > window {
			continue
		}

		out = append(out, models.Birthday{
			MemberID:  m.ID,
			Name:      m.Name,
			BirthDate: m.BirthDate,
			DaysUntil: days,
			IsToday:   days == 0,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntil < out[j].DaysUntil
	})
	return out
}
