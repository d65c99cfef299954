package controllers

import (
	"time"

	"madrasa/models"
)

type WeekActivity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// WeekBucket groups the activities of one Monday–Sunday calendar week
type WeekBucket struct {
	WeekStartDate string         `json:"week_start_date"`
	WeekEndDate   string         `json:"week_end_date"`
	Activities    []WeekActivity `json:"activities"`
}

// weekStart returns the Monday 00:00 of the week containing t, in t's
// location. Weeks follow the local calendar, not UTC.
func weekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return midnight.AddDate(0, 0, -offset)
}

func describeActivity(event models.ActivityLog) string {
	switch event.ActivityType {
	case models.ActivityTypeLogin:
		return "قام بتسجيل الدخول"
	case models.ActivityTypeQuizSubmit:
		return "سلّم اختبار: " + event.Details
	default:
		return event.Details
	}
}

// AggregateWeekly groups activity events into calendar-week buckets with
// human-readable descriptions. Events keep their input order inside a bucket
// and buckets appear in the order their first event was encountered, so a
// newest-first input yields buckets in descending week order.
func AggregateWeekly(events []models.ActivityLog) []WeekBucket {
	buckets := []WeekBucket{}
	index := make(map[string]int)

	for _, event := range events {
		start := weekStart(event.ActivityTimestamp)
		startDate := start.Format("2006-01-02")

		i, ok := index[startDate]
		if !ok {
			buckets = append(buckets, WeekBucket{
				WeekStartDate: startDate,
				WeekEndDate:   start.AddDate(0, 0, 6).Format("2006-01-02"),
				Activities:    []WeekActivity{},
			})
			i = len(buckets) - 1
			index[startDate] = i
		}

		buckets[i].Activities = append(buckets[i].Activities, WeekActivity{
			Type:        event.ActivityType,
			Description: describeActivity(event),
		})
	}
	return buckets
}
