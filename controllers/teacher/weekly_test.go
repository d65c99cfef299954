package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa/models"
)

func event(typ, details string, ts time.Time) models.ActivityLog {
	return models.ActivityLog{
		ActivityType:      typ,
		Details:           details,
		ActivityTimestamp: ts,
	}
}

func TestAggregateWeeklyEmptyInput(t *testing.T) {
	buckets := AggregateWeekly(nil)
	assert.Empty(t, buckets)
	assert.NotNil(t, buckets)
}

func TestAggregateWeeklyMondayThroughSundaySameBucket(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 the following Sunday
	events := []models.ActivityLog{
		event(models.ActivityTypeLogin, "", time.Date(2024, 1, 7, 23, 59, 59, 0, time.Local)),
		event(models.ActivityTypeLogin, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)),
	}

	buckets := AggregateWeekly(events)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-01-01", buckets[0].WeekStartDate)
	assert.Equal(t, "2024-01-07", buckets[0].WeekEndDate)
	assert.Len(t, buckets[0].Activities, 2)
}

func TestAggregateWeeklyMondayStartsNewBucket(t *testing.T) {
	events := []models.ActivityLog{
		event(models.ActivityTypeLogin, "", time.Date(2024, 1, 8, 9, 0, 0, 0, time.Local)),
		event(models.ActivityTypeLogin, "", time.Date(2024, 1, 7, 9, 0, 0, 0, time.Local)),
	}

	buckets := AggregateWeekly(events)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-01-08", buckets[0].WeekStartDate)
	assert.Equal(t, "2024-01-14", buckets[0].WeekEndDate)
	assert.Equal(t, "2024-01-01", buckets[1].WeekStartDate)
}

func TestAggregateWeeklyBucketsFollowFirstOccurrence(t *testing.T) {
	// newest-first input yields buckets in descending week order
	events := []models.ActivityLog{
		event(models.ActivityTypeLogin, "", time.Date(2024, 2, 14, 12, 0, 0, 0, time.Local)),
		event(models.ActivityTypeLogin, "", time.Date(2024, 2, 5, 12, 0, 0, 0, time.Local)),
		event(models.ActivityTypeLogin, "", time.Date(2024, 2, 16, 12, 0, 0, 0, time.Local)),
	}

	buckets := AggregateWeekly(events)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-02-12", buckets[0].WeekStartDate)
	assert.Equal(t, "2024-02-05", buckets[1].WeekStartDate)
	assert.Len(t, buckets[0].Activities, 2)
	assert.Len(t, buckets[1].Activities, 1)
}

func TestAggregateWeeklyDescriptions(t *testing.T) {
	events := []models.ActivityLog{
		event(models.ActivityTypeLogin, "ignored", time.Date(2024, 3, 5, 8, 0, 0, 0, time.Local)),
		event(models.ActivityTypeQuizSubmit, "اختبار الوحدة الأولى", time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)),
		event("resource_download", "ملخص الوحدة", time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)),
	}

	buckets := AggregateWeekly(events)
	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Activities, 3)
	assert.Equal(t, "قام بتسجيل الدخول", buckets[0].Activities[0].Description)
	assert.Equal(t, "سلّم اختبار: اختبار الوحدة الأولى", buckets[0].Activities[1].Description)
	assert.Equal(t, "ملخص الوحدة", buckets[0].Activities[2].Description)
}

func TestAggregateWeeklyPreservesEventOrderWithinBucket(t *testing.T) {
	events := []models.ActivityLog{
		event(models.ActivityTypeQuizSubmit, "second", time.Date(2024, 4, 3, 15, 0, 0, 0, time.Local)),
		event(models.ActivityTypeQuizSubmit, "first", time.Date(2024, 4, 2, 15, 0, 0, 0, time.Local)),
	}

	buckets := AggregateWeekly(events)
	require.Len(t, buckets, 1)
	assert.Equal(t, "سلّم اختبار: second", buckets[0].Activities[0].Description)
	assert.Equal(t, "سلّم اختبار: first", buckets[0].Activities[1].Description)
}

func TestAggregateWeeklyIdempotentRead(t *testing.T) {
	events := []models.ActivityLog{
		event(models.ActivityTypeLogin, "", time.Date(2024, 5, 10, 11, 0, 0, 0, time.Local)),
		event(models.ActivityTypeQuizSubmit, "اختبار سريع", time.Date(2024, 5, 2, 11, 0, 0, 0, time.Local)),
	}

	first := AggregateWeekly(events)
	second := AggregateWeekly(events)
	assert.Equal(t, first, second)
}

func TestWeekStartHandlesSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2024, 1, 7, 13, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-01", weekStart(sunday).Format("2006-01-02"))

	monday := time.Date(2024, 1, 1, 13, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-01", weekStart(monday).Format("2006-01-02"))
}
