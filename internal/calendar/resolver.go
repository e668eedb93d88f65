// Package calendar resolves the static content schedule for a given day
// and month. All functions are pure: they read the dataset and never
// mutate it.
package calendar

import (
	"fmt"
	"time"

	"seedtech-calendar/internal/content"
)

// PlatformPosts pairs a platform with the posts scheduled for the
// resolved day on that platform.
type PlatformPosts struct {
	Platform content.PlatformID    `json:"platform"`
	Posts    []content.ContentPost `json:"posts"`
}

// DayDetail is the resolved view of a single calendar day.
type DayDetail struct {
	ActiveHours []string        `json:"activeHours"`
	Posts       []PlatformPosts `json:"posts"`
}

// PostDate formats a month (0-11) and day (1-31) as the "MM-DD" key used
// by the scheduled-post tables.
func PostDate(month, day int) string {
	return fmt.Sprintf("%02d-%02d", month+1, day)
}

// Weekday returns the weekday of a date with Sunday = 0, matching the
// convention of the calendar grid.
func Weekday(year, month, day int) int {
	return int(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// ResolveDay returns the active posting windows and the scheduled posts
// for every platform on the given day. Month is 0-11, day is 1-31; an
// out-of-range value yields an empty result. Platforms with no post that
// day are omitted.
func ResolveDay(ds *content.CalendarDataset, year, month, day int) DayDetail {
	date := PostDate(month, day)

	detail := DayDetail{
		ActiveHours: ds.ActivePeriods[Weekday(year, month, day)],
	}
	if detail.ActiveHours == nil {
		detail.ActiveHours = []string{}
	}

	for _, platform := range content.PlatformOrder {
		var matched []content.ContentPost
		for _, post := range ds.Posts(platform) {
			if post.Date == date {
				matched = append(matched, post)
			}
		}
		if len(matched) > 0 {
			detail.Posts = append(detail.Posts, PlatformPosts{Platform: platform, Posts: matched})
		}
	}

	return detail
}

// MonthHasPosts reports which days of a month have at least one scheduled
// post on any platform. Used by the grid to draw day markers.
func MonthHasPosts(ds *content.CalendarDataset, year, month int) map[int]bool {
	marked := make(map[int]bool)
	days := DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		date := PostDate(month, day)
		for _, platform := range content.PlatformOrder {
			found := false
			for _, post := range ds.Posts(platform) {
				if post.Date == date {
					marked[day] = true
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return marked
}

// DaysInMonth returns the number of days in a month (0-11).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday (Sunday = 0) of the first day of a
// month (0-11). The grid uses it to offset the first row.
func FirstWeekday(year, month int) int {
	return Weekday(year, month, 1)
}
