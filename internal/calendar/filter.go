package calendar

import "seedtech-calendar/internal/content"

// FilterPosts narrows a resolved day to the selected platform.
//
// With content.All the result is every platform that has at least one
// post, in the fixed platform order. With a specific platform the result
// is exactly that platform's entry, present even when it has no posts.
func FilterPosts(detail DayDetail, filter content.PlatformID) []PlatformPosts {
	if filter == content.All {
		return detail.Posts
	}

	for _, entry := range detail.Posts {
		if entry.Platform == filter {
			return []PlatformPosts{entry}
		}
	}
	return []PlatformPosts{{Platform: filter, Posts: []content.ContentPost{}}}
}
