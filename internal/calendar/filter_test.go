package calendar

import (
	"testing"

	"seedtech-calendar/internal/content"
)

func TestFilterPosts(t *testing.T) {
	detail := ResolveDay(testDataset(), 2025, 6, 15)

	t.Run("AllReturnsEveryNonEmptyEntry", func(t *testing.T) {
		entries := FilterPosts(detail, content.All)
		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		if entries[0].Platform != content.Facebook || entries[1].Platform != content.TikTok {
			t.Errorf("Unexpected order: %s, %s", entries[0].Platform, entries[1].Platform)
		}
	})

	t.Run("SpecificPlatform", func(t *testing.T) {
		entries := FilterPosts(detail, content.TikTok)
		if len(entries) != 1 {
			t.Fatalf("Expected 1 entry, got %d", len(entries))
		}
		if entries[0].Platform != content.TikTok || len(entries[0].Posts) != 1 {
			t.Errorf("Expected the tiktok entry with 1 post, got %+v", entries[0])
		}
	})

	t.Run("SpecificPlatformWithoutPosts", func(t *testing.T) {
		entries := FilterPosts(detail, content.LinkedIn)
		if len(entries) != 1 {
			t.Fatalf("Expected 1 entry, got %d", len(entries))
		}
		if entries[0].Platform != content.LinkedIn {
			t.Errorf("Expected linkedin entry, got '%s'", entries[0].Platform)
		}
		if len(entries[0].Posts) != 0 {
			t.Errorf("Expected an empty post list, got %d posts", len(entries[0].Posts))
		}
	})
}

func TestNavigate(t *testing.T) {
	cases := []struct {
		name                 string
		year, month          int
		dir                  Direction
		wantYear, wantMonth  int
	}{
		{"NextWithinYear", 2025, 6, Next, 2025, 7},
		{"PrevWithinYear", 2025, 6, Prev, 2025, 5},
		{"NextRollsOverYear", 2025, 11, Next, 2026, 0},
		{"PrevRollsBackYear", 2025, 0, Prev, 2024, 11},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			y, m := Navigate(c.year, c.month, c.dir)
			if y != c.wantYear || m != c.wantMonth {
				t.Errorf("Navigate(%d, %d, %s) = (%d, %d), expected (%d, %d)",
					c.year, c.month, c.dir, y, m, c.wantYear, c.wantMonth)
			}
		})
	}
}
