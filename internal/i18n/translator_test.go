package i18n

import "testing"

func TestTranslator(t *testing.T) {
	tr, err := NewTranslator()
	if err != nil {
		t.Fatalf("Failed to load locales: %v", err)
	}

	t.Run("SimpleKey", func(t *testing.T) {
		if got := tr.T(English, "sudan", nil); got != "Sudan" {
			t.Errorf("Expected 'Sudan', got '%s'", got)
		}
		if got := tr.T(Arabic, "sudan", nil); got != "السودان" {
			t.Errorf("Unexpected arabic value: '%s'", got)
		}
	})

	t.Run("PlaceholderSubstitution", func(t *testing.T) {
		got := tr.T(English, "calendarIntro", map[string]string{"country": "Uganda"})
		want := "Scheduled posts for Uganda. Click a day for details."
		if got != want {
			t.Errorf("Expected '%s', got '%s'", want, got)
		}
	})

	t.Run("MultiplePlaceholders", func(t *testing.T) {
		got := tr.T(English, "modalTitle", map[string]string{"month": "July", "day": "15"})
		if got != "Schedule for July 15" {
			t.Errorf("Unexpected result: '%s'", got)
		}
	})

	t.Run("MissingKeyFallsBackToKey", func(t *testing.T) {
		if got := tr.T(English, "noSuchKey", nil); got != "noSuchKey" {
			t.Errorf("Expected key echo, got '%s'", got)
		}
	})

	t.Run("ArabicFallsBackToEnglish", func(t *testing.T) {
		// agriTopicsTitle exists in both, topicMaizeTitle only in en
		if got := tr.T(Arabic, "topicMaizeTitle", nil); got != "Maize" {
			t.Errorf("Expected english fallback 'Maize', got '%s'", got)
		}
	})

	t.Run("Lists", func(t *testing.T) {
		weekdays := tr.TList(English, "weekdays")
		if len(weekdays) != 7 {
			t.Fatalf("Expected 7 weekdays, got %d", len(weekdays))
		}
		if weekdays[0] != "Sunday" {
			t.Errorf("Week must start on Sunday, got '%s'", weekdays[0])
		}
		months := tr.TList(Arabic, "months")
		if len(months) != 12 {
			t.Errorf("Expected 12 months, got %d", len(months))
		}
	})

	t.Run("MonthName", func(t *testing.T) {
		if got := tr.MonthName(English, 6); got != "July" {
			t.Errorf("Expected 'July', got '%s'", got)
		}
		if got := tr.MonthName(English, 12); got != "" {
			t.Errorf("Expected empty for out-of-range month, got '%s'", got)
		}
	})

	t.Run("ListKeyAsString", func(t *testing.T) {
		if got := tr.T(English, "weekdays", nil); got != "weekdays" {
			t.Errorf("Array value requested as string should echo the key, got '%s'", got)
		}
	})
}
