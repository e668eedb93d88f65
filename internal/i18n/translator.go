// Package i18n provides the user-facing translation tables for the two
// supported languages.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

// Language selects a translation table.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Languages lists the supported languages.
var Languages = []Language{English, Arabic}

// Translator resolves translation keys with named-placeholder
// substitution. A key missing from the requested language falls back to
// English, then to the key itself.
type Translator struct {
	tables map[Language]map[string]any
}

// NewTranslator loads the embedded locale tables.
func NewTranslator() (*Translator, error) {
	tables := make(map[Language]map[string]any, len(Languages))
	for _, lang := range Languages {
		raw, err := localesFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", lang, err)
		}
		var table map[string]any
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", lang, err)
		}
		tables[lang] = table
	}
	return &Translator{tables: tables}, nil
}

// T returns the string for a key, substituting {name} placeholders from
// params.
func (tr *Translator) T(lang Language, key string, params map[string]string) string {
	value, ok := tr.lookup(lang, key)
	if !ok {
		return key
	}
	s, ok := value.(string)
	if !ok {
		return key
	}
	for name, v := range params {
		s = strings.ReplaceAll(s, "{"+name+"}", v)
	}
	return s
}

// TList returns the string-array value for a key (weekdays, months).
func (tr *Translator) TList(lang Language, key string) []string {
	value, ok := tr.lookup(lang, key)
	if !ok {
		return nil
	}
	raw, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// MonthName returns the localized name of a month (0-11).
func (tr *Translator) MonthName(lang Language, month int) string {
	months := tr.TList(lang, "months")
	if month < 0 || month >= len(months) {
		return ""
	}
	return months[month]
}

func (tr *Translator) lookup(lang Language, key string) (any, bool) {
	if table, ok := tr.tables[lang]; ok {
		if value, ok := table[key]; ok {
			return value, true
		}
	}
	if lang != English {
		if value, ok := tr.tables[English][key]; ok {
			return value, true
		}
	}
	return nil, false
}
