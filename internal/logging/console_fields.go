package logging

import (
	"log/slog"
	"strings"
)

type infoField struct {
	label string
	value string
}

// Keys listed here are printed first, in this order.
var infoHighlightKeys = []string{
	FieldAlert,
	FieldEventType,
	FieldSource,
	FieldDestination,
	FieldMode,
	FieldFailureKind,
	"error",
	FieldErrorHint,
	FieldImpact,
	"total",
	"succeeded",
	"failed",
	"skipped",
}

func selectInfoFields(attrs []kv) ([]infoField, int) {
	if len(attrs) == 0 {
		return nil, 0
	}
	used := make([]bool, len(attrs))
	result := make([]infoField, 0, len(attrs))
	hidden := 0

	take := func(idx int) {
		used[idx] = true
		attr := attrs[idx]
		if isDebugOnlyKey(attr.key) {
			hidden++
			return
		}
		result = append(result, infoField{label: displayLabel(attr.key), value: formatValueForKey(attr.key, attr.value)})
	}

	for _, key := range infoHighlightKeys {
		for idx, attr := range attrs {
			if !used[idx] && attr.key == key {
				take(idx)
				break
			}
		}
	}
	for idx := range attrs {
		if !used[idx] {
			take(idx)
		}
	}
	return result, hidden
}

func formatValueForKey(key string, v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindBool {
		if v.Bool() {
			return "yes"
		}
		return "no"
	}
	value := formatValue(v)
	if key == "error" {
		const maxLen = 240
		if len(value) > maxLen {
			value = value[:maxLen] + "…"
		}
	}
	return value
}

func isDebugOnlyKey(key string) bool {
	switch key {
	case "", FieldRunID, "lock_path", "config_path":
		return true
	}
	return strings.HasSuffix(key, "_id")
}

func displayLabel(key string) string {
	switch key {
	case FieldAlert:
		return "Alert"
	case FieldEventType:
		return "Event"
	case FieldSource:
		return "From"
	case FieldDestination:
		return "To"
	case FieldFailureKind:
		return "Failure"
	case FieldErrorHint:
		return "Hint"
	default:
		return titleizeKey(key)
	}
}

func titleizeKey(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
