package ingest

import (
	"strings"
	"time"

	"taskflow.app/server/internal/model"
)

// ParsedMessage is the structured result of running the marker heuristics
// over free-form message text. Unrecognized lines stay in Body.
type ParsedMessage struct {
	Priority *model.TaskPriority
	DueDate  *time.Time
	TaskType *model.TaskType
	Body     string
}

// ParseMarkers scans message text for inline markers and strips them from
// the body. Recognized forms, one per line, case-insensitive:
//
//	priority: high
//	due: 2026-01-02
//	type: sprint
//
// Lines with unknown marker values are kept verbatim.
func ParseMarkers(text string) ParsedMessage {
	var parsed ParsedMessage
	var kept []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		key, value, found := strings.Cut(trimmed, ":")
		if !found {
			kept = append(kept, line)
			continue
		}
		value = strings.TrimSpace(strings.ToLower(value))

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "priority":
			p := model.TaskPriority(value)
			if p.Valid() {
				parsed.Priority = &p
				continue
			}
		case "due":
			if t, err := time.Parse("2006-01-02", value); err == nil {
				parsed.DueDate = &t
				continue
			}
		case "type":
			tt := model.TaskType(value)
			if tt.Valid() {
				parsed.TaskType = &tt
				continue
			}
		}
		kept = append(kept, line)
	}

	parsed.Body = strings.TrimSpace(strings.Join(kept, "\n"))
	return parsed
}
