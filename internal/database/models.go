package database

import (
	"encoding/json"
	"fmt"
	"time"
)

// CalendarDefinition is a stored calendar configuration: the inputs the
// factory needs to synthesize a variant, not the variant itself.
type CalendarDefinition struct {
	Name      string         `json:"name"`
	Cycle     string         `json:"cycle"`   // "month" or "week"
	Options   map[string]any `json:"options"` // factory options, stored as JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// marshalOptions encodes the options map for storage. A nil map stores as an
// empty object so reads never see SQL NULL.
func marshalOptions(opts map[string]any) (string, error) {
	if opts == nil {
		opts = map[string]any{}
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}
	return string(raw), nil
}

func unmarshalOptions(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var opts map[string]any
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, fmt.Errorf("unmarshal options: %w", err)
	}
	return opts, nil
}
