package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a free-form list (car options such as "GPS", "Siège bébé")
// persisted as JSON text in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan treats corrupt stored text as an empty list; the column is
// non-critical listing metadata.
func (l *StringList) Scan(src any) error {
	*l = StringList{}

	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("models: cannot scan %T into StringList", src)
	}

	if len(b) == 0 {
		return nil
	}

	var decoded StringList
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil
	}
	*l = decoded
	return nil
}

// NormalizeOptions trims, deduplicates (case-insensitively) and caps a raw
// options list: entries over 80 characters are dropped, at most 20 kept.
func NormalizeOptions(raw []string) StringList {
	seen := make(map[string]bool, len(raw))
	out := make(StringList, 0, len(raw))

	for _, r := range raw {
		s := strings.TrimSpace(r)
		if s == "" || len(s) > 80 {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == 20 {
			break
		}
	}

	return out
}
