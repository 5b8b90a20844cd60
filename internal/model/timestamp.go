package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the on-disk format: ISO-8601 local time without a zone.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp is a time.Time that serializes in the data file's naive ISO format.
type Timestamp struct {
	time.Time
}

// Now returns the current local time as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(TimestampLayout))
}

// UnmarshalJSON accepts naive ISO timestamps (with or without fractional
// seconds) as well as RFC 3339.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimestamp parses s in any of the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	if v, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return Timestamp{Time: v}, nil
	}
	v, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return Timestamp{Time: v}, nil
}

// Value implements driver.Valuer for gorm.
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner for gorm.
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case nil:
		t.Time = time.Time{}
		return nil
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("timestamp: unsupported scan type %T", src)
	}
}
