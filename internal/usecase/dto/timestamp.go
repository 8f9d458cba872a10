package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayouts - ISO 8601 без смещения (так пишет datetime.isoformat()), время считается UTC
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp - дата-время во входящем JSON: RFC 3339 или ISO 8601 без смещения
type Timestamp time.Time

// NewTimestamp - обёртка над time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// ParseTimestamp разбирает RFC 3339, затем ISO 8601 без смещения как UTC
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp(t), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Timestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("parsing time %q: expected RFC 3339 or ISO 8601 date-time", s)
}

// Time - значение для доменной модели
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

// UnmarshalJSON: null оставляет нулевое значение, его отсекает правило required
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parsing time %s: expected a string", data)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimePtr - необязательная отметка времени для доменной модели
func (t *Timestamp) TimePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := time.Time(*t)
	return &v
}
