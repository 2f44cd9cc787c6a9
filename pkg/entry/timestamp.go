package entry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// isoLayout matches what browsers produce for Date.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseTime accepts any RFC 3339 timestamp, fractional seconds included.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is a time.Time that travels through JSON as an ISO-8601 UTC
// string with millisecond precision.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to the precision Timestamp keeps,
// so values survive a JSON round trip unchanged.
func Now(clock func() time.Time) Timestamp {
	return Timestamp{Time: clock().UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(isoLayout)
}
