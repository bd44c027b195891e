package lukaz

import (
	"bytes"
	"encoding/json"
	"math"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp is a server-owned point in time. The API is not consistent about
// how it encodes them, so decoding accepts date strings in any common layout,
// unix seconds or milliseconds (integer or fractional), and Firestore
// {"_seconds","_nanoseconds"} objects. A value none of these fit decodes to
// the zero Time without error. Encoding writes back the exact bytes that were
// decoded.
type Timestamp struct {
	time.Time

	raw json.RawMessage
}

// NewTimestamp wraps t. It encodes as RFC 3339 with millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Raw returns the bytes the timestamp was decoded from.
func (t Timestamp) Raw() json.RawMessage {
	return t.raw
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	t.raw = append(t.raw[:0], trimmed...)
	t.Time = parseTimestamp(trimmed)
	return nil
}

func parseTimestamp(data []byte) time.Time {
	if len(data) == 0 {
		return time.Time{}
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil || s == "" {
			return time.Time{}
		}
		parsed, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return time.Time{}
		}
		return parsed

	case '{':
		var fs struct {
			Seconds     int64 `json:"_seconds"`
			Nanoseconds int64 `json:"_nanoseconds"`
		}
		if err := json.Unmarshal(data, &fs); err != nil {
			return time.Time{}
		}
		return time.Unix(fs.Seconds, fs.Nanoseconds).UTC()

	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return time.Time{}
		}
		if v, err := n.Int64(); err == nil {
			// Values past the year 33658 in seconds are taken to be milliseconds.
			if v > 1e12 {
				return time.UnixMilli(v).UTC()
			}
			return time.Unix(v, 0).UTC()
		}
		f, err := n.Float64()
		if err != nil || math.IsInf(f, 0) {
			return time.Time{}
		}
		if f > 1e12 {
			return time.UnixMicro(int64(math.Round(f * 1e3))).UTC()
		}
		return time.UnixMicro(int64(math.Round(f * 1e6))).UTC()
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}
