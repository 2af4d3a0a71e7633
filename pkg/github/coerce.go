package github

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// timestampLayout is the naive date-time left once the trailing zone
// designator is stripped. Fractional seconds are accepted when parsing
// even though the layout does not name them.
const timestampLayout = "2006-01-02T15:04:05"

// Timestamp is a point in time sent by the API as an ISO-8601 string with a
// trailing zone designator. It is always held in UTC.
type Timestamp struct {
	time.Time
}

// String returns the canonical wire form, which CoerceTimestamp parses back
// to an equal value.
func (t Timestamp) String() string {
	return t.UTC().Format(timestampLayout+".999999999") + "Z"
}

// Equal reports whether t and u represent the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.Time.Equal(u.Time)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// CoerceTimestamp strips the single trailing zone designator of raw and
// parses the remainder as a UTC date-time. An empty raw string stands for an
// absent value and yields nil without error.
func CoerceTimestamp(raw string) (*Timestamp, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(timestampLayout, raw[:len(raw)-1], time.UTC)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedTimestamp, "%q", raw)
	}

	return &Timestamp{t}, nil
}

// CoerceEnum matches raw against candidates by exact, case-sensitive name.
// A value outside the set is a schema drift and fails with
// ErrUnknownEnumValue.
func CoerceEnum[E ~string](raw string, candidates ...E) (E, error) {
	for _, c := range candidates {
		if string(c) == raw {
			return c, nil
		}
	}

	var zero E
	return zero, errors.Wrapf(ErrUnknownEnumValue, "%q", raw)
}

// EnumEquals compares an enum value against a raw wire string.
func EnumEquals[E ~string](v E, raw string) bool {
	return string(v) == raw
}

// CoerceList applies elem to every entry of a JSON array. A null or missing
// array yields nil. Null entries are kept as nil pointers instead of being
// handed to elem, since several endpoints withhold individual entries.
func CoerceList[T any](raw gjson.Result, elem func(gjson.Result) (T, error)) ([]*T, error) {
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, nil
	}
	if !raw.IsArray() {
		return nil, errors.Wrapf(ErrUnexpectedType, "expected array, got %s", raw.Type)
	}

	entries := raw.Array()
	list := make([]*T, len(entries))
	for i, entry := range entries {
		if entry.Type == gjson.Null {
			continue
		}

		v, err := elem(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", i)
		}
		list[i] = &v
	}

	return list, nil
}
