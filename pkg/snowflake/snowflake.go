// Package snowflake implements the platform's 64-bit entity IDs. On the
// wire a snowflake travels as a decimal string to survive JSON number
// precision limits; in memory it is a uint64 whose high bits encode the
// creation timestamp.
package snowflake

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// epoch is the platform epoch (2015-01-01T00:00:00Z) in milliseconds.
const epoch = 1420070400000

// ID is a single snowflake. The zero ID means "absent".
type ID uint64

// Parse converts the wire string form into an ID.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return ID(v), nil
}

// FromResult extracts an optional snowflake field from a parsed payload.
// Missing, null, or malformed fields yield the zero ID, mirroring how the
// API omits references that do not apply.
func FromResult(r gjson.Result) ID {
	if !r.Exists() || r.Type == gjson.Null {
		return 0
	}
	id, err := Parse(r.String())
	if err != nil {
		return 0
	}
	return id
}

// IsZero reports whether the ID is absent.
func (id ID) IsZero() bool { return id == 0 }

// String renders the decimal wire form.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Time returns the creation time encoded in the ID's high bits.
func (id ID) Time() time.Time {
	ms := int64(id>>22) + epoch
	return time.UnixMilli(ms).UTC()
}

// MarshalJSON encodes the ID as its quoted decimal form.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.String())), nil
}

// UnmarshalJSON accepts both the canonical string form and a bare number,
// which some gateway payloads still emit.
func (id *ID) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	switch r.Type {
	case gjson.Null:
		*id = 0
		return nil
	case gjson.String, gjson.Number:
		parsed, err := Parse(r.String())
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("invalid snowflake json: %s", data)
	}
}
