package schema

import (
	"encoding/json"
	"time"
)

// fileTimeEpochSeconds is the number of seconds between 1601-01-01 and
// 1970-01-01.
const fileTimeEpochSeconds = 11644473600

const ticksPerSecond = 10_000_000

// FileTime is a Windows FILETIME: 100-nanosecond ticks since 1601-01-01 UTC.
type FileTime uint64

// FileTimeFromTime converts t to FileTime ticks. Times before 1601 clamp to 0.
func FileTimeFromTime(t time.Time) FileTime {
	secs := t.Unix() + fileTimeEpochSeconds
	if secs < 0 {
		return 0
	}
	return FileTime(uint64(secs)*ticksPerSecond + uint64(t.Nanosecond()/100))
}

// Ticks returns the raw tick count.
func (ft FileTime) Ticks() uint64 { return uint64(ft) }

// Time converts the tick count to a UTC time.
func (ft FileTime) Time() time.Time {
	ticks := uint64(ft)
	secs := int64(ticks/ticksPerSecond) - fileTimeEpochSeconds
	nanos := int64(ticks%ticksPerSecond) * 100
	return time.Unix(secs, nanos).UTC()
}

func (ft FileTime) String() string {
	return ft.Time().Format(time.RFC3339Nano)
}

// MarshalText renders the time as RFC 3339 in UTC.
func (ft FileTime) MarshalText() ([]byte, error) {
	return []byte(ft.String()), nil
}

// MarshalJSON renders the time as an RFC 3339 string.
func (ft FileTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.String())
}
