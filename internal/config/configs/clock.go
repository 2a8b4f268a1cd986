package configs

import "time"

// Clock configures the logical tick source. Ticks are whole Interval
// periods elapsed since Epoch, an RFC3339 timestamp. Both values must
// stay stable across restarts or campaign windows shift.
type Clock struct {
	Epoch    string        `env:"EPOCH" envDefault:"2026-01-01T00:00:00Z"`
	Interval time.Duration `env:"INTERVAL" envDefault:"10s"`
}

// EpochTime parses the configured epoch. An unparsable value is a
// configuration error surfaced at startup.
func (c Clock) EpochTime() (time.Time, error) {
	return time.Parse(time.RFC3339, c.Epoch)
}
