// Package cronstream provides pure streams of cron activation times.
//
// A schedule is unfolded from a starting instant: each element is the next
// activation strictly after the previous one. Nothing waits on the wall
// clock, so the streams can be used to plan, preview or backfill runs.
package cronstream

import (
	"time"

	"github.com/robfig/cron/v3"

	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
	"github.com/vnykmshr/gostep/pkg/common/validation"
	"github.com/vnykmshr/gostep/pkg/streaming/stream"
)

const module = "cronstream"

// Config holds configuration for activation streams.
type Config struct {
	// Spec is a cron expression or descriptor such as "@hourly"
	Spec string

	// Location is the time zone the schedule is evaluated in (defaults to time.Local).
	// A CRON_TZ= prefix in Spec takes precedence.
	Location *time.Location

	// Seconds requires a leading seconds field, giving six-field expressions
	Seconds bool
}

// DefaultConfig returns a default configuration. Spec must still be set.
func DefaultConfig() Config {
	return Config{
		Location: time.Local,
	}
}

// Parse validates cfg and parses its schedule.
func Parse(cfg Config) (cron.Schedule, error) {
	if err := validation.ValidateNotEmpty(module, "Spec", cfg.Spec); err != nil {
		return nil, err
	}
	fields := cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
	if cfg.Seconds {
		fields |= cron.Second
	}
	schedule, err := cron.NewParser(fields).Parse(cfg.Spec)
	if err != nil {
		return nil, gferrors.NewValidationError(module, "Spec", cfg.Spec, err.Error()).
			WithHint("use five fields, six with Seconds set, or a descriptor like @daily")
	}
	return schedule, nil
}

// Activations returns the infinite stream of activation times after from.
// It ends early only for a schedule that never fires again.
func Activations(cfg Config, from time.Time) (stream.Stream[time.Time], error) {
	schedule, err := Parse(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Location != nil {
		from = from.In(cfg.Location)
	}
	return stream.Unfold(func(last time.Time) (time.Time, time.Time, bool) {
		next := schedule.Next(last)
		if next.IsZero() {
			return next, last, false
		}
		return next, next, true
	}, from), nil
}

// Between returns the activation times after from and before until.
func Between(cfg Config, from, until time.Time) (stream.Stream[time.Time], error) {
	all, err := Activations(cfg, from)
	if err != nil {
		return nil, err
	}
	return all.TakeWhile(func(t time.Time) bool { return t.Before(until) }), nil
}
