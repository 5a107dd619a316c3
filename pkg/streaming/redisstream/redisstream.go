package redisstream

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	gfcontext "github.com/vnykmshr/gostep/pkg/common/context"
	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
	"github.com/vnykmshr/gostep/pkg/common/validation"
	"github.com/vnykmshr/gostep/pkg/metrics"
	"github.com/vnykmshr/gostep/pkg/streaming/fusion"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

const module = "redisstream"

// Client is the subset of the go-redis API the sources use.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type Client interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// Config holds configuration for Redis-backed streams.
type Config struct {
	// Redis client used to issue commands
	Redis Client

	// Key is the list read by Values
	Key string

	// Match is the SCAN pattern used by Keys (defaults to "*")
	Match string

	// PageSize is the number of elements requested per command
	PageSize int64

	// RedisTimeout bounds each command; zero means no bound beyond the run's context
	RedisTimeout time.Duration

	// Metrics records issued and failed commands when enabled
	Metrics metrics.Config
}

// DefaultConfig returns a default configuration. Redis and, for Values, Key
// must still be set.
func DefaultConfig() Config {
	return Config{
		Match:        "*",
		PageSize:     100,
		RedisTimeout: 500 * time.Millisecond,
	}
}

// Values returns a stream over the elements of the list cfg.Key.
func Values(cfg Config) (fusion.Stream[string], error) {
	if err := validateConfig(cfg); err != nil {
		return fusion.Stream[string]{}, err
	}
	if err := validation.ValidateNotEmpty(module, "Key", cfg.Key); err != nil {
		return fusion.Stream[string]{}, err
	}
	cmds, err := newCommands(cfg)
	if err != nil {
		return fusion.Stream[string]{}, err
	}
	return fusion.New(func() fusion.Cursor[string] {
		return &listCursor{cfg: cfg, cmds: cmds}
	}, sizehint.Unknown()), nil
}

// Keys returns a stream over the keys matching cfg.Match. Like SCAN itself,
// it may yield a key more than once.
func Keys(cfg Config) (fusion.Stream[string], error) {
	if err := validateConfig(cfg); err != nil {
		return fusion.Stream[string]{}, err
	}
	if cfg.Match == "" {
		cfg.Match = "*"
	}
	cmds, err := newCommands(cfg)
	if err != nil {
		return fusion.Stream[string]{}, err
	}
	return fusion.New(func() fusion.Cursor[string] {
		return &scanCursor{cfg: cfg, cmds: cmds}
	}, sizehint.Unknown()), nil
}

func validateConfig(cfg Config) error {
	if err := validation.ValidateNotNil(module, "Redis", cfg.Redis); err != nil {
		return err
	}
	if err := validation.ValidatePositive(module, "PageSize", cfg.PageSize); err != nil {
		return err
	}
	return validation.ValidateNonNegative(module, "RedisTimeout", int64(cfg.RedisTimeout))
}

// commands applies the per-command timeout and records command metrics.
type commands struct {
	timeout  time.Duration
	issued   func(command string) prometheus.Counter
	failures func(command string) prometheus.Counter
}

func newCommands(cfg Config) (*commands, error) {
	c := &commands{timeout: cfg.RedisTimeout}
	if cfg.Metrics.Enabled {
		reg, err := metrics.For(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		c.issued = func(command string) prometheus.Counter {
			return reg.SourceCommands.WithLabelValues(module, command)
		}
		c.failures = func(command string) prometheus.Counter {
			return reg.SourceFailures.WithLabelValues(module, command)
		}
	}
	return c, nil
}

// run issues one command. Failures are returned as OperationErrors carrying
// detail and, when the command's context ended, whether it timed out or was
// canceled.
func (c *commands) run(ctx context.Context, op, detail string, fn func(ctx context.Context) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	command := strings.ToLower(op)
	if c.issued != nil {
		c.issued(command).Inc()
	}
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if c.failures != nil {
		c.failures(command).Inc()
	}
	switch {
	case gfcontext.IsTimedOut(ctx):
		detail += ", timed out"
	case gfcontext.IsCanceled(ctx):
		detail += ", canceled"
	}
	return gferrors.NewOperationError(module, op, err).WithContext(detail)
}

// listCursor pages through a list. offset is the list index of the next page.
type listCursor struct {
	cfg       Config
	cmds      *commands
	offset    int64
	page      []string
	pos       int
	exhausted bool
}

func (c *listCursor) Step(ctx context.Context) (step.Step[string], error) {
	if c.pos < len(c.page) {
		v := c.page[c.pos]
		c.pos++
		return step.Of(v), nil
	}
	if c.exhausted {
		return step.Finished[string](), nil
	}

	var page []string
	err := c.cmds.run(ctx, "LRange", "key "+c.cfg.Key, func(ctx context.Context) error {
		var err error
		page, err = c.cfg.Redis.LRange(ctx, c.cfg.Key, c.offset, c.offset+c.cfg.PageSize-1).Result()
		return err
	})
	if err != nil {
		return step.Finished[string](), err
	}

	c.page, c.pos = page, 0
	c.offset += int64(len(page))
	c.exhausted = int64(len(page)) < c.cfg.PageSize
	return step.Skipped[string](), nil
}

// scanCursor follows a SCAN cursor until the server returns it to 0.
type scanCursor struct {
	cfg     Config
	cmds    *commands
	cursor  uint64
	started bool
	page    []string
	pos     int
}

func (c *scanCursor) Step(ctx context.Context) (step.Step[string], error) {
	if c.pos < len(c.page) {
		v := c.page[c.pos]
		c.pos++
		return step.Of(v), nil
	}
	if c.started && c.cursor == 0 {
		return step.Finished[string](), nil
	}

	var (
		keys []string
		next uint64
	)
	err := c.cmds.run(ctx, "Scan", "match "+c.cfg.Match, func(ctx context.Context) error {
		var err error
		keys, next, err = c.cfg.Redis.Scan(ctx, c.cursor, c.cfg.Match, c.cfg.PageSize).Result()
		return err
	})
	if err != nil {
		return step.Finished[string](), err
	}

	c.page, c.pos = keys, 0
	c.cursor, c.started = next, true
	return step.Skipped[string](), nil
}
