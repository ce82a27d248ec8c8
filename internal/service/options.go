package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/logger"
)

// Clock supplies the current instant and the calendar used for day boundaries.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }
func (c systemClock) Location() *time.Location { return c.loc }

// FixedClock always reports the same instant. Used by tests and replays.
type FixedClock struct {
	At  time.Time
	Loc *time.Location
}

func (c FixedClock) Now() time.Time { return c.At.In(c.Location()) }

func (c FixedClock) Location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

type options struct {
	clock        Clock
	logger       *logrus.Entry
	contentCache repository.ContentCacheI
}

type Option func(*options)

func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLocation keeps the system time but buckets days in loc.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.clock = systemClock{loc: loc}
		}
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContentCache lets profile changes drop the user's cached dashboard content.
func WithContentCache(c repository.ContentCacheI) Option {
	return func(o *options) {
		if c != nil {
			o.contentCache = c
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		clock:        systemClock{loc: time.UTC},
		logger:       logger.Discard(),
		contentCache: repository.NoopContentCache{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
