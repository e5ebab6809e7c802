// Package logger owns the process zerolog root and the request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"sentilex/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is zerolog's logger; callers never see another type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string // trace..panic, unknown values fall back to debug
	Format      string // console or json
	Service     string
	Component   string
	Caller      bool
	SampleEvery int
	Writer      io.Writer // stdout when nil
}

// FromEnv reads LOG_* through raw, since config itself logs
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "info"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", ""),
		Component:   env.Get("COMPONENT", ""),
		Caller:      env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		l := zerolog.New(output(opt)).Level(level(opt.Level)).With().Timestamp().Logger()
		l = l.With().Fields(fields(opt)).Logger()
		if opt.Caller {
			l = l.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
	})
}

func output(opt Options) io.Writer {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return w
}

func level(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

func fields(opt Options) map[string]any {
	f := map[string]any{}
	if bi, ok := debug.ReadBuildInfo(); ok {
		f["go_version"] = bi.GoVersion
	}
	if opt.Service != "" {
		f["service"] = opt.Service
	}
	if opt.Component != "" {
		f["component"] = opt.Component
	}
	return f
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Named returns a child logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type reqKey struct{}

// WithRequest stores the request id C attaches to log lines
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, reqKey{}, reqID)
}

// C returns the root logger with request_id from ctx when one is set
func C(ctx context.Context) *Logger {
	l := Get()
	if ctx == nil {
		return l
	}
	id, _ := ctx.Value(reqKey{}).(string)
	if id == "" {
		return l
	}
	child := l.With().Str("request_id", id).Logger()
	return &child
}
