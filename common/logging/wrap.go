package logging

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Thin wrappers around zerolog's Context/Logger/Event chain so that callers
// never import zerolog directly and field names stay confined to fields.go.

type Context struct {
	ctx zerolog.Context
}

type Logger struct {
	logger zerolog.Logger
}

type Event struct {
	event *zerolog.Event
}

/////////////////// Context //////////////////////

func (c Context) Bool(key string, value bool) Context {
	return Context{ctx: c.ctx.Bool(key, value)}
}

func (c Context) Str(key, value string) Context {
	return Context{ctx: c.ctx.Str(key, value)}
}

func (c Context) Int(key string, i int) Context {
	return Context{ctx: c.ctx.Int(key, i)}
}

func (c Context) Uint32(key string, i uint32) Context {
	return Context{ctx: c.ctx.Uint32(key, i)}
}

func (c Context) Uint64(key string, i uint64) Context {
	return Context{ctx: c.ctx.Uint64(key, i)}
}

func (c Context) Hex(key string, val []byte) Context {
	return Context{ctx: c.ctx.Hex(key, val)}
}

func (c Context) Dur(key string, d time.Duration) Context {
	return Context{ctx: c.ctx.Dur(key, d)}
}

func (c Context) Stringer(key string, val fmt.Stringer) Context {
	return Context{ctx: c.ctx.Stringer(key, val)}
}

func (c Context) Caller() Context {
	return Context{ctx: c.ctx.Caller()}
}

func (c Context) CallerWithSkipFrameCount(skipFrameCount int) Context {
	return Context{ctx: c.ctx.CallerWithSkipFrameCount(skipFrameCount)}
}

func (c Context) Timestamp() Context {
	return Context{ctx: c.ctx.Timestamp()}
}

func (c Context) Logger() Logger {
	return Logger{logger: c.ctx.Logger()}
}

/////////////////// Logger //////////////////////

func (l Logger) With() Context {
	return Context{ctx: l.logger.With()}
}

func (l Logger) Level(lvl zerolog.Level) Logger {
	return Logger{logger: l.logger.Level(lvl)}
}

func (l Logger) GetLevel() zerolog.Level {
	return l.logger.GetLevel()
}

func (l Logger) Trace() Event {
	return Event{event: l.logger.Trace()}
}

func (l Logger) Debug() Event {
	return Event{event: l.logger.Debug()}
}

func (l Logger) Info() Event {
	return Event{event: l.logger.Info()}
}

func (l Logger) Warn() Event {
	return Event{event: l.logger.Warn()}
}

func (l Logger) Error() Event {
	return Event{event: l.logger.Error()}
}

func (l Logger) Log() Event {
	return Event{event: l.logger.Log()}
}

/////////////////// Event //////////////////////

func (e Event) Err(err error) Event {
	return Event{event: e.event.Err(err)}
}

func (e Event) Bool(key string, value bool) Event {
	return Event{event: e.event.Bool(key, value)}
}

func (e Event) Str(key, value string) Event {
	return Event{event: e.event.Str(key, value)}
}

func (e Event) Int(key string, i int) Event {
	return Event{event: e.event.Int(key, i)}
}

func (e Event) Uint32(key string, i uint32) Event {
	return Event{event: e.event.Uint32(key, i)}
}

func (e Event) Uint64(key string, i uint64) Event {
	return Event{event: e.event.Uint64(key, i)}
}

func (e Event) Hex(key string, val []byte) Event {
	return Event{event: e.event.Hex(key, val)}
}

func (e Event) Stringer(key string, val fmt.Stringer) Event {
	return Event{event: e.event.Stringer(key, val)}
}

func (e Event) Msg(msg string) {
	e.event.Msg(msg)
}

func (e Event) Msgf(format string, args ...any) {
	e.event.Msgf(format, args...)
}

func (e Event) Send() {
	e.event.Send()
}
