package check

import (
	"fmt"

	"github.com/Brushfam/ink/common/logging"
)

// These functions are meant to simplify panicking in the code
// Always consider returning errors instead of panicking!
//
// In this engine a panic is reserved for fatal precondition violations:
// reading an unstaged execution context, an undersized output buffer,
// dispatching an unregistered chain extension. Those indicate a bug in the
// engine's caller, not a runtime condition a contract could branch on.
//
// As a rule of thumb, if you wish to use the function with a custom message,
// consider returning a wrapped error instead.

// PanicIfNot panics on false (use as simple assert).
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIff panics on true with the given message.
func PanicIff(flag bool, format string, args ...any) {
	PanicIfNotf(!flag, format, args...)
}

// PanicIfNotf panics on false with the given message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfErr calls panic(err) if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// LogAndPanicIfErrf logs the error with the provided logger and message and panics if err is not nil.
func LogAndPanicIfErrf(err error, logger logging.Logger, format string, args ...any) {
	if err != nil {
		l := logger.With().CallerWithSkipFrameCount(3).Logger()
		l.Error().Err(err).Msgf(format, args...)
		panic(err)
	}
}
