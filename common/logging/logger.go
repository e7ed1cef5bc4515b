package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var GlobalLogger Logger

func SetupGlobalLogger(level string) {
	if err := TrySetupGlobalLevel(level); err != nil {
		panic(err)
	}
	GlobalLogger = NewLogger("global")
}

func TrySetupGlobalLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// SetLogSeverityFromEnv configures the global level from LOG_LEVEL.
// Defaults to INFO.
func SetLogSeverityFromEnv() {
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}
}

func makeBold(str any, disabled bool) string {
	const colorBold = 1

	if disabled {
		return fmt.Sprintf("%s", str)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", colorBold, str)
}

func makeComponentFormatter(noColor bool) zerolog.Formatter {
	return func(c any) string {
		return makeBold(fmt.Sprintf("[%s]\t", c), noColor)
	}
}

func NewLogger(component string) Logger {
	logger := newConsoleLogger()

	return Context{ctx: logger.With()}.
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

func NewLoggerWithWriter(component string, writer io.Writer) Logger {
	logger := zerolog.New(writer)

	return Context{ctx: logger.With()}.
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

func newConsoleLogger() zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

	writer := zerolog.ConsoleWriter{
		Out:             os.Stderr,
		NoColor:         noColor,
		TimeFormat:      "15:04:05.000",
		FormatFieldName: func(i any) string { return fmt.Sprintf("%s=", i) },
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{FieldComponent},
	}
	writer.FormatPartValueByName = func(value any, name string) string {
		if name == FieldComponent {
			return makeComponentFormatter(noColor)(value)
		}
		return fmt.Sprintf("%s", value)
	}

	return zerolog.New(writer)
}

// Nop returns a disabled logger that discards every event.
func Nop() Logger {
	return Logger{logger: zerolog.Nop()}
}
