// Package fnlog decorates fn wrappers with structured logging.
//
// LogN binds a copy of a wrapper into a callable object that writes one zap
// entry per invocation: the configured name, an id unique to the wrapper
// instance, the call window (start and end) and the elapsed time. Cloning the logged wrapper
// gives the clone its own id, so the log tells independent copies apart.
//
// The entry is written even when the callable panics; the panic itself is
// not recovered.
package fnlog

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultName is used when Config.Name is empty.
const DefaultName = "fn"

// Config controls how a logged wrapper reports its calls.
type Config struct {
	Name  string        // default: "fn"
	Level zapcore.Level // zero value: info
}

// NewConfig returns a Config for name and level. An empty name becomes DefaultName.
func NewConfig(name string, level zapcore.Level) Config {
	if name == "" {
		name = DefaultName
	}
	return Config{
		Name:  name,
		Level: level,
	}
}

// NewDevelopmentLogger returns a console logger writing to stdout at debug level.
func NewDevelopmentLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// observer is the logging state shared by every arity.
type observer struct {
	id     string
	config Config
	logger *zap.Logger
}

func newObserver(logger *zap.Logger, config Config) observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Name == "" {
		config.Name = DefaultName
	}
	return observer{
		id:     uuid.New().String(),
		config: config,
		logger: logger,
	}
}

// renew returns a copy of o under a fresh id.
func (o observer) renew() observer {
	o.id = uuid.New().String()
	return o
}

func (o observer) observe(start time.Time) {
	span := timespan.BetweenTimes(start, time.Now())
	if ce := o.logger.Check(o.config.Level, "fn invoked"); ce != nil {
		ce.Write(
			zap.String("name", o.config.Name),
			zap.String("id", o.id),
			zap.Time("start", span.Start()),
			zap.Time("end", span.End()),
			zap.Duration("elapsed", span.Duration()),
		)
	}
}
