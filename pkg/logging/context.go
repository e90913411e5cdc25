package logging

import (
	"slotpage/pkg/primitives"

	"github.com/phuslu/log"
)

// with returns a copy of the global logger whose context carries the fields
// added by fn. The base logger is never mutated.
func with(fn func(e *log.Entry) *log.Entry) *log.Logger {
	base := GetLogger()
	child := *base
	ctx := append([]byte(nil), base.Context...)
	child.Context = fn(log.NewContext(ctx)).Value()
	return &child
}

// WithPage creates a logger with page file context.
//
// Example:
//
//	log := logging.WithPage(path)
//	log.Debug().Int("lower", int(h.Lower)).Msg("page loaded")
func WithPage(path primitives.Filepath) *log.Logger {
	return with(func(e *log.Entry) *log.Entry {
		return e.Str("page", path.String()).Uint64("file_id", uint64(path.Hash()))
	})
}

// WithTable creates a logger with table context.
// Use this for catalog operations.
func WithTable(tableName string) *log.Logger {
	return with(func(e *log.Entry) *log.Entry {
		return e.Str("table", tableName)
	})
}

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("catalog")
//	log.Info().Msg("component initialized")
func WithComponent(component string) *log.Logger {
	return with(func(e *log.Entry) *log.Entry {
		return e.Str("component", component)
	})
}

// WithError creates a logger with error context.
func WithError(err error) *log.Logger {
	return with(func(e *log.Entry) *log.Entry {
		return e.Str("error", err.Error())
	})
}
