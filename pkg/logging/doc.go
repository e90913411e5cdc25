// Package logging provides a process-wide structured logger for slotpage.
//
// The package wraps github.com/phuslu/log and exposes a single global logger
// instance that is initialized once and then retrieved via GetLogger. All
// packages obtain their logger here so that level and destination are
// controlled from a single place.
//
// # Initialisation
//
// Call Init (or InitDefault for sensible defaults) once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, Format: "json"}); err != nil {
//	    log.Fatal(err)
//	}
//
// InitDefault writes INFO-level console output to stderr.
//
// # Retrieving the logger
//
//	logging.GetLogger().Info().Str("dir", dataDir).Msg("catalog opened")
//
// If GetLogger is called before Init, a default logger is created lazily.
//
// # Context helpers
//
//	log := logging.WithPage(path)       // adds page and file_id fields
//	log := logging.WithTable(name)      // adds table field
//	log := logging.WithComponent("cli") // adds component field
package logging
