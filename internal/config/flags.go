package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line arguments into a partial
// [StructuredConfig]. Unset flags stay zero so they do not override other
// sources during the merge.
//
// Flags:
//
//	-prefix           vault key prefix (storage.prefix)
//	-backend          session store backend: memory, badger, sqlite
//	-d                sqlite DSN
//	-max-value-bytes  per-value size cap
//	-log-dir          directory for the client log file
//	-scrypt-n         scrypt cost of generated keystores
//	-idle-timeout     session idle timeout (e.g. "15m")
//	-c/-config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("session-wallet", flag.ContinueOnError)

	var (
		prefix         string
		backend        string
		dsn            string
		maxValueBytes  int
		logDir         string
		scryptN        int
		idleTimeout    time.Duration
		jsonConfigPath string
	)

	fs.StringVar(&prefix, "prefix", "", "Vault key prefix")
	fs.StringVar(&backend, "backend", "", "Session store backend: memory, badger, sqlite")
	fs.StringVar(&dsn, "d", "", "SQLite session database DSN")
	fs.IntVar(&maxValueBytes, "max-value-bytes", 0, "Maximum size of a single stored value")
	fs.StringVar(&logDir, "log-dir", "", "Directory for the log file")
	fs.IntVar(&scryptN, "scrypt-n", 0, "Scrypt cost parameter for new keystores")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Session idle timeout (e.g., 15m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogDir: logDir,
		},
		Storage: Storage{
			Prefix:        prefix,
			Backend:       backend,
			MaxValueBytes: maxValueBytes,
			DB:            DB{DSN: dsn},
		},
		Crypto: Crypto{
			ScryptN: scryptN,
		},
		Session: Session{
			IdleTimeout: idleTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
