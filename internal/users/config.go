package users

import (
	"time"

	"codeberg.org/mutker/goresult/internal/errors"
)

const (
	// File system permissions and paths
	defaultDirPerm  = 0o755
	defaultCacheTTL = 5 * time.Minute
	backupDirName   = "backups"
)

type Config struct {
	DBPath   string
	CacheTTL time.Duration
}

func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:   dbPath,
		CacheTTL: defaultCacheTTL,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}
	if c.CacheTTL < 0 {
		return errFactory.WithData(ErrInvalidConfig, c.CacheTTL)
	}

	return nil
}
