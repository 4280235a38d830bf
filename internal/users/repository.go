package users

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/goresult/internal/errors"
	"codeberg.org/mutker/goresult/internal/logger"
	"github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db     *sql.DB
	logger logger.Logger
	mu     sync.Mutex
}

func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	dsn := cfg.DBPath + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := ValidateAndUpdateSchema(db, filepath.Join(dir, backupDirName), log); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Users repository initialized")

	return &sqliteRepository{
		db:     db,
		logger: log,
	}, nil
}

func (r *sqliteRepository) Insert(ctx context.Context, u User) (User, error) {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		res sql.Result
		err error
	)
	if u.ID == 0 {
		res, err = r.db.ExecContext(ctx, insertUserSQL, u.FirstName, u.LastName, u.Age)
	} else {
		res, err = r.db.ExecContext(ctx, insertUserWithIDSQL, u.ID, u.FirstName, u.LastName, u.Age)
	}
	if err != nil {
		if isDuplicate(err) {
			return User{}, errFactory.Wrap(ErrRecordExists, err)
		}
		return User{}, errFactory.Wrap(ErrStorageAccess, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return User{}, errFactory.Wrap(ErrStorageAccess, err)
	}
	u.ID = id

	r.logger.Debug().Int64("id", u.ID).Msg("Inserted user")

	return u, nil
}

func (r *sqliteRepository) Get(ctx context.Context, id int64) (User, error) {
	errFactory := errors.New()

	var u User
	err := r.db.QueryRowContext(ctx, selectUserSQL, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, errFactory.Wrap(ErrRecordMissing, err).WithData(id)
	}
	if err != nil {
		return User{}, errFactory.Wrap(ErrStorageAccess, err)
	}

	return u, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]User, error) {
	errFactory := errors.New()

	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age); err != nil {
			return nil, errFactory.Wrap(ErrStorageAccess, err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	return out, nil
}

func (r *sqliteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countUsersSQL).Scan(&n); err != nil {
		return 0, errors.New().Wrap(ErrStorageAccess, err)
	}

	return n, nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Checkpoint WAL and cleanup on close
	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		r.logger.Debug().Err(err).Msg("Failed to checkpoint WAL")
	}

	if err := r.db.Close(); err != nil {
		return errors.New().WithData(ErrStorageClose, struct {
			Phase string
			Error string
		}{
			Phase: "close_database",
			Error: err.Error(),
		})
	}

	r.logger.Debug().Msg("Users repository closed")

	return nil
}

func isDuplicate(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
