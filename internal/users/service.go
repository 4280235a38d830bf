package users

import (
	"context"
	"strconv"
	"time"

	"codeberg.org/mutker/goresult/internal/errors"
	"codeberg.org/mutker/goresult/internal/logger"
	"codeberg.org/mutker/goresult/result"
	"github.com/patrickmn/go-cache"
)

type service struct {
	repo  Repository
	cache *cache.Cache
	log   logger.Logger
}

// NewService opens the repository described by cfg
func NewService(cfg Config, log logger.Logger) (Service, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return NewServiceWithRepository(repo, cfg.CacheTTL, log), nil
}

// NewServiceWithRepository wraps an existing repository. A ttl of zero
// disables caching.
func NewServiceWithRepository(repo Repository, ttl time.Duration, log logger.Logger) Service {
	s := &service{
		repo: repo,
		log:  log,
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}

	return s
}

func (s *service) Register(ctx context.Context, firstname, lastname string, age int) result.Result[User] {
	res := CreateUser(firstname, lastname, age)
	if res.IsError() {
		return res
	}

	if err := ctx.Err(); err != nil {
		return result.FromError[User](errors.ToErr(errors.New().Wrap(ErrOperationTimeout, err)))
	}

	u, _ := res.Value()
	stored, err := s.repo.Insert(ctx, u)
	if err != nil {
		e := toErr(err)
		s.log.ErrorWithErr(e).Msg("Failed to register user")
		return result.FromError[User](e)
	}

	s.remember(stored)

	return result.FromValue(stored)
}

func (s *service) Get(ctx context.Context, id int64) result.Result[User] {
	if id <= 0 {
		return result.FromError[User](errors.ToErr(errors.New().WithData(ErrInvalidID, id)))
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey(id)); ok {
			s.log.Debug().Int64("id", id).Msg("User served from cache")
			return result.FromValue(cached.(User))
		}
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return result.FromError[User](toErr(err))
	}

	s.remember(u)

	return result.FromValue(u)
}

func (s *service) List(ctx context.Context) result.Result[[]User] {
	return result.Try(func() ([]User, error) {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, toErr(err)
		}
		return list, nil
	})
}

// Seed inserts the sample users into an empty database and returns how many
// were inserted
func (s *service) Seed(ctx context.Context) result.Result[int] {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return result.FromError[int](toErr(err))
	}
	if n > 0 {
		s.log.Info().Int("users", n).Msg("Database already seeded")
		return result.FromValue(0)
	}

	for _, u := range seedUsers {
		if _, err := s.repo.Insert(ctx, u); err != nil {
			return result.FromError[int](toErr(err))
		}
	}

	return result.FromValue(len(seedUsers))
}

func (s *service) Close() error {
	if s.cache != nil {
		s.cache.Flush()
	}

	if err := s.repo.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}

	return nil
}

func (s *service) remember(u User) {
	if s.cache != nil {
		s.cache.SetDefault(cacheKey(u.ID), u)
	}
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
