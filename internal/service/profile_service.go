package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"healthfit/internal/cache"
	"healthfit/internal/codec"
	apperrors "healthfit/internal/errors"
	"healthfit/internal/model"
	"healthfit/internal/repository"
)

const (
	defaultProfileTTL = 5 * time.Minute
	// A Get that missed before an Update can still Set the old row after
	// the first eviction. The key is evicted again once that read has had
	// time to land.
	defaultEvictDelay = 500 * time.Millisecond
)

// ProfileService reads and updates the signed-in user's profile.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*model.User, error)
	Update(ctx context.Context, userID string, profile model.Profile) (*model.User, error)
}

type profileService struct {
	repo       repository.UserRepository
	cache      *cache.Client
	ttl        time.Duration
	evictDelay time.Duration
}

// NewProfileService builds a ProfileService. A nil cache disables caching.
func NewProfileService(repo repository.UserRepository, cache *cache.Client, ttl time.Duration) ProfileService {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &profileService{repo: repo, cache: cache, ttl: ttl, evictDelay: defaultEvictDelay}
}

func (s *profileService) cacheKey(userID string) string {
	return "profile:" + userID
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.User
		if err := codec.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := codec.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, s.ttl)
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, userID string, profile model.Profile) (*model.User, error) {
	user, err := s.repo.UpdateProfile(ctx, userID, profile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.evict(ctx, s.cacheKey(userID))
	return user, nil
}

func (s *profileService) evict(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, key)
	bg := context.WithoutCancel(ctx)
	time.AfterFunc(s.evictDelay, func() {
		_ = s.cache.Delete(bg, key)
	})
}
