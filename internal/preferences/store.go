package preferences

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cuotas/internal/logger"
	"cuotas/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	themeKey    = "cuotas:theme"
	expandedKey = "cuotas:expanded"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Store keeps display preferences in Redis: the color theme and which
// subscription cards are expanded.
type Store struct {
	redis *redis.Client
}

func New(redisAddr string) *Store {
	return &Store{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

// GetTheme returns the stored theme, light when none was saved.
func (s *Store) GetTheme(ctx context.Context) (Theme, error) {
	val, err := s.redis.Get(ctx, themeKey).Result()
	if errors.Is(err, redis.Nil) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	if t := Theme(val); t.Valid() {
		return t, nil
	}
	return ThemeLight, nil
}

func (s *Store) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}
	if err := s.redis.Set(ctx, themeKey, string(t), 0).Err(); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	metrics.RecordThemeChange(string(t))
	logger.Debug("theme changed", "theme", t)
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (Theme, error) {
	current, err := s.GetTheme(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Expanded returns the saved card states keyed by subscription id.
// Malformed entries are skipped.
func (s *Store) Expanded(ctx context.Context) (map[int64]bool, error) {
	raw, err := s.redis.HGetAll(ctx, expandedKey).Result()
	if err != nil {
		return nil, fmt.Errorf("get expanded states: %w", err)
	}

	out := make(map[int64]bool, len(raw))
	for field, val := range raw {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		expanded, err := strconv.ParseBool(val)
		if err != nil {
			continue
		}
		out[id] = expanded
	}
	return out, nil
}

func (s *Store) SetExpanded(ctx context.Context, subscriptionID int64, expanded bool) error {
	field := strconv.FormatInt(subscriptionID, 10)
	if err := s.redis.HSet(ctx, expandedKey, field, strconv.FormatBool(expanded)).Err(); err != nil {
		return fmt.Errorf("set expanded state: %w", err)
	}
	return nil
}

// Forget drops the card state of a deleted subscription.
func (s *Store) Forget(ctx context.Context, subscriptionID int64) error {
	field := strconv.FormatInt(subscriptionID, 10)
	if err := s.redis.HDel(ctx, expandedKey, field).Err(); err != nil {
		return fmt.Errorf("forget expanded state: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.redis.Close()
}
