package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ariefcatur/go-inventory-orders.git/internal/redisx"
)

// RefreshStore menyimpan refresh token opaque di redis dengan TTL; rotate
// saat dipakai. Mekanisme yang lebih berat (token family, revocation list)
// di luar scope.
type RefreshStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func (s *RefreshStore) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	key := fmt.Sprintf(redisx.KeyRefreshToken, token)
	if err := s.RDB.Set(ctx, key, userID, s.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Rotate validasi token lama, hapus, lalu terbitkan yang baru.
func (s *RefreshStore) Rotate(ctx context.Context, token string) (userID, newToken string, err error) {
	key := fmt.Sprintf(redisx.KeyRefreshToken, token)
	userID, err = s.RDB.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", "", ErrInvalidToken
	}
	if err != nil {
		return "", "", err
	}
	_ = s.RDB.Del(ctx, key).Err()

	newToken, err = s.Issue(ctx, userID)
	return userID, newToken, err
}

func (s *RefreshStore) Revoke(ctx context.Context, token string) error {
	return s.RDB.Del(ctx, fmt.Sprintf(redisx.KeyRefreshToken, token)).Err()
}
