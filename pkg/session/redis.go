package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spszl/teacher-reviews/pkg/helpers"
)

// RedisStore keeps sessions in Redis so admin state survives process
// restarts. TTL is enforced by Redis key expiry.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return "admin:session:" + token
}

func (s *RedisStore) Create(ctx context.Context, admin bool) (*Session, error) {
	sess := Session{Token: newToken(), Admin: admin, CreatedAt: time.Now().UTC()}
	if err := helpers.RedisSetJSON(ctx, s.rdb, sessionKey(sess.Token), sess, s.ttl); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, bool, error) {
	var sess Session
	found, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(token), &sess)
	if err != nil || !found {
		return nil, false, err
	}
	return &sess, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return helpers.RedisDel(ctx, s.rdb, sessionKey(token))
}

var _ Store = (*RedisStore)(nil)
