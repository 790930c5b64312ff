package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/config"
	"github.com/spszl/teacher-reviews/internal/domain/repository"
	"github.com/spszl/teacher-reviews/pkg/session"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	storage     repository.Storage
	sessions    session.Store
	redisClient *redis.Client
	pgPool      *pgxpool.Pool
)

func SetConfig(c *config.Config)          { cfg = c }
func GetConfig() *config.Config           { return cfg }
func SetLogger(l *logrus.Logger)          { logger = l }
func GetLogger() *logrus.Logger           { return logger }
func SetStorage(s repository.Storage)     { storage = s }
func GetStorage() repository.Storage      { return storage }
func SetSessions(s session.Store)         { sessions = s }
func GetSessions() session.Store          { return sessions }
func SetRedis(r *redis.Client)            { redisClient = r }
func GetRedis() *redis.Client             { return redisClient }
func SetPGPool(p *pgxpool.Pool)           { pgPool = p }
func GetPGPool() *pgxpool.Pool            { return pgPool }
