// Package cache реализует кэш на основе Redis с JSON-сериализацией значений.
//
// Кэшируется только каталог тарифов подписки: он читается клиентами часто,
// а меняется только руками оператора, поэтому короткий TTL безопасен.
// Недоступность Redis не является фатальной: методы nil-кэша ведут себя
// как постоянные промахи, и сервис деградирует до прямых чтений из
// хранилища.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/insightarc/insightarc-server/internal/config"
)

// Cache обёртка над клиентом Redis. Нулевой *Cache безопасен:
// Get всегда промахивается, Set ничего не делает.
type Cache struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение через ping.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db}, nil
}

// Get пытается получить значение из кэша по ключу.
// Возвращает false без ошибки, если ключ отсутствует или кэш не подключен.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	const op = "cache.Get"
	if c == nil || c.Db == nil {
		return false, nil
	}
	val, err := c.Db.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err = json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение в кэш с временем жизни.
// Без подключенного кэша запись молча пропускается.
func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if c == nil || c.Db == nil {
		return nil
	}
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Db.Set(ctx, key, jsonData, expiration).Err()
}
