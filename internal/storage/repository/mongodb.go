// Package repository реализует хранилище данных на основе MongoDB
// для платформы публикации статей. Каждый метод — это ровно одна операция
// драйвера (find/insert/update/delete) над одной из четырёх коллекций:
// users, articles, publishers, subscriptions.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/insightarc/insightarc-server/internal/config"
)

// ErrNotFound возвращается, когда запрошенный документ отсутствует.
var ErrNotFound = errors.New("document not found")

// Storage инкапсулирует клиент MongoDB и дескрипторы коллекций.
// Клиент потокобезопасен и разделяется всеми обработчиками;
// пул соединений управляется самим драйвером.
type Storage struct {
	Client        *mongo.Client
	Users         *mongo.Collection
	Articles      *mongo.Collection
	Publishers    *mongo.Collection
	Subscriptions *mongo.Collection
}

// New создаёт подключение к MongoDB и проверяет его доступность через ping.
func New(ctx context.Context, cfg config.MongoConnection) (*Storage, error) {
	const op = "storage.New"

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(cfg.Database)
	return &Storage{
		Client:        client,
		Users:         db.Collection("users"),
		Articles:      db.Collection("articles"),
		Publishers:    db.Collection("publishers"),
		Subscriptions: db.Collection("subscriptions"),
	}, nil
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(ctx context.Context, storage *Storage) error {
	if err := storage.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database is not ready: %w", err)
	}
	return nil
}

// wrapNotFound приводит mongo.ErrNoDocuments к общему ErrNotFound,
// сохраняя остальные ошибки как есть.
func wrapNotFound(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// all выгружает курсор целиком в срез документов типа T.
func all[T any](ctx context.Context, cur *mongo.Cursor) ([]*T, error) {
	defer func() {
		_ = cur.Close(ctx)
	}()
	var result []*T
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
