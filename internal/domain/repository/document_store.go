package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateKey возвращается хранилищем при нарушении уникального индекса или _id
var ErrDuplicateKey = errors.New("duplicate key")

// DocumentStore - доступ к документному хранилищу, общий для всех обработчиков
type DocumentStore interface {
	// FindOne ищет один документ по фильтру равенства; out может быть nil, если нужен только факт наличия
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) (bool, error)

	// InsertOne вставляет документ и возвращает его _id (сгенерированный, если не задан)
	InsertOne(ctx context.Context, collection string, doc interface{}) (interface{}, error)

	// FindLast возвращает документ с максимальным значением поля sortField
	FindLast(ctx context.Context, collection, sortField string, out interface{}) (bool, error)

	// Health проверяет доступность хранилища
	Health(ctx context.Context) error
}
