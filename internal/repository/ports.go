package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, records any) error
	InsertBatch(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	Find(ctx context.Context, entities any, order string, cond string, args ...any) error
	UpdateColumns(ctx context.Context, model any, column string, value any, updates map[string]any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
}
