package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateModels(models ...any) error
	HasColumn(model any, field string) bool
	AddColumn(model any, field string) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conds map[string]any, dest any) error
	GetAllBy(ctx context.Context, conds map[string]any, dest any) error
	GetAll(ctx context.Context, dest any) error
	UpdateField(ctx context.Context, model any, id uint, column string, value any) error
	DeleteBy(ctx context.Context, model any, conds map[string]any) error
}
