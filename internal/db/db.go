package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

// SqliteDB wraps a gorm connection to the local file-backed store. Every
// operation is scoped to the call, there is no shared mutable handle state
// beyond the pooled connection gorm manages.
type SqliteDB struct {
	db *gorm.DB
}

func NewSqliteDB(path string) (*SqliteDB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return &SqliteDB{}, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	return &SqliteDB{
		db: db,
	}, nil
}

func (s *SqliteDB) MigrateModels(models ...any) error {
	err := s.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	return nil
}

// HasColumn reports whether the column backing the given struct field exists.
func (s *SqliteDB) HasColumn(model any, field string) bool {
	return s.db.Migrator().HasColumn(model, field)
}

// AddColumn adds the column backing the given struct field. Callers guard
// with HasColumn so the step is a no-op on an already-evolved schema.
func (s *SqliteDB) AddColumn(model any, field string) error {
	if err := s.db.Migrator().AddColumn(model, field); err != nil {
		return fmt.Errorf("add column %q: %w", field, err)
	}
	return nil
}

func (s *SqliteDB) Create(ctx context.Context, record any) error {
	err := s.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (s *SqliteDB) GetOneBy(ctx context.Context, conds map[string]any, dest any) error {
	err := s.db.WithContext(ctx).Where(conds).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}
	return nil
}

func (s *SqliteDB) GetAllBy(ctx context.Context, conds map[string]any, dest any) error {
	tx := s.db.WithContext(ctx).Where(conds).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records: %w", tx.Error)
	}
	return nil
}

func (s *SqliteDB) GetAll(ctx context.Context, dest any) error {
	tx := s.db.WithContext(ctx).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

func (s *SqliteDB) UpdateField(ctx context.Context, model any, id uint, column string, value any) error {
	tx := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Update(column, value)
	if tx.Error != nil {
		return fmt.Errorf("updating %q: %w", column, tx.Error)
	}
	return nil
}

func (s *SqliteDB) DeleteBy(ctx context.Context, model any, conds map[string]any) error {
	tx := s.db.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records: %w", tx.Error)
	}
	return nil
}
