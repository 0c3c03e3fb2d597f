package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")
var ErrCheckViolation = errors.New("check constraint violated")
var ErrForeignKey = errors.New("foreign key violated")

// postgres SQLSTATE codes surfaced as domain-mappable sentinels
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("get sql db conn: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return &PostgresDB{
		DB: db,
	}, nil
}

// Close tears down the underlying connection pool.
func (p *PostgresDB) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close connection pool: %w", err)
	}

	return nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (p *PostgresDB) Insert(ctx context.Context, records any) error {
	if err := p.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translateError(err))
	}

	return nil
}

// InsertBatch writes all records inside a single transaction: either the
// whole batch lands or none of it does.
func (p *PostgresDB) InsertBatch(ctx context.Context, records any) error {
	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(records).Error
	})
	if err != nil {
		return fmt.Errorf("insert batch to table: %w", translateError(err))
	}

	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, translateError(err))
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := p.DB.WithContext(ctx).Where(query, value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, translateError(tx.Error))
	}
	return nil
}

func (p *PostgresDB) Find(ctx context.Context, entities any, order string, cond string, args ...any) error {
	tx := p.DB.WithContext(ctx).Where(cond, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("finding records: %w", translateError(err))
	}
	return nil
}

// UpdateColumns applies the given column updates to rows of the model
// matching column = value. Returns ErrNotFound when no row matched.
func (p *PostgresDB) UpdateColumns(ctx context.Context, model any, column string, value any, updates map[string]any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := p.DB.WithContext(ctx).Model(model).Where(query, value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("updating records by %q: %w", column, translateError(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresDB) DeleteBy(ctx context.Context, model any, column string, value any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := p.DB.WithContext(ctx).Where(query, value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %q: %w", column, translateError(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exec runs a raw statement, one round-trip, autocommit.
func (p *PostgresDB) Exec(ctx context.Context, sql string, args ...any) error {
	if err := p.DB.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("exec statement: %w", translateError(err))
	}
	return nil
}

// translateError maps driver-level SQLSTATE failures to sentinel errors
// the repository can turn into domain rejections.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	case codeCheckViolation:
		return fmt.Errorf("%w: %s", ErrCheckViolation, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
	}

	return err
}
