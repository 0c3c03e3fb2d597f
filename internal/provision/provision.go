package provision

import (
	"context"
	"database/sql"
	"fmt"
	"qdoge/internal/config"
	"qdoge/internal/db"
	"qdoge/internal/repository"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// enum types and foreign keys have no CREATE ... IF NOT EXISTS form, so
// creation is wrapped in a duplicate_object-tolerant block
const createIfAbsentTemplate = `DO $$ BEGIN
%s;
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`

var enumDDL = []string{
	`CREATE TYPE user_role AS ENUM ('normal', 'admin')`,
	`CREATE TYPE trade_type AS ENUM ('buy', 'sell')`,
}

var foreignKeyDDL = []string{
	`ALTER TABLE "trade" ADD CONSTRAINT fk_trade_taker_wallet FOREIGN KEY (taker_wallet) REFERENCES "user" (wallet_id) ON DELETE RESTRICT`,
	`ALTER TABLE "trade" ADD CONSTRAINT fk_trade_maker_wallet FOREIGN KEY (maker_wallet) REFERENCES "user" (wallet_id) ON DELETE RESTRICT`,
	`ALTER TABLE "airdrop_result" ADD CONSTRAINT fk_airdrop_result_epoch FOREIGN KEY (epoch_num) REFERENCES "epoch" (epoch_num) ON DELETE CASCADE`,
	`ALTER TABLE "airdrop_result" ADD CONSTRAINT fk_airdrop_result_wallet FOREIGN KEY (wallet_id) REFERENCES "user" (wallet_id) ON DELETE RESTRICT`,
}

// Provisioner takes a server from zero infrastructure to a usable
// deployment: role, database, enum types, tables, constraints. Every step
// is a no-op when its object already exists. Any failure is fatal to
// startup and is never retried.
type Provisioner struct {
	logs   *zap.SugaredLogger
	target config.DatabaseTarget
	dsn    string
}

func NewProvisioner(logs *zap.SugaredLogger, cfg config.App) *Provisioner {
	return &Provisioner{
		logs:   logs,
		target: cfg.Database,
		dsn:    cfg.DBConnectionURL,
	}
}

// Run ensures role and database over an admin connection, then connects
// to the target database and materializes the schema.
func (p *Provisioner) Run(ctx context.Context) error {
	adminConn, err := openSQL(p.target.AdminDSN)
	if err != nil {
		return fmt.Errorf("connect to admin database: %w", err)
	}
	defer adminConn.Close()

	if err := p.EnsureRole(ctx, adminConn); err != nil {
		return fmt.Errorf("ensure role: %w", err)
	}

	if err := p.EnsureDatabase(ctx, adminConn); err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}

	targetDB, err := db.NewPostgresDB(p.dsn)
	if err != nil {
		return fmt.Errorf("connect to target database: %w", err)
	}
	defer targetDB.Close()

	if err := p.EnsureSchema(ctx, targetDB); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	p.logs.Infow("provisioning complete",
		"role", p.target.Role,
		"database", p.target.Name,
		"tables", []string{"user", "trade", "epoch", "airdrop_result"})

	return nil
}

// EnsureRole creates the application role with the configured password
// unless it already exists.
func (p *Provisioner) EnsureRole(ctx context.Context, conn *sql.DB) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_roles WHERE rolname = $1)`
	if err := conn.QueryRowContext(ctx, query, p.target.Role).Scan(&exists); err != nil {
		return fmt.Errorf("check role exists: %w", err)
	}

	if exists {
		p.logs.Infow("role already exists", "role", p.target.Role)
		return nil
	}

	// DDL takes no bind parameters, identifiers and the password literal
	// are quoted by hand
	stmt := fmt.Sprintf("CREATE ROLE %s WITH LOGIN PASSWORD %s",
		quoteIdentifier(p.target.Role), quoteLiteral(p.target.Password))
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create role: %w", err)
	}

	p.logs.Infow("role created", "role", p.target.Role)
	return nil
}

// EnsureDatabase creates the target database owned by the application
// role unless it already exists. CREATE DATABASE cannot run inside a
// transaction, the admin connection operates in autocommit.
func (p *Provisioner) EnsureDatabase(ctx context.Context, conn *sql.DB) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := conn.QueryRowContext(ctx, query, p.target.Name).Scan(&exists); err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}

	if exists {
		p.logs.Infow("database already exists", "database", p.target.Name)
		return nil
	}

	stmt := fmt.Sprintf("CREATE DATABASE %s OWNER %s",
		quoteIdentifier(p.target.Name), quoteIdentifier(p.target.Role))
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create database: %w", err)
	}

	p.logs.Infow("database created", "database", p.target.Name, "owner", p.target.Role)
	return nil
}

// EnsureSchema creates the enum types, the four ledger tables and their
// foreign keys on the target database. Safe to re-run.
func (p *Provisioner) EnsureSchema(ctx context.Context, targetDB *db.PostgresDB) error {
	for _, ddl := range enumDDL {
		if err := targetDB.Exec(ctx, fmt.Sprintf(createIfAbsentTemplate, ddl)); err != nil {
			return fmt.Errorf("create enum type: %w", err)
		}
	}

	repo := repository.NewLedgerRepository(targetDB)
	if err := repo.MigrateTables(); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	for _, ddl := range foreignKeyDDL {
		if err := targetDB.Exec(ctx, fmt.Sprintf(createIfAbsentTemplate, ddl)); err != nil {
			return fmt.Errorf("create foreign key: %w", err)
		}
	}

	p.logs.Infow("schema ensured", "database", p.target.Name)
	return nil
}

func openSQL(dsn string) (*sql.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}

	return sqlDB, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(value string) string {
	return `'` + strings.ReplaceAll(value, `'`, `''`) + `'`
}
