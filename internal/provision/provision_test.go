package provision_test

import (
	"context"
	"database/sql"
	"errors"
	"qdoge/internal/config"
	"qdoge/internal/db"
	"qdoge/internal/provision"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("Provisioner", func() {
	var (
		mock        sqlmock.Sqlmock
		mockDb      *sql.DB
		err         error
		provisioner *provision.Provisioner
		ctx         context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		cfg := config.App{
			Database: config.DatabaseTarget{
				Role:     "qdoge",
				Password: "pw",
				Host:     "localhost",
				Port:     "5432",
				Name:     "qdogedb",
			},
		}
		provisioner = provision.NewProvisioner(zap.NewNop().Sugar(), cfg)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("EnsureRole", func() {
		When("the role already exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_roles WHERE rolname = \$1\)`).
					WithArgs("qdoge").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			})

			It("should not create the role again", func() {
				err := provisioner.EnsureRole(ctx, mockDb)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the role is missing", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_roles WHERE rolname = \$1\)`).
					WithArgs("qdoge").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

				mock.ExpectExec(`^CREATE ROLE "qdoge" WITH LOGIN PASSWORD 'pw'$`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			})

			It("should create the role with the configured password", func() {
				err := provisioner.EnsureRole(ctx, mockDb)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the existence check fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_roles WHERE rolname = \$1\)`).
					WithArgs("qdoge").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return the error without creating anything", func() {
				err := provisioner.EnsureRole(ctx, mockDb)
				Expect(err).To(MatchError(ContainSubstring("check role exists")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("EnsureDatabase", func() {
		When("the database already exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_database WHERE datname = \$1\)`).
					WithArgs("qdogedb").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			})

			It("should not create the database again", func() {
				err := provisioner.EnsureDatabase(ctx, mockDb)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the database is missing", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_database WHERE datname = \$1\)`).
					WithArgs("qdogedb").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

				mock.ExpectExec(`^CREATE DATABASE "qdogedb" OWNER "qdoge"$`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			})

			It("should create the database owned by the role", func() {
				err := provisioner.EnsureDatabase(ctx, mockDb)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("creation fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_database WHERE datname = \$1\)`).
					WithArgs("qdogedb").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

				mock.ExpectExec(`^CREATE DATABASE "qdogedb" OWNER "qdoge"$`).
					WillReturnError(errors.New("permission denied"))
			})

			It("should return the error", func() {
				err := provisioner.EnsureDatabase(ctx, mockDb)
				Expect(err).To(MatchError(ContainSubstring("create database")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("EnsureSchema", func() {
		var targetDB *db.PostgresDB

		BeforeEach(func() {
			dialector := postgres.New(postgres.Config{
				Conn:       mockDb,
				DriverName: "postgres",
			})

			gormDB, err := gorm.Open(dialector, &gorm.Config{})
			Expect(err).NotTo(HaveOccurred())

			targetDB = &db.PostgresDB{DB: gormDB}
		})

		When("an enum type cannot be created", func() {
			BeforeEach(func() {
				mock.ExpectExec(`(?s)^DO \$\$ BEGIN.*CREATE TYPE user_role.*`).
					WillReturnError(errors.New("permission denied"))
			})

			It("should abort before touching the tables", func() {
				err := provisioner.EnsureSchema(ctx, targetDB)
				Expect(err).To(MatchError(ContainSubstring("create enum type")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("table migration fails", func() {
			BeforeEach(func() {
				mock.ExpectExec(`(?s)^DO \$\$ BEGIN.*CREATE TYPE user_role.*`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`(?s)^DO \$\$ BEGIN.*CREATE TYPE trade_type.*`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
					WillReturnError(errors.New("connection reset"))
			})

			It("should return the migration error", func() {
				err := provisioner.EnsureSchema(ctx, targetDB)
				Expect(err).To(MatchError(ContainSubstring("migrate tables")))
			})
		})
	})
})
