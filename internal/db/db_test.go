package db_test

import (
	"context"
	"database/sql"
	"qdoge/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should insert the record", func() {
				err := testDB.Insert(ctx, &Test{ID: 1, Username: "alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the unique index rejects the record", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*$`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_tests_username"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate with the constraint name", func() {
				err := testDB.Insert(ctx, &Test{ID: 1, Username: "alice"})
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(err.Error()).To(ContainSubstring("ux_tests_username"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a check constraint rejects the record", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*$`).
					WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "ck_tests_positive"})
				mock.ExpectRollback()
			})

			It("should return ErrCheckViolation", func() {
				err := testDB.Insert(ctx, &Test{ID: 1, Username: "alice"})
				Expect(err).To(MatchError(db.ErrCheckViolation))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a foreign key rejects the record", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*$`).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_tests_owner"})
				mock.ExpectRollback()
			})

			It("should return ErrForeignKey", func() {
				err := testDB.Insert(ctx, &Test{ID: 1, Username: "alice"})
				Expect(err).To(MatchError(db.ErrForeignKey))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("InsertBatch", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
				WithArgs("alice", 1, "bob", 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
			mock.ExpectCommit()
		})

		It("should insert the whole batch in one transaction", func() {
			err := testDB.InsertBatch(ctx, &[]Test{
				{ID: 1, Username: "alice"},
				{ID: 2, Username: "bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records match", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1.*`).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "alice").
						AddRow(2, "alice"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "alice", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Find", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id >= \$1 AND id < \$2 ORDER BY id asc`).
				WithArgs(1, 3).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(1, "alice").
					AddRow(2, "bob"))
		})

		It("should apply the condition and ordering", func() {
			var results []Test
			err := testDB.Find(ctx, &results, "id asc", "id >= ? AND id < ?", 1, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateColumns", func() {
		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE id = \$2$`).
					WithArgs("bob", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should apply the updates", func() {
				err := testDB.UpdateColumns(ctx, &Test{}, "id", 1, map[string]any{"username": "bob"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE id = \$2$`).
					WithArgs("bob", 42).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.UpdateColumns(ctx, &Test{}, "id", 42, map[string]any{"username": "bob"})
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteBy", func() {
		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE id = \$1$`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should delete the row", func() {
				err := testDB.DeleteBy(ctx, &Test{}, "id", 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE id = \$1$`).
					WithArgs(42).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.DeleteBy(ctx, &Test{}, "id", 42)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Exec", func() {
		BeforeEach(func() {
			mock.ExpectExec(`^DO \$\$ BEGIN.*`).
				WillReturnResult(sqlmock.NewResult(0, 0))
		})

		It("should run the raw statement", func() {
			err := testDB.Exec(ctx, "DO $$ BEGIN\nSELECT 1;\nEXCEPTION WHEN duplicate_object THEN NULL;\nEND $$")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
