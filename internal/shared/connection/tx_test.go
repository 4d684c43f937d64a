package connection_test

import (
	"testing"

	"go-attendance/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type probe struct {
	ID   string
	Name string
}

func TestBindTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "probes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Begin()
	assert.NoError(t, err)

	bound := connection.BindTx(gormDB, tx)
	res := bound.Model(&probe{}).Where("id = ?", "p-1").Update("name", "x")
	assert.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Same(t, gormDB, connection.BindTx(gormDB, nil))
}

func TestPostgresConfigDSN(t *testing.T) {
	cfg := connection.PostgresConfig{Host: "db", User: "app", Password: "secret", Name: "attendance", Port: "5432", SSLMode: "disable"}

	assert.Equal(t, "host=db user=app password=secret dbname=attendance port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
	assert.Equal(t, "smtp.example.com:587", connection.HostPort("smtp.example.com", 587))
}
