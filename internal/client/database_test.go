package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"scriptmarket/internal/config"
	"scriptmarket/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
)

var fastBackoff = Backoff{
	PingTimeout: 100 * time.Millisecond,
	MaxWait:     200 * time.Millisecond,
	Initial:     time.Millisecond,
	Max:         5 * time.Millisecond,
}

func TestPingWithBackoffRetriesUntilReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	if err := PingWithBackoff(context.Background(), db, fastBackoff); err != nil {
		t.Fatalf("PingWithBackoff returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPingWithBackoffGivesUp(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	for i := 0; i < 500; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = PingWithBackoff(context.Background(), db, fastBackoff)
	if err == nil {
		t.Fatal("expected error when database never answers")
	}
}

func TestPingWithBackoffHonoursCancellation(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := PingWithBackoff(ctx, db, DefaultBackoff); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestInitDatabaseMigratesSqlite(t *testing.T) {
	db, err := InitDatabase(context.Background(), &config.Database{
		Driver: "sqlite",
		URL:    "file:init_database_test?mode=memory&cache=shared",
	}, fastBackoff)
	if err != nil {
		t.Fatalf("InitDatabase returned error: %v", err)
	}

	for _, m := range model.AllModels() {
		if !db.Migrator().HasTable(m) {
			t.Errorf("table for %T was not created", m)
		}
	}
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := InitDatabase(context.Background(), &config.Database{Driver: "oracle", URL: "x"}, fastBackoff)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
