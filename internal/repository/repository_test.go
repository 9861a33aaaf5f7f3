package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"scriptmarket/internal/client"
	"scriptmarket/internal/config"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := client.InitDatabase(context.Background(), &config.Database{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}, client.Backoff{
		PingTimeout: time.Second,
		MaxWait:     time.Second,
		Initial:     time.Millisecond,
		Max:         time.Millisecond,
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
