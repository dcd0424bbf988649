package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgresForIntegration returns connection settings for a throwaway
// Postgres, either an externally provided one (TEST_DB_DSN) or a container
// started here. The returned cleanup stops whatever was started.
func SetupPostgresForIntegration() (host, port string, cleanup func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		_ = db.Close()
		return os.Getenv("TEST_DB_HOST"), os.Getenv("TEST_DB_PORT"), func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "formhub_test",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	h, err := container.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	p, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=formhub_test sslmode=disable", h, p.Port())
	waitForDB(dsn)

	return h, p.Port(), func() {
		_ = container.Terminate(ctx)
	}
}

func waitForDB(dsn string) {
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if err := db.Ping(); err == nil {
				_ = db.Close()
				return
			}
			_ = db.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Fatal("postgres did not become ready in time")
}
