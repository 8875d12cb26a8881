package migrate

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:embed mongo/*.json
var migrationsFS embed.FS

// Apply runs all migrations up using the embedded migration files. Each file
// is a JSON array of database commands (createIndexes and friends).
func Apply(ctx context.Context, client *mongo.Client, databaseName string) error {
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}

	srcDriver, err := iofs.New(migrationsFS, "mongo")
	if err != nil {
		return fmt.Errorf("init iofs: %w", err)
	}

	dbDriver, err := mongodb.WithInstance(client, &mongodb.Config{DatabaseName: databaseName})
	if err != nil {
		return fmt.Errorf("init db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "mongodb", dbDriver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
