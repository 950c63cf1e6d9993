package postgres

import (
	"fmt"

	"taskwizard/internal/adapters/out/postgres/taskrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a lib/pq connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects GORM through the lib/pq driver, so database errors surface as *pq.Error.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
}

// Migrate creates or updates the tasks and task_stops tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&taskrepo.TaskDTO{}, &taskrepo.TaskStopDTO{})
}
