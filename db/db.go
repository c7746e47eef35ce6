package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	databaseName = "battleship_sim"
)

const (
	maxOpenConns = 10
	maxIdleConns = 5
	connMaxLife  = time.Minute * 15
)

//go:embed migration
var migrations embed.FS

// ParseDsn picks the sql driver from the dsn scheme. Postgres urls are
// passed through, sqlite urls are reduced to the file path.
func ParseDsn(dsn string) (driver, dataSource string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", cerr.ErrUnsupportedDsn(dsn)
		}
		return DriverSqlite, path, nil
	}
	return "", "", cerr.ErrUnsupportedDsn(dsn)
}

// Open connects, pings and migrates. It returns the driver name
// so queries can be bound for it.
func Open(dsn string) (*sql.DB, string, error) {
	driver, dataSource, err := ParseDsn(dsn)
	if err != nil {
		return nil, "", err
	}

	// Open may just validate its arguments without creating a connection to the database
	db, err := sql.Open(driver, dataSource)
	if err != nil {
		return nil, "", err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", err
	}

	if driver == DriverSqlite {
		// single writer
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
		db.SetConnMaxLifetime(connMaxLife)
	}

	if err := Migrate(db, driver); err != nil {
		db.Close()
		return nil, "", err
	}

	return db, driver, nil
}

func MustConnectToDb(dsn string) (*sql.DB, string) {
	db, driver, err := Open(dsn)
	if err != nil {
		panic(err)
	}
	return db, driver
}

func Migrate(db *sql.DB, driver string) error {
	var (
		dbDriver database.Driver
		err      error
	)

	switch driver {
	case DriverPostgres:
		dbDriver, err = postgres.WithInstance(db, &postgres.Config{DatabaseName: databaseName})
	case DriverSqlite:
		dbDriver, err = sqlite.WithInstance(db, &sqlite.Config{DatabaseName: databaseName})
	default:
		return cerr.ErrUnsupportedDsn(driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s migrate driver: %w", driver, err)
	}

	src, err := iofs.New(migrations, "migration/"+driver)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, databaseName, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("database is dirty at migration version %d", version)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}
	log.Println("migration successful...")
	return nil
}
