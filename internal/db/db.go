package db

import (
	"fmt"

	puresqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite     = "sqlite"      // cgo, mattn/go-sqlite3
	DriverSQLitePure = "sqlite-pure" // bez cgo, modernc przez glebarez
	DriverMySQL      = "mysql"
	DriverPostgres   = "postgres"
)

type Handle struct {
	DB     *gorm.DB
	Driver string
	Path   string // ścieżka pliku albo DSN
}

// IsFileDriver mówi, czy baza to plik na dysku (wtedy musi istnieć przed otwarciem).
func IsFileDriver(driver string) bool {
	switch driver {
	case "", DriverSQLite, DriverSQLitePure:
		return true
	}
	return false
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", DriverSQLite:
		return sqlite.Open(dsn), nil
	case DriverSQLitePure:
		return puresqlite.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("nieznany sterownik bazy %q", driver)
	}
}

// Open otwiera bazę. Dla sqlite dsn to ścieżka pliku.
func Open(driver, dsn string, sqlDebug bool) (*Handle, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if sqlDebug {
		level = logger.Info
	}
	gdb, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(level),
		// transakcję prowadzi importer
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}
	if driver == "" {
		driver = DriverSQLite
	}
	return &Handle{DB: gdb, Driver: driver, Path: dsn}, nil
}

func (h *Handle) Close() error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
