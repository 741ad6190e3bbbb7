package database

import (
	"database/sql"
	"errors"
	"time"

	"quotesearch/pkg/logger"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres pool and verifies it with a short retry loop,
// so a cold database or a DNS blip at startup does not kill the process.
func Connect(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not configured (set DATABASE_URL or database.dsn)")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Sugar.Errorf("Failed to open database connection: %v", err)
		return nil, err
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			logger.Sugar.Info("Successfully connected to the database")
			return db, nil
		}
		logger.Sugar.Infof("Database connection failed, retrying in 2s... (%v)", err)
		time.Sleep(2 * time.Second)
	}

	db.Close()
	return nil, errors.New("could not connect to database after retries")
}
