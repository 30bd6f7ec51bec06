package config

import (
	"github.com/RobbyCBennett/Serve/internal/repository/sqliteDb"
	log "github.com/sirupsen/logrus"
)

var DB *sqliteDb.SQLiteRepository

func GetDB(dbPath string) *sqliteDb.SQLiteRepository {
	if DB == nil {
		instance, err := sqliteDb.New(dbPath)
		if err != nil {
			log.Fatalf("Error connecting to sqlite3 database: %s", err)
		}
		DB = instance
	}
	return DB
}

func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
