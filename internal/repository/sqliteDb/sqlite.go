package sqliteDb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RobbyCBennett/Serve/internal/models"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// topPathLimit caps how many paths Summary ranks.
const topPathLimit = 5

type SQLiteRepository struct {
	Db *sql.DB
}

func New(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %v", err)
		}
	}

	// Create an empty database file if it doesn't exist
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		file, err := os.Create(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create database file: %v", err)
		}
		file.Close()
	}

	// Open SQLite database with WAL journaling and timeout settings
	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Verify database connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	// Create tables if they don't exist
	if err := initDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	return &SQLiteRepository{Db: db}, nil
}

func initDB(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS accesses (
			id INTEGER PRIMARY KEY,
			time DATETIME NOT NULL,
			remote_addr TEXT,
			path TEXT,
			status INTEGER,
			bytes INTEGER DEFAULT 0,
			content_type TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS accesses_time ON accesses (time)`)
	return err
}

func (r *SQLiteRepository) Close() error {
	return r.Db.Close()
}

func (r *SQLiteRepository) Save(record models.AccessRecord) error {
	_, err := r.Db.Exec(
		"INSERT INTO accesses (time, remote_addr, path, status, bytes, content_type) VALUES (?, ?, ?, ?, ?, ?)",
		record.Time,
		record.RemoteAddr,
		record.Path,
		record.Status,
		record.Bytes,
		record.ContentType,
	)
	if err != nil {
		log.Errorf("Error saving access record: %v", err)
		return err
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *SQLiteRepository) Recent(limit int) ([]models.AccessRecord, error) {
	rows, err := r.Db.Query(
		"SELECT id, time, remote_addr, path, status, bytes, content_type FROM accesses ORDER BY time DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AccessRecord
	for rows.Next() {
		var record models.AccessRecord
		err := rows.Scan(
			&record.Id,
			&record.Time,
			&record.RemoteAddr,
			&record.Path,
			&record.Status,
			&record.Bytes,
			&record.ContentType,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *SQLiteRepository) Summary() (models.AccessSummary, error) {
	summary := models.AccessSummary{ByStatus: make(map[int]int64)}

	row := r.Db.QueryRow("SELECT COUNT(*), COALESCE(SUM(bytes), 0) FROM accesses")
	if err := row.Scan(&summary.Total, &summary.BytesSent); err != nil {
		return summary, err
	}

	rows, err := r.Db.Query("SELECT status, COUNT(*) FROM accesses GROUP BY status")
	if err != nil {
		return summary, err
	}
	defer rows.Close()
	for rows.Next() {
		var status int
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return summary, err
		}
		summary.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return summary, err
	}

	rows, err = r.Db.Query(
		"SELECT path, COUNT(*) AS n FROM accesses WHERE path != '' GROUP BY path ORDER BY n DESC LIMIT ?",
		topPathLimit,
	)
	if err != nil {
		return summary, err
	}
	defer rows.Close()
	for rows.Next() {
		var pathCount models.PathCount
		if err := rows.Scan(&pathCount.Path, &pathCount.Count); err != nil {
			return summary, err
		}
		summary.TopPaths = append(summary.TopPaths, pathCount)
	}
	return summary, rows.Err()
}
