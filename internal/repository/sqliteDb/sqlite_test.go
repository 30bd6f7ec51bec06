package sqliteDb

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/RobbyCBennett/Serve/internal/models"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "access.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func saveAll(t *testing.T, repo *SQLiteRepository, records []models.AccessRecord) {
	t.Helper()
	for _, record := range records {
		if err := repo.Save(record); err != nil {
			t.Fatalf("save %q: %v", record.Path, err)
		}
	}
}

func TestSaveAndRecent(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Now().Add(-time.Minute)
	saveAll(t, repo, []models.AccessRecord{
		{Time: base, RemoteAddr: "127.0.0.1:50000", Path: "/index.html", Status: http.StatusOK, Bytes: 11, ContentType: "text/html"},
		{Time: base.Add(time.Second), RemoteAddr: "127.0.0.1:50001", Path: "/missing.html", Status: http.StatusNotFound},
		{Time: base.Add(2 * time.Second), RemoteAddr: "127.0.0.1:50002", Path: "/style.css", Status: http.StatusOK, Bytes: 18, ContentType: "text/css"},
	})

	records, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if got, want := len(records), 2; got != want {
		t.Fatalf("got %d records but wanted %d", got, want)
	}
	// Newest first
	if got, want := records[0].Path, "/style.css"; got != want {
		t.Errorf("got first path %q but wanted %q", got, want)
	}
	if got, want := records[1].Path, "/missing.html"; got != want {
		t.Errorf("got second path %q but wanted %q", got, want)
	}
	if records[0].Time.IsZero() {
		t.Errorf("got zero time but wanted the saved timestamp")
	}
}

func TestSummary(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Now()
	saveAll(t, repo, []models.AccessRecord{
		{Time: now, Path: "/index.html", Status: http.StatusOK, Bytes: 11},
		{Time: now, Path: "/index.html", Status: http.StatusOK, Bytes: 11},
		{Time: now, Path: "/style.css", Status: http.StatusOK, Bytes: 18},
		{Time: now, Path: "/missing.html", Status: http.StatusNotFound},
		{Time: now, Path: "", Status: http.StatusBadRequest},
	})

	summary, err := repo.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got, want := summary.Total, int64(5); got != want {
		t.Errorf("got total %d but wanted %d", got, want)
	}
	if got, want := summary.BytesSent, int64(40); got != want {
		t.Errorf("got bytes %d but wanted %d", got, want)
	}
	if got, want := summary.ByStatus[http.StatusOK], int64(3); got != want {
		t.Errorf("got %d OK but wanted %d", got, want)
	}
	if got, want := summary.ByStatus[http.StatusNotFound], int64(1); got != want {
		t.Errorf("got %d not found but wanted %d", got, want)
	}
	if got, want := len(summary.TopPaths), 3; got != want {
		t.Fatalf("got %d top paths but wanted %d", got, want)
	}
	if got, want := summary.TopPaths[0].Path, "/index.html"; got != want {
		t.Errorf("got top path %q but wanted %q", got, want)
	}
	if got, want := summary.TopPaths[0].Count, int64(2); got != want {
		t.Errorf("got top path count %d but wanted %d", got, want)
	}
}

func TestRecentOnEmptyLog(t *testing.T) {
	repo := newTestRepository(t)
	records, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records but wanted none", len(records))
	}
}
