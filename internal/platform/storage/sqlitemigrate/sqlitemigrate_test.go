package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyCreatesTables(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"0001_init.sql": {Data: []byte("CREATE TABLE request_log (id INTEGER PRIMARY KEY);")},
	}

	if err := Apply(db, migrations, "."); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := db.Exec("INSERT INTO request_log (id) VALUES (1)"); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"0001_init.sql": {Data: []byte("CREATE TABLE request_log (id INTEGER PRIMARY KEY);")},
	}

	if err := Apply(db, migrations, "."); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	if err := Apply(db, migrations, "."); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}

	var applied int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("applied migrations = %d, want 1", applied)
	}
}

func TestApplyRunsInLexicalOrder(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"0002_add_column.sql": {Data: []byte("ALTER TABLE request_log ADD COLUMN module TEXT;")},
		"0001_init.sql":       {Data: []byte("CREATE TABLE request_log (id INTEGER PRIMARY KEY);")},
	}

	if err := Apply(db, migrations, "."); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := db.Exec("INSERT INTO request_log (id, module) VALUES (1, 'garden')"); err != nil {
		t.Fatalf("insert with migrated column: %v", err)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	if err := Apply(nil, fstest.MapFS{}, "."); err == nil {
		t.Fatal("Apply(nil db) error = nil, want error")
	}
}
