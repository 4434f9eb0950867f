// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "campus.db")
	os.Setenv("SESSION_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.BaseURL != "http://localhost:9000" {
		t.Errorf("expected derived base URL, got %s", cfg.BaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db", "-session-secret", "s1", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "test.db" {
		t.Errorf("expected test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_DefaultDatabaseFile(t *testing.T) {
	os.Setenv("SESSION_SECRET", "s1")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "database.db" {
		t.Errorf("expected database.db, got %s", cfg.DatabaseURL)
	}
	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingSecret(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-env-file", ""}); err == nil {
		t.Fatal("expected error when SESSION_SECRET is missing")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Setenv("SESSION_SECRET", "s1")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres", "-env-file", ""}); err == nil {
		t.Fatal("expected error when postgres has no URL")
	}
	if _, err := ParseFlags([]string{"-t", "mysql", "-env-file", ""}); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SESSION_SECRET=from-file\nPORT=7001\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SessionSecret != "from-file" {
		t.Errorf("expected secret from env file, got %q", cfg.SessionSecret)
	}
	if cfg.Port != 7001 {
		t.Errorf("expected port 7001 from env file, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	os.Setenv("SESSION_SECRET", "s1")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "nope.env")}); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}

func TestParseFlags_SQLitePath(t *testing.T) {
	os.Setenv("SESSION_SECRET", "s1")
	defer os.Clearenv()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"plain path", "campus.db", "campus.db", false},
		{"file URI", "file:data/campus.db", "data/campus.db", false},
		{"query parameters", "file:campus.db?mode=ro", "", true},
		{"empty file URI", "file:", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags([]string{"-d", tt.url, "-env-file", ""})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg.DatabaseURL != tt.want {
				t.Errorf("expected %s, got %s", tt.want, cfg.DatabaseURL)
			}
		})
	}
}

func TestParseFlags_PostgresURLUntouched(t *testing.T) {
	os.Setenv("SESSION_SECRET", "s1")
	defer os.Clearenv()

	url := "postgres://user:pw@localhost/campus?sslmode=disable"
	cfg, err := ParseFlags([]string{"-t", "postgres", "-d", url, "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != url {
		t.Errorf("expected %s, got %s", url, cfg.DatabaseURL)
	}
}
