package helpers

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"patitas_backend/internal/app"
	"patitas_backend/internal/config"
	"patitas_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server over the full router plus a direct
// handle on the test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Client *http.Client
}

// NewTestServer connects to the database named by TEST_DATABASE_URL, runs
// the migrations and starts the router. Tests are skipped when the
// variable is unset. The client keeps cookies but does not follow
// redirects, so tests can assert on Location headers.
func NewTestServer(t *testing.T) *TestServer {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set; skipping integration test")
	}
	// Affected row counts must mean matched rows, matching the server DSN.
	if !strings.Contains(dsn, "clientFoundRows") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "clientFoundRows=true"
	}

	gin.SetMode(gin.TestMode)
	logger.Init("test")

	config.LoadConfig()
	cfg := config.AppConfig
	if cfg.Session.Secret == "" || cfg.Session.Secret == "change-me-in-production" {
		cfg.Session.Secret = "integration-test-secret"
	}
	cfg.Storage.Type = "db"

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := app.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &TestServer{
		Server: server,
		DB:     db,
		Client: client,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables empties every table between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	tables := []string{
		"reviews",
		"caregiver_services",
		"caregiver_profiles",
		"contact_messages",
		"users",
	}
	if err := ts.DB.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; err != nil {
		t.Fatalf("failed to disable FK checks: %v", err)
	}
	for _, table := range tables {
		if err := ts.DB.Exec("TRUNCATE TABLE " + table).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
	if err := ts.DB.Exec("SET FOREIGN_KEY_CHECKS = 1").Error; err != nil {
		t.Fatalf("failed to re-enable FK checks: %v", err)
	}
}

// ResetSession drops all cookies, signing the client out.
func (ts *TestServer) ResetSession(t *testing.T) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	ts.Client.Jar = jar
}

// Get performs a GET and returns the response plus its body.
func (ts *TestServer) Get(t *testing.T, path string) (*http.Response, string) {
	res, err := ts.Client.Get(ts.Server.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return res, readBody(t, res)
}

// PostForm performs an urlencoded form POST and returns the response plus
// its body.
func (ts *TestServer) PostForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	res, err := ts.Client.Post(
		ts.Server.URL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return res, readBody(t, res)
}

func readBody(t *testing.T, res *http.Response) string {
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}
