package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"

	"github.com/julesc00/planetaryApi/internal/mail"
	"github.com/julesc00/planetaryApi/internal/services"
	"github.com/julesc00/planetaryApi/internal/store"
)

const testSecret = "test-secret"

// recordingMailer captures outgoing mail instead of delivering it.
type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type testEnv struct {
	router *chi.Mux
	db     *sql.DB
	mailer *recordingMailer
}

// newTestEnv wires the full handler stack over an in-memory SQLite store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			firstname TEXT NOT NULL,
			lastname TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);

		CREATE TABLE planets (
			planet_id INTEGER PRIMARY KEY AUTOINCREMENT,
			planet_name TEXT NOT NULL,
			planet_type TEXT NOT NULL,
			home_star TEXT NOT NULL,
			mass REAL NOT NULL,
			radius REAL NOT NULL,
			distance REAL NOT NULL
		);`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userService := services.NewUserService(store.NewUserRepository(db))
	planetService := services.NewPlanetService(store.NewPlanetRepository(db))
	mailer := &recordingMailer{}

	router := chi.NewRouter()
	router.Get("/", Hello)
	router.Get("/super_simple", SuperSimple)
	router.Get("/parameters", Parameters)
	router.Get("/url_variables/{name}/{age}", URLVariables)
	AuthRouter(router, userService, mailer, testSecret, 15*time.Minute)
	PlanetRouter(router, planetService, RequireAuth(testSecret))

	return &testEnv{router: router, db: db, mailer: mailer}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal response: %v; body: %s", err, rec.Body.String())
	}
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (e *testEnv) register(t *testing.T, firstname, lastname, email, password string) {
	t.Helper()

	rec := e.do(formRequest(http.MethodPost, "/register", url.Values{
		"firstname": {firstname},
		"lastname":  {lastname},
		"email":     {email},
		"password":  {password},
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(
		`{"email":"`+email+`","password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := e.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp LoginResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken == "" {
		t.Fatalf("login returned empty access token")
	}
	return resp.AccessToken
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()

	e.register(t, "Jemima", "Briones", "jemima_eloise@earth.com", "chulis2022")
	return e.login(t, "jemima_eloise@earth.com", "chulis2022")
}

func planetForm(name string) url.Values {
	return url.Values{
		"planet_name": {name},
		"planet_type": {"Class D"},
		"home_star":   {"Sol"},
		"mass":        {"3.258e23"},
		"radius":      {"1516"},
		"distance":    {"35.98e6"},
	}
}
