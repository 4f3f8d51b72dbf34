package controllers_test

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"
	"wordquest/app/controllers"
	"wordquest/app/db"
	"wordquest/app/middleware"
	"wordquest/app/models"
	"wordquest/app/repo"
	"wordquest/app/services"
	"wordquest/app/session"
	"wordquest/app/web"
	"wordquest/global"
	"wordquest/router"

	"github.com/rs/zerolog"
)

type testApp struct {
	srv      *httptest.Server
	accounts *services.AccountService
	words    *services.WordBankService
	scores   *services.LeaderboardService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	global.Logger = zerolog.Nop()

	gdb, err := db.Connect(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Word{}, &models.LeaderboardEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	accounts := services.NewAccountService(repo.NewUserRepository(gdb))
	words := services.NewWordBankService(repo.NewWordRepository(gdb))
	scores := services.NewLeaderboardService(repo.NewLeaderboardRepository(gdb))
	sessions := session.NewStore("test-secret", time.Hour)

	pages, err := web.New()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	pageCtrl := controllers.NewPageController(accounts, sessions, pages)
	adminCtrl := controllers.NewAdminController(accounts, words, pages)
	apiCtrl := controllers.NewAPIController(words, scores)
	gate := &middleware.SessionGate{Sessions: sessions}

	h := middleware.Logging(router.New(pageCtrl, adminCtrl, apiCtrl, gate))
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &testApp{srv: srv, accounts: accounts, words: words, scores: scores}
}

// client returns a cookie-keeping client that follows redirects.
func (a *testApp) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// noRedirectClient keeps cookies but stops at the first response so tests
// can assert on 302s.
func (a *testApp) noRedirectClient(t *testing.T) *http.Client {
	t.Helper()
	c := a.client(t)
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

// login creates an account and establishes a session on the client's jar.
func (a *testApp) login(t *testing.T, c *http.Client) *models.User {
	t.Helper()
	u, err := a.accounts.Create("Pat Tester", "pat@example.com", "hunter2")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	resp, err := c.PostForm(a.srv.URL+"/login", url.Values{
		"email":    {"pat@example.com"},
		"password": {"hunter2"},
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	return u
}
