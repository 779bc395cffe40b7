package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/ctfboard/internal/repository/file"
	"github.com/dtroode/ctfboard/internal/repository/memory"
	"github.com/dtroode/ctfboard/internal/service"
	"github.com/dtroode/ctfboard/internal/testutil"
	"github.com/dtroode/ctfboard/internal/token"
)

type testServer struct {
	engine *gin.Engine
	ledger *memory.SubmissionLedger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	passwordPath := filepath.Join(dir, "passwords.md")
	require.NoError(t, os.WriteFile(passwordPath, []byte("alice:hunter2\nbob:letmein\n"), 0o600))

	challengePath := filepath.Join(dir, "ctfs.json")
	require.NoError(t, os.WriteFile(challengePath, []byte(`[
	  {"id": "c1", "title": "Web 100", "description": "Find the flag.", "flag": "flag{one}"},
	  {"id": "c2", "title": "Crypto 200", "description": "Break it.", "flag": "flag{two}"}
	]`), 0o600))

	catalog, err := file.NewChallengeCatalog(challengePath)
	require.NoError(t, err)

	logger := testutil.MakeNoopLogger()
	ledger := memory.NewSubmissionLedger()
	sessions := memory.NewSessionStore()
	tokenManager := token.NewJWT("test-secret")

	authService := service.NewAuth(file.NewCredentialFile(passwordPath), sessions, tokenManager, time.Hour, logger)
	challengeService := service.NewChallenge(catalog, nil, logger)
	submissionService := service.NewSubmission(catalog, ledger, logger)
	leaderboardService := service.NewLeaderboard(ledger, logger)

	r := New(authService, authService, challengeService, submissionService, leaderboardService,
		time.Hour, false, logger)

	return &testServer{
		engine: r.Register(),
		ledger: ledger,
	}
}

func (ts *testServer) do(method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func (ts *testServer) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	w := ts.do(http.MethodPost, "/login", `{"username":"`+username+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestRouter_AuthGating(t *testing.T) {
	ts := newTestServer(t)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/user", ""},
		{http.MethodGet, "/api/ctfs", ""},
		{http.MethodPost, "/api/submit", `{"ctfId":"c1","submittedFlag":"flag{one}"}`},
		{http.MethodGet, "/api/leaderboard", ""},
		{http.MethodGet, "/api/ctfs/c1/attachments/handout.zip", ""},
		{http.MethodPost, "/logout", ""},
	}

	for _, route := range routes {
		w := ts.do(route.method, route.path, route.body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	// The rejected submit produced no side effects.
	events, err := ts.ledger.Snapshot(t.Context())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRouter_LoginFlow(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(http.MethodPost, "/login", `{"username":"alice"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	cookies := ts.login(t, "alice", "hunter2")

	w = ts.do(http.MethodGet, "/api/user", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice"}`, w.Body.String())
}

func TestRouter_Logout(t *testing.T) {
	ts := newTestServer(t)
	cookies := ts.login(t, "alice", "hunter2")

	w := ts.do(http.MethodPost, "/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	// The session row is gone; the old cookie no longer works.
	w = ts.do(http.MethodGet, "/api/user", "", cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_ListChallenges_WithholdsFlags(t *testing.T) {
	ts := newTestServer(t)
	cookies := ts.login(t, "alice", "hunter2")

	w := ts.do(http.MethodGet, "/api/ctfs", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var challenges []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &challenges))
	require.Len(t, challenges, 2)
	assert.Equal(t, "c1", challenges[0]["id"])
	assert.NotContains(t, w.Body.String(), "flag{")
}

func TestRouter_SubmitFlow(t *testing.T) {
	ts := newTestServer(t)
	cookies := ts.login(t, "alice", "hunter2")

	// Correct flag.
	w := ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c1","submittedFlag":"flag{one}"}`, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Correct flag!"}`, w.Body.String())

	// Repeat correct submission is a no-op.
	w = ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c1","submittedFlag":"flag{one}"}`, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Already entered"}`, w.Body.String())

	// Wrong flag, even after solving.
	w = ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c1","submittedFlag":"flag{bad}"}`, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Incorrect flag entered"}`, w.Body.String())

	// Unknown challenge.
	w = ts.do(http.MethodPost, "/api/submit", `{"ctfId":"ghost","submittedFlag":"flag{one}"}`, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed body never reaches the processor.
	w = ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c1"}`, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	events, err := ts.ledger.Snapshot(t.Context())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRouter_Leaderboard(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.login(t, "alice", "hunter2")
	bob := ts.login(t, "bob", "letmein")

	w := ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c1","submittedFlag":"flag{one}"}`, alice)
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c1","submittedFlag":"flag{one}"}`, bob)
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodPost, "/api/submit", `{"ctfId":"c2","submittedFlag":"flag{two}"}`, bob)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/leaderboard", "", alice)
	require.Equal(t, http.StatusOK, w.Code)

	var board struct {
		Overall []struct {
			Username    string `json:"username"`
			SolvedCount int    `json:"solvedCount"`
		} `json:"overall"`
		CTFs map[string][]struct {
			Username string `json:"username"`
		} `json:"ctfs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))

	require.Len(t, board.Overall, 2)
	assert.Equal(t, "bob", board.Overall[0].Username)
	assert.Equal(t, 2, board.Overall[0].SolvedCount)
	assert.Equal(t, "alice", board.Overall[1].Username)

	require.Len(t, board.CTFs["c1"], 2)
	assert.Equal(t, "alice", board.CTFs["c1"][0].Username)
	assert.Equal(t, "bob", board.CTFs["c1"][1].Username)
}

func TestRouter_Leaderboard_Empty(t *testing.T) {
	ts := newTestServer(t)
	cookies := ts.login(t, "alice", "hunter2")

	w := ts.do(http.MethodGet, "/api/leaderboard", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"overall":[],"ctfs":{}}`, w.Body.String())
}

func TestRouter_Attachment_NotFound(t *testing.T) {
	ts := newTestServer(t)
	cookies := ts.login(t, "alice", "hunter2")

	// No attachments declared, no storage configured.
	w := ts.do(http.MethodGet, "/api/ctfs/c1/attachments/handout.zip", "", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/ctfs/ghost/attachments/handout.zip", "", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
