package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/container"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

type envelope struct {
	Status    int             `json:"status"`
	RequestID string          `json:"request_id"`
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Meta      json.RawMessage `json:"meta"`
	Error     json.RawMessage `json:"error"`
}

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
	clock  *helpers.ManualClock
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	clock := helpers.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cfg := &config.Config{
		BcryptCost:          bcrypt.MinCost,
		SessionTTL:          time.Hour,
		SessionCookieName:   "session_token",
		DebugMetricsEnabled: true,
	}
	c := container.New(cfg, helpers.NewDiscardLogger(), container.MemoryRepositories(), container.Options{Clock: clock})
	return &testAPI{t: t, engine: New(c), clock: clock}
}

func (a *testAPI) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (a *testAPI) register(email, role string, extra map[string]any) {
	a.t.Helper()
	body := map[string]any{"email": email, "password": "secret123", "name": "User " + email, "role": role}
	for k, v := range extra {
		body[k] = v
	}
	w, env := a.do(http.MethodPost, "/api/register", "", body)
	require.Equal(a.t, http.StatusCreated, w.Code, env.Message)
}

func (a *testAPI) login(email string) string {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/api/login", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(a.t, http.StatusOK, w.Code, env.Message)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(a.t, out.Token)
	return out.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@unrc.mx", "candidate", map[string]any{"program": "Data Science", "term": 8, "skills": "Python, SQL"})

	w, env := api.do(http.MethodPost, "/api/login", "", map[string]string{"email": "ana@unrc.mx", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session_token=")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	token := decode[struct {
		Token string `json:"token"`
	}](t, env.Data).Token

	w, env = api.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[map[string]any](t, env.Data)
	assert.Equal(t, "ana@unrc.mx", me["email"])
	assert.Equal(t, "candidate", me["role"])
	assert.Equal(t, "Data Science", me["program"])
	assert.NotContains(t, me, "password")

	w, _ = api.do(http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = api.do(http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "no active session", env.Message)

	// logout without a session still succeeds
	w, _ = api.do(http.MethodPost, "/api/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionCookieIsAccepted(t *testing.T) {
	api := newTestAPI(t)
	api.register("org@data.mx", "organization", nil)
	token := api.login("org@data.mx")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionExpires(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@unrc.mx", "candidate", nil)
	token := api.login("ana@unrc.mx")

	api.clock.Advance(time.Hour + time.Second)
	w, _ := api.do(http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFailures(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@unrc.mx", "candidate", nil)

	w, wrongPwd := api.do(http.MethodPost, "/api/login", "", map[string]string{"email": "ana@unrc.mx", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, unknown := api.do(http.MethodPost, "/api/login", "", map[string]string{"email": "ghost@unrc.mx", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPwd.Message, unknown.Message)
	assert.Equal(t, "invalid email or password", unknown.Message)

	w, _ = api.do(http.MethodPost, "/api/login", "", map[string]string{"email": "ana@unrc.mx"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@unrc.mx", "candidate", nil)

	w, env := api.do(http.MethodPost, "/api/register", "", map[string]any{
		"email": "ana@unrc.mx", "password": "secret123", "name": "Again", "role": "candidate",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email already registered", env.Message)

	w, env = api.do(http.MethodPost, "/api/register", "", map[string]any{
		"email": "x@unrc.mx", "password": "short", "name": "X", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	details := decode[map[string]string](t, env.Error)
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "role")
}

func TestCompatibilityEndpoint(t *testing.T) {
	api := newTestAPI(t)
	w, env := api.do(http.MethodPost, "/api/compatibility", "", map[string]string{
		"candidate_skills": "Python, SQL, Machine Learning",
		"required_skills":  "Python, Django, SQL",
	})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[struct {
		Rounded   float64  `json:"rounded"`
		SkillGaps []string `json:"skill_gaps"`
	}](t, env.Data)
	assert.InDelta(t, 66.67, out.Rounded, 1e-9)
	assert.Equal(t, []string{"django"}, out.SkillGaps)
}

func TestOrganizationAndCandidateFlow(t *testing.T) {
	api := newTestAPI(t)
	api.register("org@data.mx", "organization", nil)
	api.register("ana@unrc.mx", "candidate", map[string]any{"program": "Data Science", "term": 8, "skills": "Python, SQL, Machine Learning"})
	orgToken := api.login("org@data.mx")
	candToken := api.login("ana@unrc.mx")

	// candidates cannot publish
	w, _ := api.do(http.MethodPost, "/api/organization/offers", candToken, map[string]string{"title": "x", "category": "job"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := api.do(http.MethodPost, "/api/organization/offers", orgToken, map[string]string{
		"title": "Junior Python Developer", "category": "job", "required_skills": "Python, Django, SQL", "location": "CDMX",
	})
	require.Equal(t, http.StatusCreated, w.Code, env.Message)
	offer := decode[map[string]any](t, env.Data)
	offerID := offer["id"].(string)
	assert.Equal(t, "Job", offer["category_label"])

	w, env = api.do(http.MethodGet, "/api/offers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, string(env.Meta))

	w, env = api.do(http.MethodGet, "/api/candidate/offers/"+offerID+"/compatibility", candToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ev := decode[struct {
		Score float64  `json:"score"`
		Gaps  []string `json:"gaps"`
	}](t, env.Data)
	assert.InDelta(t, 66.67, ev.Score, 0.01)
	assert.Equal(t, []string{"django"}, ev.Gaps)

	w, env = api.do(http.MethodPost, "/api/candidate/offers/"+offerID+"/apply", candToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	matchID := decode[map[string]any](t, env.Data)["id"].(string)

	w, env = api.do(http.MethodGet, "/api/organization/offers/"+offerID+"/matches", orgToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, string(env.Meta))

	w, _ = api.do(http.MethodPatch, "/api/organization/matches/"+matchID, orgToken, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = api.do(http.MethodPatch, "/api/organization/matches/"+matchID, orgToken, map[string]string{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", decode[map[string]any](t, env.Data)["status"])

	w, env = api.do(http.MethodPatch, "/api/organization/offers/"+offerID, orgToken, map[string]bool{"active": false})
	require.Equal(t, http.StatusOK, w.Code)
	_, env = api.do(http.MethodGet, "/api/offers", "", nil)
	assert.JSONEq(t, `{"count":0}`, string(env.Meta))

	w, _ = api.do(http.MethodPost, "/api/candidate/offers/"+offerID+"/apply", candToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/api/me", "/api/stats/users", "/api/organization/offers", "/api/candidate/matches", "/api/organizations/x/offers"} {
		w, env := api.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.False(t, env.Success, path)
	}
}

func TestUnknownOfferIs404(t *testing.T) {
	api := newTestAPI(t)
	w, env := api.do(http.MethodGet, "/api/offers/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestDebugVars(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "auth_login_success")
}

func TestRegisterRejectsPasswordsOverBcryptLimit(t *testing.T) {
	api := newTestAPI(t)

	w, env := api.do(http.MethodPost, "/api/register", "", map[string]any{
		"email": "long@unrc.mx", "password": strings.Repeat("p", 80), "name": "Long", "role": "candidate",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, env.Error), "password")

	// 40 runes passes the length tag but is 80 bytes
	w, env = api.do(http.MethodPost, "/api/register", "", map[string]any{
		"email": "wide@unrc.mx", "password": strings.Repeat("ñ", 40), "name": "Wide", "role": "candidate",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid profile", env.Message)
}

func TestBearerHeaderWinsOverStaleCookie(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@unrc.mx", "candidate", nil)
	token := api.login("ana@unrc.mx")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "revoked-token"})
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionCookieLifetimeFollowsSessionClock(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@unrc.mx", "candidate", nil)

	w, _ := api.do(http.MethodPost, "/api/login", "", map[string]string{"email": "ana@unrc.mx", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=3600")
}
