package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"breneo/internal/database"
	"breneo/internal/delivery/http/middleware"
	"breneo/internal/domain/matching"
	"breneo/internal/domain/user"
	"breneo/internal/pkg/jwt"
	"breneo/internal/usecase"
	ucauth "breneo/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestMatchHandler_Skills(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(usecase.NewScoringUsecase()).RegisterRoutes(app)

	status, env := do(t, app, http.MethodPost, "/match/skills", `{"user_skills":["Go"],"job_skills":["go"]}`, "")
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Percent int    `json:"percent"`
		Label   string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 92, data.Percent)
	assert.Equal(t, "Best match", data.Label)
}

func TestMatchHandler_BadBodies(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(usecase.NewScoringUsecase()).RegisterRoutes(app)

	status, _ := do(t, app, http.MethodPost, "/match/skills", `{"user_skills":`, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := do(t, app, http.MethodPost, "/match/skills", `{"job_title":"`+strings.Repeat("x", 301)+`"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Equal(t, "max", fields["job_title"])

	status, _ = do(t, app, http.MethodPost, "/match/skill-scores", `{"limit":-1}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestMatchHandler_IndustryAcceptsStringOrArray(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(usecase.NewScoringUsecase()).RegisterRoutes(app)

	for _, tags := range []string{`"FinTech, Healthcare"`, `["fintech","healthcare"]`} {
		status, env := do(t, app, http.MethodPost, "/match/industry", `{"job_tags":`+tags+`,"user_industry_years":{"fintech":2}}`, "")
		require.Equal(t, http.StatusOK, status, tags)

		var res matching.IndustryMatchResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		require.NotNil(t, res.Percent)
		assert.Equal(t, 50, *res.Percent)
		assert.Equal(t, []string{"healthcare"}, res.Missing)
	}

	status, _ := do(t, app, http.MethodPost, "/match/industry", `{"job_tags":42}`, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMatchHandler_SkillScoresKeepsOrder(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(usecase.NewScoringUsecase()).RegisterRoutes(app)

	status, env := do(t, app, http.MethodPost, "/match/skill-scores",
		`{"answers":[{"relatedSkills":["Zeta","Alpha"]},{"relatedSkills":["Alpha"]}],"limit":1}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"scores":{"Zeta":1,"Alpha":2},"top_skills":[{"skill":"Alpha","score":2}]}`, string(env.Data))
	assert.True(t, strings.Index(string(env.Data), "Zeta") < strings.Index(string(env.Data), `"Alpha":2`))
}

type stubMatching struct {
	res usecase.JobMatch
	err error
}

func (s stubMatching) MatchJob(context.Context, uuid.UUID, uuid.UUID) (usecase.JobMatch, error) {
	return s.res, s.err
}

func authed(app *fiber.App, svc jwt.Service) fiber.Router {
	return app.Group("", middleware.NewAuthMiddleware(svc).Middleware())
}

func TestJobMatchHandler(t *testing.T) {
	svc := jwt.NewHMACService("a", "r", time.Minute, time.Hour)
	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID, "a@example.com")
	require.NoError(t, err)
	jobID := uuid.New()

	t.Run("unauthenticated", func(t *testing.T) {
		app := newTestApp()
		NewJobMatchHandler(stubMatching{}).RegisterRoutes(authed(app, svc))
		status, _ := do(t, app, http.MethodGet, "/jobs/"+jobID.String()+"/match", "", "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("bad id", func(t *testing.T) {
		app := newTestApp()
		NewJobMatchHandler(stubMatching{}).RegisterRoutes(authed(app, svc))
		status, _ := do(t, app, http.MethodGet, "/jobs/nope/match", "", token)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("missing profile", func(t *testing.T) {
		app := newTestApp()
		NewJobMatchHandler(stubMatching{err: usecase.ErrMatchProfileNotFound}).RegisterRoutes(authed(app, svc))
		status, env := do(t, app, http.MethodGet, "/jobs/"+jobID.String()+"/match", "", token)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Match profile not found", env.Message)
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		app := newTestApp()
		NewJobMatchHandler(stubMatching{err: usecase.ErrInternal}).RegisterRoutes(authed(app, svc))
		status, env := do(t, app, http.MethodGet, "/jobs/"+jobID.String()+"/match", "", token)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal server error", env.Message)
	})

	t.Run("ok", func(t *testing.T) {
		app := newTestApp()
		res := usecase.JobMatch{Result: matching.MatchResult{OverallPercent: 81, Badges: []string{"Good match"}}, Label: "Good match"}
		res.Job.ID = jobID
		NewJobMatchHandler(stubMatching{res: res}).RegisterRoutes(authed(app, svc))
		status, env := do(t, app, http.MethodGet, "/jobs/"+jobID.String()+"/match", "", token)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Label  string `json:"label"`
			Result struct {
				OverallPercent int `json:"overall_percent"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Good match", data.Label)
		assert.Equal(t, 81, data.Result.OverallPercent)
	})
}

type stubProfiles struct {
	saved matching.UserMatchProfile
}

func (s *stubProfiles) GetMatchProfile(context.Context, uuid.UUID) (user.MatchProfile, error) {
	return user.MatchProfile{}, usecase.ErrMatchProfileNotFound
}

func (s *stubProfiles) UpdateMatchProfile(_ context.Context, userID uuid.UUID, in matching.UserMatchProfile) (user.MatchProfile, error) {
	s.saved = in
	return user.MatchProfile{UserID: userID, Profile: in}, nil
}

func TestUserHandler_UpdateMatchProfile(t *testing.T) {
	svc := jwt.NewHMACService("a", "r", time.Minute, time.Hour)
	token, err := svc.GenerateAccessToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	profiles := &stubProfiles{}
	app := newTestApp()
	NewUserHandler(nil, profiles, nil).RegisterRoutes(authed(app, svc).Group("/users"))

	status, _ := do(t, app, http.MethodPut, "/users/me/match-profile",
		`{"user_skills":["Go"],"seniority":"Senior","years_experience_by_industry":{"fintech":3}}`, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Go"}, profiles.saved.UserSkills)
	assert.Equal(t, matching.Seniority("Senior"), profiles.saved.Seniority)

	status, env := do(t, app, http.MethodPut, "/users/me/match-profile", `{"years_experience_total":-2}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, string(env.Data), "years_experience_total")

	status, _ = do(t, app, http.MethodGet, "/users/me/match-profile", "", token)
	assert.Equal(t, http.StatusNotFound, status)
}

type stubAuth struct {
	sess       usecase.Session
	err        error
	gotRefresh string
}

func (s *stubAuth) Register(context.Context, ucauth.RegisterInput) (usecase.Session, error) {
	return s.sess, s.err
}

func (s *stubAuth) Login(context.Context, ucauth.LoginInput) (usecase.Session, error) {
	return s.sess, s.err
}

func (s *stubAuth) Refresh(_ context.Context, tok string) (usecase.TokenPair, error) {
	s.gotRefresh = tok
	return s.sess.Tokens, s.err
}

func TestAuthHandler(t *testing.T) {
	sess := usecase.Session{
		User:   user.User{ID: uuid.New(), Email: "ada@example.com"},
		Tokens: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
	}
	newApp := func(uc usecase.AuthUsecase) *fiber.App {
		app := newTestApp()
		NewAuthHandler(uc).RegisterRoutes(app.Group("/auth"))
		return app
	}

	t.Run("register", func(t *testing.T) {
		status, env := do(t, newApp(&stubAuth{sess: sess}), http.MethodPost, "/auth/register",
			`{"email":"ada@example.com","password":"password1"}`, "")
		require.Equal(t, http.StatusCreated, status)
		var got struct {
			User        user.User `json:"user"`
			TokenType   string    `json:"token_type"`
			AccessToken string    `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, sess.User.ID, got.User.ID)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, "acc", got.AccessToken)
	})

	t.Run("register conflict", func(t *testing.T) {
		status, env := do(t, newApp(&stubAuth{err: ucauth.ErrEmailAlreadyRegistered}), http.MethodPost, "/auth/register",
			`{"email":"ada@example.com","password":"password1"}`, "")
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Email already registered", env.Message)
	})

	t.Run("register short password", func(t *testing.T) {
		status, _ := do(t, newApp(&stubAuth{sess: sess}), http.MethodPost, "/auth/register",
			`{"email":"ada@example.com","password":"short"}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("login bad credentials", func(t *testing.T) {
		status, _ := do(t, newApp(&stubAuth{err: ucauth.ErrInvalidCredentials}), http.MethodPost, "/auth/login",
			`{"email":"ada@example.com","password":"nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("refresh from body", func(t *testing.T) {
		uc := &stubAuth{sess: sess}
		status, _ := do(t, newApp(uc), http.MethodPost, "/auth/refresh", `{"refresh_token":"from-body"}`, "header-token")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "from-body", uc.gotRefresh)
	})

	t.Run("refresh from header", func(t *testing.T) {
		uc := &stubAuth{sess: sess}
		status, _ := do(t, newApp(uc), http.MethodPost, "/auth/refresh", "", "header-token")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "header-token", uc.gotRefresh)
	})

	t.Run("refresh missing", func(t *testing.T) {
		status, _ := do(t, newApp(&stubAuth{sess: sess}), http.MethodPost, "/auth/refresh", "", "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("refresh expired", func(t *testing.T) {
		status, env := do(t, newApp(&stubAuth{err: usecase.ErrRefreshTokenExpired}), http.MethodPost, "/auth/refresh", "", "tok")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Refresh token expired", env.Message)
	})
}

func TestPageQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error { return c.JSON(pageQuery(c, 20, 50)) })

	cases := map[string]page{
		"/":                      {Limit: 20, Offset: 0},
		"/?limit=10&offset=30":   {Limit: 10, Offset: 30},
		"/?limit=500":            {Limit: 50, Offset: 0},
		"/?limit=0&offset=-4":    {Limit: 20, Offset: 0},
		"/?limit=ten&offset=two": {Limit: 20, Offset: 0},
	}
	for url, want := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
		require.NoError(t, err)
		var got page
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		resp.Body.Close()
		assert.Equal(t, want, got, url)
	}
}

type pingStub struct {
	err   error
	stats *database.PoolStats
}

func (p pingStub) Ping(context.Context) error { return p.err }

type pooledPing struct{ pingStub }

func (p pooledPing) Stats() database.PoolStats { return *p.stats }

func TestHealthHandler(t *testing.T) {
	app := newTestApp()
	db := pooledPing{pingStub{stats: &database.PoolStats{Total: 3, Idle: 2, Acquired: 1, Max: 10}}}
	NewHealthHandler(db, pingStub{err: errors.New("refused")}).RegisterRoutes(app)

	status, env := do(t, app, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, status)
	var got struct {
		Database string             `json:"database"`
		Cache    string             `json:"cache"`
		Pool     database.PoolStats `json:"database_pool"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "up", got.Database)
	assert.Equal(t, "down", got.Cache)
	assert.Equal(t, int32(10), got.Pool.Max)

	app = newTestApp()
	NewHealthHandler(nil, nil).RegisterRoutes(app)
	_, env = do(t, app, http.MethodGet, "/health", "", "")
	assert.JSONEq(t, `{"database":"disabled","cache":"disabled"}`, string(env.Data))
}
