package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/internal/bootstrap"
	"staffhub/internal/config"
	"staffhub/internal/server"
	"staffhub/internal/testutil"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	st := testutil.NewStore(t)
	cfg := &config.Config{
		Port:      "0",
		Env:       "test",
		JWTSecret: "test-secret",
	}
	require.NoError(t, bootstrap.EnsureRootAdmin(
		context.Background(), st, "root@example.com", "rootpass12"))

	srv := server.NewServerWithDeps(cfg, st, nil)
	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerUser(t *testing.T, app *fiber.App, email string) (token string, userID string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      email,
		"password":   "password12",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token, body.User.ID
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "root@example.com",
		"password": "rootpass12",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	return body.Token
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	token, _ := registerUser(t, app, "ada@example.com")

	// the token grants access to protected routes
	resp := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
	}
	decode(t, resp, &me)
	assert.Equal(t, "ada@example.com", me.Email)
	// credentials never leave the server
	assert.Empty(t, me.PasswordHash)

	// login works with any password while verification is off
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ada@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow_Failures(t *testing.T) {
	app := newTestApp(t)

	// protected route without a token
	resp := doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// unknown email
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password12",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// duplicate registration
	registerUser(t, app, "dup@example.com")
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      "DUP@example.com",
		"password":   "password12",
		"first_name": "Test",
		"last_name":  "User",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPostEndpoints(t *testing.T) {
	app := newTestApp(t)
	token, userID := registerUser(t, app, "ada@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", token, fiber.Map{
		"content": "Shipped the new dashboard.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post struct {
		ID       string `json:"id"`
		UserID   string `json:"user_id"`
		Approved bool   `json:"approved"`
	}
	decode(t, resp, &post)
	assert.Equal(t, userID, post.UserID)
	assert.True(t, post.Approved)

	resp = doJSON(t, app, http.MethodPost, "/api/posts/"+post.ID+"/like", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/posts/"+post.ID+"/comments", token, fiber.Map{
		"content": "First!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/posts", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []struct {
		ID       string   `json:"id"`
		Likes    []string `json:"likes"`
		Comments []struct {
			Content string `json:"content"`
		} `json:"comments"`
	}
	decode(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, []string{userID}, feed[0].Likes)
	require.Len(t, feed[0].Comments, 1)
	assert.Equal(t, "First!", feed[0].Comments[0].Content)
}

func TestAdminEndpoints_ForbiddenForUsers(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "user@example.com")

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, "/api/admin/posts/pending"},
		{http.MethodGet, "/api/admin/trainings/x/registrations"},
	} {
		resp := doJSON(t, app, route.method, route.path, token, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			fmt.Sprintf("%s %s", route.method, route.path))
	}
}

func TestTrainingLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := loginAdmin(t, app)
	userToken, _ := registerUser(t, app, "user@example.com")

	// users cannot create trainings
	resp := doJSON(t, app, http.MethodPost, "/api/trainings", userToken, fiber.Map{
		"title":      "Incident Response",
		"capacity":   2,
		"start_date": "2026-10-01T09:00:00Z",
		"end_date":   "2026-10-01T13:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/trainings", adminToken, fiber.Map{
		"title":      "Incident Response",
		"capacity":   2,
		"start_date": "2026-10-01T09:00:00Z",
		"end_date":   "2026-10-01T13:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var training struct {
		ID       string `json:"id"`
		Released bool   `json:"released"`
	}
	decode(t, resp, &training)
	assert.False(t, training.Released)

	// draft is invisible to users
	resp = doJSON(t, app, http.MethodGet, "/api/trainings/"+training.ID, userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/trainings/"+training.ID+"/release", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// user registers for the released training
	resp = doJSON(t, app, http.MethodPost, "/api/trainings/"+training.ID+"/register", userToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reg struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, resp, &reg)
	assert.Equal(t, "pending", reg.Status)

	// registering twice conflicts
	resp = doJSON(t, app, http.MethodPost, "/api/trainings/"+training.ID+"/register", userToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// admin walks the registration through its lifecycle
	resp = doJSON(t, app, http.MethodPost, "/api/admin/registrations/"+reg.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/admin/registrations/"+reg.ID+"/complete", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// completed is terminal
	resp = doJSON(t, app, http.MethodPost, "/api/admin/registrations/"+reg.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/registrations/me", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mine []struct {
		Status string `json:"status"`
	}
	decode(t, resp, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "completed", mine[0].Status)
}

func TestUserManagementOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := loginAdmin(t, app)
	_, userID := registerUser(t, app, "user@example.com")

	resp := doJSON(t, app, http.MethodPatch, "/api/admin/users/"+userID+"/active", adminToken, fiber.Map{
		"active": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the deactivated user can no longer log in
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "user@example.com",
		"password": "password12",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/admin/users/"+userID, adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/"+userID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminStatsOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := loginAdmin(t, app)
	userToken, _ := registerUser(t, app, "user@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", userToken, fiber.Map{
		"content": "Hello world",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalUsers  int `json:"total_users"`
		ActiveUsers int `json:"active_users"`
		TotalPosts  int `json:"total_posts"`
	}
	decode(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.TotalPosts)
}
