package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/femwell/femwell-backend/internal/models"
	"github.com/femwell/femwell-backend/internal/repositories"
	"github.com/femwell/femwell-backend/internal/services"
	"github.com/femwell/femwell-backend/internal/storage"
)

// startServer wires the whole application against a fresh in-memory
// database, seed posts included, and returns a test server for it.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, storage.DriverSQLite, ":memory:", 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Bootstrap(ctx, db))
	require.NoError(t, storage.SeedForumPosts(ctx, db))

	accountService := services.NewAccountService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
	)
	assessmentService := services.NewAssessmentService(
		repositories.NewAssessmentReadRepository(db),
		repositories.NewAssessmentWriteRepository(db),
	)
	periodService := services.NewPeriodService(
		repositories.NewPeriodEntryReadRepository(db),
		repositories.NewPeriodEntryWriteRepository(db),
	)
	forumService := services.NewForumService(
		repositories.NewForumPostReadRepository(db),
		repositories.NewForumPostWriteRepository(db),
	)

	srv := httptest.NewServer(newRouter(
		accountService, assessmentService, periodService, forumService,
		"localhost", "8080",
	))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestForumFlow(t *testing.T) {
	srv := startServer(t)

	// The board starts with the four seeded discussions.
	resp, err := http.Get(srv.URL + "/api/forum-posts")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	seeded := decodeBody[[]models.ForumPost](t, resp)
	require.Len(t, seeded, 4)
	assert.Equal(t, "Tips for managing PCOS naturally?", seeded[0].Title)

	// A new post gets the next id with both counters at zero.
	resp = postJSON(t, srv.URL+"/api/forum-posts", map[string]any{
		"title":    "Test",
		"content":  "Body",
		"category": "General Discussion",
	})
	assert.Equal(t, 200, resp.StatusCode)
	created := decodeBody[models.ForumPost](t, resp)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, 0, created.Replies)

	// Being newest it now leads the unfiltered listing.
	resp, err = http.Get(srv.URL + "/api/forum-posts")
	require.NoError(t, err)
	posts := decodeBody[[]models.ForumPost](t, resp)
	require.Len(t, posts, 5)
	assert.Equal(t, int64(5), posts[0].ID)

	// The category filter returns insertion order.
	resp, err = http.Get(srv.URL + "/api/forum-posts?category=General+Discussion")
	require.NoError(t, err)
	filtered := decodeBody[[]models.ForumPost](t, resp)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(2), filtered[0].ID)
	assert.Equal(t, int64(5), filtered[1].ID)

	// Lookup by id, then a miss.
	resp, err = http.Get(srv.URL + "/api/forum-posts/5")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	found := decodeBody[models.ForumPost](t, resp)
	assert.Equal(t, "Test", found.Title)

	resp, err = http.Get(srv.URL + "/api/forum-posts/999")
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	resp.Body.Close()
}

func TestSignupFlow(t *testing.T) {
	srv := startServer(t)

	signup := map[string]any{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"password":  "secret123",
	}

	resp := postJSON(t, srv.URL+"/api/users", signup)
	assert.Equal(t, 200, resp.StatusCode)
	created := decodeBody[map[string]any](t, resp)
	assert.Equal(t, float64(1), created["id"])
	assert.NotContains(t, created, "password")

	// The same email again is rejected.
	resp = postJSON(t, srv.URL+"/api/users", signup)
	assert.Equal(t, 400, resp.StatusCode)
	dup := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "User with this email already exists", dup["message"])

	// Lookup round-trips the redacted projection.
	resp, err := http.Get(fmt.Sprintf("%s/api/users/%d", srv.URL, 1))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	fetched := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "jane@example.com", fetched["email"])
}

func TestAssessmentFlow(t *testing.T) {
	srv := startServer(t)

	// Score the questionnaire first, then store the result.
	questionnaire := map[string]any{
		"symptoms":         []string{"acne", "hair loss"},
		"periodRegularity": "irregular",
		"moodIssues":       "yes",
		"fatigueLevel":     "often",
		"weightGain":       "yes",
		"weightDifficulty": "no",
	}

	resp := postJSON(t, srv.URL+"/api/risk-scores", questionnaire)
	assert.Equal(t, 200, resp.StatusCode)
	scored := decodeBody[map[string]any](t, resp)
	assert.Equal(t, float64(7), scored["riskScore"])
	assert.Equal(t, "Moderate Risk", scored["riskLevel"])

	resp = postJSON(t, srv.URL+"/api/symptom-assessments", map[string]any{
		"userId":    1,
		"symptoms":  []string{"acne", "hair loss"},
		"responses": map[string]string{"periodRegularity": "irregular"},
		"riskScore": 7,
		"riskLevel": "Moderate Risk",
	})
	assert.Equal(t, 200, resp.StatusCode)
	stored := decodeBody[models.SymptomAssessment](t, resp)
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, 7, stored.RiskScore)

	resp, err := http.Get(srv.URL + "/api/symptom-assessments/user/1")
	require.NoError(t, err)
	listed := decodeBody[[]models.SymptomAssessment](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, "Moderate Risk", listed[0].RiskLevel)
}

func TestPeriodEntryFlow(t *testing.T) {
	srv := startServer(t)

	for _, date := range []string{"2024-01-15", "2024-01-28", "2024-02-03"} {
		resp := postJSON(t, srv.URL+"/api/period-entries", map[string]any{
			"userId": 1,
			"date":   date,
		})
		assert.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/period-entries/user/1")
	require.NoError(t, err)
	all := decodeBody[[]models.PeriodEntry](t, resp)
	require.Len(t, all, 3)

	// Month is zero-based, so January 2024 is /2024/0.
	resp, err = http.Get(srv.URL + "/api/period-entries/user/1/2024/0")
	require.NoError(t, err)
	january := decodeBody[[]models.PeriodEntry](t, resp)
	require.Len(t, january, 2)
	assert.Equal(t, "2024-01-15", january[0].Date)

	resp, err = http.Get(srv.URL + "/api/period-entries/user/1/2024/1")
	require.NoError(t, err)
	february := decodeBody[[]models.PeriodEntry](t, resp)
	require.Len(t, february, 1)
	assert.Equal(t, "2024-02-03", february[0].Date)
}
