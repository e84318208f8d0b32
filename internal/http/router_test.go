package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Luke95G/Back-end-Project/internal/config"
	"github.com/Luke95G/Back-end-Project/internal/domain"
	"github.com/Luke95G/Back-end-Project/internal/repo"
)

// newAPI stands up the full engine (middleware stack included) on a seeded
// throwaway SQLite database.
func newAPI(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("router_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	seedAPI(t, db)

	cfg := config.Config{
		GinMode:   gin.TestMode,
		RateRPS:   1000,
		RateBurst: 1000,
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r
}

func seedAPI(t *testing.T, db *gorm.DB) {
	t.Helper()

	cats := []domain.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
		{Slug: "children's games", Description: "Games suitable for children"},
	}
	users := []domain.User{
		{Username: "mallionaire", Name: "haz"},
		{Username: "bainesface", Name: "sarah"},
	}
	base := time.Date(2021, 1, 18, 10, 0, 0, 0, time.UTC)
	reviews := []domain.Review{
		{ID: 1, Title: "Agricola", Owner: "mallionaire", ReviewBody: "Farmyard fun!", Category: "euro game", CreatedAt: base, Votes: 1},
		{ID: 2, Title: "Jenga", Owner: "bainesface", ReviewBody: "Fiddly fun for all the family", Category: "dexterity", CreatedAt: base.Add(24 * time.Hour), Votes: 5},
	}
	comments := []domain.Comment{
		{Author: "bainesface", Body: "I loved this game too!", ReviewID: 2, Votes: 16, CreatedAt: base.Add(time.Hour)},
	}
	for _, seed := range []any{&cats, &users, &reviews, &comments} {
		if err := db.Create(seed).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func apiRequest(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r := newAPI(t)
	w := apiRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
}

func TestRouter_UnknownPath_CanonicalNotFound(t *testing.T) {
	r := newAPI(t)
	w := apiRequest(t, r, http.MethodGet, "/api/not-a-real-endpoint", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Page not found." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestRouter_WrongMethod_FallsToNotFound(t *testing.T) {
	r := newAPI(t)
	// PUT is not registered anywhere on /api/reviews; it must fall through to
	// the same canonical 404, not a 405.
	w := apiRequest(t, r, http.MethodPut, "/api/reviews", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Page not found." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestRouter_RequestIDHeaderPresent(t *testing.T) {
	r := newAPI(t)
	w := apiRequest(t, r, http.MethodGet, "/api/categories", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestRouter_FullReviewFlow(t *testing.T) {
	r := newAPI(t)

	// Listing, default order newest first.
	w := apiRequest(t, r, http.MethodGet, "/api/reviews", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", w.Code, w.Body.String())
	}
	var listing struct {
		Reviews []domain.Review `json:"reviews"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listing.Reviews) != 2 || listing.Reviews[0].ID != 2 {
		t.Fatalf("unexpected listing: %s", w.Body.String())
	}
	if listing.Reviews[0].CommentCount != 1 {
		t.Fatalf("comment_count = %d, want 1", listing.Reviews[0].CommentCount)
	}

	// Vote patch: 5 + 1 = 6.
	w = apiRequest(t, r, http.MethodPatch, "/api/reviews/2", []byte(`{"inc_votes": 1}`))
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", w.Code, w.Body.String())
	}
	var patched struct {
		Review domain.Review `json:"review"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if patched.Review.Votes != 6 {
		t.Fatalf("votes = %d, want 6", patched.Review.Votes)
	}

	// Single review reflects the new count.
	w = apiRequest(t, r, http.MethodGet, "/api/reviews/2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if patched.Review.Votes != 6 || patched.Review.Title != "Jenga" {
		t.Fatalf("unexpected review: %s", w.Body.String())
	}
}

func TestRouter_FullCommentFlow(t *testing.T) {
	r := newAPI(t)

	// Create.
	w := apiRequest(t, r, http.MethodPost, "/api/reviews/1/comments",
		[]byte(`{"username": "bainesface", "body": "Superb farming"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("post status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		NewComment domain.Comment `json:"newComment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.NewComment.ID == 0 || created.NewComment.Body != "Superb farming" {
		t.Fatalf("unexpected created comment: %s", w.Body.String())
	}

	// Listed under the review, double-nested envelope.
	w = apiRequest(t, r, http.MethodGet, "/api/reviews/1/comments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listed struct {
		Comments struct {
			Comments []domain.Comment `json:"comments"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Comments.Comments) != 1 || listed.Comments.Comments[0].ID != created.NewComment.ID {
		t.Fatalf("comment not listed: %s", w.Body.String())
	}

	// Delete, then the second delete misses.
	path := fmt.Sprintf("/api/comments/%d", created.NewComment.ID)
	w = apiRequest(t, r, http.MethodDelete, path, nil)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("delete status = %d, body %q", w.Code, w.Body.String())
	}
	w = apiRequest(t, r, http.MethodDelete, path, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Path not found." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestRouter_CategoryOutcomes(t *testing.T) {
	r := newAPI(t)

	// Known category with no reviews: 200 with an empty array.
	w := apiRequest(t, r, http.MethodGet, "/api/reviews?category=children%27s+games", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &generic); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(generic["reviews"]) != "[]" {
		t.Fatalf("expected empty array, got %s", generic["reviews"])
	}

	// Unknown category: 404 with its dedicated message.
	w = apiRequest(t, r, http.MethodGet, "/api/reviews?category=nothingToSeeHere", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Category not found." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := newAPI(t)
	w := apiRequest(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", w.Code)
	}
}
