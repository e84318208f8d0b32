package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

// newRepoDB opens a throwaway SQLite database, migrates the full schema, and
// enables FK enforcement so constraint behavior matches production.
func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedRepoDB inserts a small known data set:
//
//	categories: dexterity, euro game, social deduction, children's games
//	users:      bainesface, mallionaire
//	reviews:    1 (euro game, votes 1), 2 (dexterity, votes 5), 3 (social deduction, votes 100)
//	comments:   three on review 2, one on review 3
func seedRepoDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	cats := []domain.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
		{Slug: "children's games", Description: "Games suitable for children"},
	}
	if err := db.Create(&cats).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	users := []domain.User{
		{Username: "mallionaire", Name: "haz", AvatarURL: "https://example.com/a.png"},
		{Username: "bainesface", Name: "sarah", AvatarURL: "https://example.com/b.png"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	base := time.Date(2021, 1, 18, 10, 0, 0, 0, time.UTC)
	reviews := []domain.Review{
		{ID: 1, Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire", ReviewBody: "Farmyard fun!", Category: "euro game", CreatedAt: base, Votes: 1},
		{ID: 2, Title: "Jenga", Designer: "Leslie Scott", Owner: "bainesface", ReviewBody: "Fiddly fun for all the family", Category: "dexterity", CreatedAt: base.Add(48 * time.Hour), Votes: 5},
		{ID: 3, Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface", ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", CreatedAt: base.Add(24 * time.Hour), Votes: 100},
	}
	if err := db.Create(&reviews).Error; err != nil {
		t.Fatalf("seed reviews: %v", err)
	}

	comments := []domain.Comment{
		{Author: "bainesface", Body: "I loved this game too!", ReviewID: 2, Votes: 16, CreatedAt: base.Add(time.Hour)},
		{Author: "mallionaire", Body: "EPIC board game!", ReviewID: 2, Votes: 8, CreatedAt: base.Add(2 * time.Hour)},
		{Author: "bainesface", Body: "My dog loved this game too!", ReviewID: 2, Votes: 13, CreatedAt: base.Add(3 * time.Hour)},
		{Author: "mallionaire", Body: "Quite enjoyable.", ReviewID: 3, Votes: 2, CreatedAt: base.Add(time.Hour)},
	}
	if err := db.Create(&comments).Error; err != nil {
		t.Fatalf("seed comments: %v", err)
	}
}

// --- normalizeListing ---

func TestNormalizeListing_DefaultsAndCase(t *testing.T) {
	col, dir, err := normalizeListing("", "")
	if err != nil || col != "created_at" || dir != "DESC" {
		t.Fatalf("defaults: col=%q dir=%q err=%v", col, dir, err)
	}

	col, dir, err = normalizeListing("votes", "asc")
	if err != nil || col != "votes" || dir != "ASC" {
		t.Fatalf("lowercase order: col=%q dir=%q err=%v", col, dir, err)
	}

	if _, _, err := normalizeListing("", "DeSc"); err != nil {
		t.Fatalf("mixed-case order should be accepted, got %v", err)
	}
}

func TestNormalizeListing_RejectsUnknowns(t *testing.T) {
	if _, _, err := normalizeListing("review_id", ""); !errors.Is(err, ErrInvalidSortColumn) {
		t.Fatalf("review_id is not sortable, got %v", err)
	}
	if _, _, err := normalizeListing("votes; DROP TABLE reviews;--", ""); !errors.Is(err, ErrInvalidSortColumn) {
		t.Fatalf("injection-shaped column must be rejected, got %v", err)
	}
	if _, _, err := normalizeListing("", "sideways"); !errors.Is(err, ErrInvalidSortOrder) {
		t.Fatalf("unknown direction must be rejected, got %v", err)
	}
	if _, _, err := normalizeListing("", "DESC; DROP TABLE reviews"); !errors.Is(err, ErrInvalidSortOrder) {
		t.Fatalf("injection-shaped direction must be rejected, got %v", err)
	}
}

// --- ListReviews ---

func TestListReviews_DefaultOrder_NewestFirst(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	got, err := ListReviews(context.Background(), db, "", "", "")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(got))
	}
	// Seeded created_at: 2 > 3 > 1.
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 1 {
		t.Fatalf("default order wrong: %d, %d, %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestListReviews_SortByVotesAscending(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	got, err := ListReviews(context.Background(), db, "votes", "asc", "")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if got[0].Votes != 1 || got[1].Votes != 5 || got[2].Votes != 100 {
		t.Fatalf("votes asc order wrong: %d, %d, %d", got[0].Votes, got[1].Votes, got[2].Votes)
	}
}

func TestListReviews_CommentCounts(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	got, err := ListReviews(context.Background(), db, "", "", "")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	counts := map[int]int{}
	for _, r := range got {
		counts[r.ID] = r.CommentCount
	}
	if counts[1] != 0 || counts[2] != 3 || counts[3] != 1 {
		t.Fatalf("comment counts wrong: %+v", counts)
	}
}

func TestListReviews_CategoryFilter(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	got, err := ListReviews(context.Background(), db, "", "", "dexterity")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("dexterity filter wrong: %+v", got)
	}
}

func TestListReviews_CategoryWithApostrophe_BoundSafely(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	// "children's games" exists but has no reviews; the apostrophe must travel
	// as a bound parameter, not as query text.
	got, err := ListReviews(context.Background(), db, "", "", "children's games")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no reviews, got %d", len(got))
	}
}

func TestListReviews_InvalidInputsRejectedBeforeStore(t *testing.T) {
	db := newRepoDB(t) // no seed needed; validation happens first

	if _, err := ListReviews(context.Background(), db, "bananas", "", ""); !errors.Is(err, ErrInvalidSortColumn) {
		t.Fatalf("expected ErrInvalidSortColumn, got %v", err)
	}
	if _, err := ListReviews(context.Background(), db, "", "diagonal", ""); !errors.Is(err, ErrInvalidSortOrder) {
		t.Fatalf("expected ErrInvalidSortOrder, got %v", err)
	}
}

// --- GetReview ---

func TestGetReview_SuccessWithCommentCount(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	r, err := GetReview(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("GetReview: %v", err)
	}
	if r.ID != 2 || r.Title != "Jenga" || r.CommentCount != 3 {
		t.Fatalf("unexpected review: %+v", r)
	}
}

func TestGetReview_Miss(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	if _, err := GetReview(context.Background(), db, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestReviewExists(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	if ok, err := ReviewExists(context.Background(), db, 1); err != nil || !ok {
		t.Fatalf("review 1 should exist: ok=%v err=%v", ok, err)
	}
	if ok, err := ReviewExists(context.Background(), db, 9999); err != nil || ok {
		t.Fatalf("review 9999 should not exist: ok=%v err=%v", ok, err)
	}
}

// --- UpdateReviewVotes ---

func TestUpdateReviewVotes_IncrementAndDecrement(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	r, err := UpdateReviewVotes(context.Background(), db, 2, 1)
	if err != nil {
		t.Fatalf("UpdateReviewVotes +1: %v", err)
	}
	if r.Votes != 6 {
		t.Fatalf("votes after +1: got %d, want 6", r.Votes)
	}

	r, err = UpdateReviewVotes(context.Background(), db, 2, -4)
	if err != nil {
		t.Fatalf("UpdateReviewVotes -4: %v", err)
	}
	if r.Votes != 2 {
		t.Fatalf("votes after -4: got %d, want 2", r.Votes)
	}
	// Updated row carries the aggregate too.
	if r.CommentCount != 3 {
		t.Fatalf("comment_count on updated row: got %d, want 3", r.CommentCount)
	}
}

func TestUpdateReviewVotes_Miss(t *testing.T) {
	db := newRepoDB(t)
	seedRepoDB(t, db)

	if _, err := UpdateReviewVotes(context.Background(), db, 9999, 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
