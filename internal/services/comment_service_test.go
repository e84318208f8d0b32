package services

import (
	"context"
	"errors"
	"testing"
)

func TestCommentService_ListForReview(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	got, err := svc.ListForReview(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListForReview: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(got))
	}
	if got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Fatalf("comments not newest-first: %+v", got)
	}
}

func TestCommentService_ListForReview_NoComments_EmptyList(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	got, err := svc.ListForReview(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForReview: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestCommentService_ListForReview_MissingReview(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	if _, err := svc.ListForReview(context.Background(), 9999); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestCommentService_Create(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	c, err := svc.Create(context.Background(), 1, "bainesface", "Superb farming")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 || c.Author != "bainesface" || c.Body != "Superb farming" || c.ReviewID != 1 || c.Votes != 0 {
		t.Fatalf("unexpected comment: %+v", c)
	}
}

func TestCommentService_Create_MissingFields(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	cases := []struct{ username, body string }{
		{"", "has body"},
		{"bainesface", ""},
		{"   ", "has body"},
		{"bainesface", "   "},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := svc.Create(context.Background(), 1, c.username, c.body); !errors.Is(err, ErrMissingCommentFields) {
			t.Fatalf("Create(%q, %q): expected ErrMissingCommentFields, got %v", c.username, c.body, err)
		}
	}
}

func TestCommentService_Create_MissingReview(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	if _, err := svc.Create(context.Background(), 9999, "bainesface", "ghost"); !errors.Is(err, ErrParentReviewNotFound) {
		t.Fatalf("expected ErrParentReviewNotFound, got %v", err)
	}
}

func TestCommentService_Delete(t *testing.T) {
	db := newServiceDB(t)
	svc := &CommentService{DB: db}

	before, err := svc.ListForReview(context.Background(), 2)
	if err != nil || len(before) == 0 {
		t.Fatalf("seed comments missing: %v", err)
	}

	if err := svc.Delete(context.Background(), before[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	after, err := svc.ListForReview(context.Background(), 2)
	if err != nil || len(after) != len(before)-1 {
		t.Fatalf("comment not removed: before=%d after=%d err=%v", len(before), len(after), err)
	}

	if err := svc.Delete(context.Background(), before[0].ID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound on second delete, got %v", err)
	}
}

func TestCommentService_Delete_MissingComment(t *testing.T) {
	svc := &CommentService{DB: newServiceDB(t)}

	if err := svc.Delete(context.Background(), 424242); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
