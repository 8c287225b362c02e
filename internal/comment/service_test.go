package comment

import (
	"errors"
	"testing"

	"social-platform/internal/post"
	"social-platform/internal/testutil"
)

func TestCreate_AndListByPost(t *testing.T) {
	store := testutil.OpenTestStore(t, "comment_create", &post.Post{}, &Comment{})
	posts := post.NewRepository(store)
	svc := NewService(NewRepository(store), posts)

	p := &post.Post{UserID: 1, Content: "hello"}
	if err := posts.Create(p); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	c, err := svc.Create(p.ID, 2, "nice post")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if c.ID == 0 || c.PostID != p.ID || c.UserID != 2 || c.Content != "nice post" {
		t.Fatalf("unexpected comment: %+v", c)
	}

	items, err := svc.ListByPost(p.ID, 50, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != c.ID {
		t.Fatalf("unexpected listing: %+v", items)
	}
}

func TestCreate_PostNotFound(t *testing.T) {
	store := testutil.OpenTestStore(t, "comment_nopost", &post.Post{}, &Comment{})
	svc := NewService(NewRepository(store), post.NewRepository(store))

	if _, err := svc.Create(999, 1, "orphan"); !errors.Is(err, post.ErrNotFound) {
		t.Fatalf("expected post.ErrNotFound, got %v", err)
	}

	// no orphaned row may exist
	var n int64
	store.DB.Model(&Comment{}).Count(&n)
	if n != 0 {
		t.Fatalf("orphaned comment row created")
	}
}
