package post

import (
	"context"
	"log"
	"time"
)

// Uploader ingests an image from a remote URL into object storage and
// returns the stored object's public URL.
type Uploader interface {
	UploadFromURL(ctx context.Context, sourceURL string) (string, error)
}

// EventWriter publishes domain events; nil disables publishing.
type EventWriter interface {
	WriteJSON(ctx context.Context, v any) error
}

type Service interface {
	Create(ctx context.Context, userID uint64, content, imageURL string) (*Post, error)
	GetAll() []Post
	GetByID(id uint64) (*Post, error)
}

type service struct {
	repo     Repository
	uploader Uploader
	events   EventWriter
}

func NewService(r Repository, up Uploader, ev EventWriter) Service {
	return &service{repo: r, uploader: up, events: ev}
}

// Create inserts a post for the authenticated user. A non-empty imageURL is
// fetched and re-stored first; if that fails the post is not created.
func (s *service) Create(ctx context.Context, userID uint64, content, imageURL string) (*Post, error) {
	p := &Post{UserID: userID, Content: content}
	if imageURL != "" {
		stored, err := s.uploader.UploadFromURL(ctx, imageURL)
		if err != nil {
			return nil, err
		}
		p.ImageURL = &stored
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	s.publish(Event{Type: "post.created", PostID: p.ID, UserID: userID})
	return p, nil
}

// GetAll never fails its caller: a store error degrades to an empty feed.
func (s *service) GetAll() []Post {
	posts, err := s.repo.GetAll()
	if err != nil {
		log.Printf("post: list failed, returning empty feed: %v", err)
		return []Post{}
	}
	return posts
}

func (s *service) GetByID(id uint64) (*Post, error) {
	return s.repo.GetByID(id)
}

func (s *service) publish(ev Event) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.events.WriteJSON(ctx, ev); err != nil {
		log.Printf("post: publish %s: %v", ev.Type, err)
	}
}
