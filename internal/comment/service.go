package comment

import "social-platform/internal/post"

type Service interface {
	Create(postID, userID uint64, content string) (*Comment, error)
	ListByPost(postID uint64, limit, offset int) ([]Comment, error)
}

type service struct {
	repo  Repository
	posts post.Repository
}

func NewService(r Repository, posts post.Repository) Service {
	return &service{repo: r, posts: posts}
}

// Create refuses to attach a comment to a post that does not exist,
// rather than silently inserting an orphaned row.
func (s *service) Create(postID, userID uint64, content string) (*Comment, error) {
	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, err
	}
	c := &Comment{PostID: postID, UserID: userID, Content: content}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListByPost(postID uint64, limit, offset int) ([]Comment, error) {
	return s.repo.ListByPost(postID, limit, offset)
}
