package comment

import (
	"social-platform/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Comment) error
	ListByPost(postID uint64, limit, offset int) ([]Comment, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

func (r *repo) Create(c *Comment) error {
	return r.db.Create(c).Error
}

func (r *repo) ListByPost(postID uint64, limit, offset int) ([]Comment, error) {
	var out []Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}
