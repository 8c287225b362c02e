package post

import (
	"errors"

	"social-platform/internal/shared/db"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("post not found")

type Repository interface {
	Create(p *Post) error
	GetAll() ([]Post, error)
	GetByID(id uint64) (*Post, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

func (r *repo) Create(p *Post) error {
	return r.db.Create(p).Error
}

func (r *repo) GetAll() ([]Post, error) {
	var posts []Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repo) GetByID(id uint64) (*Post, error) {
	var p Post
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
