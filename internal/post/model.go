package post

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"index" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURL  *string   `json:"image_url"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReq struct {
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url"`
}

// Event is published to the broker when a post is created.
type Event struct {
	Type   string `json:"type"`
	PostID uint64 `json:"post_id"`
	UserID uint64 `json:"user_id"`
}
