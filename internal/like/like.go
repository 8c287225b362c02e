package like

import "time"

// Like records that a user has liked a post. The composite unique index
// guarantees at most one row per (post, user) pair regardless of races.
type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"uniqueIndex:idx_like_post_user" json:"post_id"`
	UserID    uint64    `gorm:"uniqueIndex:idx_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
