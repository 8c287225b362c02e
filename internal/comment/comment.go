package comment

import "time"

// Comment is immutable once written; this service never updates or
// deletes comment rows.
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"index" json:"post_id"`
	UserID    uint64    `gorm:"index" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReq struct {
	Content string `json:"content" validate:"required"`
}
