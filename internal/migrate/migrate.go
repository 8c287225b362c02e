package migrate

import (
	"social-platform/internal/comment"
	"social-platform/internal/like"
	"social-platform/internal/post"
	"social-platform/internal/shared/db"
	"social-platform/internal/user"
)

func AutoMigrateAll(store *db.Store) error {
	return store.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&like.Like{},
		&comment.Comment{},
	)
}
