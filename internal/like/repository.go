package like

import (
	"context"
	"errors"
	"fmt"

	"social-platform/internal/post"
	"social-platform/internal/shared/db"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repository interface {
	// Like adds a like row for (postID, userID) and writes the recomputed
	// count onto the post. already=true means the row existed and nothing
	// was written.
	Like(postID, userID uint64) (count int64, already bool, err error)
	// Unlike removes the like row; missing=true means there was none.
	Unlike(postID, userID uint64) (count int64, missing bool, err error)
	Count(postID uint64) (int64, error)
}

type repo struct {
	db  *gorm.DB
	rdb *redis.Client // optional count cache, nil disables it
}

func NewRepository(s *db.Store, r *redis.Client) Repository {
	return &repo{db: s.DB, rdb: r}
}

func likeKey(postID uint64) string { return fmt.Sprintf("social:likes:%d", postID) }

// Like runs the whole check-insert-recompute sequence in one transaction so
// concurrent likers on the same post cannot write a stale total. The count is
// always recomputed from the like rows, never incremented blindly, which
// keeps posts.like_count equal to the true row count after every call.
func (r *repo) Like(postID, userID uint64) (int64, bool, error) {
	var count int64
	var already bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post.Post{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return post.ErrNotFound
			}
			return err
		}
		var existing int64
		if err := tx.Model(&Like{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			already = true
			return tx.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error
		}
		if err := tx.Create(&Like{PostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&post.Post{}).Where("id = ?", postID).
			Update("like_count", count).Error
	})
	if err != nil {
		return 0, false, err
	}
	r.cacheSet(postID, count)
	return count, already, nil
}

func (r *repo) Unlike(postID, userID uint64) (int64, bool, error) {
	var count int64
	var missing bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post.Post{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return post.ErrNotFound
			}
			return err
		}
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			missing = true
			return tx.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error
		}
		if err := tx.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&post.Post{}).Where("id = ?", postID).
			Update("like_count", count).Error
	})
	if err != nil {
		return 0, false, err
	}
	r.cacheSet(postID, count)
	return count, missing, nil
}

func (r *repo) Count(postID uint64) (int64, error) {
	if r.rdb != nil {
		if val, err := r.rdb.Get(context.Background(), likeKey(postID)).Int64(); err == nil {
			return val, nil
		}
	}
	var count int64
	if err := r.db.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	r.cacheSet(postID, count)
	return count, nil
}

func (r *repo) cacheSet(postID uint64, count int64) {
	if r.rdb == nil {
		return
	}
	_ = r.rdb.Set(context.Background(), likeKey(postID), count, 0).Err()
}
