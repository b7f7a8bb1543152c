package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func (r *PostRepository) FindByID(id int) (*models.Post, error) {
	return findPost(r.db, id)
}

func (r *PostRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return posts, nil
}

func (r *PostRepository) ListByAuthor(authorID int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return posts, nil
}

func (r *PostRepository) Delete(id int) error {
	if err := r.db.Delete(&models.Post{}, id).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

// AddLike writes the like row and bumps likeCount relative to its stored
// value in one transaction, so concurrent likes cannot lose counter updates.
func (r *PostRepository) AddLike(postID, userID int) (*models.Post, *models.Like, error) {
	var like models.Like
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, postID); err != nil {
			return err
		}

		var existing models.Like
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		if err == nil {
			return apperr.New(apperr.ErrDuplicate, messages.ErrAlreadyLiked)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}

		like = models.Like{PostID: postID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}

		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	post, err := findPost(r.db, postID)
	if err != nil {
		return nil, nil, err
	}
	return post, &like, nil
}

func (r *PostRepository) RemoveLike(postID, userID int) (*models.Post, *models.Like, error) {
	var like models.Like
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, postID); err != nil {
			return err
		}

		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.ErrInvalidInput, messages.ErrNotLikedYet)
		}
		if err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}

		if err := tx.Delete(&models.Like{}, like.ID).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}

		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	post, err := findPost(r.db, postID)
	if err != nil {
		return nil, nil, err
	}
	return post, &like, nil
}

func (r *PostRepository) ListLikesByUser(userID int) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return likes, nil
}

func (r *PostRepository) AddComment(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, comment.PostID); err != nil {
			return err
		}

		if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}

		if err := tx.Create(comment).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		return nil
	})
}

func (r *PostRepository) ListComments(postID int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return comments, nil
}

func (r *PostRepository) UpdateAuthorImage(authorID int, imageURL string) error {
	if err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).
		Update("author_image", imageURL).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

// DeleteCascade removes children before the post so an interrupted sweep
// never leaves danglers pointing at a live post.
func (r *PostRepository) DeleteCascade(postID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Notification{}).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		if err := tx.Delete(&models.Post{}, postID).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
		}
		return nil
	})
}

func findPost(db *gorm.DB, id int) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, messages.ErrPostNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return &post, nil
}
