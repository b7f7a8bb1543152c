package interfaces

import "github.com/socialape/backend/internal/models"

// PostRepository covers posts together with their child likes and comments,
// so the denormalized counters can be adjusted in the same transaction as
// the child row they mirror.
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id int) (*models.Post, error)
	ListAll() ([]models.Post, error)
	ListByAuthor(authorID int) ([]models.Post, error)
	// Delete removes the post row only; orphaned children are swept by the
	// reaction engine via DeleteCascade.
	Delete(id int) error

	// AddLike creates the like and increments likeCount in one transaction.
	// Fails with ErrDuplicate when a like for (user, post) already exists.
	AddLike(postID, userID int) (*models.Post, *models.Like, error)
	// RemoveLike deletes the like and decrements likeCount in one
	// transaction. Fails with ErrInvalidInput when no like exists.
	RemoveLike(postID, userID int) (*models.Post, *models.Like, error)
	ListLikesByUser(userID int) ([]models.Like, error)

	// AddComment increments commentCount and creates the comment in one
	// transaction. Comments have no delete path, so no decrement exists.
	AddComment(comment *models.Comment) error
	ListComments(postID int) ([]models.Comment, error)

	UpdateAuthorImage(authorID int, imageURL string) error
	// DeleteCascade removes every comment, like and notification referencing
	// the post, then the post row itself, in a single transaction.
	DeleteCascade(postID int) error
}
