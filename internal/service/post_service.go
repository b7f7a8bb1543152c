package service

import (
	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
	"github.com/socialape/backend/internal/repository/interfaces"
	"github.com/socialape/backend/internal/triggers"
)

type PostService struct {
	posts interfaces.PostRepository
	users interfaces.UserRepository
	bus   *triggers.Bus
}

func NewPostService(posts interfaces.PostRepository, users interfaces.UserRepository, bus *triggers.Bus) *PostService {
	return &PostService{posts: posts, users: users, bus: bus}
}

// Create writes the post with the author's name and avatar denormalized onto
// it, as they are at this moment.
func (s *PostService) Create(authorID int, req models.CreatePostRequest) (*models.Post, error) {
	author, err := s.users.FindByID(authorID)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		Category:    req.Category,
		Title:       req.Title,
		Body:        req.Body,
		AuthorID:    author.ID,
		AuthorName:  author.Handle,
		AuthorImage: author.ImageURL,
	}
	if err := s.posts.Create(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) List() ([]models.Post, error) {
	return s.posts.ListAll()
}

func (s *PostService) Get(id int) (*models.PostDetail, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.posts.ListComments(id)
	if err != nil {
		return nil, err
	}

	return &models.PostDetail{Post: *post, Comments: comments}, nil
}

// Delete removes the post after the ownership check and leaves the child
// sweep to the reaction engine. Existence is checked before ownership.
func (s *PostService) Delete(postID, requesterID int) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return apperr.New(apperr.ErrForbidden, messages.ErrUnauthorized)
	}

	if err := s.posts.Delete(postID); err != nil {
		return err
	}

	s.bus.Publish(triggers.Event{Type: triggers.PostDeleted, PostID: postID})
	return nil
}

func (s *PostService) Like(postID, userID int) (*models.Post, error) {
	post, like, err := s.posts.AddLike(postID, userID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(triggers.Event{Type: triggers.LikeCreated, Like: like})
	return post, nil
}

func (s *PostService) Unlike(postID, userID int) (*models.Post, error) {
	post, like, err := s.posts.RemoveLike(postID, userID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(triggers.Event{Type: triggers.LikeDeleted, Like: like})
	return post, nil
}

func (s *PostService) Comment(postID, authorID int, body string) (*models.Comment, error) {
	author, err := s.users.FindByID(authorID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:      postID,
		AuthorID:    author.ID,
		AuthorName:  author.Handle,
		AuthorImage: author.ImageURL,
		Body:        body,
	}
	if err := s.posts.AddComment(&comment); err != nil {
		return nil, err
	}

	s.bus.Publish(triggers.Event{Type: triggers.CommentCreated, Comment: &comment})
	return &comment, nil
}
