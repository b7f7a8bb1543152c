package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
	"github.com/socialape/backend/internal/service"
	"github.com/socialape/backend/internal/validation"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.ErrPostNotFound})
		return 0, false
	}
	return id, true
}

// GetPosts returns all posts, newest first
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.posts.List()
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	// If no posts, return empty array not null
	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post with its comments, newest comment first
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	detail, err := h.posts.Get(id)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	if detail.Comments == nil {
		detail.Comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, detail)
}

// CreatePost creates a new post (PROTECTED - requires authentication)
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.NewPost(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	post, err := h.posts.Create(userID, input)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeletePost deletes a post (PROTECTED - requires ownership)
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(id, userID); err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messages.MsgPostDeleted})
}

// LikePost records a like and returns the post with the bumped counter
// (PROTECTED)
func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.posts.Like(id, userID)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UnlikePost removes a like and returns the post with the lowered counter
// (PROTECTED)
func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.posts.Unlike(id, userID)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreateComment adds a comment to a post (PROTECTED)
func (h *PostHandler) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.CommentBody(input.Body); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	comment, err := h.posts.Comment(id, userID, input.Body)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
