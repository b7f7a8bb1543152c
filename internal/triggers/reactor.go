package triggers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/cache"
	"github.com/socialape/backend/internal/models"
	"github.com/socialape/backend/internal/repository/interfaces"
)

// Reactor keeps notification rows consistent with the like/comment lifecycle
// and sweeps child records when a post is deleted.
type Reactor struct {
	users         interfaces.UserRepository
	posts         interfaces.PostRepository
	notifications interfaces.NotificationRepository
	unread        *cache.UnreadCounter
	log           *zap.Logger
}

func NewReactor(
	users interfaces.UserRepository,
	posts interfaces.PostRepository,
	notifications interfaces.NotificationRepository,
	unread *cache.UnreadCounter,
	log *zap.Logger,
) *Reactor {
	return &Reactor{
		users:         users,
		posts:         posts,
		notifications: notifications,
		unread:        unread,
		log:           log,
	}
}

func (r *Reactor) Handle(ctx context.Context, ev Event) error {
	switch ev.Type {
	case LikeCreated:
		return r.OnLikeCreated(ctx, ev.Like)
	case LikeDeleted:
		return r.OnLikeDeleted(ctx, ev.Like)
	case CommentCreated:
		return r.OnCommentCreated(ctx, ev.Comment)
	case UserImageChanged:
		return r.OnUserImageChanged(ctx, ev.UserID, ev.ImageURL)
	case PostDeleted:
		return r.OnPostDeleted(ctx, ev.PostID)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// OnLikeCreated creates a like notification for the post author unless the
// author liked their own post. A post that vanished in the meantime drops
// the notification silently.
func (r *Reactor) OnLikeCreated(ctx context.Context, like *models.Like) error {
	post, err := r.posts.FindByID(like.PostID)
	if err != nil {
		if apperr.IsCode(err, apperr.ErrNotFound) {
			r.log.Info("like notification dropped, post gone", zap.Int("postId", like.PostID))
			return nil
		}
		return err
	}
	if post.AuthorID == like.UserID {
		return nil
	}
	return r.notify(ctx, models.NotificationTypeLike, like.ID, like.UserID, post)
}

// OnLikeDeleted removes the notification mirroring the deleted like, if any.
func (r *Reactor) OnLikeDeleted(ctx context.Context, like *models.Like) error {
	return r.notifications.DeleteBySource(models.NotificationTypeLike, like.ID)
}

func (r *Reactor) OnCommentCreated(ctx context.Context, comment *models.Comment) error {
	post, err := r.posts.FindByID(comment.PostID)
	if err != nil {
		if apperr.IsCode(err, apperr.ErrNotFound) {
			r.log.Info("comment notification dropped, post gone", zap.Int("postId", comment.PostID))
			return nil
		}
		return err
	}
	if post.AuthorID == comment.AuthorID {
		return nil
	}
	return r.notify(ctx, models.NotificationTypeComment, comment.ID, comment.AuthorID, post)
}

// OnUserImageChanged propagates a new avatar to the denormalized snapshot on
// every post the user authored.
func (r *Reactor) OnUserImageChanged(ctx context.Context, userID int, imageURL string) error {
	return r.posts.UpdateAuthorImage(userID, imageURL)
}

// OnPostDeleted sweeps comments, likes and notifications referencing the
// post. Children created concurrently with the sweep may be missed.
func (r *Reactor) OnPostDeleted(ctx context.Context, postID int) error {
	return r.posts.DeleteCascade(postID)
}

func (r *Reactor) notify(ctx context.Context, notificationType string, sourceID, senderID int, post *models.Post) error {
	sender, err := r.users.FindByID(senderID)
	if err != nil {
		return err
	}
	notification := models.Notification{
		Type:         notificationType,
		SourceID:     sourceID,
		RecipientID:  post.AuthorID,
		SenderID:     sender.ID,
		SenderHandle: sender.Handle,
		PostID:       post.ID,
	}
	if err := r.notifications.Create(&notification); err != nil {
		return err
	}
	if err := r.unread.Incr(ctx, post.AuthorID); err != nil {
		r.log.Warn("unread counter increment failed", zap.Error(err))
	}
	return nil
}
