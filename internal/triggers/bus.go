// Package triggers applies the side effects of entity lifecycle events
// asynchronously, after the request that caused them has already been
// answered.
package triggers

import (
	"context"

	"go.uber.org/zap"

	"github.com/socialape/backend/internal/models"
)

type EventType string

const (
	LikeCreated      EventType = "like.created"
	LikeDeleted      EventType = "like.deleted"
	CommentCreated   EventType = "comment.created"
	UserImageChanged EventType = "user.image_changed"
	PostDeleted      EventType = "post.deleted"
)

type Event struct {
	Type    EventType
	Like    *models.Like
	Comment *models.Comment
	PostID  int
	UserID  int
	// ImageURL is the new avatar for UserImageChanged events.
	ImageURL string
}

// Bus queues events for the reactor worker. Publish never blocks the request
// path: when the queue is full the event is dropped and logged, consistent
// with the fire-and-forget policy of the reactions themselves.
type Bus struct {
	events chan Event
	log    *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	return &Bus{
		events: make(chan Event, 1024),
		log:    log,
	}
}

func (b *Bus) Publish(ev Event) {
	select {
	case b.events <- ev:
	default:
		b.log.Warn("event queue full, dropping event", zap.String("type", string(ev.Type)))
	}
}

// Run consumes events until ctx is cancelled, invoking the reactor for each.
// Reaction errors are logged and swallowed; the triggering mutation is never
// rolled back.
func (b *Bus) Run(ctx context.Context, r *Reactor) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-b.events:
			if err := r.Handle(ctx, ev); err != nil {
				b.log.Error("reaction failed",
					zap.String("type", string(ev.Type)),
					zap.Error(err))
			}
		}
	}
}
