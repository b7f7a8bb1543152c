package triggers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
)

type stubUserRepo struct {
	mock.Mock
}

func (m *stubUserRepo) Create(user *models.User) error { return m.Called(user).Error(0) }

func (m *stubUserRepo) FindByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepo) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepo) FindByHandle(handle string) (*models.User, error) {
	args := m.Called(handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepo) UpdateProfile(userID int, detail models.UpdateProfileRequest) error {
	return m.Called(userID, detail).Error(0)
}

func (m *stubUserRepo) UpdateImage(userID int, imageURL string) error {
	return m.Called(userID, imageURL).Error(0)
}

type stubPostRepo struct {
	mock.Mock
}

func (m *stubPostRepo) Create(post *models.Post) error { return m.Called(post).Error(0) }

func (m *stubPostRepo) FindByID(id int) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *stubPostRepo) ListAll() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *stubPostRepo) ListByAuthor(authorID int) ([]models.Post, error) {
	args := m.Called(authorID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *stubPostRepo) Delete(id int) error { return m.Called(id).Error(0) }

func (m *stubPostRepo) AddLike(postID, userID int) (*models.Post, *models.Like, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Post), args.Get(1).(*models.Like), args.Error(2)
}

func (m *stubPostRepo) RemoveLike(postID, userID int) (*models.Post, *models.Like, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Post), args.Get(1).(*models.Like), args.Error(2)
}

func (m *stubPostRepo) ListLikesByUser(userID int) ([]models.Like, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Like), args.Error(1)
}

func (m *stubPostRepo) AddComment(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *stubPostRepo) ListComments(postID int) ([]models.Comment, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *stubPostRepo) UpdateAuthorImage(authorID int, imageURL string) error {
	return m.Called(authorID, imageURL).Error(0)
}

func (m *stubPostRepo) DeleteCascade(postID int) error { return m.Called(postID).Error(0) }

type stubNotificationRepo struct {
	mock.Mock
}

func (m *stubNotificationRepo) Create(notification *models.Notification) error {
	return m.Called(notification).Error(0)
}

func (m *stubNotificationRepo) DeleteBySource(notificationType string, sourceID int) error {
	return m.Called(notificationType, sourceID).Error(0)
}

func (m *stubNotificationRepo) ListByRecipient(recipientID, limit int) ([]models.Notification, error) {
	args := m.Called(recipientID, limit)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *stubNotificationRepo) MarkRead(ids []int, recipientID int) error {
	return m.Called(ids, recipientID).Error(0)
}

func (m *stubNotificationRepo) CountUnread(recipientID int) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func newReactor(users *stubUserRepo, posts *stubPostRepo, notifications *stubNotificationRepo) *Reactor {
	return NewReactor(users, posts, notifications, nil, zap.NewNop())
}

func TestLikeCreatesNotification(t *testing.T) {
	users := new(stubUserRepo)
	posts := new(stubPostRepo)
	notifications := new(stubNotificationRepo)
	r := newReactor(users, posts, notifications)

	posts.On("FindByID", 1).Return(&models.Post{ID: 1, AuthorID: 2}, nil)
	users.On("FindByID", 5).Return(&models.User{ID: 5, Handle: "ape"}, nil)
	notifications.On("Create", mock.AnythingOfType("*models.Notification")).Return(nil)

	err := r.Handle(context.Background(), Event{
		Type: LikeCreated,
		Like: &models.Like{ID: 11, PostID: 1, UserID: 5},
	})
	assert.NoError(t, err)

	created := notifications.Calls[0].Arguments.Get(0).(*models.Notification)
	assert.Equal(t, models.NotificationTypeLike, created.Type)
	assert.Equal(t, 11, created.SourceID)
	assert.Equal(t, 2, created.RecipientID)
	assert.Equal(t, 5, created.SenderID)
	assert.Equal(t, "ape", created.SenderHandle)
	assert.False(t, created.Read)
}

func TestLikeOwnPostSkipsNotification(t *testing.T) {
	users := new(stubUserRepo)
	posts := new(stubPostRepo)
	notifications := new(stubNotificationRepo)
	r := newReactor(users, posts, notifications)

	posts.On("FindByID", 1).Return(&models.Post{ID: 1, AuthorID: 5}, nil)

	err := r.OnLikeCreated(context.Background(), &models.Like{ID: 11, PostID: 1, UserID: 5})
	assert.NoError(t, err)
	notifications.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLikeOnVanishedPostDroppedSilently(t *testing.T) {
	users := new(stubUserRepo)
	posts := new(stubPostRepo)
	notifications := new(stubNotificationRepo)
	r := newReactor(users, posts, notifications)

	posts.On("FindByID", 404).Return(nil, apperr.New(apperr.ErrNotFound, messages.ErrPostNotFound))

	err := r.OnLikeCreated(context.Background(), &models.Like{ID: 11, PostID: 404, UserID: 5})
	assert.NoError(t, err)
	notifications.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUnlikeRemovesNotification(t *testing.T) {
	notifications := new(stubNotificationRepo)
	r := newReactor(new(stubUserRepo), new(stubPostRepo), notifications)

	notifications.On("DeleteBySource", models.NotificationTypeLike, 11).Return(nil)

	err := r.OnLikeDeleted(context.Background(), &models.Like{ID: 11, PostID: 1, UserID: 5})
	assert.NoError(t, err)
	notifications.AssertExpectations(t)
}

func TestCommentCreatesNotification(t *testing.T) {
	users := new(stubUserRepo)
	posts := new(stubPostRepo)
	notifications := new(stubNotificationRepo)
	r := newReactor(users, posts, notifications)

	posts.On("FindByID", 1).Return(&models.Post{ID: 1, AuthorID: 2}, nil)
	users.On("FindByID", 5).Return(&models.User{ID: 5, Handle: "ape"}, nil)
	notifications.On("Create", mock.AnythingOfType("*models.Notification")).Return(nil)

	err := r.OnCommentCreated(context.Background(), &models.Comment{ID: 21, PostID: 1, AuthorID: 5})
	assert.NoError(t, err)

	created := notifications.Calls[0].Arguments.Get(0).(*models.Notification)
	assert.Equal(t, models.NotificationTypeComment, created.Type)
	assert.Equal(t, 21, created.SourceID)
}

func TestAvatarChangePropagatesToPosts(t *testing.T) {
	posts := new(stubPostRepo)
	r := newReactor(new(stubUserRepo), posts, new(stubNotificationRepo))

	posts.On("UpdateAuthorImage", 5, "http://images.test/new.png").Return(nil)

	err := r.Handle(context.Background(), Event{
		Type:     UserImageChanged,
		UserID:   5,
		ImageURL: "http://images.test/new.png",
	})
	assert.NoError(t, err)
	posts.AssertExpectations(t)
}

func TestPostDeletedSweepsChildren(t *testing.T) {
	posts := new(stubPostRepo)
	r := newReactor(new(stubUserRepo), posts, new(stubNotificationRepo))

	posts.On("DeleteCascade", 1).Return(nil)

	err := r.Handle(context.Background(), Event{Type: PostDeleted, PostID: 1})
	assert.NoError(t, err)
	posts.AssertExpectations(t)
}

func TestBusDeliversToReactor(t *testing.T) {
	posts := new(stubPostRepo)
	r := newReactor(new(stubUserRepo), posts, new(stubNotificationRepo))

	done := make(chan struct{})
	posts.On("DeleteCascade", 1).Run(func(mock.Arguments) { close(done) }).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(zap.NewNop())
	go bus.Run(ctx, r)

	bus.Publish(Event{Type: PostDeleted, PostID: 1})
	<-done
}
