package service

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/socialape/backend/internal/models"
)

// MockUserRepository is a mock implementation of interfaces.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByHandle(handle string) (*models.User, error) {
	args := m.Called(handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(userID int, detail models.UpdateProfileRequest) error {
	args := m.Called(userID, detail)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateImage(userID int, imageURL string) error {
	args := m.Called(userID, imageURL)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of interfaces.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id int) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListAll() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(authorID int) ([]models.Post, error) {
	args := m.Called(authorID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) AddLike(postID, userID int) (*models.Post, *models.Like, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Post), args.Get(1).(*models.Like), args.Error(2)
}

func (m *MockPostRepository) RemoveLike(postID, userID int) (*models.Post, *models.Like, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Post), args.Get(1).(*models.Like), args.Error(2)
}

func (m *MockPostRepository) ListLikesByUser(userID int) ([]models.Like, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Like), args.Error(1)
}

func (m *MockPostRepository) AddComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockPostRepository) ListComments(postID int) ([]models.Comment, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockPostRepository) UpdateAuthorImage(authorID int, imageURL string) error {
	args := m.Called(authorID, imageURL)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteCascade(postID int) error {
	args := m.Called(postID)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of
// interfaces.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteBySource(notificationType string, sourceID int) error {
	args := m.Called(notificationType, sourceID)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(recipientID, limit int) ([]models.Notification, error) {
	args := m.Called(recipientID, limit)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ids []int, recipientID int) error {
	args := m.Called(ids, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountUnread(recipientID int) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

// fakeImageStorage records uploads without touching any backend.
type fakeImageStorage struct {
	uploaded []string
}

func (f *fakeImageStorage) Upload(ctx context.Context, file *multipart.FileHeader, name string) (string, error) {
	f.uploaded = append(f.uploaded, name)
	return f.URL(name), nil
}

func (f *fakeImageStorage) URL(name string) string {
	return "http://images.test/" + name
}
