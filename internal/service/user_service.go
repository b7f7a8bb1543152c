package service

import (
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/auth"
	"github.com/socialape/backend/internal/cache"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
	"github.com/socialape/backend/internal/repository/interfaces"
	"github.com/socialape/backend/internal/storage"
	"github.com/socialape/backend/internal/triggers"
)

const notificationFeedLimit = 10

type UserService struct {
	users         interfaces.UserRepository
	posts         interfaces.PostRepository
	notifications interfaces.NotificationRepository
	images        storage.ImageStorage
	bus           *triggers.Bus
	unread        *cache.UnreadCounter
	jwtSecret     string
}

func NewUserService(
	users interfaces.UserRepository,
	posts interfaces.PostRepository,
	notifications interfaces.NotificationRepository,
	images storage.ImageStorage,
	bus *triggers.Bus,
	unread *cache.UnreadCounter,
	jwtSecret string,
) *UserService {
	return &UserService{
		users:         users,
		posts:         posts,
		notifications: notifications,
		images:        images,
		bus:           bus,
		unread:        unread,
		jwtSecret:     jwtSecret,
	}
}

// Signup creates the user with the default avatar and returns a fresh token.
// Handle and email uniqueness are checked before the row is written.
func (s *UserService) Signup(req models.SignupRequest) (string, error) {
	if _, err := s.users.FindByHandle(req.Handle); err == nil {
		return "", apperr.New(apperr.ErrDuplicate, messages.ErrHandleTaken)
	} else if !apperr.IsCode(err, apperr.ErrNotFound) {
		return "", err
	}
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return "", apperr.New(apperr.ErrDuplicate, messages.ErrEmailTaken)
	} else if !apperr.IsCode(err, apperr.ErrNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrInternal, messages.ErrServer, err)
	}

	user := models.User{
		Handle:   req.Handle,
		Email:    req.Email,
		Password: string(hashed),
		ImageURL: s.images.URL(storage.DefaultImageName),
	}
	if err := s.users.Create(&user); err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrInternal, messages.ErrServer, err)
	}
	return token, nil
}

func (s *UserService) Login(req models.LoginRequest) (string, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if apperr.IsCode(err, apperr.ErrNotFound) {
			return "", apperr.New(apperr.ErrUnauthorized, messages.ErrWrongCredentials)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", apperr.New(apperr.ErrUnauthorized, messages.ErrWrongCredentials)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrInternal, messages.ErrServer, err)
	}
	return token, nil
}

func (s *UserService) FindByID(id int) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) UpdateProfile(userID int, detail models.UpdateProfileRequest) error {
	return s.users.UpdateProfile(userID, detail)
}

// UploadAvatar stores the image, points the user at it and announces the
// change so the reaction engine can refresh the author snapshot on existing
// posts.
func (s *UserService) UploadAvatar(ctx context.Context, userID int, file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return apperr.New(apperr.ErrInvalidInput, messages.ErrInvalidFileType)
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	url, err := s.images.Upload(ctx, file, name)
	if err != nil {
		return apperr.Wrap(apperr.ErrThirdParty, messages.ErrServer, err)
	}

	if err := s.users.UpdateImage(userID, url); err != nil {
		return err
	}

	s.bus.Publish(triggers.Event{
		Type:     triggers.UserImageChanged,
		UserID:   userID,
		ImageURL: url,
	})
	return nil
}

// OwnerData assembles the authenticated user's dashboard: credentials, likes,
// the ten latest notifications and their posts, newest first.
func (s *UserService) OwnerData(ctx context.Context, userID int) (*models.UserData, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	likes, err := s.posts.ListLikesByUser(userID)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notifications.ListByRecipient(userID, notificationFeedLimit)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByAuthor(userID)
	if err != nil {
		return nil, err
	}

	unread, ok := s.unread.Get(ctx, userID)
	if !ok {
		unread, err = s.notifications.CountUnread(userID)
		if err != nil {
			return nil, err
		}
		_ = s.unread.Set(ctx, userID, unread)
	}

	return &models.UserData{
		Credentials:         *user,
		Likes:               likes,
		Notifications:       notifications,
		Posts:               posts,
		UnreadNotifications: unread,
	}, nil
}

func (s *UserService) GuestData(userID int) (*models.PublicUserData, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByAuthor(userID)
	if err != nil {
		return nil, err
	}

	return &models.PublicUserData{
		Credentials: *user,
		Posts:       posts,
	}, nil
}
