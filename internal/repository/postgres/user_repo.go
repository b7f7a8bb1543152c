package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, messages.ErrUserNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, messages.ErrUserNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return &user, nil
}

func (r *UserRepository) FindByHandle(handle string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("handle = ?", handle).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, messages.ErrUserNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(userID int, detail models.UpdateProfileRequest) error {
	updates := map[string]interface{}{}
	if !isBlank(detail.Bio) {
		updates["bio"] = strings.TrimSpace(detail.Bio)
	}
	if !isBlank(detail.Website) {
		website := strings.TrimSpace(detail.Website)
		if !strings.HasPrefix(website, "http") {
			website = "http://" + website
		}
		updates["website"] = website
	}
	if !isBlank(detail.Location) {
		updates["location"] = strings.TrimSpace(detail.Location)
	}
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func (r *UserRepository) UpdateImage(userID int, imageURL string) error {
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).Update("image_url", imageURL).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
