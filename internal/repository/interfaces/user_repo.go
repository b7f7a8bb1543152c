package interfaces

import "github.com/socialape/backend/internal/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id int) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByHandle(handle string) (*models.User, error)
	// UpdateProfile applies the non-empty fields of detail to the user row.
	UpdateProfile(userID int, detail models.UpdateProfileRequest) error
	UpdateImage(userID int, imageURL string) error
}
