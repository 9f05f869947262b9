package services

import (
	"errors"

	"csvvault/app/models"
	"csvvault/app/repo"
	"csvvault/app/security"

	"gorm.io/gorm"
)

type UserService struct {
	users *repo.UserRepository
	files *FileService
}

func NewUserService(users *repo.UserRepository, files *FileService) *UserService {
	return &UserService{users: users, files: files}
}

// EnsureAdmin seeds the admin account on first start; it is a no-op when the
// username already exists.
func (s *UserService) EnsureAdmin(username, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.CreateUser(username, password, models.RoleAdmin)
	return err
}

// Register creates a regular active account. Self-registration can never
// pick a role.
func (s *UserService) Register(username, password string) (*models.User, error) {
	return s.CreateUser(username, password, models.RoleUser)
}

func (s *UserService) CreateUser(username, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, PasswordHash: hash, Role: role, IsActive: true}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidateCredentials resolves username+password to the account. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !security.VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListAll() ([]models.User, error) { return s.users.ListAll() }

func (s *UserService) SetActive(id uint, active bool) error {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.users.SetActive(id, active)
}

// Delete removes the account and cascades to its file rows and blobs.
func (s *UserService) Delete(id uint) error {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.files.DeleteAllForOwner(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}
