package services

import (
	"errors"
	"wordquest/app/models"
	"wordquest/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login flow cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

type AccountService struct{ users *repo.UserRepository }

func NewAccountService(users *repo.UserRepository) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) Create(fullname, email, password string) (*models.User, error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Fullname: fullname, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		// The unique index decides races the pre-check missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *AccountService) Verify(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AccountService) Get(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *AccountService) ListAll() ([]models.User, error) { return s.users.ListAll() }

// Delete removes the account and returns the removed record. Leaderboard
// entries are not linked to accounts and are left untouched.
func (s *AccountService) Delete(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
