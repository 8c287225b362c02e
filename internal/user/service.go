package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists       = errors.New("username already exists")
	ErrWrongCredentials = errors.New("wrong credentials")
)

type Service interface {
	Signup(username, password, role string) (*User, error)
	Login(username, password string) (*User, error)
	GetByID(id uint64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

// Signup creates a user row. It does not authenticate the caller;
// a fresh signup still has to log in for a token.
func (s *service) Signup(username, password, role string) (*User, error) {
	if existing, _ := s.repo.FindByUsername(username); existing != nil {
		return nil, ErrUserExists
	}
	if role == "" {
		role = "user"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(&User{
		Username: username,
		PassHash: string(hash),
		Role:     role,
	})
}

func (s *service) Login(username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		return nil, ErrWrongCredentials
	}
	return u, nil
}

func (s *service) GetByID(id uint64) (*User, error) {
	return s.repo.FindByID(id)
}
