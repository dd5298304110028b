package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// Service owns account lifecycle: registration with password hashing
// and credential verification on login.
type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account. New accounts always start as
// students; admins are promoted out of band.
func (s *Service) Register(name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if taken, _ := s.repo.ExistsByEmail(email); taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     RoleStudent,
	}
	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password against the stored hash. Unknown emails and
// wrong passwords report the same error so the endpoint cannot be used
// to probe which addresses exist.
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
