package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/safe-response/safe-api/schema"
)

var (
	ErrEmailTaken   = fmt.Errorf("email already exists")
	ErrUserNotFound = fmt.Errorf("user not found")
)

// CreateUser registers a new identity. Emails are stored lowercased and a
// unique index guarantees the first registration wins regardless of races.
func (s *SafeStore) CreateUser(email, passwordHash, firstName, lastName, phoneNumber, role string) (*schema.User, error) {
	user := schema.User{
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  phoneNumber,
		Role:         role,
		IsActive:     true,
		CreatedDate:  time.Now().UTC(),
	}

	if err := s.ormDB.Create(&user).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// GetUser returns a user by id
func (s *SafeStore) GetUser(id int) (*schema.User, error) {
	var user schema.User
	if err := s.ormDB.Where("id = ?", id).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks a user up by email, case-insensitively. Inactive users
// are returned as well; callers decide how deactivation surfaces.
func (s *SafeStore) GetUserByEmail(email string) (*schema.User, error) {
	var user schema.User
	if err := s.ormDB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful login
func (s *SafeStore) TouchLastLogin(id int) error {
	now := time.Now().UTC()
	return s.ormDB.Model(schema.User{}).
		Where("id = ?", id).
		Update("last_login_date", &now).Error
}

// ListUsers returns every user, newest first
func (s *SafeStore) ListUsers() ([]schema.User, error) {
	users := []schema.User{}
	if err := s.ormDB.Order("created_date desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes the role of a user
func (s *SafeStore) UpdateUserRole(id int, role string) error {
	result := s.ormDB.Model(schema.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeactivateUser flips the active flag off. Users are never removed so that
// help requests and donations keep their owners.
func (s *SafeStore) DeactivateUser(id int) error {
	result := s.ormDB.Model(schema.User{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// EnsureAdminUser seeds the initial admin account if the email is not taken
// yet. Used at startup; a no-op once the admin exists.
func (s *SafeStore) EnsureAdminUser(email, passwordHash string) error {
	_, err := s.CreateUser(email, passwordHash, "SAFE", "Administrator", "", schema.RoleAdmin)
	if err == ErrEmailTaken {
		return nil
	}
	return err
}
