package services

import (
	"errors"
	"log"

	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register hashes the password and creates the user with role "user".
// A duplicate email surfaces as ErrDuplicate via the unique index.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     "user",
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for both a missing user and a
// wrong password so the response never leaks which one it was.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// AuthenticateAdmin is Authenticate restricted to admin accounts.
func (s *UserService) AuthenticateAdmin(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ? AND role = ?", email, "admin").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// BootstrapAdmin creates the admin account if absent. Single insert with
// ON CONFLICT DO NOTHING, so concurrent startups can't create two admins.
func (s *UserService) BootstrapAdmin(email, password string) error {
	if email == "" || password == "" {
		log.Println("Admin credentials not properly defined in environment variables")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	res := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Println("Admin user created successfully")
	} else {
		log.Println("Admin user already exists")
	}
	return nil
}
