package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Shivam-2025/KhelSaksham/models"
	"github.com/Shivam-2025/KhelSaksham/utils"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Age      int
	Location string
	Sport    string
}

func (s *UserService) Register(in RegisterInput) error {
	var existing models.User
	err := s.db.
		Where("username = ? OR email = ?", in.Username, in.Email).
		First(&existing).Error
	if err == nil {
		return E(KindConflict, "Username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(KindUpstream, "Registration failed", err)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return E(KindValidation, "Password must not exceed 72 bytes")
		}
		return Wrap(KindUpstream, "Registration failed", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		Age:          in.Age,
		Location:     in.Location,
		Sport:        in.Sport,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return Wrap(KindUpstream, "Registration failed", err)
	}
	return nil
}

// Authenticate never distinguishes an unknown email from a bad password.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(KindUnauthorized, "Invalid credentials")
		}
		return nil, Wrap(KindUpstream, "Login failed", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, E(KindUnauthorized, "Invalid credentials")
	}
	return &user, nil
}

type Profile struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Age       int       `json:"age"`
	Location  string    `json:"location"`
	Sport     string    `json:"sport"`
	AvatarURL string    `json:"avatar_url"`
	TotalReps int       `json:"total_reps"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *UserService) GetProfile(user *models.User) (*Profile, error) {
	var totalReps int
	err := s.db.Model(&models.Result{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(reps), 0)").
		Scan(&totalReps).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Profile fetch failed", err)
	}

	return &Profile{
		Username:  user.Username,
		Email:     user.Email,
		Bio:       user.Bio,
		Age:       user.Age,
		Location:  user.Location,
		Sport:     user.Sport,
		AvatarURL: user.AvatarURL,
		TotalReps: totalReps,
		CreatedAt: user.CreatedAt,
	}, nil
}

type ProfileUpdateInput struct {
	Email     *string
	Bio       *string
	AvatarURL *string
}

func (s *UserService) UpdateProfile(user *models.User, in ProfileUpdateInput) error {
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return E(KindValidation, "Email cannot be empty")
		}
		var other models.User
		err := s.db.Where("email = ? AND id <> ?", *in.Email, user.ID).First(&other).Error
		if err == nil {
			return E(KindConflict, "Email already in use")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Wrap(KindUpstream, "Profile update failed", err)
		}
		user.Email = *in.Email
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}

	if err := s.db.Save(user).Error; err != nil {
		return Wrap(KindUpstream, "Profile update failed", err)
	}
	return nil
}
