package entities

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultAvatarURL = "https://recipeshare-assets.s3.amazonaws.com/users/default-avatar.png"

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:100;uniqueIndex;not null;check:ck_users_username_required,length(trim(username)) > 0" json:"username"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Role         string    `gorm:"size:20;default:User" json:"role"`

	Recipes []*Recipe `gorm:"foreignKey:AuthorID" json:"-"`
	Timestamp
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Token     string    `gorm:"size:255;uniqueIndex;not null" json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	ExpiresAt time.Time `gorm:"type:timestamp;not null" json:"expires_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (t *RefreshToken) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
