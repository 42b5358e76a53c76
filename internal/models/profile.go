package models

import (
	"github.com/google/uuid"
	"time"
)

// SocialLinks хранится в строке профиля под префиксом social_
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

type Profile struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	User           User      `gorm:"foreignKey:UserID"`
	Bio            string
	Status         string
	Location       string
	GithubUsername string
	Social         SocialLinks `gorm:"embedded;embeddedPrefix:social_"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
