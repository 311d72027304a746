package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName string    `gorm:"column:user_name;type:varchar(50);not null" json:"user_name"`
	Email    string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	Password string    `gorm:"column:password;type:varchar(250);not null" json:"-"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:'viewer'" json:"role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
