package user

import "time"

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:60" json:"username"`
	PassHash  string    `gorm:"size:255" json:"-"`
	Role      string    `gorm:"size:30;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SignupReq struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
