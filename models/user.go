package models

import "time"

// User represents a registered member of the institution.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Email        string     `gorm:"not null;unique" json:"email" form:"email"`
	Password     string     `gorm:"not null" json:"-" form:"password"`
	Phone        string     `json:"phone" form:"phone"`
	AddressLine1 string     `gorm:"column:address_line1" json:"address_line1" form:"address_line1"`
	AddressLine2 string     `gorm:"column:address_line2" json:"address_line2" form:"address_line2"`
	Gender       string     `gorm:"default:''" json:"gender" form:"gender"`
	Dob          string     `gorm:"default:''" json:"dob" form:"dob"`
	ProfileImage string     `gorm:"column:profile_image" json:"profile_image" form:"profile_image"`
	Admin        bool       `gorm:"not null; default: false" json:"admin" form:"admin"`
	CreatedAt    *time.Time `json:"created_at" form:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at" form:"updated_at"`
}
