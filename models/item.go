package models

import "time"

/************************************************
/**** MARK: ITEM STATUS ****/
/************************************************/
const ITEM_STATUS_AVAILABLE = "available"
const ITEM_STATUS_CLAIMED = "claimed"

const ITEM_DEFAULT_IMAGE = "/uploads/items/default.jpg"

// Item is a browsable catalog entry. Items derived from an approved report
// keep ReportedBy pointing at the submitting user.
type Item struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Speciality   string     `gorm:"not null" json:"speciality" form:"speciality"`
	Image        string     `gorm:"not null" json:"image" form:"image"`
	Degree       string     `json:"degree" form:"degree"`
	Experience   string     `json:"experience" form:"experience"`
	About        string     `json:"about" form:"about"`
	AddressLine1 string     `gorm:"column:address_line1" json:"address_line1" form:"address_line1"`
	AddressLine2 string     `gorm:"column:address_line2" json:"address_line2" form:"address_line2"`
	Status       string     `gorm:"default:'available'" json:"status" form:"status"`
	ReportedBy   *int64     `gorm:"column:reported_by" json:"reported_by" form:"reported_by"`
	CreatedAt    *time.Time `json:"created_at" form:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at" form:"updated_at"`
}
