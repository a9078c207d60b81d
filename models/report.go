package models

import "time"

/************************************************
/**** MARK: REPORT STATUS ****/
/************************************************/
// Transitions are one-way: pending -> approved or pending -> rejected.
// Both outcomes are terminal.
const REPORT_STATUS_PENDING = "pending"
const REPORT_STATUS_APPROVED = "approved"
const REPORT_STATUS_REJECTED = "rejected"

// Report is a user's claim that they found an item, awaiting admin review.
type Report struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID      int64      `gorm:"not null;index" json:"user_id" form:"user_id"`
	ItemType    string     `gorm:"column:item_type;not null" json:"item_type" form:"item_type"`
	Location    string     `gorm:"not null" json:"location" form:"location"`
	TimeFound   string     `gorm:"column:time_found;not null" json:"time_found" form:"time_found"`
	Description string     `gorm:"not null" json:"description" form:"description"`
	Media       string     `json:"media" form:"media"`
	Status      string     `gorm:"default:'pending'" json:"status" form:"status"`
	CreatedAt   *time.Time `json:"created_at" form:"created_at"`
}

// MissingFields lists every required field still empty.
func (report Report) MissingFields() []string {
	var missing []string
	if report.ItemType == "" {
		missing = append(missing, "item_type")
	}
	if report.Location == "" {
		missing = append(missing, "location")
	}
	if report.TimeFound == "" {
		missing = append(missing, "time_found")
	}
	if report.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}
