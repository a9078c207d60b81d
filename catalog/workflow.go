package catalog

import (
	"strings"
	"time"

	"unilost/faults"
	"unilost/models"

	"github.com/jinzhu/gorm"
)

// ReportInput carries the user-supplied fields of a found-item report.
// Media is an opaque ref filled by the upload layer, optional.
type ReportInput struct {
	ItemType    string `json:"item_type" form:"item_type"`
	Location    string `json:"location" form:"location"`
	TimeFound   string `json:"time_found" form:"time_found"`
	Description string `json:"description" form:"description"`
	Media       string `json:"media" form:"media"`
}

// ReportView is the admin projection of a report joined with its submitter.
type ReportView struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	ItemType    string     `json:"item_type"`
	Location    string     `json:"location"`
	TimeFound   string     `json:"time_found"`
	Description string     `json:"description"`
	Media       string     `json:"media"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"created_at"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
}

// SubmitReport persists a new pending report. No catalog item is created at
// this stage: catalog visibility requires explicit admin approval.
func SubmitReport(db *gorm.DB, userID int64, input ReportInput) (int64, error) {
	report := models.Report{
		UserID:      userID,
		ItemType:    strings.TrimSpace(input.ItemType),
		Location:    strings.TrimSpace(input.Location),
		TimeFound:   strings.TrimSpace(input.TimeFound),
		Description: strings.TrimSpace(input.Description),
		Media:       strings.TrimSpace(input.Media),
		Status:      models.REPORT_STATUS_PENDING,
	}

	if missing := report.MissingFields(); len(missing) > 0 {
		return 0, faults.Newf(faults.ValidationFailed, "Missing required fields: %s",
			strings.Join(missing, ", "))
	}

	if err := db.Create(&report).Error; err != nil {
		return 0, faults.Store(err)
	}
	return report.ID, nil
}

func ListPendingReports(db *gorm.DB) ([]ReportView, error) {
	return listReports(db, true)
}

func ListAllReports(db *gorm.DB) ([]ReportView, error) {
	return listReports(db, false)
}

func listReports(db *gorm.DB, pendingOnly bool) ([]ReportView, error) {
	q := db.Table("reports").
		Select("reports.*, users.name as user_name, users.email as user_email").
		Joins("join users on users.id = reports.user_id")
	if pendingOnly {
		q = q.Where("reports.status = ?", models.REPORT_STATUS_PENDING)
	}

	var views []ReportView
	if err := q.Order("reports.created_at desc").Scan(&views).Error; err != nil {
		return nil, faults.Store(err)
	}
	return views, nil
}

// ApproveReport flips a pending report to approved and derives its catalog
// item. Both writes happen in one transaction, and the status flip is a
// conditional update so two racing approves produce exactly one item: the
// loser sees zero affected rows and gets AlreadyDecided.
func ApproveReport(db *gorm.DB, reportID int64) error {
	report, err := findReport(db, reportID)
	if err != nil {
		return err
	}
	if report.Status != models.REPORT_STATUS_PENDING {
		return faults.Newf(faults.AlreadyDecided, "Report already %s", report.Status)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return faults.Store(tx.Error)
	}

	res := tx.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.REPORT_STATUS_PENDING).
		Update("status", models.REPORT_STATUS_APPROVED)
	if res.Error != nil {
		tx.Rollback()
		return faults.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return faults.New(faults.AlreadyDecided, "Report already decided")
	}

	item := itemFromReport(report)
	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}
	return nil
}

// RejectReport marks a pending report rejected. Terminal: a rejected report
// can never be approved later, and no item is created.
func RejectReport(db *gorm.DB, reportID int64) error {
	report, err := findReport(db, reportID)
	if err != nil {
		return err
	}
	if report.Status != models.REPORT_STATUS_PENDING {
		return faults.Newf(faults.AlreadyDecided, "Report already %s", report.Status)
	}

	res := db.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.REPORT_STATUS_PENDING).
		Update("status", models.REPORT_STATUS_REJECTED)
	if res.Error != nil {
		return faults.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return faults.New(faults.AlreadyDecided, "Report already decided")
	}
	return nil
}

// DeleteReport removes the report row outright, whatever its status. Items
// already derived from an approval are left untouched.
func DeleteReport(db *gorm.DB, reportID int64) error {
	if _, err := findReport(db, reportID); err != nil {
		return err
	}
	if err := db.Where("id = ?", reportID).Delete(&models.Report{}).Error; err != nil {
		return faults.Store(err)
	}
	return nil
}

func findReport(db *gorm.DB, reportID int64) (models.Report, error) {
	var report models.Report
	err := db.Where("id = ?", reportID).First(&report).Error
	if gorm.IsRecordNotFoundError(err) {
		return report, faults.New(faults.ReportNotFound, "Report not found")
	}
	if err != nil {
		return report, faults.Store(err)
	}
	return report, nil
}

// itemFromReport copies the report's descriptive fields into a fresh
// available item (the original catalog schema repurposes speciality as the
// category and address_line1 as the location).
func itemFromReport(report models.Report) models.Item {
	image := report.Media
	if image == "" {
		image = models.ITEM_DEFAULT_IMAGE
	}
	userID := report.UserID
	return models.Item{
		Name:         report.ItemType,
		Speciality:   report.ItemType,
		Image:        image,
		Degree:       "Found Item",
		Experience:   "Found at " + report.TimeFound,
		About:        report.Description,
		AddressLine1: report.Location,
		AddressLine2: "",
		Status:       models.ITEM_STATUS_AVAILABLE,
		ReportedBy:   &userID,
	}
}
