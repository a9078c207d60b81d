package catalog

import (
	"fmt"
	"sync"
	"testing"

	"unilost/faults"
	"unilost/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	database.DB().SetMaxOpenConns(1)
	database.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Report{},
		&models.Appointment{},
	)
	return database
}

func createUser(t *testing.T, database *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hash"}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func validInput() ReportInput {
	return ReportInput{
		ItemType:    "Blue Backpack",
		Location:    "Library, 2nd floor",
		TimeFound:   "14:30",
		Description: "Blue backpack with a laptop sleeve",
		Media:       "/uploads/reports/report-1.jpg",
	}
}

func TestSubmitReportMissingLocation(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	input := validInput()
	input.Location = ""
	_, err := SubmitReport(database, user.ID, input)
	require.Equal(t, faults.ValidationFailed, faults.KindOf(err))
	require.Contains(t, err.Error(), "location")
}

func TestSubmitReportStaysOutOfCatalog(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	reportID, err := SubmitReport(database, user.ID, validInput())
	require.NoError(t, err)
	require.NotZero(t, reportID)

	var report models.Report
	require.NoError(t, database.First(&report, reportID).Error)
	require.Equal(t, models.REPORT_STATUS_PENDING, report.Status)

	var items int
	database.Model(&models.Item{}).Count(&items)
	require.Equal(t, 0, items, "no item before approval")
}

func TestApproveRoundTrip(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	input := validInput()
	reportID, err := SubmitReport(database, user.ID, input)
	require.NoError(t, err)

	require.NoError(t, ApproveReport(database, reportID))

	var report models.Report
	require.NoError(t, database.First(&report, reportID).Error)
	require.Equal(t, models.REPORT_STATUS_APPROVED, report.Status)

	var item models.Item
	require.NoError(t, database.First(&item).Error)
	require.Equal(t, input.ItemType, item.Name)
	require.Equal(t, input.ItemType, item.Speciality)
	require.Equal(t, input.Media, item.Image)
	require.Equal(t, input.Description, item.About)
	require.Equal(t, input.Location, item.AddressLine1)
	require.Equal(t, models.ITEM_STATUS_AVAILABLE, item.Status)
	require.NotNil(t, item.ReportedBy)
	require.Equal(t, user.ID, *item.ReportedBy)
}

func TestApproveWithoutMediaUsesPlaceholder(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	input := validInput()
	input.Media = ""
	reportID, err := SubmitReport(database, user.ID, input)
	require.NoError(t, err)
	require.NoError(t, ApproveReport(database, reportID))

	var item models.Item
	require.NoError(t, database.First(&item).Error)
	require.Equal(t, models.ITEM_DEFAULT_IMAGE, item.Image)
}

func TestApproveTwice(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	reportID, err := SubmitReport(database, user.ID, validInput())
	require.NoError(t, err)

	require.NoError(t, ApproveReport(database, reportID))
	err = ApproveReport(database, reportID)
	require.Equal(t, faults.AlreadyDecided, faults.KindOf(err))

	var items int
	database.Model(&models.Item{}).Count(&items)
	require.Equal(t, 1, items, "at most one item per report")
}

func TestRejectThenApprove(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	reportID, err := SubmitReport(database, user.ID, validInput())
	require.NoError(t, err)

	require.NoError(t, RejectReport(database, reportID))
	require.Equal(t, faults.AlreadyDecided, faults.KindOf(ApproveReport(database, reportID)))
	require.Equal(t, faults.AlreadyDecided, faults.KindOf(RejectReport(database, reportID)))

	var items int
	database.Model(&models.Item{}).Count(&items)
	require.Equal(t, 0, items, "rejection never creates an item")
}

func TestApproveUnknownReport(t *testing.T) {
	database := setupDB(t)

	require.Equal(t, faults.ReportNotFound, faults.KindOf(ApproveReport(database, 999)))
	require.Equal(t, faults.ReportNotFound, faults.KindOf(RejectReport(database, 999)))
	require.Equal(t, faults.ReportNotFound, faults.KindOf(DeleteReport(database, 999)))
}

func TestConcurrentApprove(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	reportID, err := SubmitReport(database, user.ID, validInput())
	require.NoError(t, err)

	const attempts = 4
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- ApproveReport(database, reportID)
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, decided int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case faults.KindOf(err) == faults.AlreadyDecided:
			decided++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, attempts-1, decided)

	var items int
	database.Model(&models.Item{}).Count(&items)
	require.Equal(t, 1, items)
}

func TestDeleteReportLeavesDerivedItem(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "Alice", "alice@inst.edu")

	reportID, err := SubmitReport(database, user.ID, validInput())
	require.NoError(t, err)
	require.NoError(t, ApproveReport(database, reportID))

	require.NoError(t, DeleteReport(database, reportID))

	var reports, items int
	database.Model(&models.Report{}).Count(&reports)
	database.Model(&models.Item{}).Count(&items)
	require.Equal(t, 0, reports)
	require.Equal(t, 1, items, "delete never touches derived items")
}

func TestListReportsJoinSubmitter(t *testing.T) {
	database := setupDB(t)
	alice := createUser(t, database, "Alice", "alice@inst.edu")
	bob := createUser(t, database, "Bob", "bob@inst.edu")

	firstID, err := SubmitReport(database, alice.ID, validInput())
	require.NoError(t, err)

	input := validInput()
	input.ItemType = "Umbrella"
	_, err = SubmitReport(database, bob.ID, input)
	require.NoError(t, err)

	pending, err := ListPendingReports(database)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, view := range pending {
		require.NotEmpty(t, view.UserName)
		require.NotEmpty(t, view.UserEmail)
	}

	require.NoError(t, ApproveReport(database, firstID))

	pending, err = ListPendingReports(database)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "Bob", pending[0].UserName)

	all, err := ListAllReports(database)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
