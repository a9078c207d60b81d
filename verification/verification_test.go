package verification

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"unilost/config"
	"unilost/faults"
	"unilost/models"
	"unilost/tools"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	codes    map[string]string // email -> last code, any purpose
	kinds    map[string]string // email -> "verification" | "reset"
	failWith error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{codes: map[string]string{}, kinds: map[string]string{}}
}

func (n *fakeNotifier) SendVerificationCode(email, code string) error {
	if n.failWith != nil {
		return n.failWith
	}
	n.codes[email] = code
	n.kinds[email] = "verification"
	return nil
}

func (n *fakeNotifier) SendPasswordResetCode(email, code string) error {
	if n.failWith != nil {
		return n.failWith
	}
	n.codes[email] = code
	n.kinds[email] = "reset"
	return nil
}

func setupManager(t *testing.T) (*Manager, *fakeNotifier, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	database.DB().SetMaxOpenConns(1)
	database.AutoMigrate(&models.User{})

	var cfg config.Configuration
	cfg.InstitutionDomain = "inst.edu"
	cfg.Security.OtpTTLMinutes = 10
	cfg.Security.BcryptCost = 4 // cheap hashing in tests

	notifier := newFakeNotifier()
	return New(database, notifier, cfg), notifier, database
}

func TestRegistrationFlow(t *testing.T) {
	m, notifier, database := setupManager(t)

	expiresIn, err := m.IssueRegistration("Alice@INST.EDU", "Alice")
	require.NoError(t, err)
	require.Equal(t, 600, expiresIn)

	code, ok := notifier.codes["alice@inst.edu"]
	require.True(t, ok, "code dispatched to the normalized address")
	require.Len(t, code, 6)
	require.Equal(t, "verification", notifier.kinds["alice@inst.edu"])

	// wrong code
	_, err = m.RedeemRegistration("alice@inst.edu", "000000", "abcdef", "")
	require.Equal(t, faults.CodeMismatch, faults.KindOf(err))

	// correct code, password too short
	_, err = m.RedeemRegistration("alice@inst.edu", code, "abc", "")
	require.Equal(t, faults.WeakPassword, faults.KindOf(err))

	// correct code, acceptable password
	user, err := m.RedeemRegistration("Alice@INST.EDU", code, "abcdef", "555-0101")
	require.NoError(t, err)
	require.Equal(t, "alice@inst.edu", user.Email)
	require.Equal(t, "Alice", user.Name)
	require.True(t, tools.ComparePassword(user.Password, "abcdef"))
	require.NotEqual(t, "abcdef", user.Password, "plaintext never persisted")

	var count int
	database.Model(&models.User{}).Count(&count)
	require.Equal(t, 1, count)

	// the ticket was consumed exactly once
	_, err = m.RedeemRegistration("alice@inst.edu", code, "abcdef", "")
	require.Equal(t, faults.TicketNotFound, faults.KindOf(err))

	database.Model(&models.User{}).Count(&count)
	require.Equal(t, 1, count, "no duplicate account on double submission")
}

func TestIssueRegistrationDomainRejected(t *testing.T) {
	m, _, _ := setupManager(t)

	_, err := m.IssueRegistration("bob@gmail.com", "Bob")
	require.Equal(t, faults.DomainRejected, faults.KindOf(err))
}

func TestIssueRegistrationAlreadyRegistered(t *testing.T) {
	m, _, database := setupManager(t)

	require.NoError(t, database.Create(&models.User{
		Name: "Carol", Email: "carol@inst.edu", Password: "x",
	}).Error)

	_, err := m.IssueRegistration("carol@inst.edu", "Carol")
	require.Equal(t, faults.AlreadyRegistered, faults.KindOf(err))
}

func TestRedeemWithoutTicket(t *testing.T) {
	m, _, _ := setupManager(t)

	_, err := m.RedeemRegistration("ghost@inst.edu", "123456", "abcdef", "")
	require.Equal(t, faults.TicketNotFound, faults.KindOf(err))
}

func TestExpiredTicketDiscarded(t *testing.T) {
	m, notifier, _ := setupManager(t)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	_, err := m.IssueRegistration("dave@inst.edu", "Dave")
	require.NoError(t, err)
	code := notifier.codes["dave@inst.edu"]

	// past the 600-second window the correct code no longer helps
	m.now = func() time.Time { return issued.Add(10*time.Minute + time.Second) }
	_, err = m.RedeemRegistration("dave@inst.edu", code, "abcdef", "")
	require.Equal(t, faults.TicketExpired, faults.KindOf(err))

	// the expired ticket was discarded on first detection
	_, err = m.RedeemRegistration("dave@inst.edu", code, "abcdef", "")
	require.Equal(t, faults.TicketNotFound, faults.KindOf(err))
}

func TestReissueSupersedes(t *testing.T) {
	m, notifier, _ := setupManager(t)

	_, err := m.IssueRegistration("erin@inst.edu", "Erin")
	require.NoError(t, err)
	first := notifier.codes["erin@inst.edu"]

	_, err = m.IssueRegistration("erin@inst.edu", "Erin")
	require.NoError(t, err)
	second := notifier.codes["erin@inst.edu"]

	if first != second {
		_, err = m.RedeemRegistration("erin@inst.edu", first, "abcdef", "")
		require.Equal(t, faults.CodeMismatch, faults.KindOf(err))
	}

	user, err := m.RedeemRegistration("erin@inst.edu", second, "abcdef", "")
	require.NoError(t, err)
	require.Equal(t, "erin@inst.edu", user.Email)
}

func TestDispatchFailureRollsBackTicket(t *testing.T) {
	m, notifier, _ := setupManager(t)

	notifier.failWith = errors.New("smtp down")
	_, err := m.IssueRegistration("frank@inst.edu", "Frank")
	require.Equal(t, faults.DispatchFailed, faults.KindOf(err))

	// the ticket is not considered issued
	notifier.failWith = nil
	_, err = m.RedeemRegistration("frank@inst.edu", "123456", "abcdef", "")
	require.Equal(t, faults.TicketNotFound, faults.KindOf(err))
}

func TestPasswordResetFlow(t *testing.T) {
	m, notifier, database := setupManager(t)

	_, err := m.IssuePasswordReset("nobody@inst.edu")
	require.Equal(t, faults.AccountNotFound, faults.KindOf(err))

	hash, err := tools.HashPassword("oldpass", 4)
	require.NoError(t, err)
	require.NoError(t, database.Create(&models.User{
		Name: "Grace", Email: "grace@inst.edu", Password: hash,
	}).Error)

	expiresIn, err := m.IssuePasswordReset("Grace@Inst.Edu")
	require.NoError(t, err)
	require.Equal(t, 600, expiresIn)
	require.Equal(t, "reset", notifier.kinds["grace@inst.edu"])
	code := notifier.codes["grace@inst.edu"]

	require.Equal(t, faults.CodeMismatch,
		faults.KindOf(m.RedeemPasswordReset("grace@inst.edu", "000000", "newpass")))
	require.Equal(t, faults.WeakPassword,
		faults.KindOf(m.RedeemPasswordReset("grace@inst.edu", code, "abc")))

	require.NoError(t, m.RedeemPasswordReset("grace@inst.edu", code, "newpass"))

	var user models.User
	require.NoError(t, database.Where("email = ?", "grace@inst.edu").First(&user).Error)
	require.True(t, tools.ComparePassword(user.Password, "newpass"))
	require.False(t, tools.ComparePassword(user.Password, "oldpass"))

	// consumed
	require.Equal(t, faults.TicketNotFound,
		faults.KindOf(m.RedeemPasswordReset("grace@inst.edu", code, "newpass")))
}
