package verification

import (
	"strings"
	"sync"
	"time"

	"unilost/config"
	"unilost/faults"
	"unilost/models"
	"unilost/tools"

	"github.com/jinzhu/gorm"
)

type Purpose string

const (
	PurposeRegistration  Purpose = "registration"
	PurposePasswordReset Purpose = "password_reset"
)

// Notifier delivers codes out-of-band. Dispatch failure makes the issuing
// operation fail: a ticket the user cannot receive is not considered issued.
type Notifier interface {
	SendVerificationCode(email, code string) error
	SendPasswordResetCode(email, code string) error
}

type ticketKey struct {
	email   string
	purpose Purpose
}

// ticket is ephemeral and never leaves the process. Per ticket the states are
// issued -> redeemed | expired (detected lazily) | superseded by reissue.
type ticket struct {
	code      string
	issuedAt  time.Time
	expiresAt time.Time
	name      string // registration payload: pending display name
	userID    int64  // password-reset payload: resolved account id
}

// Manager issues and redeems one-time passcodes gating account creation and
// password reset. At most one live ticket exists per (email, purpose) pair;
// issuing again supersedes the previous one. Expired tickets are only
// discarded when someone tries to redeem them, so memory is bounded by the
// number of distinct (email, purpose) pairs ever requested.
type Manager struct {
	db       *gorm.DB
	notifier Notifier
	domain   string
	ttl      time.Duration
	cost     int

	mu      sync.Mutex
	tickets map[ticketKey]ticket

	now func() time.Time
}

func New(database *gorm.DB, notifier Notifier, cfg config.Configuration) *Manager {
	return &Manager{
		db:       database,
		notifier: notifier,
		domain:   cfg.InstitutionDomain,
		ttl:      time.Duration(cfg.Security.OtpTTLMinutes) * time.Minute,
		cost:     cfg.Security.BcryptCost,
		tickets:  make(map[ticketKey]ticket),
		now:      time.Now,
	}
}

// IssueRegistration creates and dispatches a registration ticket.
// Returns the ticket lifetime in seconds.
func (m *Manager) IssueRegistration(email, name string) (int, error) {
	email = normalizeEmail(email)
	if !tools.HasInstitutionDomain(email, m.domain) {
		return 0, faults.Newf(faults.DomainRejected, "Only @%s email addresses can register", m.domain)
	}

	var user models.User
	err := m.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return 0, faults.New(faults.AlreadyRegistered, "Email already registered")
	}
	if !gorm.IsRecordNotFoundError(err) {
		return 0, faults.Store(err)
	}

	return m.issue(ticketKey{email: email, purpose: PurposeRegistration}, ticket{name: name},
		m.notifier.SendVerificationCode)
}

// IssuePasswordReset creates and dispatches a password-reset ticket for an
// existing account. Returns the ticket lifetime in seconds.
func (m *Manager) IssuePasswordReset(email string) (int, error) {
	email = normalizeEmail(email)

	var user models.User
	err := m.db.Where("email = ?", email).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return 0, faults.New(faults.AccountNotFound, "No account found for this email")
	}
	if err != nil {
		return 0, faults.Store(err)
	}

	return m.issue(ticketKey{email: email, purpose: PurposePasswordReset}, ticket{userID: user.ID},
		m.notifier.SendPasswordResetCode)
}

// issue stores a ticket, superseding any live one for the key, then
// dispatches the code. Storage is rolled back when dispatch fails.
// The mutex is held across dispatch so concurrent reissues for the same key
// always end with exactly one live ticket.
func (m *Manager) issue(key ticketKey, t ticket, send func(email, code string) error) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.code = tools.RandomCode()
	t.issuedAt = m.now()
	t.expiresAt = t.issuedAt.Add(m.ttl)
	m.tickets[key] = t

	if err := send(key.email, t.code); err != nil {
		delete(m.tickets, key)
		return 0, faults.Newf(faults.DispatchFailed, "Could not send code: %v", err)
	}

	return int(m.ttl / time.Second), nil
}

// RedeemRegistration consumes a registration ticket and creates the account.
// A second redemption after success fails with TicketNotFound: the ticket was
// consumed, no duplicate account is created.
func (m *Manager) RedeemRegistration(email, code, password, phone string) (*models.User, error) {
	email = normalizeEmail(email)
	key := ticketKey{email: email, purpose: PurposeRegistration}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.check(key, code)
	if err != nil {
		return nil, err
	}
	if tools.CheckPassword(password) != "" {
		return nil, faults.New(faults.WeakPassword, "Password must be at least 6 characters")
	}

	hash, err := tools.HashPassword(password, m.cost)
	if err != nil {
		return nil, faults.Store(err)
	}

	user := models.User{
		Name:     t.name,
		Email:    email,
		Password: hash,
		Phone:    phone,
	}
	if err := m.db.Create(&user).Error; err != nil {
		return nil, faults.Store(err)
	}

	delete(m.tickets, key)
	return &user, nil
}

// RedeemPasswordReset consumes a password-reset ticket and replaces the
// account's credential. No session is established by a reset.
func (m *Manager) RedeemPasswordReset(email, code, newPassword string) error {
	email = normalizeEmail(email)
	key := ticketKey{email: email, purpose: PurposePasswordReset}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.check(key, code)
	if err != nil {
		return err
	}
	if tools.CheckPassword(newPassword) != "" {
		return faults.New(faults.WeakPassword, "Password must be at least 6 characters")
	}

	hash, err := tools.HashPassword(newPassword, m.cost)
	if err != nil {
		return faults.Store(err)
	}

	if err := m.db.Model(&models.User{}).Where("id = ?", t.userID).
		Update("password", hash).Error; err != nil {
		return faults.Store(err)
	}

	delete(m.tickets, key)
	return nil
}

// check looks up a live ticket and validates the code. Callers must hold the
// mutex. An expired ticket is discarded as a side effect.
func (m *Manager) check(key ticketKey, code string) (ticket, error) {
	t, ok := m.tickets[key]
	if !ok {
		return ticket{}, faults.New(faults.TicketNotFound, "No verification code pending for this email")
	}
	if m.now().After(t.expiresAt) {
		delete(m.tickets, key)
		return ticket{}, faults.New(faults.TicketExpired, "Verification code expired, request a new one")
	}
	if t.code != code {
		return ticket{}, faults.New(faults.CodeMismatch, "Invalid verification code")
	}
	return t, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
