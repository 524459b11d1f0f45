package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"felizeducation/internal/models"
	"felizeducation/internal/repository"
)

// Days until a new subscription renews.
const renewalPeriodDays = 30

// Trailing window for the active-user KPI.
const activeUserWindow = 7 * 24 * time.Hour

// BillingService owns subscription state, the payment log and the admin
// dashboard aggregates. Payments are mocked: activation always succeeds
// and records a succeeded transaction at the plan's fixed price.
type BillingService struct {
	users        *repository.UserRepository
	sessions     *repository.SessionRepository
	transactions *repository.TransactionRepository
}

// NewBillingService creates a new billing service
func NewBillingService(users *repository.UserRepository, sessions *repository.SessionRepository, transactions *repository.TransactionRepository) *BillingService {
	return &BillingService{
		users:        users,
		sessions:     sessions,
		transactions: transactions,
	}
}

// ActivatePremium upgrades the account to the given plan, unlocks every
// subject and appends exactly one succeeded transaction at the plan price.
// An empty plan defaults to monthly.
func (s *BillingService) ActivatePremium(email string, plan models.SubscriptionPlan) (*models.UserProfile, error) {
	if plan == "" {
		plan = models.PlanMonthly
	}
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}

	rec, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now().UTC()
	renewsAt := now.Add(renewalPeriodDays * 24 * time.Hour)

	rec.Profile.IsPremium = true
	rec.Profile.SubscriptionStatus = models.SubscriptionActive
	rec.Profile.SubscriptionPlan = plan
	rec.Profile.SubscriptionRenewsAt = &renewsAt
	rec.Profile.UnlockedSubjects = models.AllSubjects()

	tx := models.Transaction{
		ID:        uuid.New().String(),
		UserEmail: rec.Profile.Email,
		Amount:    plan.Price(),
		Date:      now,
		Status:    models.TransactionSucceeded,
		Plan:      plan,
	}
	if err := s.transactions.Append(tx); err != nil {
		return nil, err
	}

	return s.persist(rec)
}

// CancelPremium reverts the account to the free tier. Subjects unlocked
// while premium intentionally stay unlocked.
func (s *BillingService) CancelPremium(email string) (*models.UserProfile, error) {
	rec, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}

	rec.Profile.IsPremium = false
	rec.Profile.SubscriptionStatus = models.SubscriptionCanceled
	rec.Profile.SubscriptionPlan = ""
	rec.Profile.SubscriptionRenewsAt = nil

	return s.persist(rec)
}

// AllUsers returns every registered profile.
func (s *BillingService) AllUsers() ([]models.UserProfile, error) {
	return s.users.GetAllProfiles()
}

// Transactions returns the payment log, newest first.
func (s *BillingService) Transactions() ([]models.Transaction, error) {
	return s.transactions.GetAll()
}

// DashboardKPIs computes the admin dashboard aggregates: gross revenue,
// users active in the trailing week and the premium conversion rate.
func (s *BillingService) DashboardKPIs() (*models.KPIReport, error) {
	users, err := s.users.GetAllProfiles()
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.GetAll()
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().Add(-activeUserWindow)
	report := &models.KPIReport{
		TotalRevenue: lo.SumBy(txs, func(t models.Transaction) float64 { return t.Amount }),
		TotalUsers:   len(users),
		ActiveUsers: lo.CountBy(users, func(u models.UserProfile) bool {
			return u.LastLogin.After(weekAgo)
		}),
		ConversionRate: "0%",
	}

	if len(users) > 0 {
		premium := lo.CountBy(users, func(u models.UserProfile) bool { return u.IsPremium })
		report.ConversionRate = fmt.Sprintf("%.1f%%", float64(premium)/float64(len(users))*100)
	}

	return report, nil
}

func (s *BillingService) persist(rec *repository.UserRecord) (*models.UserProfile, error) {
	if err := s.users.Save(rec); err != nil {
		return &rec.Profile, err
	}
	if err := s.sessions.Save(rec.Profile); err != nil {
		return &rec.Profile, err
	}
	return &rec.Profile, nil
}
