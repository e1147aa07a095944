package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSeedMonths = 3
	maxSeedMonths     = 12
	businessHourStart = 8
	businessHourEnd   = 22
)

// merchant is a demo counterparty with a plausible amount range
type merchant struct {
	name     string
	min, max float64
}

var seedCategories = []string{
	"Comida", "Supermercado", "Transporte", "Entretenimiento",
	"Servicios", "Salud", "Compras", "Viajes", "Ingresos",
}

// DemoSeeder fills a user's ledger with realistic demo data. Every posting
// goes through the ledger services so the balance invariants hold.
type DemoSeeder struct {
	accounts     AccountServiceInterface
	categories   CategoryServiceInterface
	ledger       LedgerServiceInterface
	installments InstallmentServiceInterface
	tracker      InstallmentTrackerInterface
	logger       *slog.Logger

	cardMerchants  []merchant
	debitMerchants []merchant
}

// NewDemoSeeder creates a new demo data seeder
func NewDemoSeeder(
	accounts AccountServiceInterface,
	categories CategoryServiceInterface,
	ledger LedgerServiceInterface,
	installments InstallmentServiceInterface,
	tracker InstallmentTrackerInterface,
	logger *slog.Logger,
) *DemoSeeder {
	return &DemoSeeder{
		accounts:       accounts,
		categories:     categories,
		ledger:         ledger,
		installments:   installments,
		tracker:        tracker,
		logger:         logger,
		cardMerchants:  initCardMerchants(),
		debitMerchants: initBillMerchants(),
	}
}

func initCardMerchants() []merchant {
	return []merchant{
		{"Starbucks", 65, 180},
		{"Uber Eats", 150, 450},
		{"Tacos El Califa", 120, 380},
		{"Walmart Supercenter", 300, 2200},
		{"Soriana", 250, 1800},
		{"Costco", 800, 4500},
		{"Uber", 60, 320},
		{"Pemex", 500, 1200},
		{"Netflix", 219, 299},
		{"Spotify", 129, 129},
		{"Cinepolis", 180, 520},
		{"Farmacia Guadalajara", 90, 900},
		{"Amazon", 250, 3500},
		{"Liverpool", 600, 4000},
		{"Volaris", 1800, 6500},
	}
}

func initBillMerchants() []merchant {
	return []merchant{
		{"CFE", 350, 1400},
		{"Telmex", 389, 599},
		{"Telcel", 200, 500},
	}
}

// seedRun carries the state of one SeedUser call
type seedRun struct {
	faker       *gofakeit.Faker
	userID      uuid.UUID
	result      *dto.SeedResult
	categories  map[string]uuid.UUID
	suggestions map[string]*uuid.UUID
}

// SeedUser creates categories, a cash wallet, a payroll debit account and a
// credit card, then posts months of income, bills, card spending, card
// payments and MSI purchases up to the day before req.Today.
func (s *DemoSeeder) SeedUser(ctx context.Context, req dto.SeedRequest) (*dto.SeedResult, error) {
	if req.UserID == uuid.Nil {
		return nil, validationError("user id is required")
	}
	months := req.Months
	if months <= 0 {
		months = defaultSeedMonths
	}
	if months > maxSeedMonths {
		return nil, validationError("months must be at most %d", maxSeedMonths)
	}
	today := req.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	run := &seedRun{
		faker:       gofakeit.New(req.Seed),
		userID:      req.UserID,
		result:      &dto.SeedResult{UserID: req.UserID},
		categories:  make(map[string]uuid.UUID),
		suggestions: make(map[string]*uuid.UUID),
	}

	if err := s.seedCategories(ctx, run); err != nil {
		return nil, err
	}

	debit, cash, card, err := s.seedAccounts(ctx, run)
	if err != nil {
		return nil, err
	}

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, -months, 0)
	for month := start; month.Before(today); month = month.AddDate(0, 1, 0) {
		if err := s.seedMonth(ctx, run, month, today, debit, cash, card); err != nil {
			return nil, err
		}
	}

	if err := s.seedInstallments(ctx, run, card, start, today); err != nil {
		return nil, err
	}

	tracked, err := s.tracker.ProcessInstallmentPurchases(ctx, req.UserID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile installments: %w", err)
	}
	run.result.InstallmentCharges = tracked.ChargesCreated

	s.logger.Info("demo data seeded",
		"user_id", req.UserID,
		"months", months,
		"transactions", run.result.Transactions,
		"skipped", run.result.Skipped,
		"installments", run.result.Installments,
	)
	return run.result, nil
}

func (s *DemoSeeder) seedCategories(ctx context.Context, run *seedRun) error {
	for _, name := range seedCategories {
		_, err := s.categories.CreateCategory(ctx, run.userID, &dto.CreateCategoryRequest{
			Name:  name,
			Color: run.faker.HexColor(),
		})
		if err != nil && !errors.Is(err, ErrDuplicateCategory) {
			return fmt.Errorf("failed to create category %s: %w", name, err)
		}
		if err == nil {
			run.result.Categories++
		}
	}

	existing, err := s.categories.ListCategories(ctx, run.userID)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range existing {
		run.categories[c.Name] = c.ID
	}
	return nil
}

func (s *DemoSeeder) seedAccounts(ctx context.Context, run *seedRun) (debit, cash, card *models.Account, err error) {
	f := run.faker
	cutoff := f.IntRange(1, 28)
	payment := (cutoff+19)%28 + 1

	requests := []*dto.CreateAccountRequest{
		{
			Name:        "Nómina " + f.Company(),
			AccountType: models.AccountTypeDebit,
			Balance:     roundMoney(f.Float64Range(15000, 40000)),
		},
		{
			Name:        "Efectivo",
			AccountType: models.AccountTypeCash,
			Balance:     roundMoney(f.Float64Range(300, 2500)),
		},
		{
			Name:        f.RandomString([]string{"Oro", "Platino", "Clásica", "Black"}) + " " + f.Company(),
			AccountType: models.AccountTypeCredit,
			CreditLimit: decimal.NewFromInt(int64(f.IntRange(3, 12)) * 10000),
			CutoffDay:   cutoff,
			PaymentDay:  payment,
		},
	}

	created := make([]*models.Account, 0, len(requests))
	for _, req := range requests {
		account, err := s.accounts.CreateAccount(ctx, run.userID, req)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create account %s: %w", req.Name, err)
		}
		created = append(created, account)
		run.result.Accounts++
	}
	return created[0], created[1], created[2], nil
}

func (s *DemoSeeder) seedMonth(ctx context.Context, run *seedRun, month, today time.Time, debit, cash, card *models.Account) error {
	f := run.faker
	salary := roundMoney(f.Float64Range(12000, 22000))

	for _, day := range []int{1, 15} {
		if err := s.post(ctx, run, today, &dto.TransactionRequest{
			Amount:          salary,
			Description:     "Depósito nómina",
			TransactionType: models.TransactionTypeIncome,
			AccountID:       debit.ID,
		}, dayIn(month, day, 9)); err != nil {
			return err
		}
	}

	for _, bill := range s.debitMerchants {
		if err := s.post(ctx, run, today, &dto.TransactionRequest{
			Amount:          run.amount(bill),
			Description:     "Pago " + bill.name,
			TransactionType: models.TransactionTypeExpense,
			AccountID:       debit.ID,
		}, dayIn(month, f.IntRange(2, 10), 14)); err != nil {
			return err
		}
	}

	if err := s.post(ctx, run, today, &dto.TransactionRequest{
		Amount:               decimal.NewFromInt(int64(f.IntRange(5, 30)) * 100),
		Description:          "Retiro cajero",
		TransactionType:      models.TransactionTypeTransfer,
		AccountID:            debit.ID,
		DestinationAccountID: &cash.ID,
	}, dayIn(month, f.IntRange(3, 25), 18)); err != nil {
		return err
	}

	cardSpend := decimal.Zero
	for i := f.IntRange(8, 16); i > 0; i-- {
		m := s.cardMerchants[f.IntRange(0, len(s.cardMerchants)-1)]
		amount := run.amount(m)
		posted, err := s.postCounted(ctx, run, today, &dto.TransactionRequest{
			Amount:          amount,
			Description:     m.name,
			TransactionType: models.TransactionTypeExpense,
			AccountID:       card.ID,
		}, run.timestamp(month))
		if err != nil {
			return err
		}
		if posted {
			cardSpend = cardSpend.Add(amount)
		}
	}

	for i := f.IntRange(2, 5); i > 0; i-- {
		m := s.cardMerchants[f.IntRange(0, 2)]
		if err := s.post(ctx, run, today, &dto.TransactionRequest{
			Amount:          run.amount(m),
			Description:     m.name,
			TransactionType: models.TransactionTypeExpense,
			AccountID:       cash.ID,
		}, run.timestamp(month)); err != nil {
			return err
		}
	}

	if cardSpend.IsPositive() {
		paid := cardSpend.Mul(decimal.NewFromFloat(f.Float64Range(0.5, 1))).Round(2)
		return s.post(ctx, run, today, &dto.TransactionRequest{
			Amount:               paid,
			Description:          "Pago tarjeta " + card.Name,
			TransactionType:      models.TransactionTypeTransfer,
			AccountID:            debit.ID,
			DestinationAccountID: &card.ID,
		}, dayIn(month, 28, 20))
	}
	return nil
}

func (s *DemoSeeder) seedInstallments(ctx context.Context, run *seedRun, card *models.Account, start, today time.Time) error {
	f := run.faker
	for i := f.IntRange(1, 2); i > 0; i-- {
		purchaseDate := f.DateRange(start, today.AddDate(0, 0, -1))
		purchaseDate = dayIn(purchaseDate, purchaseDate.Day(), 13)

		req := &dto.CreateInstallmentRequest{
			AccountID:    card.ID,
			CategoryID:   run.category("Compras"),
			Description:  f.ProductName(),
			TotalAmount:  decimal.NewFromInt(int64(f.IntRange(30, 240)) * 100),
			Installments: []int{3, 6, 9, 12}[f.IntRange(0, 3)],
			PurchaseDate: purchaseDate,
		}
		if _, err := s.installments.CreateInstallmentPurchase(ctx, run.userID, req); err != nil {
			if errors.Is(err, ErrValidation) {
				run.result.Skipped++
				continue
			}
			return fmt.Errorf("failed to create installment purchase: %w", err)
		}
		run.result.Installments++
	}
	return nil
}

func (s *DemoSeeder) post(ctx context.Context, run *seedRun, today time.Time, req *dto.TransactionRequest, date time.Time) error {
	_, err := s.postCounted(ctx, run, today, req, date)
	return err
}

// postCounted posts req dated at date. Postings the ledger rejects for lack of
// funds are skipped, as are dates on or after today.
func (s *DemoSeeder) postCounted(ctx context.Context, run *seedRun, today time.Time, req *dto.TransactionRequest, date time.Time) (bool, error) {
	if !date.Before(today) {
		return false, nil
	}
	req.Date = &date

	if req.TransactionType != models.TransactionTypeTransfer {
		categoryID, err := s.categoryFor(ctx, run, req.Description)
		if err != nil {
			return false, err
		}
		req.CategoryID = categoryID
	}

	if _, err := s.ledger.Post(ctx, run.userID, req); err != nil {
		if errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrOverpaymentRejected) {
			run.result.Skipped++
			return false, nil
		}
		return false, fmt.Errorf("failed to post %s: %w", req.Description, err)
	}
	run.result.Transactions++
	return true, nil
}

func (s *DemoSeeder) categoryFor(ctx context.Context, run *seedRun, description string) (*uuid.UUID, error) {
	if id, ok := run.suggestions[description]; ok {
		return id, nil
	}

	suggestion, err := s.categories.SuggestCategory(ctx, run.userID, description)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest category: %w", err)
	}
	run.suggestions[description] = suggestion.CategoryID
	return suggestion.CategoryID, nil
}

func (r *seedRun) category(name string) *uuid.UUID {
	id, ok := r.categories[name]
	if !ok {
		return nil
	}
	return &id
}

func (r *seedRun) amount(m merchant) decimal.Decimal {
	if m.min == m.max {
		return decimal.NewFromFloat(m.min).Round(2)
	}
	return roundMoney(r.faker.Float64Range(m.min, m.max))
}

// timestamp returns a random business-hours instant within month
func (r *seedRun) timestamp(month time.Time) time.Time {
	last := month.AddDate(0, 1, -1).Day()
	return time.Date(month.Year(), month.Month(), r.faker.IntRange(1, last),
		r.faker.IntRange(businessHourStart, businessHourEnd-1), r.faker.IntRange(0, 59), 0, 0, month.Location())
}

func dayIn(month time.Time, day, hour int) time.Time {
	return time.Date(month.Year(), month.Month(), day, hour, 0, 0, 0, month.Location())
}

func roundMoney(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
