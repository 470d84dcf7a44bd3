package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/kafka"
)

// fakeTransactionRepository is an in-memory TransactionRepository whose
// conditional updates hold a mutex, mirroring the single-winner semantics of
// the SQL conditional UPDATE.
type fakeTransactionRepository struct {
	mu           sync.Mutex
	transactions map[string]*domain.Transaction // keyed by gateway order id
	createErr    error
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[string]*domain.Transaction)}
}

func (f *fakeTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *tx
	f.transactions[tx.GatewayOrderID] = &cp
	return nil
}

func (f *fakeTransactionRepository) GetTransactionByID(id string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tx := range f.transactions {
		if tx.ID == id {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) GetTransactionByGatewayOrderID(gatewayOrderID string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.transactions[gatewayOrderID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeTransactionRepository) MarkPaid(gatewayOrderID string, paidAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.transactions[gatewayOrderID]
	if !ok || tx.Status != domain.StatusCreated {
		return false, nil
	}
	tx.Status = domain.StatusPaid
	tx.PaidAt = &paidAt
	tx.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeTransactionRepository) MarkFailed(gatewayOrderID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.transactions[gatewayOrderID]
	if !ok || tx.Status != domain.StatusCreated {
		return false, nil
	}
	tx.Status = domain.StatusFailed
	tx.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeTransactionRepository) GetTransactions(filters domain.TransactionFilters, page, limit int64) ([]*domain.Transaction, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Transaction
	for _, tx := range f.transactions {
		cp := *tx
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTransactionRepository) GetTransactionStats(dateFrom, dateTo time.Time) (*domain.TransactionStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &domain.TransactionStats{}
	for _, tx := range f.transactions {
		switch tx.Status {
		case domain.StatusCreated:
			stats.CreatedCount++
			stats.CreatedAmount += tx.AmountMinor
		case domain.StatusPaid:
			stats.PaidCount++
			stats.PaidAmount += tx.AmountMinor
		case domain.StatusFailed:
			stats.FailedCount++
			stats.FailedAmount += tx.AmountMinor
		}
	}
	return stats, nil
}

type fakeGateway struct {
	mu       sync.Mutex
	orderIDs []string
	nextID   string
	err      error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	if id == "" {
		id = "order_fake"
	}
	f.orderIDs = append(f.orderIDs, id)
	return id, nil
}

type fakeReceiptRepository struct {
	mu       sync.Mutex
	receipts map[string]*domain.Receipt // keyed by transaction id
}

func newFakeReceiptRepository() *fakeReceiptRepository {
	return &fakeReceiptRepository{receipts: make(map[string]*domain.Receipt)}
}

func (f *fakeReceiptRepository) CreateReceipt(receipt *domain.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.receipts[receipt.TransactionID]; ok {
		return domain.ErrReceiptExists
	}
	cp := *receipt
	f.receipts[receipt.TransactionID] = &cp
	return nil
}

func (f *fakeReceiptRepository) GetReceiptByTransactionID(transactionID string) (*domain.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	receipt, ok := f.receipts[transactionID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *receipt
	return &cp, nil
}

func (f *fakeReceiptRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.receipts)
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (f *fakeMailer) SendAsync(to, subject, htmlBody string) {
	f.Send(to, subject, htmlBody)
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeWebhookEventLogger struct {
	mu     sync.Mutex
	events []*domain.FailedWebhookEvent
}

func (f *fakeWebhookEventLogger) LogFailedEvent(event *domain.FailedWebhookEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeWebhookEventLogger) loggedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.PaymentEvent
	err    error
}

func (f *fakePublisher) PublishPaymentEvent(event kafka.PaymentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) publishedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// fakeReceiptUsecase records issuance requests without touching storage.
type fakeReceiptUsecase struct {
	mu     sync.Mutex
	issued []string
	err    error
}

func (f *fakeReceiptUsecase) IssueReceipt(tx *domain.Transaction) (*domain.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.issued = append(f.issued, tx.ID)
	return &domain.Receipt{TransactionID: tx.ID}, nil
}

func (f *fakeReceiptUsecase) GetReceiptByTransactionID(transactionID string) (*domain.Receipt, error) {
	return nil, domain.ErrTransactionNotFound
}

func (f *fakeReceiptUsecase) issuedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.issued)
}
