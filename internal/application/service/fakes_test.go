package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		if params.OnlineOnly && !p.IsOnline {
			continue
		}
		if params.Category != nil && p.Category != *params.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeTransactionRepo struct {
	txns map[uuid.UUID]*entity.Transaction
	dues map[uuid.UUID]*entity.Due
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		txns: make(map[uuid.UUID]*entity.Transaction),
		dues: make(map[uuid.UUID]*entity.Due),
	}
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	f.txns[t.ID] = t
	return nil
}

func (f *fakeTransactionRepo) CreateSale(ctx context.Context, t *entity.Transaction, due *entity.Due) error {
	if err := f.Create(ctx, t); err != nil {
		return err
	}
	if due != nil {
		if due.ID == uuid.Nil {
			due.ID = uuid.New()
		}
		due.TransactionID = t.ID
		f.dues[due.ID] = due
	}
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := f.txns[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	f.txns[t.ID] = t
	return nil
}

func (f *fakeTransactionRepo) ListRecent(_ context.Context, txnType *enum.TransactionType, limit int) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, t := range f.txns {
		if txnType != nil && t.Type != *txnType {
			continue
		}
		out = append(out, *t)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTransactionRepo) SumByTypeSince(_ context.Context, txnType enum.TransactionType, since time.Time) (int64, error) {
	var sum int64
	for _, t := range f.txns {
		if t.Type == txnType && !t.CreatedAt.Before(since) {
			sum += t.Amount
		}
	}
	return sum, nil
}

func (f *fakeTransactionRepo) DailySalesTotals(_ context.Context, since time.Time) (map[string]int64, error) {
	totals := make(map[string]int64)
	for _, t := range f.txns {
		if t.Type == enum.TransactionTypeSale && !t.CreatedAt.Before(since) {
			totals[t.CreatedAt.Format("2006-01-02")] += t.Amount
		}
	}
	return totals, nil
}

func (f *fakeTransactionRepo) CategorySalesTotals(_ context.Context, since time.Time) (map[string]int64, error) {
	totals := make(map[string]int64)
	for _, t := range f.txns {
		if t.Type == enum.TransactionTypeSale && !t.CreatedAt.Before(since) && t.ProductCategory != "" {
			totals[string(t.ProductCategory)] += t.Amount
		}
	}
	return totals, nil
}

type fakeDueRepo struct {
	dues     map[uuid.UUID]*entity.Due
	txns     *fakeTransactionRepo
	payments []entity.DuePayment
}

func newFakeDueRepo(txns *fakeTransactionRepo) *fakeDueRepo {
	return &fakeDueRepo{dues: make(map[uuid.UUID]*entity.Due), txns: txns}
}

func (f *fakeDueRepo) add(due *entity.Due) {
	if due.ID == uuid.Nil {
		due.ID = uuid.New()
	}
	f.dues[due.ID] = due
}

func (f *fakeDueRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Due, error) {
	d, ok := f.dues[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (f *fakeDueRepo) Update(_ context.Context, d *entity.Due) error {
	f.dues[d.ID] = d
	return nil
}

func (f *fakeDueRepo) Collect(_ context.Context, due *entity.Due, txn *entity.Transaction, payment *entity.DuePayment) error {
	f.dues[due.ID] = due
	if f.txns != nil {
		f.txns.txns[txn.ID] = txn
	}
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakeDueRepo) List(_ context.Context, params *repository.DueFilterParams) ([]entity.Due, int64, error) {
	var out []entity.Due
	for _, d := range f.dues {
		if params.Status != nil && d.Status != *params.Status {
			continue
		}
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDueRepo) ListOverdue(_ context.Context, _ *repository.DueFilterParams) ([]entity.Due, int64, error) {
	now := time.Now()
	var out []entity.Due
	for _, d := range f.dues {
		if d.IsOverdue(now) {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDueRepo) Statistics(_ context.Context) (*repository.DueStatistics, error) {
	stats := &repository.DueStatistics{
		ByStatus: make(map[enum.DuesStatus]repository.DueStatusBucket),
	}
	for _, d := range f.dues {
		stats.TotalRecords++
		stats.TotalAmount += d.Amount
		stats.CollectedAmount += d.AmountCollected
		outstanding := d.Remaining()
		switch d.Status {
		case enum.DuesStatusPending:
			stats.PendingAmount += outstanding
		case enum.DuesStatusPartial:
			stats.PartialAmount += outstanding
		}
		bucket := stats.ByStatus[d.Status]
		bucket.Count++
		bucket.Amount += outstanding
		stats.ByStatus[d.Status] = bucket
	}
	return stats, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByStaffID(_ context.Context, staffID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.StaffID != nil && *u.StaffID == staffID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeImageDestroyer struct {
	destroyed []string
}

func (f *fakeImageDestroyer) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}
