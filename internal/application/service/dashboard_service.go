package service

import (
	"context"
	"time"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
)

// DashboardService aggregates store activity for the overview screen
type DashboardService struct {
	txnRepo     repository.TransactionRepository
	productRepo repository.ProductRepository
	dueRepo     repository.DueRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	txnRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	dueRepo repository.DueRepository,
) *DashboardService {
	return &DashboardService{
		txnRepo:     txnRepo,
		productRepo: productRepo,
		dueRepo:     dueRepo,
	}
}

// DashboardStats is the overview payload
type DashboardStats struct {
	TodaySales      float64            `json:"today_sales"`
	WeekSales       float64            `json:"week_sales"`
	MonthSales      float64            `json:"month_sales"`
	MonthExpenses   float64            `json:"month_expenses"`
	ProductCount    int64              `json:"product_count"`
	OutstandingDues float64            `json:"outstanding_dues"`
	DuesRecords     int64              `json:"dues_records"`
	DailySales      map[string]float64 `json:"daily_sales"`
	SalesByCategory map[string]float64 `json:"sales_by_category"`
}

// GetStats builds the dashboard summary for the trailing month
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := startOfDay.AddDate(0, 0, -6)
	monthAgo := startOfDay.AddDate(0, -1, 0)

	todaySales, err := s.txnRepo.SumByTypeSince(ctx, enum.TransactionTypeSale, startOfDay)
	if err != nil {
		return nil, err
	}

	weekSales, err := s.txnRepo.SumByTypeSince(ctx, enum.TransactionTypeSale, weekAgo)
	if err != nil {
		return nil, err
	}

	monthSales, err := s.txnRepo.SumByTypeSince(ctx, enum.TransactionTypeSale, monthAgo)
	if err != nil {
		return nil, err
	}

	monthExpenses, err := s.txnRepo.SumByTypeSince(ctx, enum.TransactionTypeExpense, monthAgo)
	if err != nil {
		return nil, err
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	dueStats, err := s.dueRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	daily, err := s.txnRepo.DailySalesTotals(ctx, weekAgo)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.txnRepo.CategorySalesTotals(ctx, monthAgo)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TodaySales:      float64(todaySales) / 100,
		WeekSales:       float64(weekSales) / 100,
		MonthSales:      float64(monthSales) / 100,
		MonthExpenses:   float64(monthExpenses) / 100,
		ProductCount:    productCount,
		OutstandingDues: float64(dueStats.PendingAmount+dueStats.PartialAmount) / 100,
		DuesRecords:     dueStats.TotalRecords,
		DailySales:      make(map[string]float64, len(daily)),
		SalesByCategory: make(map[string]float64, len(byCategory)),
	}
	for day, total := range daily {
		stats.DailySales[day] = float64(total) / 100
	}
	for category, total := range byCategory {
		stats.SalesByCategory[category] = float64(total) / 100
	}
	return stats, nil
}
