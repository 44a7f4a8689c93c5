package service

import (
	"time"

	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"
)

const (
	recentOrdersLimit = 10
	lowStockPreview   = 5
)

type OrderStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	OnCourier int64 `json:"on_courier"`
	Delivered int64 `json:"delivered"`
}

type DashboardSummary struct {
	DailySales    *DailySalesReport    `json:"daily_sales"`
	LowStockCount int                  `json:"low_stock_count"`
	LowStockItems []model.LowStockItem `json:"low_stock_items"`
	RecentOrders  []model.Order        `json:"recent_orders"`
	OrderStats    OrderStats           `json:"order_stats"`
}

type DashboardService interface {
	GetDashboard() (*DashboardSummary, error)
}

type dashboardService struct {
	orderRepo  repository.OrderRepository
	financeSvc FinanceService
	catalogSvc CatalogService
}

func NewDashboardService(orderRepo repository.OrderRepository, financeSvc FinanceService, catalogSvc CatalogService) DashboardService {
	return &dashboardService{
		orderRepo:  orderRepo,
		financeSvc: financeSvc,
		catalogSvc: catalogSvc,
	}
}

// GetDashboard aggregates today's sales, low-stock variants (first five
// shown), the ten most recent orders, and order counts by status.
func (s *dashboardService) GetDashboard() (*DashboardSummary, error) {
	today := time.Now().UTC().Format(dateLayout)
	dailySales, err := s.financeSvc.GetDailySales(today)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.catalogSvc.GetLowStockItems()
	if err != nil {
		return nil, err
	}
	preview := lowStock
	if len(preview) > lowStockPreview {
		preview = preview[:lowStockPreview]
	}

	recent, err := s.orderRepo.FindRecent(recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	var stats OrderStats
	if stats.Total, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Pending, err = s.orderRepo.CountByStatus(model.StatusPending); err != nil {
		return nil, err
	}
	if stats.OnCourier, err = s.orderRepo.CountByStatus(model.StatusOnCourier); err != nil {
		return nil, err
	}
	if stats.Delivered, err = s.orderRepo.CountByStatus(model.StatusDelivered); err != nil {
		return nil, err
	}

	return &DashboardSummary{
		DailySales:    dailySales,
		LowStockCount: len(lowStock),
		LowStockItems: preview,
		RecentOrders:  recent,
		OrderStats:    stats,
	}, nil
}
