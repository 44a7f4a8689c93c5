package service

import (
	"fmt"
	"time"

	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// estimatedCostFactor is the fallback cost heuristic applied when a sold
// variant has no recorded buy price: 60% of the selling price.
var estimatedCostFactor = decimal.RequireFromString("0.6")

var hundred = decimal.NewFromInt(100)

type DailySalesReport struct {
	Date        string          `json:"date"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalOrders int             `json:"total_orders"`
	Orders      []model.Order   `json:"orders"`
}

type ProfitLossReport struct {
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	ActualCost          decimal.Decimal `json:"actual_cost"`
	EstimatedCost       decimal.Decimal `json:"estimated_cost"`
	Profit              decimal.Decimal `json:"profit"`
	ProfitMargin        decimal.Decimal `json:"profit_margin"`
	CostDataCoverage    decimal.Decimal `json:"cost_data_coverage"`
	ItemsWithActualCost int             `json:"items_with_actual_cost"`
	TotalItemsSold      int             `json:"total_items_sold"`
}

type FinanceService interface {
	GetDailySales(date string) (*DailySalesReport, error)
	GetProfitLoss(startDate, endDate string) (*ProfitLossReport, error)
}

type financeService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewFinanceService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) FinanceService {
	return &financeService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// GetDailySales sums total_amount over non-returned orders created on the
// given calendar date (UTC). An empty date means today.
func (s *financeService) GetDailySales(date string) (*DailySalesReport, error) {
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	start, end, err := dayBounds(date, date)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindInRangeExcluding(start, end, model.StatusReturned)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.TotalAmount)
	}

	return &DailySalesReport{
		Date:        date,
		TotalSales:  total,
		TotalOrders: len(orders),
		Orders:      orders,
	}, nil
}

// GetProfitLoss estimates profit over [startDate, endDate]. Cost per line
// item is buy_price*qty when the originating variant still exists and has a
// buy price recorded; otherwise the 60%-of-sale heuristic is used and the
// item counts against cost data coverage.
func (s *financeService) GetProfitLoss(startDate, endDate string) (*ProfitLossReport, error) {
	start, end, err := dayBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindInRangeExcluding(start, end, model.StatusReturned)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	actualCost := decimal.Zero
	estimatedCost := decimal.Zero
	itemsWithCost := 0
	totalItems := 0

	for _, order := range orders {
		revenue = revenue.Add(order.TotalAmount)
		for _, item := range order.Items {
			totalItems += item.Quantity
			qty := decimal.NewFromInt(int64(item.Quantity))

			if buyPrice, ok := s.lookupBuyPrice(item); ok {
				actualCost = actualCost.Add(buyPrice.Mul(qty))
				itemsWithCost += item.Quantity
			} else {
				estimatedCost = estimatedCost.Add(item.UnitPrice.Mul(estimatedCostFactor).Mul(qty))
			}
		}
	}

	totalCost := actualCost.Add(estimatedCost)
	profit := revenue.Sub(totalCost)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
	}
	coverage := decimal.Zero
	if totalItems > 0 {
		coverage = decimal.NewFromInt(int64(itemsWithCost)).
			Div(decimal.NewFromInt(int64(totalItems))).
			Mul(hundred)
	}

	return &ProfitLossReport{
		StartDate:           startDate,
		EndDate:             endDate,
		TotalRevenue:        revenue,
		TotalCost:           totalCost,
		ActualCost:          actualCost,
		EstimatedCost:       estimatedCost,
		Profit:              profit,
		ProfitMargin:        margin,
		CostDataCoverage:    coverage,
		ItemsWithActualCost: itemsWithCost,
		TotalItemsSold:      totalItems,
	}, nil
}

// lookupBuyPrice resolves a line item back to its variant's recorded buy
// price. Missing products, dangling variant ids and zero buy prices all
// mean "no cost data".
func (s *financeService) lookupBuyPrice(item model.OrderItem) (decimal.Decimal, bool) {
	productID, err := uuid.Parse(item.ProductID)
	if err != nil {
		return decimal.Zero, false
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return decimal.Zero, false
	}
	for _, variant := range product.Variants {
		if variant.ID == item.VariantID && variant.BuyPrice != nil && !variant.BuyPrice.IsZero() {
			return *variant.BuyPrice, true
		}
	}
	return decimal.Zero, false
}

// dayBounds expands two calendar dates to an inclusive timestamp range,
// 00:00:00 on the first day through 23:59:59 on the last.
func dayBounds(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	endDay, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	end := endDay.Add(24*time.Hour - time.Second)
	return start, end, nil
}
