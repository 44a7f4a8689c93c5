package service

import (
	"fmt"

	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"
	"go-retail-backoffice/internal/ws"
	"go-retail-backoffice/pkg/logging"
	"go-retail-backoffice/pkg/validator"

	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(req *model.Order) error
	GetOrders() ([]model.Order, error)
	GetOrder(id uuid.UUID) (*model.Order, error)
	UpdateOrder(id uuid.UUID, req *model.Order) (*model.Order, error)
	UpdateOrderStatus(id uuid.UUID, status model.OrderStatus, trackingNumber string) (*model.Order, error)
	DeleteOrder(id uuid.UUID) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		hub:         hub,
	}
}

// CreateOrder assigns the next human-facing order number, deducts stock for
// every line item and persists the order. Numbering is count+1, so it is not
// collision-safe under concurrent creation; fine for a single-operator shop.
func (s *orderService) CreateOrder(req *model.Order) error {
	if err := validator.Check(req); err != nil {
		return err
	}

	count, err := s.orderRepo.Count()
	if err != nil {
		return err
	}
	req.OrderNumber = fmt.Sprintf("ORD-%06d", count+1)

	if req.Status == "" {
		req.Status = model.StatusPending
	}
	if req.CourierCharges.IsZero() {
		req.CourierCharges = model.DefaultCourierCharges
	}

	s.adjustStock(req.Items, -1)

	if err := s.orderRepo.Create(req); err != nil {
		return err
	}

	s.publish("order_created", map[string]interface{}{
		"order_id":     req.ID,
		"order_number": req.OrderNumber,
		"customer":     req.CustomerName,
		"total_amount": req.TotalAmount,
	})
	return nil
}

func (s *orderService) GetOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	return s.orderRepo.FindByID(id)
}

// UpdateOrder replaces every field of an existing order. It deliberately
// does NOT re-run stock adjustment: editing quantities through a full update
// desynchronizes stock from reality. Known limitation of the edit flow.
func (s *orderService) UpdateOrder(id uuid.UUID, req *model.Order) (*model.Order, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	if req.OrderNumber == "" {
		req.OrderNumber = existing.OrderNumber
	}
	if req.Status == "" {
		req.Status = existing.Status
	}

	if err := s.orderRepo.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateOrderStatus transitions the order and, exactly once, restores stock
// when the order enters the returned state. Transitions away from returned
// do not re-deduct. An empty tracking number never clears a stored one.
func (s *orderService) UpdateOrderStatus(id uuid.UUID, status model.OrderStatus, trackingNumber string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if status == model.StatusReturned && order.Status != model.StatusReturned {
		s.adjustStock(order.Items, +1)
	}

	previous := order.Status
	order.Status = status
	if trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}

	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}

	s.publish("order_status_changed", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"from":         previous,
		"to":           status,
	})
	return order, nil
}

// DeleteOrder removes the order and puts its stock back, unless the order
// was already returned (its stock was restored at return time).
func (s *orderService) DeleteOrder(id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return err
	}

	if order.Status != model.StatusReturned {
		s.adjustStock(order.Items, +1)
	}

	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}

	s.publish("order_deleted", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
	return nil
}

// adjustStock applies sign*quantity to the matching variant of each line
// item's product. Missing products, unparsable ids and dangling variant ids
// are skipped silently; this is a lenient bulk operation by contract.
// Stock may go negative when an order overdraws.
func (s *orderService) adjustStock(items []model.OrderItem, sign int) {
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			continue
		}
		product, err := s.productRepo.FindByID(productID)
		if err != nil {
			continue
		}

		touched := false
		for i := range product.Variants {
			if product.Variants[i].ID == item.VariantID {
				product.Variants[i].StockQuantity += sign * item.Quantity
				touched = true
				break
			}
		}
		if !touched {
			continue
		}

		if err := s.productRepo.Save(product); err != nil {
			logging.LogError(logging.GetLogger(), "service", "adjustStock", "save product", product.ID, err)
		}
	}
}

func (s *orderService) publish(event string, payload map[string]interface{}) {
	if s.hub == nil {
		return
	}
	go s.hub.Publish(event, payload)
}
