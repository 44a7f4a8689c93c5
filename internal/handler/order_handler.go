package handler

import (
	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service   service.OrderService
	labelSvc  service.LabelService
	exportSvc service.ExportService
}

func NewOrderHandler(s service.OrderService, labelSvc service.LabelService, exportSvc service.ExportService) *OrderHandler {
	return &OrderHandler{
		service:   s,
		labelSvc:  labelSvc,
		exportSvc: exportSvc,
	}
}

type statusUpdateRequest struct {
	Status         model.OrderStatus `json:"status"`
	TrackingNumber string            `json:"tracking_number"`
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateOrder(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(order)
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return lookupError(c, err, "Order")
	}
	return c.JSON(order)
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateOrder(id, &order)
	if err != nil {
		return serviceError(c, err, "Order")
	}
	return c.JSON(updated)
}

// UpdateOrderStatus accepts the target status and optional tracking number
// as JSON body or query parameters.
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req statusUpdateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
	}
	if req.Status == "" {
		req.Status = model.OrderStatus(c.Query("status"))
	}
	if req.TrackingNumber == "" {
		req.TrackingNumber = c.Query("tracking_number")
	}

	switch req.Status {
	case model.StatusPending, model.StatusOnCourier, model.StatusDelivered, model.StatusReturned:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	order, err := h.service.UpdateOrderStatus(id, req.Status, req.TrackingNumber)
	if err != nil {
		return lookupError(c, err, "Order")
	}
	return c.JSON(fiber.Map{"message": "Order status updated successfully", "data": order})
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := h.service.DeleteOrder(id); err != nil {
		return lookupError(c, err, "Order")
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}

func (h *OrderHandler) GetShippingLabel(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	label, err := h.labelSvc.RenderLabel(id)
	if err != nil {
		return lookupError(c, err, "Order")
	}
	c.Type("html")
	return c.SendString(label)
}

func (h *OrderHandler) GetBulkShippingLabels(c *fiber.Ctx) error {
	var orderIDs []string
	if err := c.BodyParser(&orderIDs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	labels, err := h.labelSvc.RenderBulkLabels(orderIDs)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	c.Type("html")
	return c.SendString(labels)
}

func (h *OrderHandler) ExportOrdersCSV(c *fiber.Ctx) error {
	var orderIDs []string
	if err := c.BodyParser(&orderIDs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	data, err := h.exportSvc.ExportOrdersCSV(orderIDs)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Export failed: " + err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=orders_export.csv`)
	return c.Send(data)
}
