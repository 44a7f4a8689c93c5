package service

import (
	"fmt"
	"strings"

	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"

	"github.com/google/uuid"
)

const pageBreak = `<div style="page-break-after: always;"></div>`

type LabelService interface {
	RenderLabel(orderID uuid.UUID) (string, error)
	RenderBulkLabels(orderIDs []string) (string, error)
}

type labelService struct {
	orderRepo   repository.OrderRepository
	settingsSvc SettingsService
}

func NewLabelService(orderRepo repository.OrderRepository, settingsSvc SettingsService) LabelService {
	return &labelService{
		orderRepo:   orderRepo,
		settingsSvc: settingsSvc,
	}
}

func (s *labelService) RenderLabel(orderID uuid.UUID) (string, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return "", err
	}
	settings, err := s.settingsSvc.GetSettings()
	if err != nil {
		return "", err
	}
	return renderLabel(settings, order), nil
}

// RenderBulkLabels renders one label per resolvable order id, separated by
// page breaks. Unknown or malformed ids are skipped; best-effort by contract.
func (s *labelService) RenderBulkLabels(orderIDs []string) (string, error) {
	settings, err := s.settingsSvc.GetSettings()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, raw := range orderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		order, err := s.orderRepo.FindByID(id)
		if err != nil {
			continue
		}
		sb.WriteString(renderLabel(settings, order))
		sb.WriteString(pageBreak)
	}
	return sb.String(), nil
}

// renderLabel fills the stored template by literal token substitution.
// Every token the template may carry is covered, so unresolved markers never
// leak into the output; missing order/tracking numbers render as "TBD".
func renderLabel(settings *model.BusinessSettings, order *model.Order) string {
	var items strings.Builder
	items.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&items, "<li>%s (%s, %s) x%d</li>", item.ProductName, item.Size, item.Color, item.Quantity)
	}
	items.WriteString("</ul>")

	replacer := strings.NewReplacer(
		"{{business_name}}", settings.BusinessName,
		"{{business_address}}", settings.Address,
		"{{business_phone}}", settings.Phone,
		"{{customer_name}}", order.CustomerName,
		"{{customer_address}}", order.CustomerAddress,
		"{{customer_phone}}", order.CustomerPhone,
		"{{order_number}}", orDefault(order.OrderNumber, "TBD"),
		"{{tracking_number}}", orDefault(order.TrackingNumber, "TBD"),
		"{{order_date}}", order.CreatedAt.Format(dateLayout),
		"{{order_items}}", items.String(),
		"{{total_amount}}", order.TotalAmount.StringFixed(2),
	)
	return replacer.Replace(settings.ShippingLabelTemplate)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
