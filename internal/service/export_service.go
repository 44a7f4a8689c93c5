package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"

	"github.com/google/uuid"
)

// csvHeader matches the courier's bulk import format: ten fixed columns.
var csvHeader = []string{
	"Waybill Number", "Order Number", "Customer Name", "Address",
	"Order Description", "Customer First Phone No", "Customer Second Phone No",
	"COD Amount", "City", "Remarks",
}

type ExportService interface {
	ExportOrdersCSV(orderIDs []string) ([]byte, error)
}

type exportService struct {
	orderRepo repository.OrderRepository
}

func NewExportService(orderRepo repository.OrderRepository) ExportService {
	return &exportService{orderRepo: orderRepo}
}

// ExportOrdersCSV writes a header row plus one row per resolvable order id,
// preserving the order of the ids supplied. Unknown ids are skipped.
func (s *exportService) ExportOrdersCSV(orderIDs []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, raw := range orderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		order, err := s.orderRepo.FindByID(id)
		if err != nil {
			continue
		}
		if err := writer.Write(orderCSVRow(order)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orderCSVRow(order *model.Order) []string {
	descriptions := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		descriptions = append(descriptions, fmt.Sprintf("%s (%s, %s) x%d", item.ProductName, item.Size, item.Color, item.Quantity))
	}

	cod := order.TotalAmount
	if order.CODAmount != nil && !order.CODAmount.IsZero() {
		cod = *order.CODAmount
	}

	return []string{
		order.TrackingNumber,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerAddress,
		strings.Join(descriptions, "; "),
		order.CustomerPhone,
		order.CustomerPhone2,
		cod.StringFixed(2),
		extractCity(order),
		order.Remarks,
	}
}

// extractCity takes the second-to-last comma-separated segment of the
// address ("12 Main St, Colombo, 00100" -> "Colombo"), falling back to the
// city captured on the order.
func extractCity(order *model.Order) string {
	parts := strings.Split(order.CustomerAddress, ", ")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return order.CustomerCity
}
