package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"go-retail-backoffice/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedExportOrder(t *testing.T, repo *fakeOrderRepo, orderNumber, address string, cod *decimal.Decimal) *model.Order {
	t.Helper()
	order := &model.Order{
		OrderNumber:     orderNumber,
		CustomerName:    "Amara de Silva",
		CustomerAddress: address,
		CustomerPhone:   "0761239876",
		CustomerPhone2:  "0112223344",
		CustomerCity:    "Negombo",
		Items: []model.OrderItem{
			{
				ProductID:   uuid.NewString(),
				VariantID:   uuid.NewString(),
				ProductName: "Maxi Dress",
				Size:        "M",
				Color:       "Red",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(5500),
				TotalPrice:  decimal.NewFromInt(5500),
			},
			{
				ProductID:   uuid.NewString(),
				VariantID:   uuid.NewString(),
				ProductName: "Scarf",
				Size:        "S",
				Color:       "Gold",
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(800),
				TotalPrice:  decimal.NewFromInt(1600),
			},
		},
		TotalAmount:    decimal.NewFromInt(7450),
		TrackingNumber: "WB-555",
		CODAmount:      cod,
		Remarks:        "Call before delivery",
		Status:         model.StatusPending,
	}
	require.NoError(t, repo.Create(order))
	return order
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportOrdersCSV_HeaderAndRows(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewExportService(orderRepo)

	first := seedExportOrder(t, orderRepo, "ORD-000001", "10 Beach Road, Mount Lavinia, 10370", nil)
	second := seedExportOrder(t, orderRepo, "ORD-000002", "22 Hill Street, Kandy, 20000", nil)

	data, err := svc.ExportOrdersCSV([]string{first.ID.String(), second.ID.String()})
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 3)
	for _, record := range records {
		assert.Len(t, record, 10)
	}

	assert.Equal(t, csvHeader, records[0])
	// Rows follow the order of the supplied ids.
	assert.Equal(t, "ORD-000001", records[1][1])
	assert.Equal(t, "ORD-000002", records[2][1])
}

func TestExportOrdersCSV_RowContents(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewExportService(orderRepo)

	cod := decimal.NewFromInt(5000)
	order := seedExportOrder(t, orderRepo, "ORD-000003", "10 Beach Road, Mount Lavinia, 10370", &cod)

	data, err := svc.ExportOrdersCSV([]string{order.ID.String()})
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	row := records[1]

	assert.Equal(t, "WB-555", row[0])
	assert.Equal(t, "Amara de Silva", row[2])
	assert.Equal(t, "Maxi Dress (M, Red) x1; Scarf (S, Gold) x2", row[4])
	assert.Equal(t, "0761239876", row[5])
	assert.Equal(t, "0112223344", row[6])
	assert.Equal(t, "5000.00", row[7])
	// City is the second-to-last address segment.
	assert.Equal(t, "Mount Lavinia", row[8])
	assert.Equal(t, "Call before delivery", row[9])
}

func TestExportOrdersCSV_CODFallsBackToTotal(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewExportService(orderRepo)

	order := seedExportOrder(t, orderRepo, "ORD-000004", "10 Beach Road, Mount Lavinia, 10370", nil)

	data, err := svc.ExportOrdersCSV([]string{order.ID.String()})
	require.NoError(t, err)

	records := parseCSV(t, data)
	assert.Equal(t, "7450.00", records[1][7])
}

func TestExportOrdersCSV_CityFallbackWhenAddressHasNoSegments(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewExportService(orderRepo)

	order := seedExportOrder(t, orderRepo, "ORD-000005", "10 Beach Road", nil)

	data, err := svc.ExportOrdersCSV([]string{order.ID.String()})
	require.NoError(t, err)

	records := parseCSV(t, data)
	assert.Equal(t, "Negombo", records[1][8])
}

func TestExportOrdersCSV_SkipsUnknownIDs(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewExportService(orderRepo)

	order := seedExportOrder(t, orderRepo, "ORD-000006", "22 Hill Street, Kandy, 20000", nil)

	data, err := svc.ExportOrdersCSV([]string{uuid.NewString(), order.ID.String(), "garbage"})
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, "ORD-000006", records[1][1])
}
