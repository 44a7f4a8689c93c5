package service

import (
	"fmt"
	"testing"

	"go-retail-backoffice/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo *fakeProductRepo, stock int) (*model.Product, string) {
	t.Helper()
	variantID := uuid.NewString()
	product := &model.Product{
		Name:        "Linen Shirt",
		Description: "Short sleeve",
		Category:    "Shirts",
		Variants: []model.Variant{
			{
				ID:            variantID,
				Size:          model.SizeM,
				Color:         "White",
				SKU:           "LS-M-WHT",
				StockQuantity: stock,
				Price:         decimal.NewFromInt(2500),
			},
		},
		LowStockThreshold: 5,
	}
	require.NoError(t, repo.Create(product))
	return product, variantID
}

func buildOrder(product *model.Product, variantID string, quantity int) *model.Order {
	unit := decimal.NewFromInt(2500)
	total := unit.Mul(decimal.NewFromInt(int64(quantity)))
	return &model.Order{
		CustomerID:      uuid.New(),
		CustomerName:    "Nimal Perera",
		CustomerAddress: "12 Galle Road, Colombo, 00300",
		CustomerPhone:   "0771234567",
		Items: []model.OrderItem{
			{
				ProductID:   product.ID.String(),
				VariantID:   variantID,
				ProductName: product.Name,
				Size:        "M",
				Color:       "White",
				Quantity:    quantity,
				UnitPrice:   unit,
				TotalPrice:  total,
			},
		},
		Subtotal:    total,
		TotalAmount: total.Add(model.DefaultCourierCharges),
	}
}

func variantStock(t *testing.T, repo *fakeProductRepo, productID uuid.UUID, variantID string) int {
	t.Helper()
	product, err := repo.FindByID(productID)
	require.NoError(t, err)
	for _, v := range product.Variants {
		if v.ID == variantID {
			return v.StockQuantity
		}
	}
	t.Fatalf("variant %s not found", variantID)
	return 0
}

func TestCreateOrder_DecrementsStockAndAssignsNumber(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 3)
	require.NoError(t, svc.CreateOrder(order))

	assert.Equal(t, "ORD-000001", order.OrderNumber)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.True(t, order.CourierCharges.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 7, variantStock(t, productRepo, product.ID, variantID))
}

func TestCreateOrder_SequentialNumbers(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 100)

	for i := 1; i <= 3; i++ {
		order := buildOrder(product, variantID, 1)
		require.NoError(t, svc.CreateOrder(order))
		assert.Equal(t, fmt.Sprintf("ORD-%06d", i), order.OrderNumber)
	}
}

func TestCreateOrder_DanglingVariantSkipped(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, uuid.NewString(), 3) // variant id that doesn't exist
	require.NoError(t, svc.CreateOrder(order))

	assert.Equal(t, 10, variantStock(t, productRepo, product.ID, variantID))
}

func TestCreateOrder_ValidationFailure(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), nil)

	err := svc.CreateOrder(&model.Order{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestDeleteOrder_RestoresStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 3)
	require.NoError(t, svc.CreateOrder(order))
	require.Equal(t, 7, variantStock(t, productRepo, product.ID, variantID))

	require.NoError(t, svc.DeleteOrder(order.ID))
	assert.Equal(t, 10, variantStock(t, productRepo, product.ID, variantID))

	_, err := svc.GetOrder(order.ID)
	assert.Error(t, err)
}

func TestUpdateOrderStatus_ReturnRestoresStockOnce(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 4)
	require.NoError(t, svc.CreateOrder(order))
	require.Equal(t, 6, variantStock(t, productRepo, product.ID, variantID))

	updated, err := svc.UpdateOrderStatus(order.ID, model.StatusReturned, "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusReturned, updated.Status)
	assert.Equal(t, 10, variantStock(t, productRepo, product.ID, variantID))

	// Already returned: must not restore again.
	_, err = svc.UpdateOrderStatus(order.ID, model.StatusReturned, "")
	require.NoError(t, err)
	assert.Equal(t, 10, variantStock(t, productRepo, product.ID, variantID))
}

func TestUpdateOrderStatus_NonReturnTransitionsLeaveStockAlone(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 2)
	require.NoError(t, svc.CreateOrder(order))

	_, err := svc.UpdateOrderStatus(order.ID, model.StatusOnCourier, "TRK-100")
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(order.ID, model.StatusDelivered, "")
	require.NoError(t, err)

	assert.Equal(t, 8, variantStock(t, productRepo, product.ID, variantID))
}

func TestDeleteOrder_AfterReturn_NoDoubleRestore(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 3)
	require.NoError(t, svc.CreateOrder(order))

	_, err := svc.UpdateOrderStatus(order.ID, model.StatusReturned, "")
	require.NoError(t, err)
	require.Equal(t, 10, variantStock(t, productRepo, product.ID, variantID))

	require.NoError(t, svc.DeleteOrder(order.ID))
	assert.Equal(t, 10, variantStock(t, productRepo, product.ID, variantID))
}

func TestUpdateOrderStatus_EmptyTrackingNumberPreserved(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 1)
	require.NoError(t, svc.CreateOrder(order))

	_, err := svc.UpdateOrderStatus(order.ID, model.StatusOnCourier, "TRK-42")
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(order.ID, model.StatusDelivered, "")
	require.NoError(t, err)
	assert.Equal(t, "TRK-42", updated.TrackingNumber)
}

func TestUpdateOrder_DoesNotTouchStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil)

	product, variantID := seedProduct(t, productRepo, 10)

	order := buildOrder(product, variantID, 3)
	require.NoError(t, svc.CreateOrder(order))
	require.Equal(t, 7, variantStock(t, productRepo, product.ID, variantID))

	replacement := buildOrder(product, variantID, 8)
	updated, err := svc.UpdateOrder(order.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, order.OrderNumber, updated.OrderNumber)
	assert.Equal(t, 8, updated.Items[0].Quantity)
	// Stock is deliberately left as-is on a full update.
	assert.Equal(t, 7, variantStock(t, productRepo, product.ID, variantID))
}
