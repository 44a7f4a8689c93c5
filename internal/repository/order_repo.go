package repository

import (
	"time"

	"go-retail-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	Save(order *model.Order) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	CountByStatus(status model.OrderStatus) (int64, error)
	FindRecent(limit int) ([]model.Order, error)
	FindInRangeExcluding(start, end time.Time, excluded model.OrderStatus) ([]model.Order, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Save(order *model.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Order{}, "id = ?", id).Error
}

func (r *orderRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepo) CountByStatus(status model.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *orderRepo) FindRecent(limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// FindInRangeExcluding returns orders created within [start, end] whose
// status differs from the excluded one. Used by the finance reports, which
// never count returned orders.
func (r *orderRepo) FindInRangeExcluding(start, end time.Time, excluded model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Where("created_at BETWEEN ? AND ?", start, end).
		Where("status <> ?", excluded).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
