// internal/services/order_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/database"
	"github.com/javajoker/custom-creations-api/internal/models"
)

// OrderReceivedStatus is reported to the client once an order is stored. It
// is unrelated to the order's own lifecycle status.
const OrderReceivedStatus = "received"

type OrderService struct {
	store database.Store
}

type OrderReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func NewOrderService(store database.Store) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder validates the raw order body and stores it.
func (s *OrderService) CreateOrder(ctx context.Context, raw []byte) (*OrderReceipt, error) {
	order, err := models.DecodeOrder(raw)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Create(ctx, models.KindOrder.Collection(), order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"items":    len(order.Items),
		"status":   order.Status,
	}).Info("Order received")

	return &OrderReceipt{ID: id, Status: OrderReceivedStatus}, nil
}
