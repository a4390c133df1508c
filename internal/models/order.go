// internal/models/order.go
package models

import (
	"encoding/json"

	"github.com/javajoker/custom-creations-api/internal/utils"
)

type Order struct {
	Items    []OrderItem   `json:"items" bson:"items" validate:"required,min=1,dive"`
	Customer *CustomerInfo `json:"customer" bson:"customer" validate:"required"`
	Notes    *string       `json:"notes" bson:"notes"`
	Status   OrderStatus   `json:"status" bson:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
}

type OrderItem struct {
	// ProductID references a product by its text id; existence is not checked.
	ProductID string `json:"product_id" bson:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" bson:"quantity" validate:"gte=1"`
}

type CustomerInfo struct {
	Name    string  `json:"name" bson:"name" validate:"required,notblank"`
	Email   string  `json:"email" bson:"email" validate:"required,email"`
	Phone   *string `json:"phone" bson:"phone"`
	Address *string `json:"address" bson:"address"`
}

func NewOrder() *Order {
	return &Order{Status: OrderStatusPending}
}

func (o *Order) Kind() EntityKind { return KindOrder }

func (o *Order) Validate() error {
	return utils.ValidateStruct(o)
}

// UnmarshalJSON decodes items one at a time so that decode failures name the
// offending item.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	aux := struct {
		*plain
		Items []json.RawMessage `json:"items"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Items == nil {
		return nil
	}

	o.Items = make([]OrderItem, len(aux.Items))
	for i, raw := range aux.Items {
		if err := json.Unmarshal(raw, &o.Items[i]); err != nil {
			return utils.ElementDecodeError("items", i, err)
		}
	}
	return nil
}

// UnmarshalJSON defaults an absent quantity to 1.
func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type plain OrderItem
	item := plain{Quantity: 1}
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*i = OrderItem(item)
	return nil
}
