// internal/models/common.go
package models

// Entity is a validated document ready to be persisted.
type Entity interface {
	Kind() EntityKind
	Validate() error
}

type EntityKind string

const (
	KindProduct EntityKind = "product"
	KindProject EntityKind = "project"
	KindOrder   EntityKind = "order"
)

// Collection is the name of the collection holding documents of this kind.
func (k EntityKind) Collection() string {
	return string(k)
}

func (k EntityKind) Valid() bool {
	switch k {
	case KindProduct, KindProject, KindOrder:
		return true
	}
	return false
}

// Enums
type Category string

const (
	CategoryClothing Category = "clothing"
	CategoryVehicle  Category = "vehicle"
	CategoryGadgets  Category = "gadgets"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryClothing, CategoryVehicle, CategoryGadgets:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func ptr[T any](v T) *T {
	return &v
}
