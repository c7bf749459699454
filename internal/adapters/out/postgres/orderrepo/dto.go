// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// the common lookups: by owner, by driver, and by delivery status. Statuses
// are stored as their wire strings so rows stay readable in plain SQL.
type OrderDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID   `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID  `gorm:"type:uuid;index"`
	Pickup         LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff        LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	Description    string
	Price          float64
	DeliveryStatus string `gorm:"index"`
	PaymentStatus  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents an embedded address with coordinates within the
// order table. Used for both the pickup and the dropoff ends of a delivery.
type LocationDTO struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional driver assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		DriverID:   driverID,
		Pickup: LocationDTO{
			Address:   aggregate.Pickup().Address(),
			Latitude:  aggregate.Pickup().Latitude(),
			Longitude: aggregate.Pickup().Longitude(),
		},
		Dropoff: LocationDTO{
			Address:   aggregate.Dropoff().Address(),
			Latitude:  aggregate.Dropoff().Latitude(),
			Longitude: aggregate.Dropoff().Longitude(),
		},
		Description:    aggregate.Description(),
		Price:          aggregate.Price(),
		DeliveryStatus: aggregate.DeliveryStatus().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including statuses and the driver
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	pickup, err := kernel.NewLocation(dto.Pickup.Address, dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewLocation(dto.Dropoff.Address, dto.Dropoff.Latitude, dto.Dropoff.Longitude)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := order.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, driverID, pickup, dropoff,
		dto.Description, dto.Price,
		deliveryStatus, paymentStatus,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
