// Package queries contains read-only operations over the data store.
// Implements the Query side of the CQRS architecture: handlers read
// projections straight from the database without going through aggregates
// or the unit of work.
package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderResponse is the read model for a single order as returned to the
// API layer. Status fields carry their wire representation.
type OrderResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	DriverID         *kernel.UUID
	PickupAddress    string
	PickupLatitude   float64
	PickupLongitude  float64
	DropoffAddress   string
	DropoffLatitude  float64
	DropoffLongitude float64
	Description      string
	Price            float64
	DeliveryStatus   string
	PaymentStatus    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// orderColumns is the column list every order read uses, in scan order.
const orderColumns = `
	id, customer_id, driver_id,
	pickup_address, pickup_latitude, pickup_longitude,
	dropoff_address, dropoff_latitude, dropoff_longitude,
	description, price, delivery_status, payment_status,
	created_at, updated_at`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp     OrderResponse
		id       uuid.UUID
		customer uuid.UUID
		driver   uuid.NullUUID
	)

	err := rows.Scan(
		&id, &customer, &driver,
		&resp.PickupAddress, &resp.PickupLatitude, &resp.PickupLongitude,
		&resp.DropoffAddress, &resp.DropoffLatitude, &resp.DropoffLongitude,
		&resp.Description, &resp.Price, &resp.DeliveryStatus, &resp.PaymentStatus,
		&resp.CreatedAt, &resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customer[:]); err != nil {
		return OrderResponse{}, err
	}
	if driver.Valid {
		driverID, idErr := kernel.UUIDFromBytes(driver.UUID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.DriverID = &driverID
	}

	return resp, nil
}
