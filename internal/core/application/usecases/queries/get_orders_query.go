package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// Paging bounds for order listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// GetOrdersFilter narrows an order listing. Zero values mean "no filter";
// Search matches case-insensitively against the addresses and description.
// CustomerID and DriverID narrow within whatever the actor's role already
// permits — a customer filtering on another customer's ID just gets an
// empty page.
type GetOrdersFilter struct {
	CustomerID     *kernel.UUID
	DriverID       *kernel.UUID
	DeliveryStatus order.DeliveryStatus
	PaymentStatus  order.PaymentStatus
	Search         string
	Page           int
	PageSize       int
}

// GetOrdersQuery retrieves a page of orders visible to the actor, newest
// first. Admins see all orders, customers the orders they placed, drivers
// the orders assigned to them.
type GetOrdersQuery struct {
	actor  services.Actor
	filter GetOrdersFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// Page defaults to 1 and page size to DefaultPageSize; the page size is
// capped at MaxPageSize. Zero-valued status filters are ignored; non-zero
// ones must name valid statuses.
func NewGetOrdersQuery(actor services.Actor, filter GetOrdersFilter) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if filter.DeliveryStatus != order.DeliveryUnknown {
		if err := filter.DeliveryStatus.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if filter.PaymentStatus != order.PaymentUnknown {
		if err := filter.PaymentStatus.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if filter.CustomerID != nil {
		if err := filter.CustomerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if filter.DriverID != nil {
		if err := filter.DriverID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}
	if filter.PageSize > MaxPageSize {
		filter.PageSize = MaxPageSize
	}

	return GetOrdersQuery{
		actor:  actor,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the identity listing orders.
func (q GetOrdersQuery) Actor() services.Actor {
	return q.actor
}

// Filter returns the normalized listing filter.
func (q GetOrdersQuery) Filter() GetOrdersFilter {
	return q.filter
}

// GetOrdersResponse is a page of orders plus the total match count across
// all pages.
type GetOrdersResponse struct {
	Orders []OrderResponse
	Total  int64
}
