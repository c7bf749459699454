package queries

import (
	"context"

	"marketplace/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads filtered, paginated order listings from the
// database. Role scoping is baked into the SQL: non-admin actors only ever
// see rows they own or deliver.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are ordered newest-first. The total count is computed over the
// same predicate so callers can page through the full match set.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersResponse{}, err
	}

	where, args := h.buildPredicate(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders`+where, args...).
		Scan(&total).Error; err != nil {
		return GetOrdersResponse{}, err
	}

	filter := query.Filter()
	pageArgs := append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return GetOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, filter.PageSize)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetOrdersResponse{}, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return GetOrdersResponse{}, err
	}

	return GetOrdersResponse{Orders: orders, Total: total}, nil
}

func (h GetOrdersQueryHandler) buildPredicate(query GetOrdersQuery) (string, []any) {
	where := " WHERE 1=1"
	args := make([]any, 0, 4)

	switch query.Actor().Role() {
	case user.RoleCustomer:
		where += " AND customer_id = ?"
		args = append(args, query.Actor().ID().String())
	case user.RoleDriver:
		where += " AND driver_id = ?"
		args = append(args, query.Actor().ID().String())
	case user.RoleAdmin:
	}

	filter := query.Filter()
	if filter.CustomerID != nil {
		where += " AND customer_id = ?"
		args = append(args, filter.CustomerID.String())
	}
	if filter.DriverID != nil {
		where += " AND driver_id = ?"
		args = append(args, filter.DriverID.String())
	}
	if filter.DeliveryStatus.Validate() == nil {
		where += " AND delivery_status = ?"
		args = append(args, filter.DeliveryStatus.String())
	}
	if filter.PaymentStatus.Validate() == nil {
		where += " AND payment_status = ?"
		args = append(args, filter.PaymentStatus.String())
	}
	if filter.Search != "" {
		where += ` AND (pickup_address ILIKE ? OR dropoff_address ILIKE ? OR description ILIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	return where, args
}
