package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query.
// A row the actor is not allowed to see yields AuthorizationDeniedError,
// not NotFound: the order's existence is not a secret between its parties
// and admins.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = h.policy.CanViewOrder(query.Actor(), resp.CustomerID, resp.DriverID); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
