package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes a JSON request body into dst, rejecting unknown
// fields and trailing content. Fields a caller is not allowed to set are
// simply not part of the payload type, so sending them fails the request
// instead of being silently ignored.
func bindStrict(ctx echo.Context, dst any) error {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected content after JSON body")
	}
	return nil
}

type locationPayload struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Vehicle  string `json:"vehicle,omitempty"`
	License  string `json:"license,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type createOrderRequest struct {
	Pickup      locationPayload `json:"pickup"`
	Dropoff     locationPayload `json:"dropoff"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
}

type updateOrderRequest = createOrderRequest

type assignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

type deliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status"`
}

type positionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type overrideOrderRequest struct {
	DeliveryStatus *string `json:"delivery_status"`
	PaymentStatus  *string `json:"payment_status"`
}

type orderPayload struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	DriverID       *string         `json:"driver_id"`
	Pickup         locationPayload `json:"pickup"`
	Dropoff        locationPayload `json:"dropoff"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	DeliveryStatus string          `json:"delivery_status"`
	PaymentStatus  string          `json:"payment_status"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type ordersPage struct {
	Orders   []orderPayload `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type profileImageResponse struct {
	URL string `json:"url"`
}

func orderPayloadFromResponse(resp queries.OrderResponse) orderPayload {
	payload := orderPayload{
		ID:         resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		Pickup: locationPayload{
			Address:   resp.PickupAddress,
			Latitude:  resp.PickupLatitude,
			Longitude: resp.PickupLongitude,
		},
		Dropoff: locationPayload{
			Address:   resp.DropoffAddress,
			Latitude:  resp.DropoffLatitude,
			Longitude: resp.DropoffLongitude,
		},
		Description:    resp.Description,
		Price:          resp.Price,
		DeliveryStatus: resp.DeliveryStatus,
		PaymentStatus:  resp.PaymentStatus,
		CreatedAt:      resp.CreatedAt.UTC().Format("2006-01-02T15:04:05.999999Z07:00"),
		UpdatedAt:      resp.UpdatedAt.UTC().Format("2006-01-02T15:04:05.999999Z07:00"),
	}

	if resp.DriverID != nil {
		driverID := resp.DriverID.String()
		payload.DriverID = &driverID
	}
	return payload
}

func (p locationPayload) toLocation() (kernel.Location, error) {
	return kernel.NewLocation(p.Address, p.Latitude, p.Longitude)
}
