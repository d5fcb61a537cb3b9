// Package http is the inbound HTTP adapter. It translates the REST surface
// of the order intake and fulfillment workflow onto application commands and
// queries, and shields the core from transport concerns.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/commands"
	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/queries"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/core/ports"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type submitOrderHandler interface {
	Handle(ctx context.Context, cmd commands.SubmitOrderCommand) (*order.Order, error)
}

type acceptOrderHandler interface {
	Handle(ctx context.Context, cmd commands.AcceptOrderCommand) (*order.Order, error)
}

type rejectOrderHandler interface {
	Handle(ctx context.Context, cmd commands.RejectOrderCommand) (*order.Order, error)
}

type markDeliveredHandler interface {
	Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error)
}

type orderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type ordersLister interface {
	Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
}

// StorePinger reports whether the backing store is reachable.
// The health endpoint uses it so a dead database surfaces before orders fail.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderAcknowledgement is the response to order submission and to the
// admin lifecycle transitions. It echoes the tracking identifier and the
// state the order is now in.
type OrderAcknowledgement struct {
	OrderID       string    `json:"orderId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	OrderDate     time.Time `json:"orderDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LoginResponse carries the issued admin session.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler   submitOrderHandler
	acceptOrderHandler   acceptOrderHandler
	rejectOrderHandler   rejectOrderHandler
	markDeliveredHandler markDeliveredHandler

	// Query handlers
	getOrderHandler     orderReader
	getAllOrdersHandler ordersLister

	authenticator ports.Authenticator
	pinger        StorePinger
}

// NewServer creates a new HTTP server with the required command and query
// handlers, the admin authenticator, and a store pinger for health checks.
func NewServer(
	submitOrderHandler submitOrderHandler,
	acceptOrderHandler acceptOrderHandler,
	rejectOrderHandler rejectOrderHandler,
	markDeliveredHandler markDeliveredHandler,
	getOrderHandler orderReader,
	getAllOrdersHandler ordersLister,
	authenticator ports.Authenticator,
	pinger StorePinger,
) *Server {
	return &Server{
		submitOrderHandler:   submitOrderHandler,
		acceptOrderHandler:   acceptOrderHandler,
		rejectOrderHandler:   rejectOrderHandler,
		markDeliveredHandler: markDeliveredHandler,
		getOrderHandler:      getOrderHandler,
		getAllOrdersHandler:  getAllOrdersHandler,
		authenticator:        authenticator,
		pinger:               pinger,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance and installs the
// request body validator. Admin endpoints are wrapped in session
// verification so unauthorized callers are rejected before any state is
// touched.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api")
	api.GET("/health", s.GetHealth)
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/admin/login", s.AdminLogin)

	admin := api.Group("", s.requireAdminSession)
	admin.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	admin.POST("/orders/:orderId/delivered", s.MarkOrderDelivered)
}

// SubmitOrder handles POST /api/orders - places a new order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return s.errorFrom(ctx, err)
	}

	customer, err := order.NewCustomer(
		req.CustomerInfo.FullName,
		req.CustomerInfo.Email,
		req.CustomerInfo.Phone,
		req.CustomerInfo.AlternatePhone,
		req.CustomerInfo.DeliveryAddress,
		req.CustomerInfo.Pincode,
	)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewItem(itemReq.Product, itemReq.Flavor, itemReq.Quantity, itemReq.Price)
		if itemErr != nil {
			return s.errorFrom(ctx, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewSubmitOrderCommand(
		customer, items, req.TotalAmount, req.PaymentScreenshot, req.OrderDate,
	)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFrom(created))
}

// GetOrder handles GET /api/orders/:orderId - looks up one order by its
// tracking identifier.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/orders - lists all orders most recent first.
func (s *Server) GetOrders(ctx echo.Context) error {
	response, err := s.getAllOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery(),
	)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdminLogin handles POST /api/admin/login - issues an admin session token.
func (s *Server) AdminLogin(ctx echo.Context) error {
	var req AdminLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return s.errorFrom(ctx, err)
	}

	session, err := s.authenticator.Authenticate(ctx.Request().Context(), ports.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// UpdateOrderStatus handles PATCH /api/orders/:orderId/status - applies the
// accept or reject transition to a pending order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return s.errorFrom(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	var updated *order.Order
	switch req.Action {
	case "accept":
		cmd, cmdErr := commands.NewAcceptOrderCommand(orderID)
		if cmdErr != nil {
			return s.errorFrom(ctx, cmdErr)
		}
		updated, err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	case "reject":
		cmd, cmdErr := commands.NewRejectOrderCommand(orderID)
		if cmdErr != nil {
			return s.errorFrom(ctx, cmdErr)
		}
		updated, err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	default:
		return errorJSON(ctx, http.StatusBadRequest, "Unknown action: "+req.Action)
	}
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	return ctx.JSON(http.StatusOK, acknowledge(updated))
}

// MarkOrderDelivered handles POST /api/orders/:orderId/delivered - completes
// a confirmed order.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	delivered, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorFrom(ctx, err)
	}

	return ctx.JSON(http.StatusOK, acknowledge(delivered))
}

// GetHealth handles GET /api/health - pings the backing store.
func (s *Server) GetHealth(ctx echo.Context) error {
	if err := s.pinger.Ping(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "error"})
	}
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// requireAdminSession verifies the bearer token before the wrapped handler
// runs, so admin mutations never start without a live session.
func (s *Server) requireAdminSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return errorJSON(ctx, http.StatusUnauthorized, "Missing admin session token")
		}

		if _, err := s.authenticator.Verify(ctx.Request().Context(), token); err != nil {
			return s.errorFrom(ctx, err)
		}

		return next(ctx)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// errorFrom maps application errors onto HTTP status codes via the shared
// error taxonomy.
func (s *Server) errorFrom(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func acknowledge(aggregate *order.Order) OrderAcknowledgement {
	return OrderAcknowledgement{
		OrderID:       aggregate.ID().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		OrderDate:     aggregate.OrderDate(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// orderResponseFrom mirrors the submitted order back to the caller in the
// same shape the read side serves.
func orderResponseFrom(aggregate *order.Order) queries.OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]queries.OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, queries.OrderItemResponse{
			Product:  item.Product(),
			Flavor:   item.Flavor(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	customer := aggregate.Customer()
	return queries.OrderResponse{
		OrderID:              aggregate.ID().String(),
		CustomerName:         customer.FullName(),
		CustomerEmail:        customer.Email(),
		CustomerPhone:        customer.Phone(),
		AlternatePhone:       customer.AlternatePhone(),
		DeliveryAddress:      customer.DeliveryAddress(),
		Pincode:              customer.Pincode(),
		Items:                itemResponses,
		TotalAmount:          aggregate.TotalAmount(),
		HasPaymentScreenshot: aggregate.HasPaymentScreenshot(),
		PaymentStatus:        aggregate.PaymentStatus().String(),
		Status:               aggregate.Status().String(),
		OrderDate:            aggregate.OrderDate(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}
