package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	payOrderHandler     commands.PayOrderCommandHandler
	fulfillOrderHandler commands.FulfillOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	fulfillOrderHandler commands.FulfillOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		payOrderHandler:        payOrderHandler,
		fulfillOrderHandler:    fulfillOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves all non-terminal orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:          o.ID.Bytes(),
			ProductId:   o.ProductID,
			Quantity:    o.Quantity,
			AmountCents: o.AmountCents,
			PlacedAt:    o.PlacedAt,
			State:       servers.OrderState(o.State),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.ProductId, newOrder.Quantity, newOrder.AmountCents)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:          o.ID.Bytes(),
		ProductId:   o.ProductID,
		Quantity:    o.Quantity,
		AmountCents: o.AmountCents,
		PlacedAt:    o.PlacedAt,
		State:       servers.OrderState(o.State),
	})
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay - records payment for an order.
func (s *Server) PayOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	var payment servers.PaymentConfirmation
	if err = ctx.Bind(&payment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPayOrderCommand(orderID, payment.ConfirmationNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment data: " + err.Error(),
		})
	}

	paid, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return orderEventError(ctx, err, "Failed to pay order")
	}

	return ctx.JSON(http.StatusOK, orderToResponse(paid))
}

// FulfillOrder handles POST /api/v1/orders/{orderId}/fulfill - marks a paid order as fulfilled.
func (s *Server) FulfillOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewFulfillOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	fulfilled, err := s.fulfillOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return orderEventError(ctx, err, "Failed to fulfill order")
	}

	return ctx.JSON(http.StatusOK, orderToResponse(fulfilled))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	// The cancellation reason body is optional
	var cancelReason servers.CancelReason
	_ = ctx.Bind(&cancelReason)

	reason := ""
	if cancelReason.Reason != nil {
		reason = *cancelReason.Reason
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, reason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return orderEventError(ctx, err, "Failed to cancel order")
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// orderEventError maps lifecycle event failures onto HTTP error responses.
// Missing orders map to 404, transitions rejected by the state graph and
// writes that lost a concurrent race map to 409, everything else to 500.
func orderEventError(ctx echo.Context, err error, fallbackMessage string) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	if errors.Is(err, order.ErrInvalidTransition) || errors.Is(err, errs.ErrStateConflict) {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: fallbackMessage,
	})
}

func orderToResponse(o *order.Order) servers.Order {
	return servers.Order{
		Id:          o.ID().Bytes(),
		ProductId:   o.ProductID(),
		Quantity:    o.Quantity(),
		AmountCents: o.AmountCents(),
		PlacedAt:    o.PlacedAt(),
		State:       servers.OrderState(o.State().String()),
	}
}
