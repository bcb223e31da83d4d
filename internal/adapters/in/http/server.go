// Package http exposes the procurement core over a REST API.
// Handlers translate between wire DTOs and commands/queries, consult the
// access scope for visibility and elevation, and map core errors to status
// codes. No business rule lives here.
package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// callerHeader carries the authenticated caller identity, resolved by the
// gateway in front of this service.
const callerHeader = "X-Caller-Id"

// Server wires HTTP routes to command and query handlers.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler
	validateHandler       commands.ValidateDeliveryCommandHandler
	devalidateHandler     commands.DevalidateDeliveryCommandHandler
	verifyInvoicesHandler commands.VerifyInvoicesCommandHandler
	clearCacheHandler     commands.ClearVerificationCacheCommandHandler

	getOrdersHandler     queries.GetOrdersQueryHandler
	getDeliveriesHandler queries.GetDeliveriesQueryHandler
	invoiceUsageHandler  queries.CheckInvoiceUsageQueryHandler

	accessScope ports.AccessScope
	validate    *validator.Validate
}

// NewServer creates the HTTP server facade over the application layer.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	validateHandler commands.ValidateDeliveryCommandHandler,
	devalidateHandler commands.DevalidateDeliveryCommandHandler,
	verifyInvoicesHandler commands.VerifyInvoicesCommandHandler,
	clearCacheHandler commands.ClearVerificationCacheCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	invoiceUsageHandler queries.CheckInvoiceUsageQueryHandler,
	accessScope ports.AccessScope,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		deleteOrderHandler:    deleteOrderHandler,
		createDeliveryHandler: createDeliveryHandler,
		updateDeliveryHandler: updateDeliveryHandler,
		deleteDeliveryHandler: deleteDeliveryHandler,
		validateHandler:       validateHandler,
		devalidateHandler:     devalidateHandler,
		verifyInvoicesHandler: verifyInvoicesHandler,
		clearCacheHandler:     clearCacheHandler,
		getOrdersHandler:      getOrdersHandler,
		getDeliveriesHandler:  getDeliveriesHandler,
		invoiceUsageHandler:   invoiceUsageHandler,
		accessScope:           accessScope,
		validate:              validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.PATCH("/deliveries/:id", s.UpdateDelivery)
	api.DELETE("/deliveries/:id", s.DeleteDelivery)
	api.POST("/deliveries/:id/validate", s.ValidateDelivery)
	api.POST("/deliveries/:id/devalidate", s.DevalidateDelivery)

	api.POST("/invoices/verify", s.VerifyInvoices)
	api.DELETE("/invoices/cache/:reference", s.ClearVerificationCache)
	api.GET("/invoices/usage", s.CheckInvoiceUsage)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// callerID extracts the caller identity from the request headers.
func (s *Server) callerID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(callerHeader))
}

// requireElevated rejects the request unless the caller holds the elevated
// role. Returns (caller, true) when the request may proceed.
func (s *Server) requireElevated(ctx echo.Context) (kernel.UUID, bool, error) {
	caller, err := s.callerID(ctx)
	if err != nil {
		return kernel.UUID{}, false, badRequest(ctx, "missing or malformed "+callerHeader+" header")
	}

	elevated, err := s.accessScope.IsElevated(ctx.Request().Context(), caller)
	if err != nil {
		return kernel.UUID{}, false, writeError(ctx, err)
	}
	if !elevated {
		return kernel.UUID{}, false, forbidden(ctx, "operation restricted to elevated roles")
	}

	return caller, true, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseAmountPtr(s *string) (*kernel.Amount, error) {
	if s == nil {
		return nil, nil //nolint:nilnil //absent field maps to absent amount
	}
	amount, err := kernel.NewAmountFromString(*s)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func parseUUIDPtr(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil //nolint:nilnil //absent field maps to absent identifier
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
