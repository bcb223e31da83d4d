package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := s.callerID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or malformed "+callerHeader+" header")
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return writeError(ctx, err)
	}
	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, supplierID, storeID, req.PlannedDate, req.Notes, caller,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders. Results are scoped to the stores the
// caller may see.
func (s *Server) GetOrders(ctx echo.Context) error {
	caller, err := s.callerID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or malformed "+callerHeader+" header")
	}

	stores, err := s.accessScope.VisibleStores(ctx.Request().Context(), caller)
	if err != nil {
		return writeError(ctx, err)
	}
	if len(stores) == 0 {
		return ctx.JSON(http.StatusOK, []orderResponse{})
	}

	query, err := queries.NewGetOrdersQuery(stores)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFrom(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:id. Absent fields stay untouched.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	quantity, err := parseAmountPtr(req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, commands.OrderChanges{
		PlannedDate: req.PlannedDate,
		Quantity:    quantity,
		Unit:        req.Unit,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Referencing deliveries are
// unlinked, never deleted.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
