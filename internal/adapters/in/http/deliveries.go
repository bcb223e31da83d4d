package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateDelivery handles POST /api/v1/deliveries. The delivery may be created
// linked to an order or free-standing.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	caller, err := s.callerID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or malformed "+callerHeader+" header")
	}

	var req createDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUIDPtr(req.OrderID)
	if err != nil {
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
	quantity, err := kernel.NewAmountFromString(req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, orderID, supplierID, storeID,
		req.ScheduledDate, quantity, req.Unit, req.Notes, caller,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": deliveryID.String()})
}

// GetDeliveries handles GET /api/v1/deliveries. An optional orderId query
// parameter narrows the result to one order's deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	caller, err := s.callerID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or malformed "+callerHeader+" header")
	}

	stores, err := s.accessScope.VisibleStores(ctx.Request().Context(), caller)
	if err != nil {
		return writeError(ctx, err)
	}
	if len(stores) == 0 {
		return ctx.JSON(http.StatusOK, []deliveryResponse{})
	}

	var orderID *kernel.UUID
	if raw := ctx.QueryParam("orderId"); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		orderID = &id
	}

	query, err := queries.NewGetDeliveriesQuery(stores, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]deliveryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, deliveryResponseFrom(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDelivery handles PATCH /api/v1/deliveries/:id. Sending "orderId": null
// unlinks the delivery; omitting the key leaves the link untouched.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUIDPtr(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}
	quantity, err := parseAmountPtr(req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}
	blAmount, err := parseAmountPtr(req.BLAmount)
	if err != nil {
		return writeError(ctx, err)
	}
	invoiceAmount, err := parseAmountPtr(req.InvoiceAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(deliveryID, commands.DeliveryChanges{
		OrderIDSet:       req.OrderIDSet,
		OrderID:          orderID,
		ScheduledDate:    req.ScheduledDate,
		Quantity:         quantity,
		Unit:             req.Unit,
		Notes:            req.Notes,
		BLNumber:         req.BLNumber,
		BLAmount:         blAmount,
		InvoiceReference: req.InvoiceReference,
		InvoiceAmount:    invoiceAmount,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	if warning := s.invoiceDuplicateWarning(ctx, deliveryID, req.InvoiceReference); warning != nil {
		return ctx.JSON(http.StatusOK, warning)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// invoiceDuplicateWarning reports whether the invoice reference set on this
// update is already attached to another reconciled delivery. The update
// itself has already been persisted; a duplicate only produces an advisory
// payload, never a failure.
func (s *Server) invoiceDuplicateWarning(
	ctx echo.Context,
	deliveryID kernel.UUID,
	invoiceReference *string,
) *duplicateInvoiceWarning {
	if invoiceReference == nil || *invoiceReference == "" {
		return nil
	}

	query, err := queries.NewCheckInvoiceUsageQuery(*invoiceReference, &deliveryID)
	if err != nil {
		return nil
	}

	usage, err := s.invoiceUsageHandler.Handle(ctx.Request().Context(), query)
	if err != nil || usage == nil {
		return nil
	}

	return &duplicateInvoiceWarning{
		Warning: "invoice reference already used by another delivery",
		UsedBy: invoiceUsageResponse{
			DeliveryID:    usage.DeliveryID.String(),
			StoreID:       usage.StoreID.String(),
			BLNumber:      usage.BLNumber,
			DeliveredDate: usage.DeliveredDate,
		},
	}
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateDelivery handles POST /api/v1/deliveries/:id/validate. Marks the
// delivery as physically received and returns its updated state.
func (s *Server) ValidateDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req validateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	blAmount, err := parseAmountPtr(req.BLAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewValidateDeliveryCommand(deliveryID, req.BLNumber, blAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.validateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponseFromDomain(aggregate))
}

// DevalidateDelivery handles POST /api/v1/deliveries/:id/devalidate.
// Restricted to elevated roles.
func (s *Server) DevalidateDelivery(ctx echo.Context) error {
	if _, ok, err := s.requireElevated(ctx); !ok {
		return err
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDevalidateDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.devalidateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponseFromDomain(aggregate))
}
