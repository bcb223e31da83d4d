package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// VerifyInvoices handles POST /api/v1/invoices/verify. The response always
// carries one result per requested delivery, even when the ledger is down.
func (s *Server) VerifyInvoices(ctx echo.Context) error {
	var req verifyInvoicesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.VerificationItem, 0, len(req.Requests))
	for _, r := range req.Requests {
		deliveryID, err := kernel.UUIDFromString(r.DeliveryID)
		if err != nil {
			return writeError(ctx, err)
		}
		storeID, err := kernel.UUIDFromString(r.StoreID)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, commands.VerificationItem{
			DeliveryID:       deliveryID,
			StoreID:          storeID,
			InvoiceReference: r.InvoiceReference,
			SupplierName:     r.SupplierName,
		})
	}

	cmd, err := commands.NewVerifyInvoicesCommand(items)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.verifyInvoicesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make(map[string]verifyInvoiceResult, len(results))
	for deliveryID, result := range results {
		response[deliveryID.String()] = verifyInvoiceResult{
			Exists:    result.Exists,
			MatchType: result.MatchType.String(),
			Cached:    result.Cached,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClearVerificationCache handles DELETE /api/v1/invoices/cache/:reference.
// Restricted to elevated roles; drops cached results for the reference across
// every store.
func (s *Server) ClearVerificationCache(ctx echo.Context) error {
	if _, ok, err := s.requireElevated(ctx); !ok {
		return err
	}

	cmd, err := commands.NewClearVerificationCacheCommand(ctx.Param("reference"))
	if err != nil {
		return writeError(ctx, err)
	}

	invalidated, err := s.clearCacheHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clearCacheResponse{Invalidated: invalidated})
}

// CheckInvoiceUsage handles GET /api/v1/invoices/usage. Reports the most
// recent reconciled delivery already using the given invoice reference, or
// null when the reference is free.
func (s *Server) CheckInvoiceUsage(ctx echo.Context) error {
	reference := ctx.QueryParam("reference")
	if reference == "" {
		return badRequest(ctx, "reference query parameter is required")
	}

	var exclude *kernel.UUID
	if raw := ctx.QueryParam("excludeDeliveryId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		exclude = &id
	}

	query, err := queries.NewCheckInvoiceUsageQuery(reference, exclude)
	if err != nil {
		return writeError(ctx, err)
	}

	usage, err := s.invoiceUsageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if usage == nil {
		return ctx.JSON(http.StatusOK, nil)
	}

	return ctx.JSON(http.StatusOK, invoiceUsageResponse{
		DeliveryID:    usage.DeliveryID.String(),
		StoreID:       usage.StoreID.String(),
		BLNumber:      usage.BLNumber,
		DeliveredDate: usage.DeliveredDate,
	})
}
