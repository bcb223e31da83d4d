// Package ledger implements the invoice verifier port against the external
// ledger's HTTP API. The ledger is opaque and possibly slow; callers bound
// each call with a context deadline and treat any failure as degraded, never
// fatal.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"procurement/internal/core/domain/model/verification"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPVerifier calls the ledger's verification endpoint.
type HTTPVerifier struct {
	baseURL string
	client  *http.Client
}

// NewHTTPVerifier creates a verifier for the ledger at baseURL. The client
// timeout is a backstop; per-call deadlines arrive via context.
func NewHTTPVerifier(baseURL string) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

type verifyRequest struct {
	StoreID          string `json:"storeId"`
	InvoiceReference string `json:"invoiceReference"`
	SupplierName     string `json:"supplierName,omitempty"`
}

type verifyResponse struct {
	Exists    bool   `json:"exists"`
	MatchType string `json:"matchType"`
}

// Verify looks the invoice reference up in the ledger.
func (v *HTTPVerifier) Verify(
	ctx context.Context,
	request ports.VerificationRequest,
) (verification.Result, error) {
	payload, err := json.Marshal(verifyRequest{
		StoreID:          request.StoreID.String(),
		InvoiceReference: request.InvoiceReference,
		SupplierName:     request.SupplierName,
	})
	if err != nil {
		return verification.Result{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, v.baseURL+"/invoices/verify", bytes.NewReader(payload),
	)
	if err != nil {
		return verification.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return verification.Result{}, errs.NewVerificationFailedErrorWithCause(request.InvoiceReference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return verification.Result{}, errs.NewVerificationFailedErrorWithCause(
			request.InvoiceReference,
			fmt.Errorf("ledger responded with status %d", resp.StatusCode),
		)
	}

	var body verifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return verification.Result{}, errs.NewVerificationFailedErrorWithCause(request.InvoiceReference, err)
	}

	matchType, err := verification.ParseMatchType(body.MatchType)
	if err != nil {
		return verification.Result{}, errs.NewVerificationFailedErrorWithCause(request.InvoiceReference, err)
	}

	return verification.Result{Exists: body.Exists, MatchType: matchType}, nil
}
