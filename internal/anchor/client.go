package anchor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/civicstack/token-ledger/internal/adapter"
	"github.com/civicstack/token-ledger/internal/domain"
)

// notarizeResponse is the notary API response carrying the assigned reference
type notarizeResponse struct {
	TxID string `json:"txid"`
}

// httpNotary is the concrete HTTP implementation of Notary
type httpNotary struct {
	baseURL    string
	httpClient adapter.HTTPClient
}

// NewHTTPNotary creates a notary client against an HTTP anchoring service
func NewHTTPNotary(baseURL string, httpClient adapter.HTTPClient) Notary {
	return &httpNotary{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Notarize publishes the event descriptor and returns the assigned reference.
// The descriptor is canonicalized (JCS) before publication so the anchored
// payload is deterministic for a given event.
func (n *httpNotary) Notarize(ctx context.Context, event *domain.LedgerEvent) (domain.TxRef, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal event: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize event: %w", err)
	}

	url := fmt.Sprintf("%s/v1/notarize", n.baseURL)
	respBody, err := n.httpClient.Post(ctx, url, "application/json", bytes.NewReader(canonical))
	if err != nil {
		return "", fmt.Errorf("failed to notarize event %s: %w", event.EntryID, err)
	}

	var resp notarizeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode notarize response: %w", err)
	}

	ref, err := domain.NewTxRef(resp.TxID)
	if err != nil {
		return "", fmt.Errorf("notary returned malformed reference %q: %w", resp.TxID, err)
	}

	return ref, nil
}
