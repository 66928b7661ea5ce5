package trading212

import (
	"context"
	"fmt"
	"time"

	"CashView/internal/domain/models"
	drepo "CashView/internal/domain/repository"
	xhttp "CashView/pkg/http"
)

const cashEndpoint = "/api/v0/equity/account/cash"

// Client implements a BalanceSource backed by the Trading 212 equity API.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// New creates a new Trading 212 BalanceSource.
func New(baseURL string, timeout time.Duration) drepo.BalanceSource {
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// FetchCash performs one authenticated request for an account's cash
// snapshot. Non-200 statuses surface as *xhttp.StatusError carrying
// "<status>: <body>"; transport failures come back wrapped. Neither aborts
// the caller's batch.
func (c *Client) FetchCash(ctx context.Context, cred models.AccountCredential) (*models.AccountSnapshot, error) {
	var snap models.AccountSnapshot
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + cashEndpoint,
		Headers: map[string]string{
			"Accept": "application/json",
		},
		BasicAuth: &xhttp.BasicAuth{Username: cred.KeyID, Password: cred.Secret},
	}, &snap)
	if err != nil {
		return nil, fmt.Errorf("fetch cash balance: %w", err)
	}
	return &snap, nil
}
