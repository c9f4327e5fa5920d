package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrinvest/carteira"
)

// ClientForm is the payload to create or update a brokerage client.
type ClientForm struct {
	FirstName string              `json:"nome"`
	LastName  string              `json:"sobrenome"`
	Type      carteira.ClientType `json:"tipo"`
	Document  string              `json:"documento,omitempty"`
}

// ListClients lists the clients visible to the caller.
func (c *Client) ListClients(ctx context.Context) ([]carteira.Client, error) {
	var clients []carteira.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient registers a new client.
func (c *Client) CreateClient(ctx context.Context, form ClientForm) error {
	return c.do(ctx, http.MethodPost, "/clients", nil, form, nil)
}

// UpdateClient patches one of the caller's own clients.
func (c *Client) UpdateClient(ctx context.Context, id int64, form ClientForm) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/clients/%d", id), nil, form, nil)
}

// DeleteClient removes one of the caller's own clients.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil, nil)
}
