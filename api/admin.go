package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hrinvest/carteira"
)

// ContractFilters narrows the admin contract listing. Empty fields are not
// sent.
type ContractFilters struct {
	Status  carteira.Status
	Kind    carteira.Kind
	Product carteira.Product
}

func (f ContractFilters) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Kind != "" {
		q.Set("tipo", string(f.Kind))
	}
	if f.Product != "" {
		q.Set("produto", string(f.Product))
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// AdminContracts lists all contracts, optionally filtered.
func (c *Client) AdminContracts(ctx context.Context, filters ContractFilters) ([]carteira.Contract, error) {
	var contracts []carteira.Contract
	if err := c.do(ctx, http.MethodGet, "/admin/contracts", filters.query(), nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// AdminCreateContract registers a contract on behalf of any client.
func (c *Client) AdminCreateContract(ctx context.Context, form ContractForm) error {
	return c.do(ctx, http.MethodPost, "/admin/contracts", nil, form, nil)
}

// AdminUpdateContract patches an existing contract.
func (c *Client) AdminUpdateContract(ctx context.Context, id int64, form ContractForm) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/contracts/%d", id), nil, form, nil)
}

// AdminDeleteContract removes a contract.
func (c *Client) AdminDeleteContract(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/contracts/%d", id), nil, nil, nil)
}

// AdminClients lists every client in the back office.
func (c *Client) AdminClients(ctx context.Context) ([]carteira.Client, error) {
	var clients []carteira.Client
	if err := c.do(ctx, http.MethodGet, "/admin/clients", nil, nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// AdminCreateClient registers a client in the back office.
func (c *Client) AdminCreateClient(ctx context.Context, form ClientForm) error {
	return c.do(ctx, http.MethodPost, "/admin/clients", nil, form, nil)
}

// AdminUpdateClient patches an existing client.
func (c *Client) AdminUpdateClient(ctx context.Context, id int64, form ClientForm) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/clients/%d", id), nil, form, nil)
}

// AdminDeleteClient removes a client.
func (c *Client) AdminDeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/clients/%d", id), nil, nil, nil)
}

// AdminLinkClient links a client to a user account.
func (c *Client) AdminLinkClient(ctx context.Context, clientID, userID int64) error {
	payload := struct {
		ClientID int64 `json:"clientId"`
		UserID   int64 `json:"userId"`
	}{clientID, userID}
	return c.do(ctx, http.MethodPost, "/admin/clients/link", nil, payload, nil)
}

// AdminLinkClientsToUser replaces the set of clients linked to one user.
func (c *Client) AdminLinkClientsToUser(ctx context.Context, userID int64, clientIDs []int64) error {
	payload := struct {
		UserID    int64   `json:"userId"`
		ClientIDs []int64 `json:"clientIds"`
	}{userID, clientIDs}
	return c.do(ctx, http.MethodPost, "/admin/clients/link/bulk", nil, payload, nil)
}

// AdminUsers lists every user account.
func (c *Client) AdminUsers(ctx context.Context) ([]carteira.User, error) {
	var users []carteira.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserForm is the payload to update a user account.
type UserForm struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  carteira.Role `json:"role"`
}

// AdminUpdateUser patches a user account and returns the updated record.
func (c *Client) AdminUpdateUser(ctx context.Context, id int64, form UserForm) (*carteira.User, error) {
	var user carteira.User
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d", id), nil, form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminDeleteUser removes a user account.
func (c *Client) AdminDeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, nil)
}

// AdminShareToken issues an opaque token granting read-only access to one
// client's dashboard through the public endpoint.
func (c *Client) AdminShareToken(ctx context.Context, clientID int64) (string, error) {
	payload := struct {
		ClientID int64 `json:"clientId"`
	}{clientID}
	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/clients/share-token", nil, payload, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}
