package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrinvest/carteira"
)

// ContractForm is the payload to create or update a contract.
type ContractForm struct {
	ClientID       int64            `json:"clienteId"`
	Title          string           `json:"titulo"`
	PrincipalValue float64          `json:"valor"`
	MonthlyRate    float64          `json:"rentabilidade"`
	InvestmentDate string           `json:"dataInvestimento"`
	MaturityDate   string           `json:"dataRecebimento,omitempty"`
	Status         carteira.Status  `json:"status,omitempty"`
	Kind           carteira.Kind    `json:"tipo,omitempty"`
	Product        carteira.Product `json:"produto,omitempty"`
}

// CreateContract registers a contract for one of the caller's clients.
func (c *Client) CreateContract(ctx context.Context, form ContractForm) error {
	return c.do(ctx, http.MethodPost, "/contracts", nil, form, nil)
}

// MyContracts lists the contracts of the clients linked to the caller.
func (c *Client) MyContracts(ctx context.Context) ([]carteira.Contract, error) {
	var contracts []carteira.Contract
	if err := c.do(ctx, http.MethodGet, "/contracts/me", nil, nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// DashboardSummary fetches the server-computed dashboard summary, optionally
// scoped to one client. A JSON null body resolves to a nil summary; absent
// summary fields come back as nil pointers inside the summary. Both cases
// make the metrics engine derive everything locally.
func (c *Client) DashboardSummary(ctx context.Context, clientID int64) (*carteira.Summary, error) {
	var query url.Values
	if clientID != 0 {
		query = url.Values{"clienteId": {strconv.FormatInt(clientID, 10)}}
	}
	var raw any
	if err := c.do(ctx, http.MethodGet, "/contracts/summary", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeSummary(raw), nil
}
