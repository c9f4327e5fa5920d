package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/hrinvest/carteira"
)

// PublicDashboard is the read-only dashboard payload behind a share token.
type PublicDashboard struct {
	Client    carteira.Client
	Summary   *carteira.Summary
	Contracts []carteira.Contract
}

// FetchPublicDashboard resolves a share token into the dashboard of the
// client it was issued for. The endpoint is token-scoped: no bearer header
// is sent even when the client is logged in.
func (c *Client) FetchPublicDashboard(ctx context.Context, shareToken string) (*PublicDashboard, error) {
	anon := c.WithToken("")
	query := url.Values{"token": {shareToken}}

	var raw struct {
		Client    carteira.Client     `json:"client"`
		Summary   json.RawMessage     `json:"summary"`
		Contracts []carteira.Contract `json:"contracts"`
	}
	if err := anon.do(ctx, http.MethodGet, "/public/dashboard", query, nil, &raw); err != nil {
		return nil, err
	}

	dash := &PublicDashboard{Client: raw.Client, Contracts: raw.Contracts}
	if len(raw.Summary) > 0 {
		var jobj any
		if err := json.Unmarshal(raw.Summary, &jobj); err == nil {
			dash.Summary = decodeSummary(jobj)
		}
	}
	return dash, nil
}
