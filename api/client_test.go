package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient wires a client against a fake API handler.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func TestClient_SurfacesServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"titulo é obrigatório"}`))
	}))

	err := c.CreateContract(context.Background(), ContractForm{})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", apiErr.Status)
	}
	if apiErr.Message != "titulo é obrigatório" {
		t.Errorf("Message = %q, want the server's error field", apiErr.Message)
	}
}

func TestClient_StatusTextWhenNoErrorField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.MyContracts(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("Message = %q, want the status text fallback", apiErr.Message)
	}
}

func TestIsUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expirado"}`))
	}))

	_, err := c.WithToken("stale").ListClients(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}
	if IsUnauthorized(errors.New("network down")) {
		t.Errorf("IsUnauthorized reported true for a non-API error")
	}
}

func TestClient_BearerHeader(t *testing.T) {
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := c.WithToken("tok-123").ListClients(context.Background()); err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want a bearer header", got)
	}
}

// TestFetchPublicDashboard_NoAuthHeader checks the public endpoint stays
// token-scoped even on an authenticated client.
func TestFetchPublicDashboard_NoAuthHeader(t *testing.T) {
	var auth, query string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		query = r.URL.Query().Get("token")
		w.Write([]byte(`{
			"client": {"id": 7, "nome": "Ana", "sobrenome": "Reis"},
			"summary": {"totalValor": 1500, "bars": [{"label": "jan/24", "value": "0.8"}]},
			"contracts": [{"id": 1, "clienteId": 7, "valor": 1500}]
		}`))
	}))

	dash, err := c.WithToken("tok-123").FetchPublicDashboard(context.Background(), "share-abc")
	if err != nil {
		t.Fatalf("FetchPublicDashboard failed: %v", err)
	}
	if auth != "" {
		t.Errorf("Authorization = %q, want none on the public endpoint", auth)
	}
	if query != "share-abc" {
		t.Errorf("token query = %q, want share-abc", query)
	}
	if dash.Client.FullName() != "Ana Reis" {
		t.Errorf("Client = %+v", dash.Client)
	}
	if dash.Summary == nil || dash.Summary.TotalInvested == nil || *dash.Summary.TotalInvested != 1500 {
		t.Errorf("Summary = %+v, want totalValor 1500", dash.Summary)
	}
	if len(dash.Summary.Bars) != 1 || dash.Summary.Bars[0].Value != 0.8 {
		t.Errorf("Bars = %+v, want the coerced string value 0.8", dash.Summary.Bars)
	}
	if len(dash.Contracts) != 1 {
		t.Errorf("Contracts = %+v", dash.Contracts)
	}
}

func TestAdminContracts_Filters(t *testing.T) {
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	_, err := c.AdminContracts(context.Background(), ContractFilters{
		Status:  "ABERTO",
		Product: "RPV",
	})
	if err != nil {
		t.Fatalf("AdminContracts failed: %v", err)
	}
	if got != "produto=RPV&status=ABERTO" {
		t.Errorf("query = %q, want only the non-empty filters", got)
	}
}
