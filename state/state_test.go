package state

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/api"
)

// fakeAPI serves a minimal, consistent API for loader tests and counts the
// requests it saw per path.
type fakeAPI struct {
	mux   *http.ServeMux
	calls atomic.Int64

	failClients map[int64]int // client id -> status to fail the delete with
}

func newFakeAPI(t *testing.T) (*fakeAPI, *api.Client) {
	t.Helper()
	f := &fakeAPI{mux: http.NewServeMux(), failClients: map[int64]int{}}

	f.mux.HandleFunc("GET /api/clients", f.json(`[{"id":7,"nome":"Ana","sobrenome":"Reis"}]`))
	f.mux.HandleFunc("GET /api/contracts/me", f.json(`[{"id":1,"clienteId":7,"valor":1000,"rentabilidade":10}]`))
	f.mux.HandleFunc("GET /api/admin/contracts", f.json(`[{"id":1},{"id":2}]`))
	f.mux.HandleFunc("GET /api/admin/clients", f.json(`[{"id":7},{"id":8}]`))
	f.mux.HandleFunc("GET /api/admin/users", f.json(`[{"id":1,"name":"Helena","role":"ADMIN"}]`))
	f.mux.HandleFunc("GET /api/contracts/summary", f.json(`{"totalValor":1000}`))
	f.mux.HandleFunc("DELETE /api/admin/clients/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if status, bad := f.failClients[id]; bad {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"não foi possível excluir"}`))
			return
		}
		w.Write([]byte(`{}`))
	})

	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)
	return f, api.New(srv.URL + "/api").WithToken("tok")
}

func (f *fakeAPI) json(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		w.Write([]byte(body))
	}
}

func TestLoad_AdminJoinsEverything(t *testing.T) {
	_, c := newFakeAPI(t)
	loader := NewLoader(c)
	admin := carteira.User{ID: 1, Role: carteira.RoleAdmin}

	snap, err := loader.Load(context.Background(), admin, 7, api.ContractFilters{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Clients) != 1 || len(snap.Contracts) != 1 {
		t.Errorf("snapshot missing base data: %+v", snap)
	}
	if len(snap.AdminContracts) != 2 || len(snap.AdminClients) != 2 || len(snap.AdminUsers) != 1 {
		t.Errorf("snapshot missing admin data: %+v", snap)
	}
	if snap.Summary == nil || snap.Summary.TotalInvested == nil || *snap.Summary.TotalInvested != 1000 {
		t.Errorf("snapshot summary = %+v", snap.Summary)
	}
}

func TestLoad_RegularUserSkipsAdminData(t *testing.T) {
	_, c := newFakeAPI(t)
	loader := NewLoader(c)
	user := carteira.User{ID: 2, Role: carteira.RoleUser}

	snap, err := loader.Load(context.Background(), user, 0, api.ContractFilters{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.AdminContracts) != 0 || len(snap.AdminClients) != 0 || len(snap.AdminUsers) != 0 {
		t.Errorf("non-admin snapshot carries admin data: %+v", snap)
	}
	if snap.Summary != nil {
		t.Errorf("no client selected, summary should stay nil: %+v", snap.Summary)
	}
}

// TestLoad_FailureCommitsNothing checks that one failed fetch fails the
// whole load: callers never observe a half-populated snapshot.
func TestLoad_FailureCommitsNothing(t *testing.T) {
	// A server where one of the joined endpoints breaks.
	brokenMux := http.NewServeMux()
	brokenMux.HandleFunc("/api/contracts/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"quebrou"}`))
	})
	brokenMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(brokenMux)
	defer srv.Close()
	loader := NewLoader(api.New(srv.URL + "/api"))

	snap, err := loader.Load(context.Background(), carteira.User{ID: 1, Role: carteira.RoleUser}, 0, api.ContractFilters{})
	if err == nil {
		t.Fatalf("Load = %+v, want error", snap)
	}
	if snap != nil {
		t.Errorf("Load returned a snapshot alongside the error: %+v", snap)
	}
	if !strings.Contains(err.Error(), "quebrou") {
		t.Errorf("err = %v, want the server message surfaced", err)
	}
}

func TestLoad_Memoizes(t *testing.T) {
	f, c := newFakeAPI(t)
	loader := NewLoader(c)
	user := carteira.User{ID: 2, Role: carteira.RoleUser}

	if _, err := loader.Load(context.Background(), user, 0, api.ContractFilters{}); err != nil {
		t.Fatal(err)
	}
	before := f.calls.Load()
	if _, err := loader.Load(context.Background(), user, 0, api.ContractFilters{}); err != nil {
		t.Fatal(err)
	}
	if f.calls.Load() != before {
		t.Errorf("second Load hit the API %d more times, want cache hit", f.calls.Load()-before)
	}

	// A different client selection is a different key.
	if _, err := loader.Load(context.Background(), user, 7, api.ContractFilters{}); err != nil {
		t.Fatal(err)
	}
	if f.calls.Load() == before {
		t.Errorf("Load with another client reused the cached snapshot")
	}

	loader.Invalidate()
	if _, err := loader.Load(context.Background(), user, 0, api.ContractFilters{}); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteClients_PartialFailure(t *testing.T) {
	f, c := newFakeAPI(t)
	f.failClients[8] = http.StatusConflict
	loader := NewLoader(c)

	res := loader.DeleteClients(context.Background(), []int64{7, 8, 9})
	if got, want := len(res.Deleted), 2; got != want {
		t.Errorf("Deleted = %v, want ids 7 and 9", res.Deleted)
	}
	if len(res.Failed) != 1 || res.Failed[0] != 8 {
		t.Errorf("Failed = %v, want [8]", res.Failed)
	}
	if res.Err() == nil {
		t.Errorf("Err() = nil, want the per-item failure")
	}
}

func TestDeleteClients_UnauthorizedAborts(t *testing.T) {
	f, c := newFakeAPI(t)
	f.failClients[8] = http.StatusUnauthorized
	loader := NewLoader(c)

	res := loader.DeleteClients(context.Background(), []int64{7, 8, 9})
	if len(res.Deleted) != 1 || res.Deleted[0] != 7 {
		t.Errorf("Deleted = %v, want [7]", res.Deleted)
	}
	if len(res.Failed) != 2 {
		t.Errorf("Failed = %v, want 8 and the aborted 9", res.Failed)
	}
	if !api.IsUnauthorized(res.Err()) {
		t.Errorf("Err() = %v, want an unauthorized failure in the chain", res.Err())
	}
}
