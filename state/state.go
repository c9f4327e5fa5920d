// Package state assembles the application's working data set from the API.
//
// A Snapshot is the terminal equivalent of the browser app's in-memory
// state: the caller's clients and contracts, the admin listings when the
// role allows, and the dashboard summary. Loading joins all fetches before
// returning, so a snapshot is never partially populated.
package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/api"
	"github.com/patrickmn/go-cache"
)

// Snapshot is one fully loaded view of the account's data.
type Snapshot struct {
	Clients   []carteira.Client
	Contracts []carteira.Contract
	Summary   *carteira.Summary

	// Admin listings, empty for non-admin users.
	AdminContracts []carteira.Contract
	AdminClients   []carteira.Client
	AdminUsers     []carteira.User
}

// Loader fetches snapshots, memoizing them briefly: the metrics engine is a
// pure function of the snapshot, so re-rendering within the TTL can reuse
// one load. A mutation must call Invalidate.
type Loader struct {
	api   *api.Client
	cache *cache.Cache
}

// NewLoader returns a loader over an authenticated API client.
func NewLoader(c *api.Client) *Loader {
	return &Loader{
		api:   c,
		cache: cache.New(30*time.Second, time.Minute),
	}
}

// Load fetches a snapshot for the given user. The independent fetches run
// concurrently and are joined before anything is returned: either the whole
// snapshot is available, or an error. Repeated loads with a rapid sequence
// of differing filters are served in completion order; nothing de-duplicates
// or cancels the earlier ones.
func (l *Loader) Load(ctx context.Context, user carteira.User, clientID int64, filters api.ContractFilters) (*Snapshot, error) {
	key := cacheKey(user, clientID, filters)
	if cached, ok := l.cache.Get(key); ok {
		return cached.(*Snapshot), nil
	}

	snap := &Snapshot{}
	jobs := []func() error{
		func() (err error) { snap.Clients, err = l.api.ListClients(ctx); return },
		func() (err error) { snap.Contracts, err = l.api.MyContracts(ctx); return },
	}
	if user.IsAdmin() {
		jobs = append(jobs,
			func() (err error) { snap.AdminContracts, err = l.api.AdminContracts(ctx, filters); return },
			func() (err error) { snap.AdminClients, err = l.api.AdminClients(ctx); return },
			func() (err error) { snap.AdminUsers, err = l.api.AdminUsers(ctx); return },
		)
	}
	if err := join(jobs); err != nil {
		return nil, err
	}

	// The summary depends on the selected client, fetched once the rest of
	// the state is known good. No selection means no summary; the metrics
	// engine derives everything locally in that case.
	if clientID != 0 {
		summary, err := l.api.DashboardSummary(ctx, clientID)
		if err != nil {
			return nil, err
		}
		snap.Summary = summary
	}

	l.cache.SetDefault(key, snap)
	return snap, nil
}

// Invalidate drops all memoized snapshots. Every mutation goes through it.
func (l *Loader) Invalidate() { l.cache.Flush() }

// join runs the jobs concurrently and waits for all of them, aggregating
// their errors.
func join(jobs []func() error) error {
	errs := make([]error, len(jobs))
	done := make(chan struct{})
	for i, job := range jobs {
		go func(i int, job func() error) {
			errs[i] = job()
			done <- struct{}{}
		}(i, job)
	}
	for range jobs {
		<-done
	}
	return errors.Join(errs...)
}

func cacheKey(user carteira.User, clientID int64, filters api.ContractFilters) string {
	return fmt.Sprintf("%d|%d|%s|%s|%s", user.ID, clientID, filters.Status, filters.Kind, filters.Product)
}
