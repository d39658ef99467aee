package controllers

import (
	"errors"
	"net/http"

	"library-management-system/app"
	"library-management-system/cache"
	"library-management-system/db"
)

// Srv bundles what the controllers need.
type Srv struct {
	Repo  *db.Repo
	Cache *cache.SnapshotCache
	Cfg   app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:  db.NewRepo(a.DB),
		Cache: cache.NewSnapshotCache(a.RDB, a.Config.SnapshotTTL),
		Cfg:   a.Config,
	}
}

// invalidateSnapshot drops the cached dashboard after any write. Nil cache
// (tests) is fine.
func (s *Srv) invalidateSnapshot(c *app.Ctx) {
	if s.Cache != nil {
		s.Cache.Invalidate(c.Request.Context())
	}
}

// statusFor maps the db error taxonomy onto HTTP statuses. Anything not in
// the taxonomy, including an invariant violation, is a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrBookNotFound),
		errors.Is(err, db.ErrMemberNotFound),
		errors.Is(err, db.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrDuplicateLoan),
		errors.Is(err, db.ErrAlreadyReturned):
		return http.StatusConflict
	case errors.Is(err, db.ErrNoCopiesAvailable),
		errors.Is(err, db.ErrMemberInactive),
		errors.Is(err, db.ErrInvalidDueOffset),
		errors.Is(err, db.ErrISBNExists),
		errors.Is(err, db.ErrEmailExists),
		errors.Is(err, db.ErrBookHasOpenLoans),
		errors.Is(err, db.ErrMemberHasOpenLoans),
		errors.Is(err, db.ErrTotalBelowOpenLoans):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrTransientConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *app.Ctx, err error) {
	c.JSON(statusFor(err), app.H{"error": err.Error()})
}
