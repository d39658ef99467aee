package controllers

import (
	"net/http"
	"time"

	"library-management-system/app"
)

type StatsController struct{ *Srv }

func NewStatsController(s *Srv) *StatsController { return &StatsController{Srv: s} }

// GetStats serves the dashboard snapshot, reading through the Redis cache
// when one is wired. A cached snapshot may be up to the TTL stale; every
// write path invalidates it so the window stays small.
func (sc *StatsController) GetStats(c *app.Ctx) {
	ctx := c.Request.Context()

	if sc.Cache != nil {
		if s, err := sc.Cache.Get(ctx); err == nil && s != nil {
			c.JSON(http.StatusOK, app.H{"stats": s})
			return
		}
	}

	s, err := sc.Repo.DashboardSnapshot(ctx, time.Now().UTC())
	if err != nil {
		fail(c, err)
		return
	}
	if sc.Cache != nil {
		_ = sc.Cache.Set(ctx, s)
	}
	c.JSON(http.StatusOK, app.H{"stats": s})
}
