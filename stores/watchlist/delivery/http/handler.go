package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/delivery"
	"github.com/sitebid/goapi/base/metrics"
	"github.com/sitebid/goapi/domain/watchlist"
)

var met metrics.Service

type handler struct {
	watchlist watchlist.Usecase
}

func New(e *echo.Echo, watchlistUC watchlist.Usecase) {
	met = metrics.New("watchlist")

	h := &handler{watchlist: watchlistUC}

	e.POST("/listing/:id/watch", h.toggle)

	e.GET("/watchlist", h.getWatched)
}

type toggleResp struct {
	Watched  bool `json:"watched"`
	Watchers int  `json:"watchers"`
}

func (h *handler) toggle(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	sessionId := c.Get("session").(string)
	id := c.Param("id")

	watched, err := h.watchlist.Toggle(ctx, sessionId, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if watched {
		met.BumpSum("toggle.on", 1)
	} else {
		met.BumpSum("toggle.off", 1)
	}

	watchers, err := h.watchlist.GetWatcherCount(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toggleResp{Watched: watched, Watchers: watchers})
}

func (h *handler) getWatched(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	sessionId := c.Get("session").(string)

	res, err := h.watchlist.GetWatched(ctx, sessionId)
	if err != nil {
		ctx.WithField("err", err).Error("watchlist.GetWatched failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
