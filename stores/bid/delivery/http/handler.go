package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/delivery"
	"github.com/sitebid/goapi/base/metrics"
	"github.com/sitebid/goapi/domain/bid"
)

var met metrics.Service

type handler struct {
	bid bid.Usecase
}

func New(e *echo.Echo, bidUC bid.Usecase) {
	met = metrics.New("bid")

	h := &handler{bid: bidUC}

	g := e.Group("/listing/:id/bids")

	g.POST("", h.place)

	g.GET("", h.history)
}

type placeParams struct {
	// Amount stays a string so malformed input is rejected by the
	// usecase with a useful message instead of failing the bind
	Amount string `json:"amount" validate:"required"`
}

func (h *handler) place(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	sessionId := c.Get("session").(string)
	id := c.Param("id")

	p := &placeParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	conf, err := h.bid.Place(ctx, sessionId, id, p.Amount)
	if err != nil {
		met.BumpSum("place.rejected", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("place.accepted", 1)

	return delivery.MakeJsonResp(c, http.StatusCreated, conf)
}

func (h *handler) history(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	id := c.Param("id")

	res, err := h.bid.History(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
