package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/delivery"
	"github.com/sitebid/goapi/base/display"
	"github.com/sitebid/goapi/base/log"
	"github.com/sitebid/goapi/base/metrics"
	"github.com/sitebid/goapi/base/ptr"
	"github.com/sitebid/goapi/domain/listing"
	"github.com/sitebid/goapi/domain/watchlist"
	"github.com/sitebid/goapi/middleware"
)

var met metrics.Service

type handler struct {
	listing   listing.Usecase
	watchlist watchlist.Usecase
	now       func() time.Time
}

func New(e *echo.Echo, listingUC listing.Usecase, watchlistUC watchlist.Usecase) {
	met = metrics.New("listing")

	h := &handler{listing: listingUC, watchlist: watchlistUC, now: time.Now}

	e.GET("/listings", h.getAll, middleware.CacheHttp(30*time.Second))

	e.GET("/listings/suggest", h.suggest)

	e.GET("/categories", h.getCategories, middleware.CacheHttp(10*time.Minute))

	g := e.Group("/listing/:id")

	g.GET("", h.get)
}

// listPayload decorates a listing with the derived display strings the
// browse cards need
type listPayload struct {
	*listing.Listing
	PriceDisplay     string               `json:"priceDisplay"`
	PageviewsDisplay string               `json:"pageviewsDisplay"`
	TimeRemaining    string               `json:"timeRemaining,omitempty"`
	CategoryInfo     listing.CategoryInfo `json:"categoryInfo"`
}

type listResp struct {
	Title    string         `json:"title"`
	Total    int            `json:"total"`
	Listings []*listPayload `json:"listings"`
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	defer met.BumpTime("query.time").End()

	criteria := h.buildCriteria(ctx, c)

	res, err := h.listing.Query(ctx, criteria)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Query failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	now := h.now()
	payloads := make([]*listPayload, len(res))
	for i, l := range res {
		payloads[i] = makeListPayload(l, now)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, listResp{
		Title:    h.listing.ResultTitle(criteria),
		Total:    len(payloads),
		Listings: payloads,
	})
}

// buildCriteria reads filter parameters leniently: the category and
// search keys come straight from the URL mapping, numeric bounds that
// fail to parse impose no constraint instead of failing the query
func (h *handler) buildCriteria(ctx bCtx.Ctx, c echo.Context) *listing.Criteria {
	criteria := listing.CriteriaFromQuery(c.QueryParams())

	criteria.MinPrice = parseBound(ctx, c.QueryParam("minPrice"), "minPrice")
	criteria.MaxPrice = parseBound(ctx, c.QueryParam("maxPrice"), "maxPrice")
	criteria.MinRevenue = parseBound(ctx, c.QueryParam("minRevenue"), "minRevenue")
	criteria.MaxRevenue = parseBound(ctx, c.QueryParam("maxRevenue"), "maxRevenue")

	if v := c.QueryParam("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			ctx.WithField("verified", v).Warn("unparseable verified flag ignored")
		} else if b {
			criteria.Verified = ptr.Bool(true)
		}
	}

	if v := c.QueryParam("sortBy"); v != "" {
		// unknown keys fall back to price inside the comparator
		criteria.SortBy = listing.SortBy(v)
	}
	if v := c.QueryParam("sortOrder"); v != "" {
		criteria.SortOrder = listing.ParseSortOrder(v)
	}

	return criteria
}

func parseBound(ctx bCtx.Ctx, raw, name string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"param": name, "value": raw}).Warn("unparseable numeric bound ignored")
		return nil
	}
	return ptr.Float64(v)
}

func makeListPayload(l *listing.Listing, now time.Time) *listPayload {
	p := &listPayload{
		Listing:          l,
		PriceDisplay:     display.Currency(l.EffectivePrice()),
		PageviewsDisplay: display.CompactCount(float64(l.MonthlyPageviews)),
		CategoryInfo:     l.Category.Info(),
	}
	if l.IsAuction() {
		p.TimeRemaining = display.TimeRemaining(*l.AuctionEndDate, now)
	}
	return p
}

// detailPayload carries the listing plus everything the detail view
// derives from it
type detailPayload struct {
	*listing.Listing
	Pricing       listing.Pricing      `json:"pricing"`
	CategoryInfo  listing.CategoryInfo `json:"categoryInfo"`
	ProfitMargin  float64              `json:"profitMargin"`
	AnnualRoi     float64              `json:"annualRoi"`
	TimeRemaining string               `json:"timeRemaining,omitempty"`
	TotalWatchers int                  `json:"totalWatchers"`
	Watched       bool                 `json:"watched"`
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	sessionId := c.Get("session").(string)
	id := c.Param("id")

	l, err := h.listing.GetById(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	watchers, err := h.watchlist.GetWatcherCount(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	watched, err := h.watchlist.IsWatched(ctx, sessionId, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	p := &detailPayload{
		Listing:       l,
		Pricing:       l.Pricing(),
		CategoryInfo:  l.Category.Info(),
		ProfitMargin:  display.ProfitMargin(l.MonthlyProfit, l.MonthlyRevenue),
		AnnualRoi:     display.AnnualROI(l.Metrics.Profit12Month, l.Price),
		TotalWatchers: watchers,
		Watched:       watched,
	}
	if l.IsAuction() {
		p.TimeRemaining = display.TimeRemainingFine(*l.AuctionEndDate, h.now())
	}

	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

type suggestParams struct {
	Term  string `query:"q"`
	Limit int    `query:"limit"`
}

func (h *handler) suggest(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &suggestParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Limit <= 0 || p.Limit > 20 {
		p.Limit = 5
	}

	res, err := h.listing.Suggest(ctx, p.Term, p.Limit)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Suggest failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type categoryPayload struct {
	Id    listing.Category `json:"id"`
	Label string           `json:"label"`
	Color string           `json:"color"`
}

func (h *handler) getCategories(c echo.Context) error {
	res := []categoryPayload{}
	for _, cat := range listing.Categories() {
		info := cat.Info()
		res = append(res, categoryPayload{Id: cat, Label: info.Label, Color: info.BadgeColor})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
