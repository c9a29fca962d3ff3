package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/log"
	bValidator "github.com/sitebid/goapi/base/validator"
	"github.com/sitebid/goapi/domain/listing"
	mmiddleware "github.com/sitebid/goapi/middleware"
	bid_delivery "github.com/sitebid/goapi/stores/bid/delivery/http"
	bid_repository "github.com/sitebid/goapi/stores/bid/repository"
	bid_usecase "github.com/sitebid/goapi/stores/bid/usecase"
	listing_delivery "github.com/sitebid/goapi/stores/listing/delivery/http"
	listing_repository "github.com/sitebid/goapi/stores/listing/repository"
	listing_usecase "github.com/sitebid/goapi/stores/listing/usecase"
	watchlist_delivery "github.com/sitebid/goapi/stores/watchlist/delivery/http"
	watchlist_repository "github.com/sitebid/goapi/stores/watchlist/repository"
	watchlist_usecase "github.com/sitebid/goapi/stores/watchlist/usecase"
)

func init() {
	configFile := pflag.StringP("config", "c", "configs/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug()
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.AddSession())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	mmiddleware.SetupCache(viper.GetInt("cache.sizeMb"))

	// init listing feed
	var listingRepo listing.Repo
	var err error
	if feed := viper.GetString("listings.feed"); feed != "" {
		context.WithField("feed", feed).Info("loading listing feed")
		listingRepo, err = listing_repository.NewFromFile(feed)
	} else {
		listingRepo, err = listing_repository.NewFixture()
	}
	if err != nil {
		context.WithField("err", err).Panic("failed to load listing feed")
	}

	watchlistRepo := watchlist_repository.NewMemory()
	bidRepo := bid_repository.NewMemory()

	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo: listingRepo,
		MemoSize:    viper.GetInt("listings.memoSize"),
	})
	watchlistUC := watchlist_usecase.New(watchlistRepo, listingRepo)
	bidUC := bid_usecase.New(&bid_usecase.BidUseCaseCfg{
		BidRepo:     bidRepo,
		ListingRepo: listingRepo,
		Now:         time.Now,
	})

	listing_delivery.New(e, listingUC, watchlistUC)
	watchlist_delivery.New(e, watchlistUC)
	bid_delivery.New(e, bidUC)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
		})
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
