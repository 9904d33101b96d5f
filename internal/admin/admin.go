// Package admin is the operational HTTP surface: price list refresh trigger,
// health check and Prometheus metrics.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Commander --filename commander.go

// Storage is shops storage.
type Storage interface {
	GetShop(ctx context.Context, shopID int) (*models.Shop, error)
	ListShops(ctx context.Context, onlyAccepting bool) ([]models.Shop, error)
}

// Commander schedules price list imports.
type Commander interface {
	SendImportCommand(ctx context.Context, shopID int, url string) error
}

// Server handles admin HTTP requests.
type Server struct {
	storage   Storage
	commander Commander
	logger    *zerolog.Logger
	router    *chi.Mux
}

// NewServer returns new Server.
func NewServer(storage Storage, commander Commander, logger *zerolog.Logger) *Server {
	srv := &Server{
		storage:   storage,
		commander: commander,
		logger:    logger,
	}
	srv.router = srv.setupRouter()

	return srv
}

// Router returns the server's http handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/admin/pricelists/refresh", s.refreshPricelists)
	router.Get("/healthz", func(wrt http.ResponseWriter, _ *http.Request) {
		wrt.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	return router
}

type refreshRequest struct {
	// ShopIDs narrows the refresh to specific shops. Empty means all shops.
	ShopIDs []int `json:"shopIds"`
}

type skippedShop struct {
	ShopID int    `json:"shopId"`
	Reason string `json:"reason"`
}

type refreshResponse struct {
	Scheduled []int         `json:"scheduled"`
	Skipped   []skippedShop `json:"skipped"`
}

// refreshPricelists schedules imports for shops whose listings are out of
// date. Shops already up to date or without a reported price list source are
// skipped and reported back.
func (s *Server) refreshPricelists(wrt http.ResponseWriter, req *http.Request) {
	var body refreshRequest
	if req.ContentLength != 0 {
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(wrt, "can't decode request body", http.StatusBadRequest)
			return
		}
	}

	shops, skipped, err := s.collectShops(req.Context(), body.ShopIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("can't list shops for refresh")
		http.Error(wrt, "can't list shops", http.StatusInternalServerError)
		return
	}

	response := refreshResponse{
		Scheduled: []int{},
		Skipped:   skipped,
	}

	for ix := range shops {
		shop := &shops[ix]

		switch {
		case shop.IsUpToDate:
			response.Skipped = append(response.Skipped, skippedShop{
				ShopID: shop.ID,
				Reason: platform.ErrAlreadyUpToDate.Error(),
			})
		case shop.URL == nil || *shop.URL == "":
			response.Skipped = append(response.Skipped, skippedShop{
				ShopID: shop.ID,
				Reason: platform.ErrNoPricelistSource.Error(),
			})
		default:
			if err := s.commander.SendImportCommand(req.Context(), shop.ID, *shop.URL); err != nil {
				s.logger.Error().Err(err).Int("shopId", shop.ID).Msg("can't schedule import")
				response.Skipped = append(response.Skipped, skippedShop{
					ShopID: shop.ID,
					Reason: "can't schedule import",
				})
				continue
			}
			response.Scheduled = append(response.Scheduled, shop.ID)
		}
	}

	wrt.Header().Set("Content-Type", "application/json")
	wrt.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(wrt).Encode(response); err != nil {
		s.logger.Error().Err(err).Msg("can't encode refresh response")
	}
}

func (s *Server) collectShops(ctx context.Context, shopIDs []int) ([]models.Shop, []skippedShop, error) {
	if len(shopIDs) == 0 {
		shops, err := s.storage.ListShops(ctx, false)
		return shops, []skippedShop{}, err
	}

	shopIDs = lo.Uniq(shopIDs)

	shops := make([]models.Shop, 0, len(shopIDs))
	skipped := make([]skippedShop, 0)
	for _, shopID := range shopIDs {
		shop, err := s.storage.GetShop(ctx, shopID)
		if errors.Is(err, platform.ErrNotFound) {
			skipped = append(skipped, skippedShop{
				ShopID: shopID,
				Reason: platform.ErrNotFound.Error(),
			})
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		shops = append(shops, *shop)
	}

	return shops, skipped, nil
}
