// Package importer runs price list imports: it fetches a partner's price
// list document, decodes it and replaces the shop's listing in storage.
package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retail-automation/orders/internal/platform/models"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Storage --filename storage.go

// Fetcher fetches price list file.
type Fetcher interface {
	FetchFile(context.Context, string) (io.ReadCloser, error)
}

// Decoder decodes price list file into a price list.
type Decoder interface {
	Decode(context.Context, io.Reader) (*models.PriceList, error)
}

// Storage is shop listings storage.
type Storage interface {
	// ReplaceListing atomically replaces the shop's listing with the price
	// list contents and marks the shop up to date.
	ReplaceListing(ctx context.Context, shopID int, list *models.PriceList) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
	// Since returns time elapsed from t.
	Since(t time.Time) time.Duration
}

// Stats describes one finished import.
type Stats struct {
	ShopName   string
	Categories int
	Goods      int
	Took       time.Duration
}

// Option is custom configuration of Importer.
type Option func(i *Importer)

// Importer fetches, decodes and stores price lists.
type Importer struct {
	fetcher Fetcher
	decoder Decoder
	storage Storage
	clock   Clock
}

// NewImporter returns new Importer.
func NewImporter(fetcher Fetcher, decoder Decoder, storage Storage, ops ...Option) *Importer {
	imp := &Importer{
		fetcher: fetcher,
		decoder: decoder,
		storage: storage,
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(imp)
	}

	return imp
}

// Import imports the shop's price list from url. A price list with no goods
// is still a valid import: the shop ends up with an empty listing.
func (i Importer) Import(ctx context.Context, shopID int, url string) (*Stats, error) {
	startedAt := i.clock.Now()

	file, err := i.fetcher.FetchFile(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("can't fetch price list: %w", err)
	}
	defer file.Close()

	list, err := i.decoder.Decode(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("can't decode price list: %w", err)
	}

	if err := i.storage.ReplaceListing(ctx, shopID, list); err != nil {
		return nil, fmt.Errorf("can't store listing: %w", err)
	}

	return &Stats{
		ShopName:   list.ShopName,
		Categories: len(list.Categories),
		Goods:      len(list.Goods),
		Took:       i.clock.Since(startedAt),
	}, nil
}

// WithClock sets Importer's custom Clock.
func WithClock(c Clock) Option {
	return func(i *Importer) {
		i.clock = c
	}
}
