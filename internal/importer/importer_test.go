package importer_test

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/retail-automation/orders/internal/importer"
	"github.com/retail-automation/orders/internal/importer/mocks"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/models/modelstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	shopURL = faker.URL()
	shopID  = rand.Intn(1000) + 1
	now     = time.Date(2022, time.April, 1, 1, 1, 1, 0, time.UTC)
	took    = 3 * time.Second

	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

func TestUnitImport(t *testing.T) {
	list := modelstesting.FakePriceList()

	fetcher := mocks.NewFetcher(t)
	decoder := mocks.NewDecoder(t)
	storage := mocks.NewStorage(t)

	mockFetcher(fetcher, shopURL, nil)
	mockDecoder(decoder, &list, nil)
	storage.On("ReplaceListing", mock.Anything, shopID, &list).Return(nil)

	imp := importer.NewImporter(fetcher, decoder, storage, importer.WithClock(fakeClock{now: now, took: took}))

	stats, err := imp.Import(context.TODO(), shopID, shopURL)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &importer.Stats{
		ShopName:   list.ShopName,
		Categories: len(list.Categories),
		Goods:      len(list.Goods),
		Took:       took,
	}, stats, "should return correct import stats")
}

func TestUnitImportEmptyGoods(t *testing.T) {
	list := modelstesting.FakePriceList(func(l *models.PriceList) { l.Goods = nil })

	fetcher := mocks.NewFetcher(t)
	decoder := mocks.NewDecoder(t)
	storage := mocks.NewStorage(t)

	mockFetcher(fetcher, shopURL, nil)
	mockDecoder(decoder, &list, nil)
	storage.On("ReplaceListing", mock.Anything, shopID, &list).Return(nil)

	imp := importer.NewImporter(fetcher, decoder, storage, importer.WithClock(fakeClock{now: now, took: took}))

	stats, err := imp.Import(context.TODO(), shopID, shopURL)

	require.NoError(t, err, "an empty price list should still import")
	assert.Zero(t, stats.Goods, "should report zero goods")
}

func TestUnitImportFetcherError(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	decoder := mocks.NewDecoder(t)
	storage := mocks.NewStorage(t)

	mockFetcher(fetcher, shopURL, assert.AnError)

	imp := importer.NewImporter(fetcher, decoder, storage, importer.WithClock(fakeClock{now: now, took: took}))

	stats, err := imp.Import(context.TODO(), shopID, shopURL)

	require.ErrorContains(t, err, "can't fetch price list", "should return error about failed fetching")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	assert.Nil(t, stats, "shouldn't return stats")
}

func TestUnitImportDecoderError(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	decoder := mocks.NewDecoder(t)
	storage := mocks.NewStorage(t)

	mockFetcher(fetcher, shopURL, nil)
	mockDecoder(decoder, nil, assert.AnError)

	imp := importer.NewImporter(fetcher, decoder, storage, importer.WithClock(fakeClock{now: now, took: took}))

	stats, err := imp.Import(context.TODO(), shopID, shopURL)

	require.ErrorContains(t, err, "can't decode price list", "should return error about failed decoding")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	assert.Nil(t, stats, "shouldn't return stats")
}

func TestUnitImportStorageError(t *testing.T) {
	list := modelstesting.FakePriceList()

	fetcher := mocks.NewFetcher(t)
	decoder := mocks.NewDecoder(t)
	storage := mocks.NewStorage(t)

	mockFetcher(fetcher, shopURL, nil)
	mockDecoder(decoder, &list, nil)
	storage.On("ReplaceListing", mock.Anything, shopID, &list).Return(assert.AnError)

	imp := importer.NewImporter(fetcher, decoder, storage, importer.WithClock(fakeClock{now: now, took: took}))

	stats, err := imp.Import(context.TODO(), shopID, shopURL)

	require.ErrorContains(t, err, "can't store listing", "should return error about failed storing")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	assert.Nil(t, stats, "shouldn't return stats")
}

func mockFetcher(fetcher *mocks.Fetcher, shopURL string, err error) {
	var reader io.ReadCloser
	if err == nil {
		reader = io.NopCloser(strings.NewReader(""))
	}
	fetcher.On("FetchFile", mock.Anything, shopURL).Return(reader, err)
}

func mockDecoder(decoder *mocks.Decoder, list *models.PriceList, err error) {
	decoder.On("Decode", mock.Anything, mock.Anything).Return(list, err)
}

type fakeClock struct {
	now  time.Time
	took time.Duration
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func (c fakeClock) Since(time.Time) time.Duration {
	return c.took
}
