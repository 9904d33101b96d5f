package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/retail-automation/orders/internal/admin"
	"github.com/retail-automation/orders/internal/admin/mocks"
	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = zerolog.Nop()

type refreshResponse struct {
	Scheduled []int `json:"scheduled"`
	Skipped   []struct {
		ShopID int    `json:"shopId"`
		Reason string `json:"reason"`
	} `json:"skipped"`
}

func TestUnitRefreshAllShops(t *testing.T) {
	shops := []models.Shop{
		{ID: 1, Name: "Svyaznoy", URL: lo.ToPtr("https://a.example.com/p.yaml"), IsUpToDate: false},
		{ID: 2, Name: "Evroset", URL: lo.ToPtr("https://b.example.com/p.yaml"), IsUpToDate: true},
		{ID: 3, Name: "TechnoPoint", URL: nil, IsUpToDate: false},
	}

	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	storage.On("ListShops", mock.Anything, false).Return(shops, nil)
	commander.On("SendImportCommand", mock.Anything, 1, "https://a.example.com/p.yaml").Return(nil)

	srv := admin.NewServer(storage, commander, &logger)

	req := httptest.NewRequest(http.MethodPost, "/admin/pricelists/refresh", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "should respond 200")

	var resp refreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with valid json")

	assert.Equal(t, []int{1}, resp.Scheduled, "should schedule only the stale shop with a source")
	require.Len(t, resp.Skipped, 2, "should skip the up-to-date shop and the one without a source")
	assert.Equal(t, 2, resp.Skipped[0].ShopID, "up-to-date shop should be skipped")
	assert.Equal(t, platform.ErrAlreadyUpToDate.Error(), resp.Skipped[0].Reason)
	assert.Equal(t, 3, resp.Skipped[1].ShopID, "shop without a source should be skipped")
	assert.Equal(t, platform.ErrNoPricelistSource.Error(), resp.Skipped[1].Reason)
}

func TestUnitRefreshSelectedShops(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	storage.On("GetShop", mock.Anything, 1).Return(
		&models.Shop{ID: 1, URL: lo.ToPtr("https://a.example.com/p.yaml")}, nil)
	storage.On("GetShop", mock.Anything, 99).Return(nil, platform.ErrNotFound)
	commander.On("SendImportCommand", mock.Anything, 1, "https://a.example.com/p.yaml").Return(nil)

	srv := admin.NewServer(storage, commander, &logger)

	req := httptest.NewRequest(http.MethodPost, "/admin/pricelists/refresh",
		strings.NewReader(`{"shopIds":[1,99]}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "should respond 200")

	var resp refreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with valid json")

	assert.Equal(t, []int{1}, resp.Scheduled, "should schedule the existing shop")
	require.Len(t, resp.Skipped, 1, "should skip the unknown shop")
	assert.Equal(t, 99, resp.Skipped[0].ShopID, "unknown shop should be reported")
	assert.Equal(t, platform.ErrNotFound.Error(), resp.Skipped[0].Reason)
}

func TestUnitRefreshBadBody(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	srv := admin.NewServer(storage, commander, &logger)

	req := httptest.NewRequest(http.MethodPost, "/admin/pricelists/refresh", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code, "should reject a malformed body")
}

func TestUnitHealthz(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	srv := admin.NewServer(storage, commander, &logger)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "should respond 200")
}
