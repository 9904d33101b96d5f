package decoder_test

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/retail-automation/orders/internal/decoder"
	"github.com/retail-automation/orders/internal/decoder/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitDecodeYAML(t *testing.T) {
	file := priceListFileAsReader(t, "pricelist.yaml")

	dec := decoder.NewDecoder()
	list, err := dec.Decode(context.TODO(), file)

	require.NoError(t, err, "should not return any error")
	assert.Equal(t, &testdata.PriceList, list, "should correctly decode the price list")
}

func TestUnitDecodeJSON(t *testing.T) {
	file := priceListFileAsReader(t, "pricelist.json")

	dec := decoder.NewDecoder()
	list, err := dec.Decode(context.TODO(), file)

	require.NoError(t, err, "should not return any error")
	assert.Equal(t, &testdata.PriceList, list, "should correctly decode the price list")
}

func TestUnitDecodeBadFormat(t *testing.T) {
	badFile := strings.NewReader("{\"shop\": \"Svyaznoy\"")

	dec := decoder.NewDecoder()
	list, err := dec.Decode(context.TODO(), badFile)

	require.ErrorContains(t, err, "can't decode price list", "should return decoding error")
	assert.Nil(t, list, "should not return a price list")
}

func TestUnitDecodeMissingShopName(t *testing.T) {
	badFile := strings.NewReader("categories: []\ngoods: []\n")

	dec := decoder.NewDecoder()
	list, err := dec.Decode(context.TODO(), badFile)

	require.ErrorContains(t, err, "invalid price list", "should return validation error")
	assert.Nil(t, list, "should not return a price list")
}

func TestUnitDecodeMissingGoodName(t *testing.T) {
	badFile := strings.NewReader(strings.Join([]string{
		"shop: Svyaznoy",
		"goods:",
		"  - id: 1",
		"    category: 224",
		"    price: 100",
	}, "\n"))

	dec := decoder.NewDecoder()
	list, err := dec.Decode(context.TODO(), badFile)

	require.ErrorContains(t, err, "invalid price list", "should return validation error")
	assert.Nil(t, list, "should not return a price list")
}

func TestUnitDecodeEmptyFile(t *testing.T) {
	dec := decoder.NewDecoder()
	list, err := dec.Decode(context.TODO(), strings.NewReader(""))

	require.ErrorIs(t, err, io.EOF, "should return EOF")
	assert.Nil(t, list, "should not return a price list")
}

func priceListFileAsReader(t *testing.T, name string) io.Reader {
	t.Helper()

	f, err := os.Open(path.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}
