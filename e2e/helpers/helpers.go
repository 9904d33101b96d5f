// Package helpers provides helpers for end to end tests.
package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/retail-automation/orders/internal/platform/models"
	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
	"github.com/retail-automation/orders/internal/platform/storage/storagetesting"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	contentType = "Content-Type"
)

// WaitForVariantCount is blocking helper function, returns stored variants
// once there are exactly n of them.
func WaitForVariantCount(t *testing.T, queryable qrm.Queryable, n int) []pgmodels.Variant {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)
		variants := storagetesting.GetVariants(t, queryable)
		if len(variants) == n {
			return variants
		}
	}
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting price list file to return, file number is from 0 to len(files) inclusive.
func PrepareMockedHTTPServer(t *testing.T, files [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	fileToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/x-yaml")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(files[fileToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { fileToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// PriceListToYAML is helper function which converts a price list to the yaml
// document format produced by partner shops.
func PriceListToYAML(t *testing.T, list *models.PriceList) []byte {
	t.Helper()

	type yamlCategory struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	}
	type yamlGood struct {
		ID         int               `yaml:"id"`
		Category   int               `yaml:"category"`
		Model      string            `yaml:"model"`
		Name       string            `yaml:"name"`
		Price      int               `yaml:"price"`
		PriceRRC   int               `yaml:"price_rrc"`
		Quantity   int               `yaml:"quantity"`
		Parameters map[string]string `yaml:"parameters,omitempty"`
	}

	doc := struct {
		Shop       string         `yaml:"shop"`
		Categories []yamlCategory `yaml:"categories"`
		Goods      []yamlGood     `yaml:"goods"`
	}{
		Shop: list.ShopName,
	}

	for ix := range list.Categories {
		doc.Categories = append(doc.Categories, yamlCategory{
			ID:   list.Categories[ix].ID,
			Name: list.Categories[ix].Name,
		})
	}

	for ix := range list.Goods {
		doc.Goods = append(doc.Goods, yamlGood{
			ID:         list.Goods[ix].ExternalID,
			Category:   list.Goods[ix].CategoryID,
			Model:      list.Goods[ix].Model,
			Name:       list.Goods[ix].Name,
			Price:      list.Goods[ix].Price,
			PriceRRC:   list.Goods[ix].PriceRRC,
			Quantity:   list.Goods[ix].Quantity,
			Parameters: list.Goods[ix].Parameters,
		})
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		require.FailNow(t, "can't encode price list to yaml", err)
	}

	return out
}
