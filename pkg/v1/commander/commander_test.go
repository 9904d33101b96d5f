package commander_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/retail-automation/orders/pkg/v1/commander"
	"github.com/retail-automation/orders/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUniSendImportCommand(t *testing.T) {
	url := faker.URL()
	body := []byte(fmt.Sprintf(`{"shopId":42,"url":"%s"}`, url))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewImportCommander(sender)
			err := cmndr.SendImportCommand(context.TODO(), 42, url)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
