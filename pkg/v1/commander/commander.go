// Package commander is the client library for scheduling price list imports.
// Services owning shop data publish import commands through it; the orders
// service consumes them.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ImportCommand orders an import of one shop's price list from url.
type ImportCommand struct {
	ShopID int    `json:"shopId"`
	URL    string `json:"url"`
}

// ImportCommander sends import commands.
type ImportCommander struct {
	sender Sender
}

// NewImportCommander returns new ImportCommander using provided sender for sending messages.
func NewImportCommander(sender Sender) ImportCommander {
	return ImportCommander{
		sender: sender,
	}
}

// SendImportCommand sends import command for the shop's price list at url.
func (c ImportCommander) SendImportCommand(ctx context.Context, shopID int, url string) error {
	cmd := ImportCommand{
		ShopID: shopID,
		URL:    url,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal import command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
