// Package decoder decodes partner price list documents. Price lists come in
// YAML or JSON; the format is sniffed from the first meaningful byte.
package decoder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/retail-automation/orders/internal/platform/models"
	"gopkg.in/yaml.v3"
)

// Decoder decodes price list files into price lists.
type Decoder struct {
	validate *validator.Validate
}

// NewDecoder returns new Decoder.
func NewDecoder() Decoder {
	return Decoder{
		validate: validator.New(),
	}
}

// Decode decodes a price list document from file and validates it. Documents
// opening with '{' are decoded as JSON, everything else as YAML.
func (d Decoder) Decode(_ context.Context, file io.Reader) (*models.PriceList, error) {
	buffered := bufio.NewReader(file)

	first, err := firstMeaningfulByte(buffered)
	if err != nil {
		return nil, fmt.Errorf("can't read price list: %w", err)
	}

	var list priceList
	if first == '{' {
		err = json.NewDecoder(buffered).Decode(&list)
	} else {
		err = yaml.NewDecoder(buffered).Decode(&list)
	}
	if err != nil {
		return nil, fmt.Errorf("can't decode price list: %w", err)
	}

	if err := d.validate.Struct(&list); err != nil {
		return nil, fmt.Errorf("invalid price list: %w", err)
	}

	return toAppPriceList(&list), nil
}

// firstMeaningfulByte peeks the first non-whitespace byte without consuming
// the reader.
func firstMeaningfulByte(buffered *bufio.Reader) (byte, error) {
	for peek := 1; ; peek++ {
		window, err := buffered.Peek(peek)
		if err != nil {
			return 0, err
		}

		switch window[peek-1] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return window[peek-1], nil
		}
	}
}
