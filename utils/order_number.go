package utils

import (
	"fmt"

	"github.com/speps/go-hashids/v2"
)

// OrderNumberGenerator derives the human-facing order number ("DT..." as
// printed on receipts) from the order sequence. Hashids keeps the number
// short and non-guessable without another table.
type OrderNumberGenerator struct {
	hash *hashids.HashID
}

func NewOrderNumberGenerator(config *Config) (*OrderNumberGenerator, error) {
	hd := hashids.NewData()
	hd.Salt = config.SigningKey
	hd.MinLength = 10
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("could not initialise order number generator: %w", err)
	}
	return &OrderNumberGenerator{hash: h}, nil
}

func (g *OrderNumberGenerator) Generate(sequence int64) (string, error) {
	encoded, err := g.hash.EncodeInt64([]int64{sequence})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DT%s", encoded), nil
}
