package payments

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/speps/go-hashids/v2"
)

const receiptPrefix = "receipt_"

// ReceiptGenerator issues receipt ids that stay unique within one process,
// even for calls landing in the same millisecond.
type ReceiptGenerator struct {
	hd  *hashids.HashID
	seq atomic.Int64
	now func() time.Time
}

func NewReceiptGenerator(salt string) (*ReceiptGenerator, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("receipt generator: %w", err)
	}

	return &ReceiptGenerator{hd: h, now: time.Now}, nil
}

func (g *ReceiptGenerator) Next() (string, error) {
	id, err := g.hd.EncodeInt64([]int64{g.now().UnixMilli(), g.seq.Add(1)})
	if err != nil {
		return "", fmt.Errorf("encode receipt: %w", err)
	}
	return receiptPrefix + id, nil
}
