package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

var hundred = big.NewRat(100, 1)

// ParseAmount converts a major-unit amount ("1500", "12.34", "1.5e3") into
// paise. The multiplication is done on exact rationals so 1.1 becomes 110,
// never 110.00000000000001.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	r.Mul(r, hundred)
	if !r.IsInt() {
		return 0, fmt.Errorf("%w: more than two decimal places", ErrInvalidAmount)
	}
	paise := r.Num()
	if !paise.IsInt64() {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return paise.Int64(), nil
}

// ParseAmountJSON accepts either a JSON number or a JSON string holding a number.
func ParseAmountJSON(raw json.RawMessage) (int64, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return 0, fmt.Errorf("%w: missing", ErrInvalidAmount)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	switch val := v.(type) {
	case json.Number:
		return ParseAmount(val.String())
	case string:
		return ParseAmount(val)
	default:
		return 0, fmt.Errorf("%w: expected a number", ErrInvalidAmount)
	}
}
