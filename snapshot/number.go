package snapshot

import (
	"math/big"

	jsoniter "github.com/json-iterator/go"
)

// Number is the §6 dual-format rational encoding: "[sign, [u32-digits
// little-endian]] or as strings; consumers must accept both". This
// implementation always encodes as a string (the literal value's exact
// weight.W.String() rendering, e.g. "3/2"), which is always one of the two
// legal forms; decode additionally accepts the digit-array form, read as a
// big.Int magnitude (the array form carries no separate denominator slot in
// §6, so an array-encoded value decodes to an integer with denominator 1).
type Number struct {
	raw string
}

// NewNumber wraps a value's exact decimal/fraction string for snapshot
// encoding (e.g. weight.W.String()).
func NewNumber(s string) Number { return Number{raw: s} }

// String returns the wrapped literal.
func (n Number) String() string { return n.raw }

// MarshalJSON implements json.Marshaler, always using the string form.
func (n Number) MarshalJSON() ([]byte, error) {
	return jsoniterConfig.Marshal(n.raw)
}

// UnmarshalJSON implements json.Unmarshaler, accepting either legal form.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniterConfig.Unmarshal(data, &s); err == nil {
		n.raw = s

		return nil
	}

	var arr [2]jsoniter.RawMessage
	if err := jsoniterConfig.Unmarshal(data, &arr); err != nil {
		return err
	}

	var sign int
	if err := jsoniterConfig.Unmarshal(arr[0], &sign); err != nil {
		return err
	}

	var digits []uint32
	if err := jsoniterConfig.Unmarshal(arr[1], &digits); err != nil {
		return err
	}

	magnitude := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 32)
	for i := len(digits) - 1; i >= 0; i-- {
		magnitude.Mul(magnitude, base)
		magnitude.Add(magnitude, new(big.Int).SetUint64(uint64(digits[i])))
	}
	if sign < 0 {
		magnitude.Neg(magnitude)
	}

	n.raw = magnitude.String()

	return nil
}
