package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes results with vmihailenco/msgpack/v5. Compact and fast
// for the large percentile/path arrays simulation results carry; mind the
// struct tag differences vs JSON (`msgpack:"field"` for explicit control).
// The zero value is ready to use.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
