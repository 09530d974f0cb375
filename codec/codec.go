// Package codec (de)serializes simulation results for the byte-backed
// cache backends (redis, bigcache, ristretto). The local backend stores
// values directly and needs no codec.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
