package values

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dolthub/swiss"
	"github.com/google/uuid"
)

// ErrNegativeLength is returned when a negative element count is requested.
var ErrNegativeLength = errors.New("values: negative length")

const (
	minStringLen = 1
	maxStringLen = 32

	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Element is the set of element types the queue benchmark is swept over.
type Element interface {
	int | string | uuid.UUID
}

// Array returns n distinct values of type T drawn from r.
//
// The same generator state always produces the same slice, so inputs can
// be regenerated between runs without storing them.
func Array[T Element](r *rand.Rand, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	out := make([]T, 0, n)
	seen := swiss.NewMap[T, struct{}](uint32(max(n, 8)))
	for len(out) < n {
		v, err := next[T](r)
		if err != nil {
			return nil, err
		}
		if seen.Has(v) {
			continue
		}
		seen.Put(v, struct{}{})
		out = append(out, v)
	}
	return out, nil
}

func next[T Element](r *rand.Rand) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = r.Int()
	case *string:
		*p = randomString(r)
	case *uuid.UUID:
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return v, fmt.Errorf("generate uuid: %w", err)
		}
		*p = id
	}
	return v, nil
}

func randomString(r *rand.Rand) string {
	n := minStringLen + r.Intn(maxStringLen-minStringLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}
