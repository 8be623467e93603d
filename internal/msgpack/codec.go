// Package msgpack provides MessagePack encoding/decoding for Flight action
// bodies and results.
package msgpack

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmpty is returned when an action body has no bytes.
var ErrEmpty = errors.New("empty MessagePack data")

// Decode deserializes MessagePack data into v, which must be a pointer.
//
//	var req msgpack.MapSQLRequest
//	err := msgpack.Decode(action.Body, &req)
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmpty
	}

	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return nil
}

// Encode serializes v into MessagePack format.
func Encode(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	return data, nil
}
