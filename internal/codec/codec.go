// Package codec turns track info into the opaque token handed to the host and back.
//
// A token is a base62 string wrapping a msgpack document that carries a format
// version next to the track info, so tokens survive being placed in URLs and
// query strings without escaping.
package codec

import (
	"errors"
	"fmt"

	"github.com/jxskiss/base62"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/cesargomez89/saavnsource/internal/domain"
)

const formatVersion = 1

var (
	ErrInvalidToken       = errors.New("codec: invalid track token")
	ErrUnsupportedVersion = errors.New("codec: unsupported token version")
)

type payload struct {
	Version uint8            `msgpack:"v"`
	Info    domain.TrackInfo `msgpack:"i"`
}

// Codec encodes and decodes track tokens. The zero value is ready to use.
type Codec struct{}

func New() *Codec {
	return &Codec{}
}

// Encode serialises info into an opaque token.
func (c *Codec) Encode(info domain.TrackInfo) (string, error) {
	data, err := msgpack.Marshal(payload{Version: formatVersion, Info: info})
	if err != nil {
		return "", fmt.Errorf("codec: encode %s: %w", info.Identifier, err)
	}
	return base62.EncodeToString(data), nil
}

// Decode reverses Encode.
func (c *Codec) Decode(token string) (domain.TrackInfo, error) {
	if token == "" {
		return domain.TrackInfo{}, ErrInvalidToken
	}

	data, err := base62.DecodeString(token)
	if err != nil {
		return domain.TrackInfo{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return domain.TrackInfo{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if p.Version != formatVersion {
		return domain.TrackInfo{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	}

	return p.Info, nil
}
