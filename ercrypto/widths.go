package ercrypto

import (
	"github.com/pkg/errors"

	"github.com/Evan-Clegern/liberc-crypto/nacha"
)

// Width names one of NACHA's fixed output sizes, in bytes.
type Width int

const (
	Width128 Width = 16
	Width256 Width = 32
	Width384 Width = 48
	Width512 Width = 64
	Width768 Width = 96
)

// ErrUnknownWidth is returned by Hash when w is not one of the Width
// constants.
var ErrUnknownWidth = errors.New("ercrypto: unrecognized nacha width")

// Hash runs the NACHA adapter matching w against in. extended selects the
// "E" (stepped-denominator) variant of that width.
func Hash(in []byte, w Width, extended bool) ([]byte, error) {
	switch w {
	case Width128:
		if extended {
			return nacha.HashData128E(in)
		}
		return nacha.HashData128(in)
	case Width256:
		if extended {
			return nacha.HashData256E(in)
		}
		return nacha.HashData256(in)
	case Width384:
		if extended {
			return nacha.HashData384E(in)
		}
		return nacha.HashData384(in)
	case Width512:
		if extended {
			return nacha.HashData512E(in)
		}
		return nacha.HashData512(in)
	case Width768:
		if extended {
			return nacha.HashData768E(in)
		}
		return nacha.HashData768(in)
	default:
		return nil, errors.Wrapf(ErrUnknownWidth, "width %d", int(w))
	}
}
