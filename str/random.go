package str

import (
	"crypto/rand"
	"math/big"
)

// Random returns n characters drawn uniformly from Alphabet using
// crypto/rand.
func Random(n int) (string, error) {
	if n < 0 {
		return "", ErrInvalidLength
	}
	limit := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		x, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = Alphabet[x.Int64()]
	}

	return string(buf), nil
}
