package passhash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the hashes already stored by the previous backend.
const Cost = 10

// ErrTooLong is returned for passwords bcrypt would otherwise truncate.
var ErrTooLong = bcrypt.ErrPasswordTooLong

func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("passhash: %w", err)
	}
	return string(b), nil
}

// Matches reports whether plain hashes to stored. A stored value that is not
// a bcrypt hash never matches.
func Matches(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
