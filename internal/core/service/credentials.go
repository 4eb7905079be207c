package service

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 12

// tempPasswordAlphabet deliberately omits easily-confused characters
// (0/O, 1/l/I) since temporary passwords are retyped from an email.
const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether password matches hash. A mismatch is a
// plain false, never an error.
func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// generateTemporaryPassword returns a one-time initial password drawn from
// crypto/rand.
func generateTemporaryPassword() (string, error) {
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	buf := make([]byte, tempPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
