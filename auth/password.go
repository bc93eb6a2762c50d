package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// storedKind classifies password material once, at the verification
// boundary, instead of scattering prefix checks across call sites.
type storedKind int

const (
	kindHashed storedKind = iota
	kindPlaintext
)

func classify(stored string) storedKind {
	// bcrypt hashes start with $2, $2a, $2b or $2y
	if strings.HasPrefix(stored, "$2") {
		return kindHashed
	}
	return kindPlaintext
}

// HashPassword returns a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a candidate password against stored material.
// Stored material is either a bcrypt hash or legacy cleartext. needsRehash
// is true when the match went through the cleartext path: the caller should
// rehash and persist, best-effort, so the row takes the hashed path next
// time. Malformed hashes verify false; no error ever escapes.
func VerifyPassword(candidate, stored string) (ok, needsRehash bool) {
	switch classify(stored) {
	case kindHashed:
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate))
		return err == nil, false
	default:
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1 {
			return true, true
		}
		return false, false
	}
}
