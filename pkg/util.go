package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"unsafe"
)

// UserIDHeader carries the identity of the acting user, set by the
// API gateway / mobile clients on every request.
const UserIDHeader = "X-FIT-USER-ID"

var ErrNoUserID = errors.New("user id missing or invalid")

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	// Note that err == nil only if we read len(b) bytes.
	if err != nil {
		return nil, err
	}

	return b, nil
}

// GenerateRandomString returns a URL-safe, base64 encoded
// securely generated random string.
func GenerateRandomString(s int) (string, error) {
	b, err := GenerateRandomBytes(s)
	return base64.URLEncoding.EncodeToString(b), err
}

// NewItemID returns a fresh hex identifier for journal items
// that arrive without one.
func NewItemID() (string, error) {
	b, err := GenerateRandomBytes(12)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// UserIDFromRequest extracts the acting user id from the request headers.
func UserIDFromRequest(r *http.Request) (int, error) {
	idStr := r.Header.Get(UserIDHeader)
	if idStr == "" {
		return 0, ErrNoUserID
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, ErrNoUserID
	}
	return id, nil
}
