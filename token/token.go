// Package token membuat dan memverifikasi kredensial admin.
// Verifikasi bersifat stateless: hanya fungsi dari secret dan token,
// tanpa session store. Tidak ada revocation; token berlaku sampai expiry.
package token

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
)

// TTL adalah masa berlaku token sejak diterbitkan.
const TTL = 2 * time.Hour

const footer = "nourshop-admin"

// ErrExpired dikembalikan ketika token valid tapi sudah kedaluwarsa.
var ErrExpired = errors.New("token expired")

// Issue menerbitkan token paseto v2.local untuk admin yang diberikan.
func Issue(secret []byte, adminID string, now time.Time) (string, error) {
	jsonToken := paseto.JSONToken{
		Subject:    adminID,
		IssuedAt:   now,
		Expiration: now.Add(TTL),
	}
	return paseto.NewV2().Encrypt(secret, jsonToken, footer)
}

// Verify mendekripsi token dan mengembalikan ID admin di dalamnya.
func Verify(secret []byte, token string, now time.Time) (string, error) {
	var jsonToken paseto.JSONToken
	var f string
	if err := paseto.NewV2().Decrypt(token, secret, &jsonToken, &f); err != nil {
		return "", err
	}
	if now.After(jsonToken.Expiration) {
		return "", ErrExpired
	}
	return jsonToken.Subject, nil
}
