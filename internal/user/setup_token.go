package user

import (
	"crypto/rand"
	"encoding/base64"
)

const setupTokenBytes = 32

func newSetupToken() (string, error) {
	b := make([]byte, setupTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func setupLink(baseURL, token string) string {
	return baseURL + "/setup-account?token=" + token
}
