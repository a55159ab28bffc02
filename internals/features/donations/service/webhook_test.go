package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func paystackSign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaystackSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"CHC-1","status":"success"}}`)

	assert.True(t, VerifyPaystackSignature(secret, body, paystackSign(secret, body)))
	assert.False(t, VerifyPaystackSignature(secret, body, paystackSign("wrong_key", body)))
	assert.False(t, VerifyPaystackSignature(secret, []byte(`tampered`), paystackSign(secret, body)))
	assert.False(t, VerifyPaystackSignature(secret, body, ""))
	assert.False(t, VerifyPaystackSignature("", body, paystackSign(secret, body)))
}
