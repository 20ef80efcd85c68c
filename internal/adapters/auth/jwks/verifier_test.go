package jwks

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/platform/httpclient"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKID = "test-key"

func jwkFor(pub *rsa.PublicKey) map[string]any {
	return map[string]any{
		"kty": "RSA",
		"kid": testKID,
		"alg": "RS256",
		"use": "sig",
		"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = testKID
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func newVerifier(t *testing.T, cfg Config) (*Verifier, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.APIKey != "" && r.Header.Get("Authorization") != "Bearer "+cfg.APIKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"keys": []any{jwkFor(&key.PublicKey)}})
	}))
	t.Cleanup(srv.Close)

	cfg.URL = srv.URL
	kf, err := LoadKeySet(context.Background(), httpclient.New(time.Second), cfg)
	require.NoError(t, err)

	return NewVerifier(kf, cfg), key
}

func TestVerify_ValidToken(t *testing.T) {
	v, key := newVerifier(t, Config{APIKey: "secret", Issuer: "mew-mate", Audience: "api"})

	token := sign(t, key, tokenClaims{
		Email: "hawk@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "falconer-1",
			Issuer:    "mew-mate",
			Audience:  jwt.ClaimStrings{"api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "falconer-1", claims.UserID)
	assert.Equal(t, "hawk@example.com", claims.Email)
}

func TestVerify_Rejects(t *testing.T) {
	v, key := newVerifier(t, Config{Issuer: "mew-mate"})
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]string{
		"empty":      "",
		"garbage":    "not.a.jwt",
		"expired":    sign(t, key, jwt.RegisteredClaims{Subject: "f", Issuer: "mew-mate", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}),
		"no exp":     sign(t, key, jwt.RegisteredClaims{Subject: "f", Issuer: "mew-mate"}),
		"bad issuer": sign(t, key, jwt.RegisteredClaims{Subject: "f", Issuer: "other", ExpiresAt: exp}),
		"no subject": sign(t, key, jwt.RegisteredClaims{Issuer: "mew-mate", ExpiresAt: exp}),
		"wrong key":  sign(t, other, jwt.RegisteredClaims{Subject: "f", Issuer: "mew-mate", ExpiresAt: exp}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), token)
			assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		})
	}
}

func TestLoadKeySet_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := LoadKeySet(context.Background(), httpclient.New(time.Second), Config{URL: srv.URL})
	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)

	_, err = LoadKeySet(context.Background(), httpclient.New(time.Second), Config{})
	assert.Error(t, err)
}
