// Package jwks implementa auth.AuthVerifier validando JWT RS256 contra un JWKS.
//
// El key set se descarga una vez al arrancar (LoadKeySet) y queda en memoria;
// no hay refresh en caliente, rotar claves implica reiniciar el proceso.
package jwks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/platform/httpclient"
	"mew-mate-api/internal/ports/auth"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenEmpty = errors.New("token is empty")

type Config struct {
	URL string
	// APIKey opcional; se manda como "Authorization: Bearer <key>" al pedir el JWKS.
	APIKey   string
	Issuer   string
	Audience string
	Leeway   time.Duration
}

// LoadKeySet descarga el JWKS y lo deja listo para verificar firmas.
func LoadKeySet(ctx context.Context, hc *httpclient.Client, cfg Config) (keyfunc.Keyfunc, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("jwks: url is required")
	}

	headers := map[string]string{}
	if k := strings.TrimSpace(cfg.APIKey); k != "" {
		headers["Authorization"] = "Bearer " + k
	}

	var raw json.RawMessage
	if err := hc.GetJSON(ctx, cfg.URL, headers, &raw); err != nil {
		return nil, fmt.Errorf("jwks: fetch key set: %w", err)
	}

	kf, err := keyfunc.NewJWKSetJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("jwks: parse key set: %w", err)
	}
	return kf, nil
}

// tokenClaims acepta el email opcional además de los claims registrados.
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	keys   keyfunc.Keyfunc
	parser *jwt.Parser
}

func NewVerifier(keys keyfunc.Keyfunc, cfg Config) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}
	if aud := strings.TrimSpace(cfg.Audience); aud != "" {
		opts = append(opts, jwt.WithAudience(aud))
	}
	if cfg.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(cfg.Leeway))
	}

	return &Verifier{
		keys:   keys,
		parser: jwt.NewParser(opts...),
	}
}

// Verify valida firma, expiración (y issuer/audience si están configurados).
// El subject del token es el falconer_id del caller.
func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthenticated, ErrTokenEmpty)
	}

	var claims tokenClaims
	if _, err := v.parser.ParseWithClaims(token, &claims, v.keys.Keyfunc); err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthenticated, err)
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthenticated)
	}

	return auth.Claims{
		UserID: sub,
		Email:  strings.TrimSpace(claims.Email),
	}, nil
}

var _ auth.AuthVerifier = (*Verifier)(nil)
