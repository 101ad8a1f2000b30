// Package googleauth exchanges a service-account assertion for a Google
// OAuth2 access token.
package googleauth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

const (
	// CloudPlatformScope is requested for every token.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
	// DefaultTokenURL is used when the key carries no token_uri.
	DefaultTokenURL = "https://oauth2.googleapis.com/token"

	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionTTL   = time.Hour
	// expiryMargin is subtracted from the token lifetime before caching.
	expiryMargin = 60 * time.Second
	cacheKey     = "access_token"
)

// ServiceAccountKey is the subset of a Google service-account key file
// needed to sign assertions.
type ServiceAccountKey struct {
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	TokenType        string `json:"token_type"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenSource implements port.TokenSource. Tokens are cached until shortly
// before they expire; concurrent callers share one exchange.
type TokenSource struct {
	http     *resty.Client
	key      *rsa.PrivateKey
	keyID    string
	email    string
	tokenURL string
	cache    *cache.Cache
	mu       sync.Mutex
	now      func() time.Time
}

// ParseServiceAccountKey decodes the key JSON.
func ParseServiceAccountKey(raw []byte) (ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return key, fmt.Errorf("decode service account key: %w", err)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return key, errors.New("service account key needs client_email and private_key")
	}
	return key, nil
}

// NewTokenSource creates a token source for key. A non-empty tokenURL
// overrides key.TokenURI.
func NewTokenSource(key ServiceAccountKey, tokenURL string, timeout time.Duration) (*TokenSource, error) {
	private, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("parse service account private key: %w", err)
	}
	if tokenURL == "" {
		tokenURL = key.TokenURI
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return &TokenSource{
		http:     resty.New().SetTimeout(timeout),
		key:      private,
		keyID:    key.PrivateKeyID,
		email:    key.ClientEmail,
		tokenURL: tokenURL,
		cache:    cache.New(cache.NoExpiration, 10*time.Minute),
		now:      time.Now,
	}, nil
}

// Token returns a cached access token or exchanges a new assertion.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if tok, ok := s.cache.Get(cacheKey); ok {
		return tok.(string), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok, ok := s.cache.Get(cacheKey); ok {
		return tok.(string), nil
	}

	assertion, err := s.assertion()
	if err != nil {
		return "", err
	}
	tok, err := s.exchange(ctx, assertion)
	if err != nil {
		return "", err
	}

	if ttl := time.Duration(tok.ExpiresIn)*time.Second - expiryMargin; ttl > 0 {
		s.cache.Set(cacheKey, tok.AccessToken, ttl)
	}
	return tok.AccessToken, nil
}

// assertion signs the RS256 JWT sent to the token endpoint.
func (s *TokenSource) assertion() (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"iss":   s.email,
		"scope": CloudPlatformScope,
		"aud":   s.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.keyID != "" {
		token.Header["kid"] = s.keyID
	}
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}
	return signed, nil
}

func (s *TokenSource) exchange(ctx context.Context, assertion string) (tokenResponse, error) {
	var body tokenResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		SetResult(&body).
		SetError(&body).
		Post(s.tokenURL)
	if err != nil {
		return body, fmt.Errorf("token request: %w", err)
	}
	if !resp.IsSuccess() {
		return body, fmt.Errorf("token endpoint status %d: %s %s", resp.StatusCode(), body.Error, body.ErrorDescription)
	}
	if body.AccessToken == "" {
		return body, errors.New("token endpoint returned no access_token")
	}
	return body, nil
}
