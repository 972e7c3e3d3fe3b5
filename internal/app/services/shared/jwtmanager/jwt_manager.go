package jwtmanager

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const jwksPathFormat = "https://%s/.well-known/jwks.json"

var errMissingKeyID = errors.New("token header has no kid")

type Options struct {
	Issuer     string
	Audience   string
	Algorithms []string
	// Either JWKSURL or PublicKeyPEM must be set. The PEM key wins.
	JWKSURL      string
	PublicKeyPEM string
	CacheTTL     time.Duration
	HTTPClient   *http.Client
}

// JWTManager verifies bearer tokens issued by the identity provider.
type JWTManager struct {
	log        *zap.Logger
	issuer     string
	audience   string
	algorithms []string
	jwksURL    string
	cacheTTL   time.Duration
	httpClient *http.Client
	staticKey  *rsa.PublicKey

	// jwksMu guards jwks, which is created on first use so the server can
	// start while the identity provider is unreachable.
	jwksMu sync.Mutex
	jwks   *keyfunc.JWKS
}

func OptionsFromConfig(cfg *config.InternalConfig) Options {
	algorithms := make([]string, 0)
	for _, alg := range strings.Split(cfg.Auth0.Algorithms, ",") {
		if alg = strings.ToUpper(strings.TrimSpace(alg)); alg != "" {
			algorithms = append(algorithms, alg)
		}
	}
	return Options{
		Issuer:       fmt.Sprintf("https://%s/", cfg.Auth0.Domain),
		Audience:     cfg.Auth0.APIAudience,
		Algorithms:   algorithms,
		JWKSURL:      fmt.Sprintf(jwksPathFormat, cfg.Auth0.Domain),
		PublicKeyPEM: cfg.Auth0.PublicKeyPEM,
		CacheTTL:     time.Duration(cfg.Auth0.JWKSCacheTTLInMinutes) * time.Minute,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Auth0.JWKSFetchTimeoutInSecs) * time.Second,
		},
	}
}

func NewJWTManager(opts Options, log *zap.Logger) (contracts.TokenVerifier, error) {
	if len(opts.Algorithms) == 0 {
		opts.Algorithms = []string{jwt.SigningMethodRS256.Alg()}
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	jm := &JWTManager{
		log:        log,
		issuer:     opts.Issuer,
		audience:   opts.Audience,
		algorithms: opts.Algorithms,
		jwksURL:    opts.JWKSURL,
		cacheTTL:   opts.CacheTTL,
		httpClient: opts.HTTPClient,
	}

	pemKey := strings.TrimSpace(opts.PublicKeyPEM)
	if pemKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
		if err != nil {
			return nil, fmt.Errorf("parse AUTH0_PUBLIC_KEY_PEM: %w", err)
		}
		jm.staticKey = key
	} else if opts.JWKSURL == "" {
		return nil, errors.New("either a JWKS URL or a public key PEM is required")
	}

	return jm, nil
}

// VerifyToken checks signature, expiry, issuer and audience and returns the
// decoded claims.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (map[string]interface{}, error) {
	requestID := utils.RequestIDFromContext(ctx)
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	keyFunc, err := j.keyFunc()
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods(j.algorithms))
	_, err = parser.ParseWithClaims(token, claims, keyFunc)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return nil, customErr
		}
		if errors.Is(err, keyfunc.ErrKIDNotFound) || errors.Is(err, keyfunc.ErrKID) {
			kid, _ := tokenKeyID(token)
			j.log.Warn("JWTManager signing key not found", zap.String(constvars.LoggingKeyIDKey, kid))
			return nil, exceptions.ErrSigningKeyNotFound(err, kid)
		}
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorMalformed != 0 {
			return nil, exceptions.ErrTokenMalformed(err)
		}
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	if !claims.VerifyIssuer(j.issuer, true) {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("unexpected issuer %v", claims["iss"]))
	}
	if !claims.VerifyAudience(j.audience, true) {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("unexpected audience %v", claims["aud"]))
	}

	subject, _ := claims["sub"].(string)
	j.log.Debug("JWTManager.VerifyToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, subject),
	)

	decoded := make(map[string]interface{}, len(claims))
	for k, v := range claims {
		decoded[k] = v
	}
	return decoded, nil
}

func (j *JWTManager) keyFunc() (jwt.Keyfunc, error) {
	if j.staticKey != nil {
		return func(t *jwt.Token) (interface{}, error) {
			return j.staticKey, nil
		}, nil
	}

	jwks, err := j.keySet()
	if err != nil {
		return nil, err
	}
	return func(t *jwt.Token) (interface{}, error) {
		if kid, _ := t.Header["kid"].(string); kid == "" {
			return nil, exceptions.ErrSigningKeyNotFound(errMissingKeyID, kid)
		}
		return jwks.Keyfunc(t)
	}, nil
}

// keySet downloads the JWKS once and then leaves refreshing to keyfunc: every
// cacheTTL in the background, and on an unknown kid at most once per cacheTTL.
func (j *JWTManager) keySet() (*keyfunc.JWKS, error) {
	j.jwksMu.Lock()
	defer j.jwksMu.Unlock()

	if j.jwks != nil {
		return j.jwks, nil
	}

	jwks, err := keyfunc.Get(j.jwksURL, keyfunc.Options{
		Client:            j.httpClient,
		RefreshInterval:   j.cacheTTL,
		RefreshRateLimit:  j.cacheTTL,
		RefreshTimeout:    j.httpClient.Timeout,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			j.log.Error("JWTManager failed to refresh signing keys", zap.Error(err))
		},
	})
	if err != nil {
		j.log.Error("JWTManager failed to fetch signing keys", zap.Error(err))
		return nil, exceptions.ErrFetchSigningKeys(err)
	}
	j.jwks = jwks
	return jwks, nil
}

func tokenKeyID(token string) (string, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return "", false
	}
	kid, ok := parsed.Header["kid"].(string)
	return kid, ok
}
