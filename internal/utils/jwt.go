package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// Verification outcomes of [ValidateAndParseJWTToken]. Every failure of the
// parser is reported as exactly one of them.
var (
	ErrJWTMalformed    = errors.New("token is malformed")
	ErrJWTBadSignature = errors.New("token signature is invalid")
	ErrJWTExpired      = errors.New("token is expired")
)

var (
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")
	ErrJWTSigning       = errors.New("error signing JWT token")
)

// JWTParams are the settings shared by token generation and validation.
type JWTParams struct {
	// Issuer is written to and required in the iss claim.
	Issuer string
	// Audience is written to and required in the aud claim.
	Audience string
	// Duration is the lifetime of generated tokens.
	Duration time.Duration
	// SignKey is the HMAC secret, normally a []byte.
	SignKey any
}

// GenerateJWTToken creates an HMAC-SHA256 signed JWT for subject.
//
// The token includes the following standard claims:
//   - Issuer    (iss): params.Issuer
//   - Audience  (aud): params.Audience
//   - Subject   (sub): the username
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus params.Duration
//
// Returns [ErrInvalidJWTParams] if a parameter is empty or zero and
// [ErrJWTSigning] (wrapping the cause) if the key cannot sign.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, "jz", time.Now())
func GenerateJWTToken(params JWTParams, subject string, now time.Time) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Duration <= 0 || params.SignKey == nil || subject == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Audience:  jwt.ClaimStrings{params.Audience},
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(params.SignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTSigning, err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes:
//   - the algorithm must be HS256
//   - signature verification with params.SignKey
//   - iss and aud must equal params.Issuer and params.Audience
//   - exp must be present and later than now()
//   - sub must be present
//   - all three segments must be strict base64url
//
// Failures are classified as [ErrJWTExpired], [ErrJWTBadSignature] or
// [ErrJWTMalformed]; the parser error stays in the chain for logging.
func ValidateAndParseJWTToken(tokenString string, params JWTParams, now func() time.Time) (models.Token, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)

	var claims models.Claims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return params.SignKey, nil
	})
	if err != nil {
		return models.Token{}, classifyJWTError(parser, tokenString, err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

func classifyJWTError(parser *jwt.Parser, tokenString string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrJWTExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrJWTBadSignature, err)
	case errors.Is(err, jwt.ErrTokenMalformed) && onlySignatureUndecodable(parser, tokenString):
		return fmt.Errorf("%w: %w", ErrJWTBadSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrJWTMalformed, err)
	}
}

// onlySignatureUndecodable reports whether header and payload of tokenString
// decode while its signature segment does not. A '.' inside the signature
// splits it into extra segments, which counts as an undecodable signature.
func onlySignatureUndecodable(parser *jwt.Parser, tokenString string) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 3 {
		return false
	}

	for _, part := range parts[:2] {
		if _, err := parser.DecodeSegment(part); err != nil {
			return false
		}
	}

	if len(parts) > 3 {
		return true
	}

	_, err := parser.DecodeSegment(parts[2])
	return err != nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
