package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/art-space/artspace/models"
)

// ResetAudience is the "aud" claim stamped on password-reset tokens so they
// can never be presented as session tokens (and vice versa).
const ResetAudience = "password-reset"

// GenerateJWTToken creates a signed HMAC-SHA256 session JWT with the given
// parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateJWTToken(issuer, "", userID, tokenDuration, signKey)
}

// GenerateResetJWTToken creates a signed HMAC-SHA256 password-reset JWT.
// It carries the same claim set as a session token plus the [ResetAudience]
// audience, so the token is accepted only by [ValidateAndParseResetJWTToken].
func GenerateResetJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateJWTToken(issuer, ResetAudience, userID, tokenDuration, signKey)
}

func generateJWTToken(issuer, audience string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given session JWT string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// A token carrying the [ResetAudience] audience is rejected: reset tokens
// must never authenticate regular requests.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := parseJWTToken(tokenString, tokenSignKey, tokenIssuer)
	if err != nil {
		return models.Token{}, err
	}

	audience, err := token.Claims.GetAudience()
	if err == nil {
		for _, aud := range audience {
			if aud == ResetAudience {
				return models.Token{}, errors.New("reset token presented as session token")
			}
		}
	}

	return token, nil
}

// ValidateAndParseResetJWTToken validates a password-reset JWT string.
// In addition to the checks performed by [ValidateAndParseJWTToken] it
// requires the [ResetAudience] audience claim.
func ValidateAndParseResetJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	return parseJWTToken(tokenString, tokenSignKey, tokenIssuer, jwt.WithAudience(ResetAudience))
}

func parseJWTToken(tokenString, tokenSignKey, tokenIssuer string, opts ...jwt.ParserOption) (models.Token, error) {
	opts = append(opts, jwt.WithIssuer(tokenIssuer))
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	// return the parsed claims, not a fresh struct, so the embedded
	// RegisteredClaims survive for downstream accessors like GetUserID
	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected claims type")
	}
	claims.Token = token
	claims.SignedString = tokenString
	claims.UserID = userID

	return *claims, nil
}

// ParseBearerToken extracts the token part from an "Authorization" header
// value of the form "<scheme> <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
