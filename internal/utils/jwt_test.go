package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.ExpiresAt == nil || token.IssuedAt == nil {
		t.Fatal("expected both exp and iat claims to be set")
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt.Time); got != duration {
		t.Errorf("expected token lifetime %v, got %v", duration, got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"
	duration := time.Minute * 5

	genToken, _ := GenerateJWTToken(issuer, userID, duration, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, 1, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	genToken, _ := GenerateJWTToken(issuer, 1, -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsResetToken(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	resetToken, err := GenerateResetJWTToken(issuer, 7, time.Hour, key)
	if err != nil {
		t.Fatalf("expected reset token generation to succeed, got: %v", err)
	}

	// A reset token must never authenticate a regular request.
	_, err = ValidateAndParseJWTToken(resetToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected reset token to be rejected as session token, got nil")
	}
}

func TestValidateAndParseJWTToken_PopulatesClaims(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	genToken, _ := GenerateJWTToken(issuer, 314, time.Hour, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	// the parsed claims must survive, not just the cached UserID
	if parsedToken.Subject != "314" {
		t.Errorf("expected subject '314', got %q", parsedToken.Subject)
	}
	if parsedToken.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, parsedToken.Issuer)
	}
	if parsedToken.ExpiresAt == nil {
		t.Error("expected exp claim to be populated")
	}
	if parsedToken.SignedString != genToken.SignedString {
		t.Error("expected SignedString to carry the compact token form")
	}

	userID, err := parsedToken.GetUserID()
	if err != nil {
		t.Fatalf("expected GetUserID to succeed on a parsed token, got: %v", err)
	}
	if userID != 314 {
		t.Errorf("expected userID 314, got %d", userID)
	}
}

func TestValidateAndParseResetJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(789)
	key := "key"

	resetToken, _ := GenerateResetJWTToken(issuer, userID, time.Hour, key)

	parsedToken, err := ValidateAndParseResetJWTToken(resetToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected reset token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}

	got, err := parsedToken.GetUserID()
	if err != nil {
		t.Fatalf("expected GetUserID to succeed on a parsed reset token, got: %v", err)
	}
	if got != userID {
		t.Errorf("expected userID %d from claims, got %d", userID, got)
	}
}

func TestValidateAndParseResetJWTToken_RejectsSessionToken(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	sessionToken, _ := GenerateJWTToken(issuer, 7, time.Hour, key)

	// And the other way round: a session token cannot reset a password.
	_, err := ValidateAndParseResetJWTToken(sessionToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected session token to be rejected as reset token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"surrounding whitespace", "  Bearer abc.def.ghi  ", "abc.def.ghi", false},
		{"scheme only", "Bearer", "", true},
		{"empty token part", "Bearer ", "", true},
		{"empty header", "", "", true},
		{"too many parts", "Bearer one two", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, got)
			}
		})
	}
}
