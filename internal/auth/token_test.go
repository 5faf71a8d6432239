package auth

import (
	"testing"
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.GenerateToken("emp-1", domain.RoleMentor)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("GenerateToken() expiry %v already passed", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.EmployeeID != "emp-1" {
		t.Errorf("claims.EmployeeID = %q, want %q", claims.EmployeeID, "emp-1")
	}
	if claims.Role != domain.RoleMentor {
		t.Errorf("claims.Role = %q, want %q", claims.Role, domain.RoleMentor)
	}
}

func TestParseTokenRejects(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	short := NewTokenManager("test-secret", time.Millisecond)
	expiredToken, _, err := short.GenerateToken("emp-1", domain.RoleMentor)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	foreignToken, _, err := other.GenerateToken("emp-1", domain.RoleMentor)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: foreignToken},
		{name: "expired", token: expiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tm.ParseToken(tt.token); err == nil {
				t.Errorf("ParseToken(%q) error = nil, want error", tt.name)
			}
		})
	}
}
