package auth

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with subdomain",
			email:   "test@mail.example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus",
			email:   "test+tag@example.com",
			wantErr: false,
		},
		{
			name:    "empty email",
			email:   "",
			wantErr: true,
		},
		{
			name:    "invalid - no @",
			email:   "invalid.com",
			wantErr: true,
		},
		{
			name:    "invalid - no domain",
			email:   "test@",
			wantErr: true,
		},
		{
			name:    "invalid - no local part",
			email:   "@example.com",
			wantErr: true,
		},
		{
			name:    "display name",
			email:   "Jane <jane@example.com>",
			wantErr: true,
		},
		{
			name:    "too long",
			email:   strings.Repeat("a", 300) + "@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Test@Example.COM "); got != "test@example.com" {
		t.Errorf("NormalizeEmail() = %q, want %q", got, "test@example.com")
	}
}
