package user

import (
	"context"
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   Role
		wantOK bool
	}{
		{"USER", RoleUser, true},
		{"admin", RoleAdmin, true},
		{" Admin ", RoleAdmin, true},
		{"", "", false},
		{"root", "ROOT", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseRole(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIdentity_CanAccess(t *testing.T) {
	t.Parallel()

	owner := Identity{UserID: "u-1", Role: RoleUser}
	admin := Identity{UserID: "u-9", Role: RoleAdmin}

	if !owner.CanAccess("u-1") {
		t.Error("owner should access own resources")
	}
	if owner.CanAccess("u-2") {
		t.Error("user should not access another user's resources")
	}
	if !admin.CanAccess("u-2") {
		t.Error("admin should access any resources")
	}
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFrom(context.Background()); ok {
		t.Error("IdentityFrom(empty ctx) ok = true, want false")
	}

	want := Identity{UserID: "u-1", Role: RoleAdmin}
	got, ok := IdentityFrom(WithIdentity(context.Background(), want))
	if !ok || got != want {
		t.Errorf("IdentityFrom = %+v, %v; want %+v, true", got, ok, want)
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Errorf("NormalizeEmail = %q, want %q", got, "alice@example.com")
	}
}
