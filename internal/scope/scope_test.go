package scope

import (
	"testing"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name    string
		ident   Identity
		wantAll bool
	}{
		{"admin sees all", Identity{UserID: "a1", Role: models.RoleAdmin}, true},
		{"user sees own", Identity{UserID: "u1", Role: models.RoleUser}, false},
		{"unknown role treated as user", Identity{UserID: "u2", Role: "guest"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := Resolve(tc.ident)
			if sc.IsAll() != tc.wantAll {
				t.Errorf("IsAll() = %v, want %v", sc.IsAll(), tc.wantAll)
			}
			if !tc.wantAll && sc.UserID != tc.ident.UserID {
				t.Errorf("UserID = %q, want %q", sc.UserID, tc.ident.UserID)
			}
		})
	}
}

func TestScopeMatches(t *testing.T) {
	if !All.Matches("anyone") {
		t.Error("All must match every owner")
	}
	sc := ForUser("u1")
	if !sc.Matches("u1") {
		t.Error("own records must match")
	}
	if sc.Matches("u2") {
		t.Error("foreign records must not match")
	}
}
