package logic

import (
	"testing"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
)

func TestAuthorizeOwner(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		ownerID string
		want    apperr.Kind
	}{
		{"owner matches", "u1", "u1", apperr.Kind(-1)},
		{"anonymous", "", "u1", apperr.KindUnauthenticated},
		{"different user", "u2", "u1", apperr.KindForbidden},
		{"anonymous with empty owner", "", "", apperr.KindUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwner(tt.actorID, tt.ownerID)
			if tt.want == apperr.Kind(-1) {
				if err != nil {
					t.Fatalf("expected allowed, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if apperr.KindOf(err) != tt.want {
				t.Fatalf("got kind %v, want %v", apperr.KindOf(err), tt.want)
			}
		})
	}
}
