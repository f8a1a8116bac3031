package utils

import (
	"strings"
	"testing"
)

func TestNewMerchantTransactionID(t *testing.T) {
	id := NewMerchantTransactionID()
	if !strings.HasPrefix(id, "MT") {
		t.Fatalf("expected MT prefix, got %q", id)
	}
	if len(id) < 15 {
		t.Fatalf("id suspiciously short: %q", id)
	}
}

func TestNewMerchantTransactionIDUniqueUnderRapidCalls(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewMerchantTransactionID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate transaction id generated: %q", id)
		}
		seen[id] = struct{}{}
	}
}
