package domain

import (
	"errors"
	"testing"
)

func TestWalletError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewWalletError("bob", ErrWalletNotFound), "Wallet 'bob' not found"},
		{NewWalletError("alice", ErrWalletAlreadyExists), "Wallet 'alice' already exists"},
		{NewWalletError("alice", ErrInsufficientFunds), "wallet 'alice': insufficient funds"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if !errors.Is(NewWalletError("bob", ErrWalletNotFound), ErrWalletNotFound) {
		t.Fatal("expected WalletError to unwrap to its sentinel")
	}
}
