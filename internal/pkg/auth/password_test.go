package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_MinimumCost(t *testing.T) {
	for _, cost := range []int{0, 4, MinPasswordCost - 1} {
		hasher := NewBcryptHasher(cost)
		if hasher.cost != MinPasswordCost {
			t.Fatalf("cost %d: unexpected cost: %d", cost, hasher.cost)
		}
	}
}

func TestNewBcryptHasher_CustomCost(t *testing.T) {
	cost := MinPasswordCost + 2
	hasher := NewBcryptHasher(cost)
	if hasher.cost != cost {
		t.Fatalf("unexpected cost: %d", hasher.cost)
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(MinPasswordCost)
	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || hash == "secret" {
		t.Fatalf("unexpected hash %q", hash)
	}
	if got, err := bcrypt.Cost([]byte(hash)); err != nil || got != MinPasswordCost {
		t.Fatalf("unexpected cost in hash: %d (%v)", got, err)
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected compare error for wrong password")
	}
}

func TestBcryptHasher_SaltPerHash(t *testing.T) {
	hasher := NewBcryptHasher(MinPasswordCost)
	first, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestBcryptHasher_HashError(t *testing.T) {
	hasher := &BcryptHasher{cost: bcrypt.MaxCost + 1}
	if _, err := hasher.Hash("password"); err == nil {
		t.Fatal("expected hash error for invalid cost")
	}
}
