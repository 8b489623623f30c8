package password

import (
	"errors"
	"testing"

	"github.com/dmaslov/passport/internal/common"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *Hasher {
	t.Helper()
	// MinCost keeps the test suite fast; the cost does not change behavior.
	return NewHasher(bcrypt.MinCost)
}

func TestHashVerify_RoundTrip(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	digest, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if digest == "pw123456" {
		t.Fatalf("digest equals plaintext")
	}

	ok, err := h.Verify("pw123456", digest)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match for correct password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	digest, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("wrong", digest)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHash_SelfSalting(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	d1, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two digests of the same plaintext must differ")
	}

	for _, d := range []string{d1, d2} {
		ok, err := h.Verify("pw123456", d)
		if err != nil || !ok {
			t.Fatalf("digest %q did not verify: ok=%v err=%v", d, ok, err)
		}
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	_, err := h.Verify("pw123456", "not-a-bcrypt-digest")
	if err == nil {
		t.Fatalf("expected error for malformed digest")
	}
	if !errors.Is(err, common.ErrInvalidHash) {
		t.Fatalf("expected common.ErrInvalidHash, got %v", err)
	}
}

func TestNewHasher_CostFloor(t *testing.T) {
	t.Parallel()

	h := NewHasher(0)
	if h.cost != DefaultCost {
		t.Fatalf("expected cost floor %d, got %d", DefaultCost, h.cost)
	}
}
