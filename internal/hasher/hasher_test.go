package hasher

import (
	"bytes"
	"testing"
)

func TestStorageKey_Stable(t *testing.T) {
	data := []byte("same bytes, same key")
	k1 := StorageKey(data, "webp")
	k2 := StorageKey(append([]byte(nil), data...), ".WEBP")
	if k1 != k2 {
		t.Fatalf("keys differ: %q vs %q", k1, k2)
	}
	if len(KeyHash(k1)) != KeyHexLen {
		t.Errorf("hash length: got %d, want %d", len(KeyHash(k1)), KeyHexLen)
	}
	if k1[len(k1)-5:] != ".webp" {
		t.Errorf("extension: got %q", k1)
	}
}

func TestStorageKey_DiffersByContent(t *testing.T) {
	if StorageKey([]byte("a"), "jpg") == StorageKey([]byte("b"), "jpg") {
		t.Error("different content produced the same key")
	}
}

func TestStorageKey_NoExtension(t *testing.T) {
	k := StorageKey([]byte("x"), "")
	if k != KeyHash(k) {
		t.Errorf("expected bare hash, got %q", k)
	}
}

func TestContentHashReader_MatchesContentHash(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB, 0xCD}, 4096)
	got, err := ContentHashReader(bytes.NewReader(data), KeyHexLen)
	if err != nil {
		t.Fatalf("hash reader: %v", err)
	}
	if want := ContentHash(data, KeyHexLen); got != want {
		t.Errorf("streaming hash %q != %q", got, want)
	}
}
