// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive

import (
	"context"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	"github.com/nemkit/nemkit/address"
	"github.com/nemkit/nemkit/id"
)

var testLogger = slog.NewBackend(&testWriter{}).Logger("TEST")

type testWriter struct{}

// Required to create a Write function for the testWriter
func (tw *testWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func TestUseLogger(t *testing.T) {
	UseLogger(testLogger)

	if log != testLogger {
		t.Errorf("Expected log to be set to testLogger, got %v", log)
	}
}

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  It will only (and must only) be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// testKeys returns n distinct public keys.
func testKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		key := hexToBytes("3485d98efd7eb07adafcfd1a157d89de2796a95e780813c" +
			"0258af3f5f84ed8cb")
		key[0] = byte(i)
		key[1] = byte(i >> 8)
		keys[i] = key
	}
	return keys
}

// TestAddresses ensures batch derivation matches one at a time derivation and
// keeps input order for a range of worker counts.
func TestAddresses(t *testing.T) {
	t.Parallel()

	keys := testKeys(257)
	want := make([]address.Decoded, len(keys))
	for i, key := range keys {
		decoded, err := address.PublicKeyToAddress(key, address.TestNet)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want[i] = decoded
	}

	for _, workers := range []int{0, 1, 3, 64} {
		cfg := &Config{Workers: workers}
		got, err := Addresses(context.Background(), keys, address.TestNet, cfg)
		if err != nil {
			t.Fatalf("workers %d: unexpected error: %v", workers, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("workers %d: mismatched addresses", workers)
		}
	}

	got, err := Addresses(context.Background(), keys[:1], address.TestNet, nil)
	if err != nil {
		t.Fatalf("nil config: unexpected error: %v", err)
	}
	if got[0] != want[0] {
		t.Fatalf("nil config: mismatched address -- got %s, want %s", got[0],
			want[0])
	}

	got, err = Addresses(context.Background(), nil, address.TestNet, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("empty batch -- got %v, %v", got, err)
	}
}

// TestAddressesErrors ensures an invalid key stops the batch and is reported
// by index without partial results.
func TestAddressesErrors(t *testing.T) {
	t.Parallel()

	keys := testKeys(50)
	keys[17] = keys[17][:31]

	got, err := Addresses(context.Background(), keys, address.MainNet,
		&Config{Workers: 1})
	if got != nil {
		t.Fatalf("unexpected partial results: %v", spew.Sdump(got))
	}
	var itemErr *ItemError
	if !errors.As(err, &itemErr) {
		t.Fatalf("mismatched err type -- got %T (%v)", err, err)
	}
	if itemErr.Index != 17 {
		t.Fatalf("mismatched index -- got %d, want 17", itemErr.Index)
	}
	if !errors.Is(err, address.ErrInvalidLength) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			address.ErrInvalidLength)
	}
}

// TestAddressesCanceled ensures a canceled context stops the batch.
func TestAddressesCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := Addresses(ctx, testKeys(10), address.MainNet, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("mismatched err -- got %v, want %v", err, context.Canceled)
	}
	if got != nil {
		t.Fatalf("unexpected results: %v", got)
	}
}

// TestNamespaceIDs ensures batch namespace derivation with and without a path
// cache matches one at a time derivation.
func TestNamespaceIDs(t *testing.T) {
	t.Parallel()

	names := []string{"nem", "nem.xem", "cat", "cat.currency", "nem.xem",
		"foo.bar.baz", "nem.owner.test1"}
	want := []id.NamespaceID{
		0x84b3552d375ffa4b, 0xd525ad41d95fcf29, 0xb1497f5fba651b4f,
		0x85bbea6cc462b244, 0xd525ad41d95fcf29, 0xd747f3a2987a9b64,
		0xf8495aee892fa108,
	}

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"no cache", &Config{Workers: 2}},
		{"cache", &Config{Workers: 4, Cache: id.NewPathCache(8)}},
		{"tiny cache", &Config{Cache: id.NewPathCache(1)}},
	}

	for _, test := range tests {
		got, err := NamespaceIDs(context.Background(), names, test.cfg)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%q: mismatched ids -- got %v, want %v", test.name,
				spew.Sdump(got), spew.Sdump(want))
		}
	}
}

// TestNamespaceIDsErrors ensures an invalid name stops the batch.
func TestNamespaceIDsErrors(t *testing.T) {
	t.Parallel()

	names := []string{"nem", "nem.xem", "Bad.Name", "cat"}
	cfg := &Config{Workers: 1, Cache: id.NewPathCache(4)}
	got, err := NamespaceIDs(context.Background(), names, cfg)
	if got != nil {
		t.Fatalf("unexpected partial results: %v", got)
	}
	if !errors.Is(err, id.ErrInvalidFqn) {
		t.Fatalf("mismatched err -- got %v, want %v", err, id.ErrInvalidFqn)
	}
	var fqnErr *id.FqnError
	if !errors.As(err, &fqnErr) || fqnErr.Name != "Bad.Name" {
		t.Fatalf("mismatched fqn error -- got %v", err)
	}
	var itemErr *ItemError
	if !errors.As(err, &itemErr) || itemErr.Index != 2 {
		t.Fatalf("mismatched item error -- got %v", err)
	}
}

// BenchmarkAddresses benchmarks deriving a batch of addresses.
func BenchmarkAddresses(b *testing.B) {
	keys := testKeys(1024)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Addresses(ctx, keys, address.MainNet, nil)
	}
}
