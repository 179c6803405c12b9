// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive

import (
	"context"
	"runtime"
	"time"

	"github.com/nemkit/nemkit/address"
	"github.com/nemkit/nemkit/id"
	"github.com/nemkit/nemkit/internal/progresslog"
	"golang.org/x/sync/errgroup"
)

// Config tunes a batch derivation.  The zero value is usable.
type Config struct {
	// Workers is the maximum number of inputs derived at the same time.
	// Values less than one select the number of CPUs.
	Workers int

	// ProgressInterval is the minimum time between progress messages.
	// Values less than or equal to zero select 10 seconds.
	ProgressInterval time.Duration

	// Cache, when set, is consulted for namespace paths.
	Cache *id.PathCache
}

// workers returns the effective worker bound for cfg.
func (cfg *Config) workers() int {
	if cfg == nil || cfg.Workers < 1 {
		return runtime.NumCPU()
	}
	return cfg.Workers
}

// interval returns the effective progress interval for cfg.
func (cfg *Config) interval() time.Duration {
	if cfg == nil {
		return 0
	}
	return cfg.ProgressInterval
}

// run calls fn for every index in [0, n) using at most cfg.workers()
// goroutines.  The first error, or cancellation of ctx, stops the remaining
// work and is returned.
func run(ctx context.Context, n int, cfg *Config, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return &ItemError{Index: i, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Addresses derives the address of every public key on the provided network.
// The results are in the same order as the keys.
//
// Derivation stops at the first key that fails, in which case an *ItemError
// naming that key is returned along with no results.
func Addresses(ctx context.Context, pubKeys [][]byte, net address.NetworkType,
	cfg *Config) ([]address.Decoded, error) {

	progress := progresslog.New("Derived", "address", "addresses",
		cfg.interval(), log)
	log.Debugf("Deriving %d %s addresses with %d workers", len(pubKeys), net,
		cfg.workers())

	results := make([]address.Decoded, len(pubKeys))
	err := run(ctx, len(pubKeys), cfg, func(i int) error {
		decoded, err := address.PublicKeyToAddress(pubKeys[i], net)
		if err != nil {
			progress.LogProgress("<invalid key>", true, false)
			return err
		}
		results[i] = decoded
		progress.LogProgress(decoded.String(), false, false)
		return nil
	})
	if err != nil {
		log.Debugf("Address derivation stopped: %v", err)
		return nil, err
	}
	if len(pubKeys) > 0 {
		log.Infof("Derived %d addresses", progress.Total())
	}
	return results, nil
}

// NamespaceIDs derives the id of the deepest level of every namespace name.
// The results are in the same order as the names.  The path cache from cfg is
// used when set.
//
// Derivation stops at the first invalid name, in which case an *ItemError
// wrapping the *id.FqnError is returned along with no results.
func NamespaceIDs(ctx context.Context, names []string,
	cfg *Config) ([]id.NamespaceID, error) {

	var cache *id.PathCache
	if cfg != nil {
		cache = cfg.Cache
	}
	progress := progresslog.New("Derived", "namespace id", "namespace ids",
		cfg.interval(), log)

	results := make([]id.NamespaceID, len(names))
	err := run(ctx, len(names), cfg, func(i int) error {
		var nsID id.NamespaceID
		var err error
		if cache != nil {
			nsID, err = cache.NamespaceID(names[i])
		} else {
			nsID, err = id.NamespaceIDFromName(names[i])
		}
		progress.LogProgress(names[i], err != nil, false)
		if err != nil {
			return err
		}
		results[i] = nsID
		return nil
	})
	if err != nil {
		log.Debugf("Namespace id derivation stopped: %v", err)
		return nil, err
	}
	if len(names) > 0 {
		log.Infof("Derived %d namespace ids", progress.Total())
	}
	return results, nil
}
