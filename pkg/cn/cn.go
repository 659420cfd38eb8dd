// Package cn merges utility class lists for HTML components.
//
//	cn.CN("px-2 py-1 bg-red-500", cn.Toggles{
//		{Class: "bg-blue-500", On: active},
//		{Class: "opacity-50", On: disabled},
//	})
//
// Later classes override earlier ones in the same utility group ("p-2 p-4"
// resolves to "p-4"), scoped by variant modifiers ("hover:p-2 p-4" keeps
// both).  Classes unknown to the taxonomy are kept and only deduplicated.
package cn

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"classmerge/internal/app"
	"classmerge/internal/core"
	"classmerge/internal/types"
)

// Toggle and Toggles are ordered conditional class inputs.
type (
	Toggle  = types.Toggle
	Toggles = types.Toggles
)

// Options configures a Resolver.
type Options struct {
	// TaxonomyFiles are layered over the bundled Tailwind v4 taxonomy.
	TaxonomyFiles []string
	// SkipDefault drops the bundled taxonomy; TaxonomyFiles must then be set.
	SkipDefault bool
	// CacheSize bounds the merge result cache; 0 disables it.
	CacheSize int
}

// Resolver merges class lists against one taxonomy.  It is safe for
// concurrent use.
type Resolver struct {
	merger core.Merger
}

func NewResolver(opts Options) (*Resolver, error) {
	merger, err := app.NewService().NewMerger(context.Background(), app.TaxonomyRequest{
		TaxonomyFiles: opts.TaxonomyFiles,
		SkipDefault:   opts.SkipDefault,
	}, opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{merger: merger}, nil
}

// CN flattens inputs and merges the result.
func (r *Resolver) CN(inputs ...any) string {
	return r.merger.Resolve(inputs...)
}

// Merge resolves a single whitespace-separated class list.
func (r *Resolver) Merge(classList string) string {
	return r.merger.Merge(classList)
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the shared Resolver backed by the bundled taxonomy.
func Default() *Resolver {
	defaultOnce.Do(func() {
		resolver, err := NewResolver(Options{CacheSize: core.DefaultCacheSize})
		if err != nil {
			// Dedupe-only fallback keeps CN total.
			log.Error().Err(err).Msg("failed to load bundled taxonomy")
			resolver = &Resolver{merger: core.NewMerger(nil, 0)}
		}
		defaultResolver = resolver
	})
	return defaultResolver
}

// CN merges inputs with the default Resolver.  It never fails; inputs of
// unsupported types contribute nothing.
func CN(inputs ...any) string {
	return Default().CN(inputs...)
}

// Merge resolves a class list with the default Resolver.
func Merge(classList string) string {
	return Default().Merge(classList)
}

// Join flattens inputs without resolving conflicts.
func Join(inputs ...any) string {
	return core.Join(inputs...)
}
