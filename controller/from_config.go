package controller

import (
	"errors"
	"fmt"

	"github.com/amp-labs/sections/config"
)

var ErrNilConfig = errors.New("controller configuration is nil")

// FromConfig builds a Controller whose name, parallelism and sort descriptors
// come from a parsed configuration file. Grouping is code, not configuration,
// so sectionKey and compareKeys are passed separately. A nil cfg returns
// ErrNilConfig.
func FromConfig[K comparable, T comparable](
	cfg *config.Controller,
	fields config.Fields[T],
	sectionKey func(T) K,
	compareKeys func(a, b K) int,
) (*Controller[K, T], error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	descriptors, err := config.Resolve(cfg.SortDescriptors, fields)
	if err != nil {
		return nil, fmt.Errorf("resolving sort descriptors for %q: %w", cfg.Name, err)
	}

	return New(Config[K, T]{
		Name:            cfg.Name,
		SectionKey:      sectionKey,
		CompareKeys:     compareKeys,
		SortDescriptors: descriptors,
		Parallelism:     cfg.Parallelism,
	})
}
