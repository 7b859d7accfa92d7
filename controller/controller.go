// Package controller groups objects into sorted sections and turns upstream
// change notifications into ordered list events for a presentation layer.
//
// A Controller owns one section.Section per grouping key. Every Apply routes
// each change to the affected section, lets the section place or remove the
// object, and records the resulting section and row indexes.
//
// A Controller is not safe for concurrent mutation: deliver all changes from
// one goroutine. Generation may be read from anywhere.
package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/amp-labs/sections/logger"
	"github.com/amp-labs/sections/optional"
	"github.com/amp-labs/sections/section"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/atomic"
)

const tracerName = "github.com/amp-labs/sections/controller"

var (
	ErrMissingSectionKey = errors.New("controller config has no SectionKey function")
	ErrMissingKeyOrder   = errors.New("controller config has no CompareKeys function")
)

// Config describes how objects are grouped and ordered.
type Config[K comparable, T comparable] struct {
	// Name labels logs and metrics. Defaults to "default".
	Name string

	// SectionKey returns the group an object currently belongs to.
	SectionKey func(T) K

	// CompareKeys orders sections. It must return 0 only for equal keys.
	CompareKeys func(a, b K) int

	// SortDescriptors order objects within every section.
	SortDescriptors []section.SortDescriptor[T]

	// Parallelism bounds the workers sorting sections during Load. Zero reads
	// SECTIONS_LOAD_WORKERS.
	Parallelism int
}

// Controller maintains the sectioned projection.
type Controller[K comparable, T comparable] struct {
	cfg Config[K, T]

	sections []*section.Section[K, T]

	// placed remembers the key each object was filed under. An object's
	// SectionKey may already report its new group when it is updated or
	// removed.
	placed map[T]K

	generation atomic.Uint64
}

// New validates cfg and returns an empty Controller.
func New[K comparable, T comparable](cfg Config[K, T]) (*Controller[K, T], error) {
	if cfg.SectionKey == nil {
		return nil, ErrMissingSectionKey
	}

	if cfg.CompareKeys == nil {
		return nil, ErrMissingKeyOrder
	}

	for i, d := range cfg.SortDescriptors {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: descriptor %d (%q)", section.ErrInvalidDescriptor, i, d.Key)
		}
	}

	if cfg.Name == "" {
		cfg.Name = "default"
	}

	cfg.SortDescriptors = slices.Clone(cfg.SortDescriptors)

	return &Controller[K, T]{
		cfg:    cfg,
		placed: make(map[T]K),
	}, nil
}

// Name returns the configured name.
func (c *Controller[K, T]) Name() string {
	return c.cfg.Name
}

// Generation increases every time an Apply or Load changes something.
func (c *Controller[K, T]) Generation() uint64 {
	return c.generation.Load()
}

// NumberOfSections returns the number of non-empty sections.
func (c *Controller[K, T]) NumberOfSections() int {
	return len(c.sections)
}

// Keys returns the section keys in section order.
func (c *Controller[K, T]) Keys() []K {
	keys := make([]K, len(c.sections))
	for i, s := range c.sections {
		keys[i] = s.KeyPath()
	}

	return keys
}

// SectionKeyAt returns the key of section i. It panics if i is out of range.
func (c *Controller[K, T]) SectionKeyAt(i int) K {
	return c.sections[i].KeyPath()
}

// NumberOfObjects returns the size of section i. It panics if i is out of range.
func (c *Controller[K, T]) NumberOfObjects(i int) int {
	return c.sections[i].Len()
}

// Objects returns a copy of section i. It panics if i is out of range.
func (c *Controller[K, T]) Objects(i int) []T {
	return c.sections[i].Objects()
}

// Len returns the number of objects across all sections.
func (c *Controller[K, T]) Len() int {
	return len(c.placed)
}

// ObjectAt returns the object at path. It panics if path is out of range.
func (c *Controller[K, T]) ObjectAt(path IndexPath) T {
	return c.sections[path.Section].At(path.Row)
}

// IndexPathOf locates obj by identity. It works even when obj's fields have
// changed since it was last applied.
func (c *Controller[K, T]) IndexPathOf(obj T) (IndexPath, bool) {
	key, ok := c.placed[obj]
	if !ok {
		return IndexPath{}, false
	}

	secIdx, ok := c.sectionIndex(key)
	if !ok {
		return IndexPath{}, false
	}

	row, ok := c.sections[secIdx].IndexOf(obj)
	if !ok {
		return IndexPath{}, false
	}

	return IndexPath{Section: secIdx, Row: row}, true
}

// Apply processes a batch of changes and returns the resulting events.
//
// Changes to the same object collapse into the last one reported. Every
// tracked object named by the batch leaves its section before anything is
// inserted, so a section never binary searches past an object whose sort
// fields changed. Sections emptied by the batch are deleted last.
func (c *Controller[K, T]) Apply(ctx context.Context, changes ...Change[T]) ChangeSet[T] {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "controller.Apply")
	defer span.End()

	cs := ChangeSet[T]{ID: uuid.New()}
	ctx = logger.With(ctx, "controller", c.cfg.Name, "change_set", cs.ID.String())

	batch := c.collapse(ctx, changes)

	for _, p := range batch {
		if p.kind == Removed {
			c.remove(ctx, p.obj, &cs)
		}
	}

	var moving, adding []T

	for _, p := range batch {
		if p.kind == Removed {
			continue
		}

		if _, tracked := c.placed[p.obj]; !tracked {
			adding = append(adding, p.obj)

			continue
		}

		if p.kind == Added {
			logger.Get(ctx).Debug("Object added twice, treating as update")
		}

		if c.remove(ctx, p.obj, &cs) {
			moving = append(moving, p.obj)
		} else {
			adding = append(adding, p.obj)
		}
	}

	for _, obj := range moving {
		c.place(obj, &cs)
	}

	for _, obj := range adding {
		c.place(obj, &cs)
	}

	c.dropEmpty(&cs)
	c.finish(&cs)

	span.SetAttributes(
		attribute.String("controller", c.cfg.Name),
		attribute.Int("changes", len(changes)),
		attribute.Int("events", len(cs.Events)),
	)

	logger.Get(ctx).Debug("Applied changes",
		"changes", len(changes),
		"objects", len(batch),
		"events", len(cs.Events),
		"generation", cs.Generation)

	return cs
}

// pending is the net change to one object within a batch.
type pending[T comparable] struct {
	obj  T
	kind ChangeKind
}

// collapse keeps one entry per object, in order of first appearance, carrying
// the kind of its last change.
func (c *Controller[K, T]) collapse(ctx context.Context, changes []Change[T]) []pending[T] {
	seen := make(map[T]int, len(changes))
	out := make([]pending[T], 0, len(changes))

	for _, ch := range changes {
		switch ch.Kind {
		case Added, Removed, Updated:
		default:
			logger.Get(ctx).Warn("Ignoring change of unknown kind", "kind", ch.Kind.String())

			continue
		}

		changesTotal.WithLabelValues(c.cfg.Name, ch.Kind.String()).Inc()

		if i, ok := seen[ch.Object]; ok {
			out[i].kind = ch.Kind

			continue
		}

		seen[ch.Object] = len(out)
		out = append(out, pending[T]{obj: ch.Object, kind: ch.Kind})
	}

	return out
}

// finish stamps the generation and publishes gauges.
func (c *Controller[K, T]) finish(cs *ChangeSet[T]) {
	if cs.Empty() {
		cs.Generation = c.generation.Load()
	} else {
		cs.Generation = c.generation.Inc()
	}

	for _, e := range cs.Events {
		eventsTotal.WithLabelValues(c.cfg.Name, e.Kind.String()).Inc()
	}

	sectionCount.WithLabelValues(c.cfg.Name).Set(float64(len(c.sections)))
	objectCount.WithLabelValues(c.cfg.Name).Set(float64(len(c.placed)))
}

// place files obj under its current key, creating the section if needed.
// A placement that directly follows obj's own removal from the same section
// is reported as a single move.
func (c *Controller[K, T]) place(obj T, cs *ChangeSet[T]) {
	key := c.cfg.SectionKey(obj)
	secIdx, sec := c.ensureSection(key, cs)

	path := IndexPath{Section: secIdx, Row: sec.InsertSorted(obj)}
	c.placed[obj] = key

	if n := len(cs.Events); n > 0 {
		last := cs.Events[n-1]
		if last.Kind == RowDeleted && last.Object == obj && last.From.GetOrPanic().Section == secIdx {
			kind := RowMoved
			if last.From.GetOrPanic() == path {
				kind = RowUpdated
			}

			cs.Events[n-1] = Event[T]{Kind: kind, From: last.From, To: optional.Some(path), Object: obj}

			return
		}
	}

	cs.Events = append(cs.Events, Event[T]{Kind: RowInserted, To: optional.Some(path), Object: obj})
}

// remove takes a tracked obj out of its section and reports the deletion.
// The section stays, even when empty, until dropEmpty.
func (c *Controller[K, T]) remove(ctx context.Context, obj T, cs *ChangeSet[T]) bool {
	if _, tracked := c.placed[obj]; !tracked {
		logger.Get(ctx).Debug("Ignoring removal of untracked object")

		return false
	}

	path, ok := c.unplace(ctx, obj)
	if !ok {
		return false
	}

	cs.Events = append(cs.Events, Event[T]{Kind: RowDeleted, From: optional.Some(path), Object: obj})

	return true
}

// unplace takes obj out of the section it was filed under and forgets it.
func (c *Controller[K, T]) unplace(ctx context.Context, obj T) (IndexPath, bool) {
	key := c.placed[obj]
	delete(c.placed, obj)

	secIdx, ok := c.sectionIndex(key)
	if !ok {
		logger.Get(ctx).Warn("Tracked object has no section", "key", key)

		return IndexPath{}, false
	}

	sec := c.sections[secIdx]
	before := sec.FallbackScans()

	row, ok := sec.DeleteOutdatedObject(obj)
	if !ok {
		logger.Get(ctx).Warn("Tracked object missing from its section", "key", key)

		return IndexPath{}, false
	}

	if sec.FallbackScans() > before {
		outdatedFallbacks.WithLabelValues(c.cfg.Name).Inc()
	}

	return IndexPath{Section: secIdx, Row: row}, true
}

func (c *Controller[K, T]) sectionIndex(key K) (int, bool) {
	return slices.BinarySearchFunc(c.sections, key, func(s *section.Section[K, T], k K) int {
		return c.cfg.CompareKeys(s.KeyPath(), k)
	})
}

func (c *Controller[K, T]) newSection(key K) *section.Section[K, T] {
	// Descriptors were validated by New.
	return section.MustNew(key, c.cfg.SortDescriptors...)
}

func (c *Controller[K, T]) ensureSection(key K, cs *ChangeSet[T]) (int, *section.Section[K, T]) {
	idx, found := c.sectionIndex(key)
	if found {
		return idx, c.sections[idx]
	}

	sec := c.newSection(key)
	c.sections = slices.Insert(c.sections, idx, sec)

	cs.Events = append(cs.Events, Event[T]{Kind: SectionInserted, Section: idx})

	return idx, sec
}

// dropEmpty deletes empty sections from the back, so each reported index is
// valid when its event is applied.
func (c *Controller[K, T]) dropEmpty(cs *ChangeSet[T]) {
	for i := len(c.sections) - 1; i >= 0; i-- {
		if c.sections[i].Len() > 0 {
			continue
		}

		c.sections = slices.Delete(c.sections, i, i+1)

		cs.Events = append(cs.Events, Event[T]{Kind: SectionDeleted, Section: i})
	}
}
