package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/sections/envutil"
	errs "github.com/amp-labs/sections/errors"
	"github.com/amp-labs/sections/logger"
	"github.com/amp-labs/sections/section"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const defaultLoadWorkers = 4

var ErrInvalidWorkers = errors.New("worker count must be positive")

// workers resolves the number of goroutines used to sort sections in Load.
func (c *Controller[K, T]) workers(ctx context.Context) int {
	if c.cfg.Parallelism > 0 {
		return c.cfg.Parallelism
	}

	return envutil.Int(ctx, "SECTIONS_LOAD_WORKERS",
		envutil.Default(defaultLoadWorkers),
		envutil.Validate(func(n int) error {
			if n <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
			}

			return nil
		}),
	).ValueOrElse(defaultLoadWorkers)
}

// Load replaces the controller's content with objects. Objects are appended
// to their sections unsorted and every section is then sorted once, which is
// cheaper than placing them one by one. Sections are independent, so they are
// sorted concurrently; each one is touched by a single worker. Repeated
// objects are kept once.
func (c *Controller[K, T]) Load(ctx context.Context, objects ...T) (ChangeSet[T], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "controller.Load")
	defer span.End()

	cs := ChangeSet[T]{ID: uuid.New()}
	ctx = logger.With(ctx, "controller", c.cfg.Name, "change_set", cs.ID.String())

	groups := make(map[K]*section.Section[K, T])
	placed := make(map[T]K, len(objects))
	sections := make([]*section.Section[K, T], 0)

	for _, obj := range objects {
		if _, dup := placed[obj]; dup {
			continue
		}

		key := c.cfg.SectionKey(obj)

		sec, ok := groups[key]
		if !ok {
			sec = c.newSection(key)
			groups[key] = sec
			sections = append(sections, sec)
		}

		sec.Insert(obj)
		placed[obj] = key
	}

	slices.SortFunc(sections, func(a, b *section.Section[K, T]) int {
		return c.cfg.CompareKeys(a.KeyPath(), b.KeyPath())
	})

	workers := c.workers(ctx)
	if err := sortAll(sections, workers); err != nil {
		span.RecordError(err)

		return ChangeSet[T]{}, fmt.Errorf("loading controller %q: %w", c.cfg.Name, err)
	}

	c.sections = sections
	c.placed = placed

	cs.Events = append(cs.Events, Event[T]{Kind: Reloaded})
	c.finish(&cs)

	span.SetAttributes(
		attribute.String("controller", c.cfg.Name),
		attribute.Int("objects", len(placed)),
		attribute.Int("sections", len(sections)),
		attribute.Int("workers", workers),
	)

	logger.Get(ctx).Debug("Loaded objects",
		"objects", len(placed),
		"sections", len(sections),
		"workers", workers,
		"generation", cs.Generation)

	return cs, nil
}

func sortAll[K any, T comparable](sections []*section.Section[K, T], workers int) error {
	if len(sections) <= 1 || workers == 1 {
		for _, sec := range sections {
			sec.Sort()
		}

		return nil
	}

	pool := pond.NewPool(min(workers, len(sections)))
	defer pool.StopAndWait()

	tasks := make([]pond.Task, 0, len(sections))
	for _, sec := range sections {
		tasks = append(tasks, pool.Submit(sec.Sort))
	}

	var problems errs.Collection

	for _, task := range tasks {
		problems.Add(task.Wait())
	}

	return problems.Err()
}
