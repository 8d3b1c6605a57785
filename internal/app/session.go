package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/cdb/internal/engine/analyzer"
	"go.trai.ch/cdb/internal/engine/collector"
	"golang.org/x/sync/errgroup"
)

// watch records the order in which report files appear in dir.
// The returned function stops watching and returns the paths in creation order.
// A watcher that cannot start is reported and leaves the order to the directory listing.
func (a *App) watch(ctx context.Context, dir string) func() []string {
	if err := a.watcher.Start(ctx, dir); err != nil {
		a.logger.Warn(fmt.Sprintf("report order falls back to modification time: %v", err))
		return func() []string { return nil }
	}

	var order []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		seen := make(map[string]struct{})
		for event := range a.watcher.Events() {
			if event.Operation != ports.OpCreate {
				continue
			}
			if _, ok := seen[event.Path]; ok {
				continue
			}
			seen[event.Path] = struct{}{}
			order = append(order, event.Path)
		}
	}()

	return func() []string {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to stop report watcher: %v", err))
		}
		<-done
		return order
	}
}

// observationOrder orders listed by the watcher's creation order.
// Files the watcher missed follow in listing order.
func observationOrder(watched, listed []string) []string {
	present := make(map[string]struct{}, len(listed))
	for _, path := range listed {
		present[path] = struct{}{}
	}

	ordered := make([]string, 0, len(listed))
	placed := make(map[string]struct{}, len(listed))
	for _, path := range watched {
		if _, ok := present[path]; !ok {
			continue
		}
		if _, dup := placed[path]; dup {
			continue
		}
		placed[path] = struct{}{}
		ordered = append(ordered, path)
	}
	for _, path := range listed {
		if _, ok := placed[path]; !ok {
			ordered = append(ordered, path)
		}
	}
	return ordered
}

// produce turns the report files into the output selected by opts.
func (a *App) produce(ctx context.Context, files []string, settings domain.Settings, opts OutputOptions) error {
	if opts.DisableFilter {
		return a.writeEntries(ctx, files, settings.Output)
	}

	var existing []domain.CompilationRecord
	if opts.Append {
		records, err := a.store.Read(settings.Output)
		if err != nil {
			return err
		}
		existing = records
	}

	db, err := a.collect(ctx, files, settings, existing)
	if err != nil {
		return err
	}

	_, span := a.tracer.Start(ctx, "write",
		ports.WithAttribute("path", settings.Output),
		ports.WithAttribute("records", db.Len()),
	)
	defer span.End()

	if err := a.store.Write(settings.Output, db.Records()); err != nil {
		span.RecordError(err)
		return err
	}

	a.logger.Info(fmt.Sprintf("wrote %d records to %s", db.Len(), settings.Output))
	return nil
}

// collect analyzes files on a bounded worker pool and returns the database in file order.
func (a *App) collect(
	ctx context.Context,
	files []string,
	settings domain.Settings,
	existing []domain.CompilationRecord,
) (*domain.CompilationDatabase, error) {
	ctx, span := a.tracer.Start(ctx, "collect",
		ports.WithAttribute("files", len(files)),
		ports.WithAttribute("jobs", settings.Jobs),
	)
	defer span.End()

	recognizer, err := analyzer.NewRecognizer(settings.Compilers...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	an := analyzer.New(recognizer)
	col := collector.New(settings.Dedup, collector.WithExisting(existing))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(settings.Jobs, 1))

	for i, path := range files {
		seq := uint64(i) //nolint:gosec // i is a slice index
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return col.Submit(seq, a.analyze(an, path, seq))
		})
	}

	poolErr := g.Wait()
	db, closeErr := col.Close()
	if err := errors.Join(poolErr, closeErr); err != nil {
		span.RecordError(err)
		return nil, err
	}

	stats := col.Stats()
	span.SetAttribute("recorded", stats.Recorded)
	span.SetAttribute("dropped", stats.Dropped)
	span.SetAttribute("duplicates", stats.Duplicates)
	return db, nil
}

// analyze returns the record of the report at path, or nil when it yields none.
func (a *App) analyze(an *analyzer.Analyzer, path string, seq uint64) *domain.CompilationRecord {
	inv, err := a.reports.Read(path)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("skipping report %s: %v", path, err))
		return nil
	}
	inv.Sequence = seq

	result := an.Analyze(inv)
	if !result.Recorded() {
		if result.Compiler {
			a.logger.Debug(fmt.Sprintf("dropped %s (%s): %v",
				strings.Join(inv.Argv(), " "), result.Phase, result.Reason))
		}
		return nil
	}

	rec := result.Record
	return &rec
}

// writeEntries writes every readable report unfiltered, in file order.
func (a *App) writeEntries(ctx context.Context, files []string, output string) error {
	_, span := a.tracer.Start(ctx, "write",
		ports.WithAttribute("path", output),
		ports.WithAttribute("filtered", false),
	)
	defer span.End()

	entries := make([]domain.ReportEntry, 0, len(files))
	for _, path := range files {
		inv, err := a.reports.Read(path)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("skipping report %s: %v", path, err))
			continue
		}
		entries = append(entries, inv.Entry())
	}

	if err := a.store.WriteEntries(output, entries); err != nil {
		span.RecordError(err)
		return err
	}

	a.logger.Info(fmt.Sprintf("wrote %d unfiltered entries to %s", len(entries), output))
	return nil
}
