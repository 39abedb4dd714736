// Package iopopulate implements Populator interface for importing
// movie dumps into the database.
// This is an impure I/O package that reads the dump files, converts
// their lines into typed rows and loads them table by table.
package iopopulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/moviedb/internal/ioload"
	"github.com/gnames/moviedb/internal/iosources"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/db"
	"github.com/gnames/moviedb/pkg/dump"
	"github.com/gnames/moviedb/pkg/lifecycle"
	"github.com/gnames/moviedb/pkg/mapper"
	"github.com/gnames/moviedb/pkg/schema"
	"github.com/gnames/moviedb/pkg/sources"
	"github.com/google/uuid"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	operator db.Operator
	log      *slog.Logger
	reports  []report
	rejected []rejected
}

// New creates a new Populator.
func New(cfg *config.Config, op db.Operator) lifecycle.Populator {
	return &populator{cfg: cfg, operator: op}
}

// step ties a dump to its grammar and destination. Relationship dumps
// with references that may be missing have a relation and go through
// the staging table.
type step struct {
	kind     sources.Kind
	grammar  dump.Grammar
	table    schema.Table
	relation *schema.Relation
}

// steps returns the dumps in the order that satisfies foreign keys.
func steps() []step {
	return []step{
		{kind: sources.Movie, grammar: dump.Movie, table: schema.MovieTable},
		{kind: sources.Person, grammar: dump.Columnar(4), table: schema.PersonTable},
		{kind: sources.Director, grammar: dump.Columnar(3), table: schema.DirectorTable},
		{kind: sources.Cast, grammar: dump.Cast, table: schema.ActsInTable},
		{
			kind:     sources.MovieDirectors,
			grammar:  dump.Columnar(2),
			table:    schema.DirectsTable,
			relation: &schema.DirectsRelation,
		},
	}
}

// report keeps the outcome of one step.
type report struct {
	kind        sources.Kind
	table       string
	tuples      int
	quarantined int
	loaded      int64
	dropped     int64
	duration    time.Duration
}

// Populate imports all dumps into the database. It stops at the first
// fatal error, every table loaded before that error stays in the
// database.
func (p *populator) Populate(ctx context.Context) (err error) {
	startTime := time.Now()
	p.log = slog.With("run_id", uuid.NewString())
	p.reports = nil
	p.rejected = nil

	ok, err := p.operator.HasTables(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return EmptyDatabaseError()
	}

	src := iosources.New(p.cfg)
	sourcesConfig, err := src.Load()
	if err != nil {
		return err
	}

	p.log.Info("Starting database population",
		"dir", sourcesConfig.Dir,
		"encoding", sourcesConfig.Encoding,
	)

	timeout := time.Duration(p.cfg.Database.LoadTimeout) * time.Second
	loader := ioload.New(p.operator, timeout)

	defer func() {
		qerr := p.writeQuarantine()
		if qerr != nil && err == nil {
			err = qerr
		}
	}()

	all := steps()
	for i, s := range all {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		gn.Info("(%d/%d) Importing <em>%s</em>...", i+1, len(all), s.kind)
		var rep report
		rep, err = p.runStep(ctx, loader, sourcesConfig, s)
		if err != nil {
			p.log.Error("Population stopped",
				"source", s.kind,
				"table", s.table.Name,
				"error", err,
			)
			return err
		}
		p.reports = append(p.reports, rep)
		p.printStep(rep)
	}

	p.summary(time.Since(startTime))
	return err
}

func (p *populator) runStep(
	ctx context.Context,
	loader *ioload.Loader,
	sc *sources.SourcesConfig,
	s step,
) (report, error) {
	start := time.Now()
	rep := report{kind: s.kind, table: s.table.Name}

	path := sc.Path(s.kind)
	res, err := p.parse(path, s, dump.Options{
		Encoding: sc.Encoding,
		Header:   sc.Header,
	})
	if err != nil {
		return rep, err
	}
	rep.tuples = len(res.Tuples)
	rep.quarantined = len(res.Quarantined)
	p.quarantine(s.kind, res.Quarantined)

	rows, err := mapper.Map(res.Tuples, s.table.Columns)
	if err != nil {
		return rep, MapError(s.kind, path, err)
	}

	if s.relation == nil {
		rep.loaded, err = loader.LoadTable(ctx, s.table, rows)
		if err != nil {
			return rep, LoadTableError(s.table.Name, err)
		}
	} else {
		var stats ioload.StagedStats
		stats, err = loader.StagedLoad(ctx, *s.relation, rows)
		if err != nil {
			return rep, LoadStagedError(s.table.Name, err)
		}
		rep.loaded = stats.Migrated
		rep.dropped = stats.Dropped
	}

	rep.duration = time.Since(start)
	p.log.Info("Table is populated",
		"source", s.kind,
		"path", path,
		"table", rep.table,
		"lines", rep.tuples+rep.quarantined,
		"quarantined", rep.quarantined,
		"loaded", rep.loaded,
		"dropped", rep.dropped,
		"duration", gnfmt.TimeString(rep.duration.Seconds()),
	)
	return rep, nil
}

func (p *populator) printStep(rep report) {
	gn.Message("<em>Loaded %s rows into %s</em>",
		humanize.Comma(rep.loaded), rep.table)
	if rep.quarantined > 0 {
		gn.Warn("%s lines of %s were quarantined",
			humanize.Comma(int64(rep.quarantined)), rep.kind)
	}
	if rep.dropped > 0 {
		gn.Warn("%s rows of %s had missing references and were dropped",
			humanize.Comma(rep.dropped), rep.table)
	}
}

func (p *populator) summary(d time.Duration) {
	var loaded, dropped int64
	var quarantined int
	for _, v := range p.reports {
		loaded += v.loaded
		dropped += v.dropped
		quarantined += v.quarantined
	}

	p.log.Info("Population complete",
		"tables", len(p.reports),
		"loaded", loaded,
		"quarantined", quarantined,
		"dropped", dropped,
		"duration", gnfmt.TimeString(d.Seconds()),
	)

	gn.Info(`Population complete
Rows loaded: %s, quarantined lines: %s, dropped rows: %s.
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(loaded),
		humanize.Comma(int64(quarantined)),
		humanize.Comma(dropped),
		gnfmt.TimeString(d.Seconds()),
	)
}
