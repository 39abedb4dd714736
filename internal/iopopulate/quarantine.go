package iopopulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/dump"
	"github.com/gnames/moviedb/pkg/sources"
)

// rejected is a quarantined line together with its dump.
type rejected struct {
	kind sources.Kind
	dump.Quarantined
}

func (p *populator) quarantine(k sources.Kind, qs []dump.Quarantined) {
	for _, q := range qs {
		p.rejected = append(p.rejected, rejected{kind: k, Quarantined: q})
	}
}

// writeQuarantine replaces the report of the previous run with the
// lines rejected by this one. The report has only a header when
// nothing was rejected.
func (p *populator) writeQuarantine() error {
	path := config.QuarantineFilePath(p.cfg.HomeDir)
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return QuarantineError(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return QuarantineError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"source", "line", "reason", "raw_line"})
	for _, v := range p.rejected {
		_ = w.Write([]string{
			string(v.kind),
			strconv.Itoa(v.Line),
			v.Reason,
			v.Raw,
		})
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return QuarantineError(path, err)
	}

	if err = f.Close(); err != nil {
		return QuarantineError(path, err)
	}

	if len(p.rejected) > 0 {
		gn.Info("Quarantined lines are saved to <em>%s</em>", path)
	}
	return nil
}
