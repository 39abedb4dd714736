package iopopulate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/moviedb/internal/iofs"
	"github.com/gnames/moviedb/pkg/dump"
)

// parse reads the dump at path with the grammar of the step.
// Quarantined lines are logged, they do not make an error.
func (p *populator) parse(
	path string,
	s step,
	opts dump.Options,
) (dump.Result, error) {
	var res dump.Result

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return res, SourceNotFoundError(s.kind, path, err)
	}
	if err != nil {
		return res, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if p.cfg.Populate.ShowProgress {
		if info, err := f.Stat(); err == nil {
			bar := pb.Full.Start64(info.Size())
			bar.Set("prefix", fmt.Sprintf("Reading %s: ", s.kind))
			bar.Set(pb.Bytes, true)
			bar.Set(pb.CleanOnFinish, true)
			defer bar.Finish()
			r = bar.NewProxyReader(f)
		}
	}

	res, err = dump.Parse(r, s.grammar, opts)
	if err != nil {
		return res, SourceReadError(s.kind, path, err)
	}

	for _, q := range res.Quarantined {
		p.log.Warn("Line is quarantined",
			"source", s.kind,
			"line", q.Line,
			"reason", q.Reason,
		)
	}
	return res, nil
}
