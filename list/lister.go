package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mwantia/vls/data"
	"github.com/mwantia/vls/log"
	"github.com/mwantia/vls/source"
)

// Lister composes entry selection, mode decoding and the two display
// formatters over a single source. All working data is built fresh per
// Run and discarded afterwards.
type Lister struct {
	src     source.Source
	out     io.Writer
	errOut  io.Writer
	log     *log.Logger
	columns int
}

type ListerOption func(*Lister)

// WithOutput redirects listing output (default os.Stdout).
func WithOutput(w io.Writer) ListerOption {
	return func(l *Lister) {
		l.out = w
	}
}

// WithErrorOutput redirects per-path diagnostics (default os.Stderr).
func WithErrorOutput(w io.Writer) ListerOption {
	return func(l *Lister) {
		l.errOut = w
	}
}

// WithColumns overrides the compact-mode column count.
func WithColumns(columns int) ListerOption {
	return func(l *Lister) {
		l.columns = columns
	}
}

func WithLogger(logger *log.Logger) ListerOption {
	return func(l *Lister) {
		l.log = logger
	}
}

func NewLister(src source.Source, opts ...ListerOption) *Lister {
	l := &Lister{
		src:     src,
		out:     os.Stdout,
		errOut:  os.Stderr,
		log:     log.Discard(),
		columns: GridColumns,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// target is one path operand with the result of its initial stat.
type target struct {
	path  string
	entry *data.Entry
	err   error
}

// Run lists every path in order. Per-path conditions (missing path,
// permission denied) produce a single diagnostic line and processing
// continues; anything else, identity-resolution failures included, is
// fatal and propagates. A nil return means normal completion even when
// individual paths produced diagnostics.
func (l *Lister) Run(ctx context.Context, paths []string, opts Options) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	targets := l.orderTargets(ctx, paths)
	multi := len(paths) > 1
	first := true

	for _, t := range targets {
		if err := l.listTarget(ctx, t, opts, multi, &first); err != nil {
			return err
		}
	}

	return nil
}

// orderTargets stats every operand and orders them the way the classic
// tool does: non-directories (and paths that failed to stat) ahead of
// directories, each class case-insensitively lexicographic.
func (l *Lister) orderTargets(ctx context.Context, paths []string) []target {
	targets := make([]target, 0, len(paths))
	for _, path := range paths {
		entry, err := l.src.Stat(ctx, path)
		targets = append(targets, target{path: path, entry: entry, err: err})
	}

	slices.SortStableFunc(targets, func(a, b target) int {
		if ca, cb := targetClass(a), targetClass(b); ca != cb {
			return ca - cb
		}
		if c := strings.Compare(strings.ToLower(a.path), strings.ToLower(b.path)); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})

	return targets
}

func targetClass(t target) int {
	if t.err == nil && t.entry.Mode.IsDir() {
		return 1
	}
	return 0
}

func (l *Lister) listTarget(ctx context.Context, t target, opts Options, multi bool, first *bool) error {
	if t.err != nil {
		return l.reportPathError(t.path, t.err)
	}

	isDir := t.entry.Mode.IsDir()

	var entries []*data.Entry
	var names []string

	if isDir {
		listed, err := l.src.List(ctx, t.path)
		if err != nil {
			return l.reportPathError(t.path, err)
		}

		byName := make(map[string]*data.Entry, len(listed))
		raw := make([]string, 0, len(listed))
		for _, entry := range listed {
			byName[entry.Name] = entry
			raw = append(raw, entry.Name)
		}

		names = Select(raw, opts)
		entries = make([]*data.Entry, 0, len(names))
		for _, name := range names {
			entries = append(entries, byName[name])
		}
	} else {
		// The operand itself is the listing; explicit operands are
		// never subject to the hidden filter.
		single := *t.entry
		single.Name = t.path
		entries = []*data.Entry{&single}
		names = []string{t.path}
	}

	if multi {
		if !*first {
			fmt.Fprintln(l.out)
		}
		fmt.Fprintf(l.out, "%s:\n", t.path)
	}
	*first = false

	if opts.Long {
		if isDir {
			fmt.Fprintf(l.out, "total %d\n", TotalKBytes(entries))
		}
		if len(entries) > 0 {
			fmt.Fprintln(l.out, Table(entries))
		}
	} else if len(names) > 0 {
		fmt.Fprintln(l.out, Grid(names, l.columns))
	}

	l.log.Debug("listed '%s': %d entries", t.path, len(entries))
	return nil
}

// reportPathError turns recoverable per-path conditions into a single
// diagnostic line; everything else aborts the invocation.
func (l *Lister) reportPathError(path string, err error) error {
	switch {
	case errors.Is(err, data.ErrNotExist):
		fmt.Fprintf(l.errOut, "cannot access '%s': No such file or directory\n", path)
		return nil
	case errors.Is(err, data.ErrPermission):
		fmt.Fprintf(l.errOut, "cannot open '%s': Permission denied\n", path)
		return nil
	default:
		return err
	}
}
