package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/kovidgoyal/decompose"
	"github.com/kovidgoyal/decompose/compose"
	"github.com/kovidgoyal/decompose/space"
)

var _ = fmt.Print

// reporter prints errors for individual files and counts them
type reporter struct {
	out      *termenv.Output
	mutex    sync.Mutex
	failures atomic.Int64
}

func (r *reporter) report(path string, err error) {
	r.failures.Add(1)
	r.mutex.Lock()
	defer r.mutex.Unlock()
	fmt.Fprintln(r.out, r.out.String(path+":").Foreground(r.out.Color("1")).Bold().String(), err)
}

type runner struct {
	opts      *options
	logger    *slog.Logger
	confirmer *confirmer
	reporter  *reporter
}

func output_path(dir, input string, tag space.Tag, f decompose.Format) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%s", stem, tag, f.Extension()))
}

func (r *runner) compose_options() []compose.Option {
	return []compose.Option{
		compose.WithStyle(r.opts.style), compose.WithSource(r.opts.source),
		compose.WithColumns(r.opts.columns), compose.WithGap(r.opts.gap),
	}
}

func (r *runner) write(src *space.Buffer, tag space.Tag, path string) (err error) {
	buf, err := space.Convert(src, tag)
	if err != nil {
		return err
	}
	c, err := compose.Decompose(buf, r.compose_options()...)
	if err != nil {
		return err
	}
	if r.opts.format == decompose.APNG {
		return decompose.SaveAnimation(c.Animation(r.opts.delay), path)
	}
	return decompose.Save(c.Image, path, decompose.JPEGQuality(r.opts.quality))
}

func (r *runner) process_file(path string) {
	dir := r.opts.out_dir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	r.logger.Info("Loading", "file", path)
	img, err := decompose.Open(path)
	if err != nil {
		r.reporter.report(path, err)
		return
	}
	if !r.opts.transform.IsIdentity() {
		img = r.opts.transform.Apply(img)
		r.logger.Debug("Transformed", "file", path, "size", img.Bounds().Size())
	}
	src, err := space.Load(img)
	if err != nil {
		r.reporter.report(path, err)
		return
	}
	var g errgroup.Group
	g.SetLimit(r.opts.jobs)
	for _, tag := range r.opts.spaces {
		out := output_path(dir, path, tag, r.opts.format)
		g.Go(func() error {
			if err := r.confirmer.confirm(out); err != nil {
				if errors.Is(err, errSkipped) {
					r.logger.Warn("Skipping", "file", out, "reason", err)
				} else {
					r.reporter.report(out, err)
				}
				return nil
			}
			r.logger.Info("Generating", "file", out)
			if err := r.write(src, tag, out); err != nil {
				r.reporter.report(out, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func list_spaces(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(space.All()); err != nil {
		return err
	}
	return enc.Close()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	opts, err := parse_args(args, stderr)
	if err != nil {
		return err
	}
	switch {
	case opts.version:
		_, err = fmt.Fprintln(stdout, "decompose", decompose.Version)
		return err
	case opts.list:
		return list_spaces(stdout)
	}
	r := runner{
		opts:     opts,
		logger:   slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.log_level})),
		reporter: &reporter{out: termenv.NewOutput(stderr)},
	}
	policy := opts.overwrite
	if f, ok := stdin.(*os.File); ok && policy == ask_before_overwrite && !is_terminal(int(f.Fd())) {
		r.logger.Warn("Standard input is not a terminal, existing files will be skipped")
		policy = skip_existing
	}
	r.confirmer = new_confirmer(policy, stdin, stdout)
	if opts.out_dir != "" {
		if err = os.MkdirAll(opts.out_dir, 0o755); err != nil {
			return err
		}
	}
	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for _, path := range opts.files {
		g.Go(func() error {
			r.process_file(path)
			return nil
		})
	}
	_ = g.Wait()
	if n := r.reporter.failures.Load(); n > 0 {
		return fmt.Errorf("%d errors occurred", n)
	}
	return nil
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if err = run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); errors.Is(err, pflag.ErrHelp) {
		err = nil
	}
}
