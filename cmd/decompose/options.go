package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/kovidgoyal/decompose"
	"github.com/kovidgoyal/decompose/compose"
	"github.com/kovidgoyal/decompose/geometry"
	"github.com/kovidgoyal/decompose/space"
	"github.com/kovidgoyal/decompose/types"
)

var _ = fmt.Print

type overwrite_policy int

const (
	skip_existing overwrite_policy = iota
	overwrite_existing
	ask_before_overwrite
)

// policy_flag is a boolean flag that sets a shared policy, so that of
// several such flags the last one on the command line wins
type policy_flag struct {
	target *overwrite_policy
	value  overwrite_policy
}

func (p policy_flag) String() string { return strconv.FormatBool(p.target != nil && *p.target == p.value) }
func (p policy_flag) Type() string   { return "bool" }
func (p policy_flag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*p.target = p.value
	} else if *p.target == p.value {
		*p.target = skip_existing
	}
	return nil
}

type options struct {
	files     []string
	out_dir   string
	spaces    []space.Tag
	overwrite overwrite_policy
	transform geometry.Transform
	jobs      int
	format    decompose.Format
	quality   int
	style     compose.Style
	source    bool
	columns   int
	gap       int
	delay     time.Duration
	log_level slog.Level
	list      bool
	version   bool
}

const usage_footer = `
Loads the specified image files and decomposes them into channels, writing
for every color space an image with the source and all the individual
channels side by side, named <stem>-<space>.<ext>.
`

func parse_args(args []string, output io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("decompose", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintln(output, "Decomposes images into individual channels")
		fmt.Fprintf(output, "usage: decompose [options] file ...\n\n")
		fs.PrintDefaults()
		fmt.Fprint(output, usage_footer)
	}
	o := options{}
	fs.StringVarP(&o.out_dir, "out-dir", "o", "", "Directory to save output files in. If not present, output files are placed in the same directory as the input.")
	spaces := fs.StringP("spaces", "s", "", "Comma separated list of color spaces to generate decompositions for. Names are case-insensitive. Use --list to see the supported spaces. Default is all of them.")
	fs.VarPF(policy_flag{&o.overwrite, overwrite_existing}, "yes", "y", "Overwrite existing files without asking. Overrides -i. Without -y or -i existing output files are skipped.").NoOptDefVal = "true"
	fs.VarPF(policy_flag{&o.overwrite, ask_before_overwrite}, "interactive", "i", "Ask before overwriting existing files. Overrides -y.").NoOptDefVal = "true"
	var resize geometry.Dimensions
	var crop geometry.Crop
	fs.Var(&resize, "resize", "Resize the source image to the specified <width>x<height>. Resizing happens before cropping.")
	fs.Var(&crop, "crop", "Crop the source image to <width>x<height>+<x>+<y>. The offset is optional and defaults to +0+0. A negative coordinate measures the offset from the right or bottom edge.")
	fs.IntVarP(&o.jobs, "jobs", "j", runtime.NumCPU(), "Process at most this many images in parallel.")
	format := fs.String("format", "png", "Output image format, one of: png, jpeg, gif, tiff, bmp or apng. apng creates an animation cycling through the channels.")
	fs.IntVarP(&o.quality, "quality", "q", 95, "Quality for JPEG output, from 1 to 100.")
	style := fs.String("style", compose.Tinted.String(), "How to render channels: tinted shows every channel in a color matching its meaning, grey shows the normalized channel values.")
	no_source := fs.Bool("no-source", false, "Do not include the source image in the output.")
	fs.IntVar(&o.columns, "columns", 0, "Number of tiles per row in the output. Zero places all tiles in a single row.")
	fs.IntVar(&o.gap, "gap", 0, "Space in pixels between tiles.")
	fs.DurationVar(&o.delay, "delay", time.Second, "Time each channel is shown for in apng output.")
	verbose := fs.BoolP("verbose", "v", false, "Log debug information.")
	quiet := fs.Bool("quiet", false, "Only report errors.")
	fs.BoolVar(&o.list, "list", false, "Print the supported color spaces and their channels and exit.")
	fs.BoolVar(&o.version, "version", false, "Print the version and exit.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.files = fs.Args()
	var err error
	if o.spaces, err = space.ParseList(*spaces); err != nil {
		return nil, err
	}
	if len(o.spaces) == 0 {
		for _, d := range space.All() {
			o.spaces = append(o.spaces, d.Tag)
		}
	}
	if fs.Changed("resize") {
		o.transform.Resize = &resize
	}
	if fs.Changed("crop") {
		o.transform.Crop = &crop
	}
	if o.format, err = types.ParseFormat(*format); err != nil {
		return nil, err
	}
	if !o.format.CanEncode() {
		return nil, fmt.Errorf("%w: cannot write %s files", decompose.ErrUnsupportedFormat, o.format)
	}
	if o.quality < 1 || o.quality > 100 {
		return nil, fmt.Errorf("quality must be a number from 1 to 100, not: %d", o.quality)
	}
	if o.style, err = compose.ParseStyle(*style); err != nil {
		return nil, err
	}
	o.source = !*no_source
	o.jobs = max(1, o.jobs)
	switch {
	case *verbose:
		o.log_level = slog.LevelDebug
	case *quiet:
		o.log_level = slog.LevelWarn
	default:
		o.log_level = slog.LevelInfo
	}
	if len(o.files) == 0 && !o.list && !o.version {
		fs.Usage()
		return nil, fmt.Errorf("no image files specified")
	}
	return &o, nil
}
