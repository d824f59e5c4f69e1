package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kovidgoyal/decompose"
	"github.com/kovidgoyal/decompose/compose"
	"github.com/kovidgoyal/decompose/space"
)

var _ = fmt.Print

func TestParseArgs(t *testing.T) {
	o, err := parse_args([]string{"a.jpg", "b.png"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, []string{"a.jpg", "b.png"}, o.files)
	require.Len(t, o.spaces, len(space.All()))
	require.Equal(t, skip_existing, o.overwrite)
	require.Equal(t, decompose.PNG, o.format)
	require.Equal(t, compose.Tinted, o.style)
	require.True(t, o.source)
	require.True(t, o.transform.IsIdentity())

	o, err = parse_args([]string{"-s", "cmyk,LAB,hsl,lab", "--resize", "20x10", "--crop=5x5-1+2", "--no-source", "--style", "grey", "--format", "jpeg", "-q", "80", "x.png"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, []space.Tag{space.HSL, space.Lab, space.CMYK}, o.spaces)
	require.Equal(t, "20x10", o.transform.Resize.String())
	require.Equal(t, "5x5-1+2", o.transform.Crop.String())
	require.False(t, o.source)
	require.Equal(t, compose.Grey, o.style)
	require.Equal(t, decompose.JPEG, o.format)
	require.Equal(t, 80, o.quality)

	for _, tc := range []struct {
		args []string
		want overwrite_policy
	}{
		{[]string{"-y"}, overwrite_existing},
		{[]string{"-i"}, ask_before_overwrite},
		{[]string{"-y", "-i"}, ask_before_overwrite},
		{[]string{"-i", "-y"}, overwrite_existing},
		{[]string{"--interactive", "--yes=false"}, ask_before_overwrite},
		{[]string{"-y", "--yes=false"}, skip_existing},
	} {
		o, err = parse_args(append(tc.args, "f.png"), io.Discard)
		require.NoError(t, err)
		require.Equal(t, tc.want, o.overwrite, "%v", tc.args)
	}

	for _, bad := range [][]string{
		{},
		{"-s", "hsi", "f.png"},
		{"--resize", "10X20", "f.png"},
		{"--crop", "10x20++1+1", "f.png"},
		{"--format", "webp", "f.png"},
		{"--format", "pdf", "f.png"},
		{"--style", "sepia", "f.png"},
		{"-q", "0", "f.png"},
	} {
		_, err = parse_args(bad, io.Discard)
		require.Error(t, err, "%v", bad)
	}
	_, err = parse_args([]string{"--help"}, io.Discard)
	require.ErrorIs(t, err, pflag.ErrHelp)
}

func TestOutputPath(t *testing.T) {
	require.Equal(t, filepath.Join("out", "photo-lchab.png"), output_path("out", "/some/where/photo.jpeg", space.LChab, decompose.PNG))
	require.Equal(t, filepath.Join("d", "a.b-XYZ.jpg"), output_path("d", "a.b.tif", space.XYZ, decompose.JPEG))
	require.Equal(t, filepath.Join("d", "noext-cmyk.png"), output_path("d", "noext", space.CMYK, decompose.APNG))
}

func TestConfirmer(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.png")
	require.NoError(t, os.WriteFile(existing, nil, 0o600))
	missing := filepath.Join(dir, "missing.png")

	out := bytes.Buffer{}
	c := new_confirmer(skip_existing, strings.NewReader(""), &out)
	require.NoError(t, c.confirm(missing))
	require.ErrorIs(t, c.confirm(existing), errSkipped)
	c = new_confirmer(overwrite_existing, strings.NewReader(""), &out)
	require.NoError(t, c.confirm(existing))
	require.Empty(t, out.String())

	c = new_confirmer(ask_before_overwrite, strings.NewReader("maybe\ny\nN\r\n\nY"), &out)
	require.NoError(t, c.confirm(missing))
	require.Empty(t, out.String())
	require.NoError(t, c.confirm(existing))
	require.Equal(t, 2, strings.Count(out.String(), "overwrite? [y/N]"))
	require.ErrorIs(t, c.confirm(existing), errSkipped)
	require.ErrorIs(t, c.confirm(existing), errSkipped)
	// the last answer has no trailing newline
	require.NoError(t, c.confirm(existing))
	out.Reset()
	require.ErrorIs(t, c.confirm(existing), errSkipped)
	require.True(t, strings.HasSuffix(out.String(), "N\n"))
}

func write_test_image(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			img.SetNRGBA(x, y, color.NRGBA{uint8(40 * x), uint8(60 * y), 128, 0xff})
		}
	}
	require.NoError(t, decompose.Save(img, path))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	write_test_image(t, input)
	out_dir := filepath.Join(dir, "out", "nested")
	stdout, stderr := bytes.Buffer{}, bytes.Buffer{}

	err := run([]string{"-o", out_dir, "-s", "hsv,cmyk", "--columns", "2", input}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	img, err := decompose.Open(filepath.Join(out_dir, "in-hsv.png"))
	require.NoError(t, err)
	// source and three channels on a two column grid
	require.Equal(t, image.Rect(0, 0, 12, 8), img.Bounds())
	img, err = decompose.Open(filepath.Join(out_dir, "in-cmyk.png"))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())
	require.Contains(t, stderr.String(), "Generating")

	// existing files are skipped by default
	stderr.Reset()
	require.NoError(t, os.Remove(filepath.Join(out_dir, "in-cmyk.png")))
	require.NoError(t, run([]string{"-o", out_dir, "-s", "hsv,cmyk", input}, strings.NewReader(""), &stdout, &stderr))
	img, err = decompose.Open(filepath.Join(out_dir, "in-hsv.png"))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 12, 8), img.Bounds())
	img, err = decompose.Open(filepath.Join(out_dir, "in-cmyk.png"))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 30, 4), img.Bounds())
	require.Contains(t, stderr.String(), "Skipping")

	// resize and crop, written next to the input
	require.NoError(t, run([]string{"-y", "--quiet", "-s", "lab", "--resize", "12x8", "--crop", "5x3-0-0", "--no-source", input}, strings.NewReader(""), &stdout, &stderr))
	img, err = decompose.Open(filepath.Join(dir, "in-lab.png"))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 15, 3), img.Bounds())

	require.NoError(t, run([]string{"-y", "-s", "rgb", "--format", "apng", input}, strings.NewReader(""), &stdout, &stderr))
	require.FileExists(t, filepath.Join(dir, "in-rgb.png"))

	// failures are reported and the remaining files are still processed
	stderr.Reset()
	err = run([]string{"-y", "-s", "rgb", filepath.Join(dir, "missing.png"), input}, strings.NewReader(""), &stdout, &stderr)
	require.ErrorContains(t, err, "1 errors occurred")
	require.Contains(t, stderr.String(), "missing.png:")
}

func TestList(t *testing.T) {
	stdout := bytes.Buffer{}
	require.NoError(t, run([]string{"--list"}, strings.NewReader(""), &stdout, io.Discard))
	var listed []struct {
		Name     string `yaml:"name"`
		Title    string `yaml:"title"`
		Channels []struct {
			Name   string  `yaml:"name"`
			Min    float64 `yaml:"min"`
			Max    float64 `yaml:"max"`
			Cyclic bool    `yaml:"cyclic"`
		} `yaml:"channels"`
	}
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &listed))
	require.Len(t, listed, len(space.All()))
	require.Equal(t, "rgb", listed[0].Name)
	require.Equal(t, "CIE LCh(ab)", listed[8].Title)
	require.True(t, listed[8].Channels[2].Cyclic)
	require.Equal(t, 360., listed[8].Channels[2].Max)

	stdout.Reset()
	require.NoError(t, run([]string{"--version"}, strings.NewReader(""), &stdout, io.Discard))
	require.Equal(t, "decompose "+decompose.Version.String()+"\n", stdout.String())
}
