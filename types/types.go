package types

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// Format is an image file format.
type Format int

// Image file formats.
const (
	UNKNOWN Format = iota
	JPEG
	PNG
	GIF
	TIFF
	WEBP
	BMP
	APNG
)

var FormatExts = map[string]Format{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
	"bmp":  BMP,
	"apng": APNG,
}

var formatNames = map[Format]string{
	JPEG: "JPEG",
	PNG:  "PNG",
	GIF:  "GIF",
	TIFF: "TIFF",
	WEBP: "WEBP",
	BMP:  "BMP",
	APNG: "APNG",
}

// preferred file extension for each format
var formatExt = map[Format]string{
	JPEG: "jpg",
	PNG:  "png",
	GIF:  "gif",
	TIFF: "tiff",
	WEBP: "webp",
	BMP:  "bmp",
	APNG: "png",
}

func (f Format) String() string {
	return formatNames[f]
}

// Extension returns the file name extension, without a leading period, used
// for files in this format.
func (f Format) Extension() string { return formatExt[f] }

// CanEncode is false for formats that can only be read
func (f Format) CanEncode() bool {
	switch f {
	case UNKNOWN, WEBP:
		return false
	}
	return true
}

// ParseFormat parses a format name such as "png" or "JPEG"
func ParseFormat(name string) (Format, error) {
	if f, ok := FormatExts[strings.ToLower(strings.TrimPrefix(name, "."))]; ok {
		return f, nil
	}
	return UNKNOWN, fmt.Errorf("unknown image format: %q", name)
}
