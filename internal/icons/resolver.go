package icons

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// FallbackKeyword is resolved whenever a keyword has no mapped icon
const FallbackKeyword = "error"

// Fixed assets that are not tied to a condition keyword
const (
	NewspaperAsset = "Newspaper.png"
	HumidityAsset  = "Humidity.png"
)

// Mapping maps condition keywords to asset file names. Keys are lowercase.
var Mapping = map[string]string{
	"clear":               "Sun.png",
	"wind":                "Wind.png",
	"cloudy":              "Cloud.png",
	"partly-cloudy-day":   "PartlySunny.png",
	"rain":                "Rain.png",
	"snow":                "Snow.png",
	"snow-thin":           "Snow.png",
	"fog":                 "Haze.png",
	"clear-night":         "Moon.png",
	"partly-cloudy-night": "PartlyMoon.png",
	"thunderstorm":        "Storm.png",
	"tornado":             "Tornado.png",
	"hail":                "Hail.png",
	FallbackKeyword:       "Error.png",
}

// Resolver decodes icon assets from a file system. It keeps no cache: every call
// decodes the file again, which is fine at refresh periods measured in minutes.
type Resolver struct {
	fsys    fs.FS
	mapping map[string]string
	filter  resize.InterpolationFunction
}

// NewResolver creates a resolver reading assets from fsys using the default mapping
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{
		fsys:    fsys,
		mapping: Mapping,
		filter:  resize.NearestNeighbor,
	}
}

// Path returns the asset name for keyword. Unknown keywords resolve to the
// fallback entry and are logged; Path never fails.
func (r *Resolver) Path(keyword string) string {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if name, ok := r.mapping[key]; ok {
		return name
	}
	log.Printf("icons: no icon for condition %q, using %q", keyword, FallbackKeyword)
	return r.mapping[FallbackKeyword]
}

// Resolve returns the icon for keyword scaled to width x height. The only error
// comes from reading or decoding the asset file itself.
func (r *Resolver) Resolve(keyword string, width, height uint) (image.Image, error) {
	return r.Load(r.Path(keyword), width, height)
}

// Load decodes the named asset, resizes it and converts it to RGBA
func (r *Resolver) Load(name string, width, height uint) (image.Image, error) {
	f, err := r.fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open icon %s", name)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode icon %s", name)
	}

	scaled := resize.Resize(width, height, src, r.filter)
	return toRGBA(scaled), nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
