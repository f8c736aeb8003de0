package imgsniff

import (
	"context"

	"github.com/pkg/errors"

	"imgsniff/internal/log"
)

// Resizer scales an image so that it fits within width x height, keeping its
// aspect ratio, and returns the re-sniffed result.
type Resizer interface {
	Resize(ctx context.Context, img *Image, width, height int) (*Image, error)
}

// Resize scales img with r. See Resizer.
func (img *Image) Resize(ctx context.Context, width, height int, r Resizer) (*Image, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("imgsniff: nil resizer")
	}
	return r.Resize(ctx, img, width, height)
}

// NewResizer builds the backend selected by cfg.Backend. With BackendAuto the
// convert backend is used when an executable is found, otherwise the native
// one.
func NewResizer(cfg ResizeConfig) (Resizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendConvert:
		c := NewConvertResizer(cfg)
		if _, err := c.Executable(); err != nil {
			return nil, err
		}
		return c, nil
	case BackendNative:
		return NewNativeResizer(cfg), nil
	default:
		c := NewConvertResizer(cfg)
		if path, err := c.Executable(); err == nil {
			log.Debug("using convert backend", "path", path)
			return c, nil
		}
		log.Debug("convert not found, using native backend")
		return NewNativeResizer(cfg), nil
	}
}

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	return nil
}

// fitWithin returns the largest size with the aspect ratio of w x h that fits
// inside maxW x maxH. Images are scaled up as well as down. Neither side is
// ever below 1.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	// compare maxW/w against maxH/h without floating point
	if int64(maxW)*int64(h) <= int64(maxH)*int64(w) {
		nh := int((int64(h)*int64(maxW) + int64(w)/2) / int64(w))
		return maxW, max(nh, 1)
	}
	nw := int((int64(w)*int64(maxH) + int64(h)/2) / int64(h))
	return max(nw, 1), maxH
}
