package imgsniff

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"imgsniff/formats"
	"imgsniff/internal/log"
)

// Image bundles encoded image bytes with the format and size sniffed from
// their header. Construction fails for data whose format is Unknown.
type Image struct {
	// Data is the encoded image. It is not copied.
	Data []byte `json:"-"`

	// Source is the path or URL the data was loaded from, if any.
	Source string `json:"source,omitempty"`

	// Format is the detected container format.
	Format Format `json:"format"`

	// Size is nil when the format has no header reader or the header is
	// truncated or malformed.
	Size *Size `json:"size,omitempty"`
}

// New sniffs data and returns an Image describing it.
//
// Example:
//
//	img, err := imgsniff.New(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if img.Size != nil {
//		fmt.Printf("%s %dx%d\n", img.Format, img.Size.Width, img.Size.Height)
//	}
func New(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrUnsupportedFormat, "empty data")
	}

	format := formats.Detect(data)
	if format == formats.Unknown {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "leading byte %#02x", data[0])
	}

	img := &Image{
		Data:   data,
		Format: format,
	}
	if dims, ok := formats.Extract(data, format); ok {
		img.Size = &dims
	}
	return img, nil
}

// FromReader reads r to EOF and sniffs the result.
func FromReader(r io.Reader) (*Image, error) {
	if r == nil {
		return nil, errors.Wrap(ErrInvalidSource, "nil reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &sourceError{kind: ErrInvalidSource, source: "reader", err: err}
	}
	return New(data)
}

// Open reads the file at path and sniffs its contents.
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sourceError{kind: ErrInvalidSource, source: path, err: err}
	}

	img, err := New(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	img.Source = path
	return img, nil
}

// OpenAll opens paths concurrently, running at most limit reads at a time
// (no limit when limit <= 0). Results are in the order of paths. The first
// failure cancels the remaining reads and is returned.
func OpenAll(ctx context.Context, paths []string, limit int) ([]*Image, error) {
	images := make([]*Image, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Open(path)
			if err != nil {
				log.Debug("open failed", "path", path, "err", err)
				return err
			}
			images[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// MIMEType returns the media type of the image's format.
func (img *Image) MIMEType() string {
	return img.Format.MIMEType()
}

// Dimensions returns the image size and whether it is known.
func (img *Image) Dimensions() (Size, bool) {
	if img.Size == nil {
		return Size{}, false
	}
	return *img.Size, true
}
