package imgsniff

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"imgsniff/internal/log"
)

// DefaultConvertPaths are probed, in order, before searching PATH.
var DefaultConvertPaths = []string{
	"/usr/bin/convert",
	"/bin/convert",
	"/usr/local/bin/convert",
	"/opt/homebrew/bin/convert",
}

// ConvertResizer resizes by running ImageMagick's convert as a subprocess:
//
//	convert <in> -resize <W>x<H> <out>
//
// The source is written to a private temporary directory that is removed
// when Resize returns. The output keeps the source format.
type ConvertResizer struct {
	// Path is the convert executable. When empty it is discovered from
	// SearchPaths and then PATH on first use.
	Path string

	// SearchPaths overrides DefaultConvertPaths.
	SearchPaths []string

	// Timeout bounds a single invocation; zero means only ctx applies.
	Timeout time.Duration

	once sync.Once
	exe  string
	err  error
}

// NewConvertResizer returns a ConvertResizer configured from cfg.
func NewConvertResizer(cfg ResizeConfig) *ConvertResizer {
	return &ConvertResizer{
		Path:    cfg.ConvertPath,
		Timeout: cfg.Timeout,
	}
}

// Executable returns the convert path, discovering it once.
func (c *ConvertResizer) Executable() (string, error) {
	c.once.Do(func() {
		c.exe, c.err = c.discover()
	})
	return c.exe, c.err
}

func (c *ConvertResizer) discover() (string, error) {
	if c.Path != "" {
		if !isExecutable(c.Path) {
			return "", errors.Wrapf(ErrConvertNotFound, "%s is not an executable file", c.Path)
		}
		return c.Path, nil
	}

	candidates := c.SearchPaths
	if candidates == nil {
		candidates = DefaultConvertPaths
	}
	for _, p := range candidates {
		if isExecutable(p) {
			return p, nil
		}
	}

	p, err := exec.LookPath("convert")
	if err != nil {
		return "", errors.Wrap(ErrConvertNotFound, err.Error())
	}
	return p, nil
}

func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}

// Resize implements Resizer.
func (c *ConvertResizer) Resize(ctx context.Context, img *Image, width, height int) (*Image, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	exe, err := c.Executable()
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "imgsniff-")
	if err != nil {
		return nil, errors.Wrap(err, "create temp dir")
	}
	defer os.RemoveAll(dir)

	ext := img.Format.Extension()
	if ext == "" {
		ext = ".png"
	}
	in := filepath.Join(dir, "in"+ext)
	out := filepath.Join(dir, "out"+ext)
	if err := os.WriteFile(in, img.Data, 0o600); err != nil {
		return nil, errors.Wrap(err, "write convert input")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	geometry := fmt.Sprintf("%dx%d", width, height)
	cmd := exec.CommandContext(ctx, exe, in, "-resize", geometry, out)
	cmd.WaitDelay = time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug("running convert", "exe", exe, "geometry", geometry, "format", img.Format)
	start := time.Now()
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Warn("convert timed out", "geometry", geometry, "elapsed", time.Since(start))
			return nil, errors.Wrapf(ErrResizeTimeout, "convert %s after %s", geometry, time.Since(start).Round(time.Millisecond))
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "convert")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr := &ConvertError{ExitCode: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
			log.Warn("convert failed", "status", cerr.ExitCode, "stderr", cerr.Stderr)
			return nil, cerr
		}
		return nil, errors.Wrap(err, "run convert")
	}
	log.Debug("convert finished", "elapsed", time.Since(start))

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, errors.Wrap(err, "read convert output")
	}
	resized, err := New(data)
	if err != nil {
		return nil, errors.WithMessage(err, "convert output")
	}
	resized.Source = img.Source
	return resized, nil
}
