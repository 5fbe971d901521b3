package scene

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"tracker2nuke/internal/fileutil"
)

// Format identifies the on-disk encoding of a scene document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const lockRetryDelay = 50 * time.Millisecond

// Scene is a clip loaded from a document on disk.
type Scene struct {
	Path   string
	Format Format
	Clip   Clip
}

// FormatForPath picks the encoding from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a clip document in the given format and validates it.
func Decode(data []byte, format Format) (Clip, error) {
	var clip Clip
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &clip); err != nil {
			return Clip{}, fmt.Errorf("parse yaml scene: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &clip); err != nil {
			return Clip{}, fmt.Errorf("parse json scene: %w", err)
		}
	default:
		return Clip{}, fmt.Errorf("unsupported scene format %q", format)
	}
	if err := clip.Validate(); err != nil {
		return Clip{}, err
	}
	return clip, nil
}

// Encode serializes a clip document in the given format.
func Encode(clip Clip, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(clip)
		if err != nil {
			return nil, fmt.Errorf("encode yaml scene: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(clip, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json scene: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported scene format %q", format)
	}
}

// Validate checks the fields every export path depends on.
func (c *Clip) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("clip size must be positive (got %dx%d)", c.Width, c.Height)
	}
	if len(c.Objects) == 0 {
		return errors.New("clip has no tracking objects")
	}
	return nil
}

// Load reads and validates the scene document at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	format := FormatForPath(path)
	clip, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Scene{Path: path, Format: format, Clip: clip}, nil
}

// LoadAll reads several scene documents concurrently. Results keep the order
// of paths; the first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]*Scene, error) {
	scenes := make([]*Scene, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := Load(path)
			if err != nil {
				return err
			}
			scenes[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenes, nil
}

// SaveOptions controls how a scene is written back.
type SaveOptions struct {
	// Backup copies the previous document to <path>.bak before replacing it.
	Backup bool
}

// Save writes the scene back to its path atomically.
func (s *Scene) Save(opts SaveOptions) error {
	data, err := Encode(s.Clip, s.Format)
	if err != nil {
		return err
	}
	if opts.Backup {
		if _, err := os.Stat(s.Path); err == nil {
			if err := fileutil.CopyFile(s.Path, s.Path+".bak"); err != nil {
				return fmt.Errorf("backup scene: %w", err)
			}
		}
	}
	if err := fileutil.WriteFileAtomic(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// Update runs a locked read-modify-write cycle on the document at path. fn
// sees the freshly loaded clip; the document is saved only when fn succeeds.
func Update(ctx context.Context, path string, opts SaveOptions, fn func(*Clip) error) (*Scene, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire scene lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("scene %s is locked by another process", path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := fn(&s.Clip); err != nil {
		return nil, err
	}
	if err := s.Save(opts); err != nil {
		return nil, err
	}
	return s, nil
}
