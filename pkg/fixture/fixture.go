// Package fixture stores raw, headerless frames on a filesystem. The files
// carry no format or dimensions: callers supply the frame.Layout.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pion/yuvlayout/internal/logging"
	"github.com/pion/yuvlayout/pkg/frame"
	"github.com/spf13/afero"
)

var logger = logging.NewLogger("yuvlayout/fixture")

// Store reads and writes fixtures on fs.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOsStore returns a Store backed by the operating system's filesystem.
func NewOsStore() *Store {
	return NewStore(afero.NewOsFs())
}

// Name returns the conventional file name of a fixture, e.g. "u_004x004.yuv".
func Name(prefix string, l frame.Layout) string {
	if prefix == "" {
		return fmt.Sprintf("%03dx%03d.yuv", l.Width, l.Height)
	}
	return fmt.Sprintf("%s_%03dx%03d.yuv", prefix, l.Width, l.Height)
}

// Save replaces name with data. The data is written to a temporary file in
// the same directory first, so readers never see a partial fixture.
func (s *Store) Save(name string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", name, err)
	}

	tmp := fmt.Sprintf("%s.tmp-%s", name, uuid.NewString())
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		if rmErr := s.fs.Remove(tmp); rmErr != nil {
			logger.Warnf("failed to remove %s: %v", tmp, rmErr)
		}
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}

	logger.Debugf("saved %d bytes to %s", len(data), name)
	return nil
}

// Append adds data at the end of name, creating it when needed. A file built
// with Append holds consecutive frames of the same layout.
func (s *Store) Append(name string, data []byte) error {
	f, err := s.fs.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", name, err)
	}

	logger.Debugf("appended %d bytes to %s", len(data), name)
	return f.Close()
}

// Load returns the whole content of name.
func (s *Store) Load(name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	logger.Debugf("loaded %d bytes from %s", len(data), name)
	return data, nil
}

// LoadFrame loads name and checks that it holds at least one frame of layout
// l. Only the first frame is returned.
func (s *Store) LoadFrame(name string, l frame.Layout) ([]byte, error) {
	data, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(data); err != nil {
		return nil, fmt.Errorf("%s as %s: %w", name, l, err)
	}

	size := l.Size()
	if len(data) > size {
		logger.Warnf("%s holds %d bytes, only the first %d are used for %s", name, len(data), size, l)
	}
	return data[:size:size], nil
}

// LoadFrames splits name into consecutive frames of layout l. The file size
// must be a multiple of the frame size.
func (s *Store) LoadFrames(name string, l frame.Layout) ([][]byte, error) {
	data, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(data); err != nil {
		return nil, fmt.Errorf("%s as %s: %w", name, l, err)
	}

	size := l.Size()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%s as %s: %w", name, l, &frame.InsufficientBufferError{
			RequiredSize: (len(data)/size + 1) * size,
			ActualSize:   len(data),
		})
	}

	frames := make([][]byte, 0, len(data)/size)
	for i := 0; i < len(data); i += size {
		frames = append(frames, data[i:i+size:i+size])
	}
	return frames, nil
}
