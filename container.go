package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Canvas is a rendered chart: its scene and the SVG document written from it.
type Canvas struct {
	Scene Scene
	SVG   []byte
}

func NewCanvas(scene Scene) (Canvas, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		return Canvas{}, err
	}
	return Canvas{
		Scene: scene,
		SVG:   buf.Bytes(),
	}, nil
}

// Inline gives the svg element of the document without what precedes it
// (XML prolog, generator comment), ready to be embedded in an HTML page.
func (c Canvas) Inline() string {
	str := string(c.SVG)
	if i := strings.Index(str, "<svg"); i >= 0 {
		str = str[i:]
	}
	return strings.TrimSpace(str)
}

// Container is the mount point of a chart. It holds at most one canvas at a
// time; its name identifies it within a Registry.
type Container interface {
	Name() string
	Mount(Canvas) error
	Clear() error
}

type MemoryContainer struct {
	name    string
	mounted []Canvas
}

func NewMemoryContainer(name string) *MemoryContainer {
	return &MemoryContainer{
		name: name,
	}
}

func (c *MemoryContainer) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

func (c *MemoryContainer) Mount(cv Canvas) error {
	c.mounted = append(c.mounted, cv)
	return nil
}

func (c *MemoryContainer) Clear() error {
	c.mounted = c.mounted[:0]
	return nil
}

// Mounted returns every canvas currently attached to the container.
func (c *MemoryContainer) Mounted() []Canvas {
	return c.mounted
}

func (c *MemoryContainer) Current() (Canvas, bool) {
	if len(c.mounted) == 0 {
		return Canvas{}, false
	}
	return c.mounted[len(c.mounted)-1], true
}

// FileContainer mounts its canvas as <dir>/<name>.svg. The directory has to
// exist.
type FileContainer struct {
	dir  string
	name string
}

func NewFileContainer(dir, name string) *FileContainer {
	return &FileContainer{
		dir:  dir,
		name: name,
	}
}

func (c *FileContainer) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

func (c *FileContainer) Path() string {
	return filepath.Join(c.dir, c.name+".svg")
}

func (c *FileContainer) Mount(cv Canvas) error {
	info, err := os.Stat(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrContainerNotFound, c.dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrContainerNotFound, c.dir)
	}
	tmp, err := os.CreateTemp(c.dir, "."+c.name+"-*.svg")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(cv.SVG); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.Path())
}

func (c *FileContainer) Clear() error {
	err := os.Remove(c.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
