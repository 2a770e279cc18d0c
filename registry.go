package charts

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Instance is a chart mounted in a container.
type Instance struct {
	ID        string
	Type      ChartType
	Dataset   Dataset
	Options   Options
	Container Container
	Canvas    Canvas
}

type RegistryOption func(*Registry)

func WithViewport(vp Viewport) RegistryOption {
	return func(r *Registry) {
		r.viewport = vp
	}
}

func WithTheme(theme Theme) RegistryOption {
	return func(r *Registry) {
		r.theme = theme
	}
}

func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithIDGenerator(next func() string) RegistryOption {
	return func(r *Registry) {
		if next != nil {
			r.nextID = next
		}
	}
}

// Registry owns the charts mounted in a set of containers. A container
// holds at most one chart: creating a chart in a container already in use
// replaces the previous one.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	viewport Viewport
	theme    Theme
	logger   *zap.Logger
	nextID   func() string

	instances map[string]*Instance
	mounts    map[string]string
}

func NewRegistry(options ...RegistryOption) *Registry {
	r := Registry{
		viewport:  DefaultViewport(),
		theme:     DefaultTheme(),
		logger:    zap.NewNop(),
		nextID:    uuid.NewString,
		instances: make(map[string]*Instance),
		mounts:    make(map[string]string),
	}
	for _, o := range options {
		o(&r)
	}
	return &r
}

func (r *Registry) Create(c Container, t ChartType, data Dataset, opts Options) (string, error) {
	if c == nil || c.Name() == "" {
		return "", ErrContainerNotFound
	}
	canvas, err := r.render(t, data, opts)
	if err != nil {
		return "", err
	}
	if err := c.Clear(); err != nil {
		return "", fmt.Errorf("%s: %w", c.Name(), err)
	}
	if prev, ok := r.mounts[c.Name()]; ok {
		if inst, ok := r.instances[prev]; ok {
			if err := inst.Container.Clear(); err != nil {
				return "", fmt.Errorf("%s: %w", c.Name(), err)
			}
		}
		delete(r.instances, prev)
		delete(r.mounts, c.Name())
		r.logger.Debug("chart replaced", zap.String("id", prev), zap.String("container", c.Name()))
	}
	if err := c.Mount(canvas); err != nil {
		return "", fmt.Errorf("%s: %w", c.Name(), err)
	}
	id := r.generateID()
	r.instances[id] = &Instance{
		ID:        id,
		Type:      t,
		Dataset:   data.Clone(),
		Options:   opts,
		Container: c,
		Canvas:    canvas,
	}
	r.mounts[c.Name()] = id
	r.logger.Debug("chart created",
		zap.String("id", id),
		zap.String("type", t.String()),
		zap.String("container", c.Name()),
		zap.Int("points", len(data)))
	return id, nil
}

// Update renders the chart again with a new dataset, keeping its type and
// its options.
func (r *Registry) Update(id string, data Dataset) error {
	inst, ok := r.instances[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	canvas, err := r.render(inst.Type, data, inst.Options)
	if err != nil {
		return err
	}
	if err := inst.Container.Clear(); err != nil {
		return fmt.Errorf("%s: %w", inst.Container.Name(), err)
	}
	if err := inst.Container.Mount(canvas); err != nil {
		return fmt.Errorf("%s: %w", inst.Container.Name(), err)
	}
	r.instances[id] = &Instance{
		ID:        id,
		Type:      inst.Type,
		Dataset:   data.Clone(),
		Options:   inst.Options,
		Container: inst.Container,
		Canvas:    canvas,
	}
	r.logger.Debug("chart updated", zap.String("id", id), zap.Int("points", len(data)))
	return nil
}

// Destroy removes the chart from its container. Unknown ids are ignored.
func (r *Registry) Destroy(id string) error {
	inst, ok := r.instances[id]
	if !ok {
		return nil
	}
	delete(r.instances, id)
	delete(r.mounts, inst.Container.Name())
	r.logger.Debug("chart destroyed", zap.String("id", id), zap.String("container", inst.Container.Name()))
	if err := inst.Container.Clear(); err != nil {
		return fmt.Errorf("%s: %w", inst.Container.Name(), err)
	}
	return nil
}

func (r *Registry) Get(id string) (Instance, bool) {
	inst, ok := r.instances[id]
	if !ok {
		return Instance{}, false
	}
	x := *inst
	x.Dataset = inst.Dataset.Clone()
	return x, true
}

// Lookup gives the id of the chart mounted in the named container.
func (r *Registry) Lookup(container string) (string, bool) {
	id, ok := r.mounts[container]
	return id, ok
}

func (r *Registry) Len() int {
	return len(r.instances)
}

func (r *Registry) IDs() []string {
	list := make([]string, 0, len(r.instances))
	for id := range r.instances {
		list = append(list, id)
	}
	slices.Sort(list)
	return list
}

func (r *Registry) render(t ChartType, data Dataset, opts Options) (Canvas, error) {
	rdr, err := NewRenderer(t, r.viewport, r.theme)
	if err != nil {
		return Canvas{}, err
	}
	scene, err := rdr.Render(data, opts)
	if err != nil {
		return Canvas{}, err
	}
	return NewCanvas(scene)
}

func (r *Registry) generateID() string {
	for i := 0; i < 8; i++ {
		id := r.nextID()
		if _, ok := r.instances[id]; !ok && id != "" {
			return id
		}
	}
	return uuid.NewString()
}
