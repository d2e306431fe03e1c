// Package czml implements the viewer widget as an in-memory scene that is
// shipped to the browser as a CZML document plus a camera flight command.
package czml

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"

	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/internal/viewer"
)

var ErrDuplicateEntity = errors.New("entity id already in collection")

// State is everything the widget has been told. Snapshots returned by
// Scene.State share no memory with the scene.
type State struct {
	ID          string
	Container   string
	Options     viewer.Options
	ShowCredits bool
	Entities    []model.Entity
	Flight      *model.Flight
}

type Scene struct {
	mu    sync.RWMutex
	state State
}

// New binds a scene to the container element of host. The container must
// exist on the page.
func New(container string, host viewer.Container, opts viewer.Options) (*Scene, error) {
	if host == nil || container == "" || !host.HasElement(container) {
		return nil, fmt.Errorf("%w: %q", viewer.ErrContainerNotFound, container)
	}

	return &Scene{
		state: State{
			ID:          uuid.NewString(),
			Container:   container,
			Options:     opts,
			ShowCredits: true,
		},
	}, nil
}

// NewWidget is a viewer.Factory backed by New.
func NewWidget(container string, host viewer.Container, opts viewer.Options) (viewer.Widget, error) {
	s, err := New(container, host, opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ID
}

func (s *Scene) Entities() viewer.EntityCollection {
	return entities{s}
}

func (s *Scene) Camera() viewer.Camera {
	return camera{s}
}

func (s *Scene) SetCreditsVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ShowCredits = visible
}

// State returns a deep copy of the scene.
func (s *Scene) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepcopy.Copy(s.state).(State)
}

type entities struct{ s *Scene }

// Add appends e, assigning an id when it has none.
func (c entities) Add(e model.Entity) (model.Entity, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	for _, existing := range c.s.state.Entities {
		if existing.ID == e.ID {
			return model.Entity{}, fmt.Errorf("%w: %s", ErrDuplicateEntity, e.ID)
		}
	}

	c.s.state.Entities = append(c.s.state.Entities, e)
	return e, nil
}

func (c entities) Values() []model.Entity {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return deepcopy.Copy(c.s.state.Entities).([]model.Entity)
}

type camera struct{ s *Scene }

// FlyTo records the flight. The browser runs the animation; a later call
// replaces an earlier one, as a new flyTo cancels the one in progress.
func (c camera) FlyTo(f model.Flight) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.state.Flight = &f
}
