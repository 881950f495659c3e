// Package config loads simulation scenes from yaml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
	"github.com/koteyur/impulse2d/pkg/world"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrInvalidScene = errors.New("invalid scene")
)

type Scene struct {
	Settings dynamics.Settings `yaml:"settings"`
	Gravity  vecmath.Vector2   `yaml:"gravity"`
	Log      LogConfig         `yaml:"log"`
	Server   ServerConfig      `yaml:"server"`
	Bodies   []BodyConfig      `yaml:"bodies"`
	Joints   []JointConfig     `yaml:"joints"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// BroadcastEvery sends a snapshot every n simulation steps.
	BroadcastEvery int `yaml:"broadcast_every"`
}

// Default is the scene every loaded file starts from: default settings,
// earth gravity pointing down and no bodies.
func Default() *Scene {
	return &Scene{
		Settings: dynamics.DefaultSettings(),
		Gravity:  vecmath.Vec(0, -9.81),
		Log:      LogConfig{Level: "info"},
		Server:   ServerConfig{Addr: ":8080", BroadcastEvery: 2},
	}
}

// Load decodes a scene on top of Default and validates it. Unknown keys are
// rejected.
func Load(r io.Reader) (*Scene, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) Validate() error {
	if err := s.Settings.Validate(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if s.Server.BroadcastEvery < 1 {
		return fmt.Errorf("%w: server.broadcast_every must be at least 1", ErrInvalidScene)
	}
	for i, b := range s.Bodies {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
	}
	for i, j := range s.Joints {
		if err := j.Validate(len(s.Bodies)); err != nil {
			return fmt.Errorf("joint %d: %w", i, err)
		}
	}
	return nil
}

func (s *Scene) LogLevel() log.Level {
	level, _ := log.ParseLevel(s.Log.Level)
	return level
}

// NewWorld builds a world from the scene's settings and gravity and adds
// every body to it.
func (s *Scene) NewWorld(logger log.Log) (*world.World, error) {
	w, err := world.New(s.Gravity, s.Settings, logger)
	if err != nil {
		return nil, err
	}
	if err := s.Populate(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Populate adds the scene's bodies to w in file order, then its joints.
func (s *Scene) Populate(w *world.World) error {
	bodies := make([]*dynamics.Body, 0, len(s.Bodies))
	for i, bc := range s.Bodies {
		b, err := bc.Build()
		if err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
		if err := w.AddBody(b); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	for i, jc := range s.Joints {
		j, err := jc.Build(bodies)
		if err != nil {
			return fmt.Errorf("joint %d: %w", i, err)
		}
		if err := w.AddJoint(j); err != nil {
			return fmt.Errorf("joint %d: %w", i, err)
		}
	}
	return nil
}
