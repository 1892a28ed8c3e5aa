package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTrace is returned when a trace file does not describe a playable session.
var ErrInvalidTrace = errors.New("invalid trace")

// Sample is one tracked node entry in a recorded frame.
// Position is [x, y, z], rotation is [w, x, y, z]; either may be absent.
type Sample struct {
	Node     domain.Node `yaml:"node" json:"node"`
	Position []float32   `yaml:"position,omitempty" json:"position,omitempty"`
	Rotation []float32   `yaml:"rotation,omitempty" json:"rotation,omitempty"`
}

// FrameSpec is a recorded frame, optionally repeated for several ticks.
type FrameSpec struct {
	Note   string             `yaml:"note,omitempty" json:"note,omitempty"`
	Nodes  []Sample           `yaml:"nodes" json:"nodes"`
	Axes   map[string]float32 `yaml:"axes" json:"axes"`
	Repeat int                `yaml:"repeat,omitempty" json:"repeat,omitempty"`
}

// Trace is a recorded tracking and input session.
type Trace struct {
	Name   string      `yaml:"name" json:"name"`
	Frames []FrameSpec `yaml:"frames" json:"frames"`
}

// Load reads a trace file (YAML or JSON, by extension).
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	trace, err := Parse(data, strings.ToLower(filepath.Ext(path)) == ".json")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if trace.Name == "" {
		trace.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return trace, nil
}

// Parse decodes a trace from YAML, or JSON if asJSON is set, and validates it.
func Parse(data []byte, asJSON bool) (*Trace, error) {
	var trace Trace
	if asJSON {
		if err := json.Unmarshal(data, &trace); err != nil {
			return nil, fmt.Errorf("failed to parse trace json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &trace); err != nil {
			return nil, fmt.Errorf("failed to parse trace yaml: %w", err)
		}
	}

	if err := trace.Validate(); err != nil {
		return nil, err
	}
	return &trace, nil
}

// Save writes a trace to path, as JSON if the extension is .json and YAML otherwise.
func Save(path string, trace *Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace: %w", err)
	}
	defer f.Close()

	if err := trace.Encode(f, strings.ToLower(filepath.Ext(path)) == ".json"); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Encode writes the trace to w.
func (t *Trace) Encode(w io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks vector sizes, rotations and repeat counts.
func (t *Trace) Validate() error {
	if len(t.Frames) == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidTrace)
	}
	for i, f := range t.Frames {
		if f.Repeat < 0 {
			return fmt.Errorf("%w: frame %d: negative repeat", ErrInvalidTrace, i)
		}
		for _, s := range f.Nodes {
			if s.Node == "" {
				return fmt.Errorf("%w: frame %d: sample without node", ErrInvalidTrace, i)
			}
			if s.Position != nil && len(s.Position) != 3 {
				return fmt.Errorf("%w: frame %d: %s position needs 3 components, got %d", ErrInvalidTrace, i, s.Node, len(s.Position))
			}
			if s.Rotation != nil {
				if len(s.Rotation) != 4 {
					return fmt.Errorf("%w: frame %d: %s rotation needs 4 components (w x y z), got %d", ErrInvalidTrace, i, s.Node, len(s.Rotation))
				}
				if rotation(s.Rotation).Len() == 0 {
					return fmt.Errorf("%w: frame %d: %s rotation has zero length", ErrInvalidTrace, i, s.Node)
				}
			}
		}
	}
	return nil
}

// Ticks returns the number of ticks the trace plays for.
func (t *Trace) Ticks() int {
	n := 0
	for _, f := range t.Frames {
		n += f.ticks()
	}
	return n
}

func (f FrameSpec) ticks() int {
	if f.Repeat <= 0 {
		return 1
	}
	return f.Repeat
}

func (f FrameSpec) states() []domain.NodeState {
	states := make([]domain.NodeState, 0, len(f.Nodes))
	for _, s := range f.Nodes {
		state := domain.NewNodeState(s.Node)
		if s.Position != nil {
			state = state.WithPosition(mgl32.Vec3{s.Position[0], s.Position[1], s.Position[2]})
		}
		if s.Rotation != nil {
			state = state.WithRotation(rotation(s.Rotation).Normalize())
		}
		states = append(states, state)
	}
	return states
}

func rotation(wxyz []float32) mgl32.Quat {
	return mgl32.Quat{W: wxyz[0], V: mgl32.Vec3{wxyz[1], wxyz[2], wxyz[3]}}
}
