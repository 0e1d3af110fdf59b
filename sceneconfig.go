package tendril

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SceneConfig is the root of a declarative scene file: a list of trigger
// specs applied to a document by Context.ApplyScene.
//
//	triggers:
//	  - target: hero
//	    name: hero-reveal
//	    preset: fade-up
//	    start: "top 80%"
//	    toggleActions: "play none none reverse"
//	  - target: gallery
//	    pin: true
//	    scrub: true
//	    end: "+=150%"
//	    animation:
//	      x: 480
//	      duration: 2000
type SceneConfig struct {
	Triggers []TriggerSpec `yaml:"triggers"`
}

// TriggerSpec is the YAML form of one Observe call.
type TriggerSpec struct {
	Target        string           `yaml:"target"`
	Name          string           `yaml:"name"`
	Start         string           `yaml:"start"`
	End           string           `yaml:"end"`
	Pin           bool             `yaml:"pin"`
	Scrub         bool             `yaml:"scrub"`
	Markers       bool             `yaml:"markers"`
	ToggleActions string           `yaml:"toggleActions"`
	Preset        string           `yaml:"preset"`
	Animation     *AnimationParams `yaml:"animation"`
	Steps         []TimelineStep   `yaml:"steps"`
}

// toConfig converts the spec into the programmatic Config form.
func (s TriggerSpec) toConfig() Config {
	return Config{
		Name:      s.Name,
		Preset:    s.Preset,
		Animation: s.Animation,
		Steps:     s.Steps,
		Trigger: TriggerConfig{
			Start:         s.Start,
			End:           s.End,
			Pin:           s.Pin,
			Scrub:         s.Scrub,
			Markers:       s.Markers,
			ToggleActions: s.ToggleActions,
		},
	}
}

// LoadSceneConfig parses a YAML scene definition.
func LoadSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene config: %w", err)
	}
	if len(cfg.Triggers) == 0 {
		return nil, fmt.Errorf("parse scene config: no triggers")
	}
	return &cfg, nil
}

// ApplyScene observes every trigger spec in the scene. Specs whose target
// matches no element are logged and skipped; the rest proceed. Returns the
// triggers that were created.
func (c *Context) ApplyScene(cfg *SceneConfig) []*Trigger {
	out := make([]*Trigger, 0, len(cfg.Triggers))
	for _, spec := range cfg.Triggers {
		if t := c.ObserveSelector(spec.Target, spec.toConfig()); t != nil {
			out = append(out, t)
		}
	}
	return out
}
