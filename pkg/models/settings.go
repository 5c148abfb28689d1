package models

import "time"

// Settings represents the contents of a tagselect.yaml file
type Settings struct {
	Tags     []Tag           `yaml:"tags"`
	Selected []string        `yaml:"selected"`
	UI       UISettings      `yaml:"ui"`
	Logging  LoggingSettings `yaml:"logging"`
}

// UISettings controls widget layout and animation
type UISettings struct {
	Width            int           `yaml:"width"`
	DisableAnimation bool          `yaml:"disable_animation"`
	FPS              int           `yaml:"fps"`
	Frequency        float64       `yaml:"frequency"`    // spring angular frequency
	Damping          float64       `yaml:"damping"`      // spring damping ratio
	MaxDuration      time.Duration `yaml:"max_duration"` // hard stop for a transition
	HideHelp         bool          `yaml:"hide_help"`
}

// LoggingSettings controls the runtime log sink
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultTagNames is the tag list a fresh project starts with
var DefaultTagNames = []string{
	"Docker",
	"Kubernetes",
	"AWS",
	"GraphQL",
	"MongoDB",
	"PostgreSQL",
	"Redis",
	"Git",
	"WebPack",
	"Vite",
	"Cypress",
	"Storybook",
	"Tailwind",
	"Prisma",
	"Nginx",
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Tags:     TagsFromNames(DefaultTagNames),
		Selected: []string{},
		UI:       DefaultUISettings(),
		Logging: LoggingSettings{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultUISettings returns the default widget settings
func DefaultUISettings() UISettings {
	return UISettings{
		Width:       60,
		FPS:         60,
		Frequency:   7.0,
		Damping:     0.75,
		MaxDuration: 700 * time.Millisecond,
	}
}

// ApplyDefaults fills zero values left by a partial settings file
func (s *Settings) ApplyDefaults() {
	defaults := DefaultUISettings()
	if s.UI.Width <= 0 {
		s.UI.Width = defaults.Width
	}
	if s.UI.FPS <= 0 {
		s.UI.FPS = defaults.FPS
	}
	if s.UI.Frequency <= 0 {
		s.UI.Frequency = defaults.Frequency
	}
	if s.UI.Damping <= 0 {
		s.UI.Damping = defaults.Damping
	}
	if s.UI.MaxDuration <= 0 {
		s.UI.MaxDuration = defaults.MaxDuration
	}
	if s.Logging.Level == "" {
		s.Logging.Level = "info"
	}
	if s.Selected == nil {
		s.Selected = []string{}
	}
}
