package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Sort orders accepted for the image list.
const (
	OrderLexical = "lexical"
	OrderNatural = "natural"
)

// ErrNoImagesPath is returned by Validate when no input directory is configured.
var ErrNoImagesPath = errors.New("images path is required")

// Config holds runtime configuration for the cropper.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Input / output
	ImagesPath string `json:"images_path"`
	OutputPath string `json:"output_path"`
	PatchSize  int    `json:"patch_size"`
	Order      string `json:"order"`

	// Loop and rendering
	TickMillis  int  `json:"tick_ms"`
	StrokeWidth int  `json:"stroke_width"`
	CacheSize   int  `json:"cache_size"`
	ShowCaption bool `json:"show_caption"` // draw position and name onto the frame
	DarkMode    bool `json:"dark_mode"`

	// Key bindings (Tk keysyms)
	KeyNext []string `json:"key_next"`
	KeyPrev []string `json:"key_prev"`
	KeySave []string `json:"key_save"`
	KeyQuit []string `json:"key_quit"`

	// Window geometry persistence
	WindowX int `json:"window_x"`
	WindowY int `json:"window_y"`
	WindowW int `json:"window_w"`
	WindowH int `json:"window_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		OutputPath:  "./patches",
		PatchSize:   512,
		Order:       OrderLexical,
		TickMillis:  50,
		StrokeWidth: 2,
		CacheSize:   8,
		ShowCaption: false,
		DarkMode:    false,
		KeyNext:     []string{"d", "Right"},
		KeyPrev:     []string{"a", "Left"},
		KeySave:     []string{"s"},
		KeyQuit:     []string{"q", "Escape"},
		WindowX:     100,
		WindowY:     100,
		WindowW:     900,
		WindowH:     900,
	}
}

// Validate clamps/normalizes values to safe ranges. The only hard error is a
// missing images path.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.OutputPath == "" {
		c.OutputPath = def.OutputPath
	}
	if c.PatchSize <= 0 {
		c.PatchSize = def.PatchSize
	}
	if c.Order != OrderLexical && c.Order != OrderNatural {
		c.Order = OrderLexical
	}
	if c.TickMillis < 10 {
		c.TickMillis = 10
	}
	if c.TickMillis > 1000 {
		c.TickMillis = 1000
	}
	if c.StrokeWidth < 1 {
		c.StrokeWidth = 1
	}
	if c.CacheSize < 1 {
		c.CacheSize = 1
	}
	if len(c.KeyNext) == 0 {
		c.KeyNext = def.KeyNext
	}
	if len(c.KeyPrev) == 0 {
		c.KeyPrev = def.KeyPrev
	}
	if len(c.KeySave) == 0 {
		c.KeySave = def.KeySave
	}
	if len(c.KeyQuit) == 0 {
		c.KeyQuit = def.KeyQuit
	}
	if c.WindowW < 200 {
		c.WindowW = 200
	}
	if c.WindowH < 200 {
		c.WindowH = 200
	}
	if c.ImagesPath == "" {
		return ErrNoImagesPath
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Validation is left to the caller because flags may still fill required fields.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format, creating
// the parent directory when needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
