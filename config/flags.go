package config

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user config directory.
const AppName = "patch-cropper"

// DefaultPath returns the per-user config file location
// ($XDG_CONFIG_HOME/patch-cropper/config.json or the platform equivalent).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.json")
}

// Options are the parsed command line. Zero-valued overrides were not given.
type Options struct {
	ConfigPath string

	imagesPath string
	outputPath string
	patchSize  int
	order      string
	debug      bool
	set        map[string]bool
	fs         *flag.FlagSet
}

// ParseFlags parses args (without the program name). Usage and parse errors
// go to out.
func ParseFlags(args []string, out io.Writer) (*Options, error) {
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	o := &Options{set: make(map[string]bool), fs: fs}
	fs.SetOutput(out)
	fs.StringVar(&o.ConfigPath, "config", DefaultPath(), "Path to the JSON config file")
	fs.StringVar(&o.imagesPath, "images-path", "", "Path to the input images")
	fs.StringVar(&o.outputPath, "output-path", "./patches", "Path where to save the patches")
	fs.IntVar(&o.patchSize, "patch-size", 512, "Size of the patches")
	fs.StringVar(&o.order, "order", OrderLexical, "Image order: lexical or natural")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging and runtime stats")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// Usage prints the flag summary to the output given to ParseFlags.
func (o *Options) Usage() {
	if o != nil && o.fs != nil {
		o.fs.Usage()
	}
}

// Apply overrides cfg with every flag given explicitly on the command line.
func (o *Options) Apply(cfg *Config) {
	if o == nil || cfg == nil {
		return
	}
	if o.set["images-path"] {
		cfg.ImagesPath = o.imagesPath
	}
	if o.set["output-path"] {
		cfg.OutputPath = o.outputPath
	}
	if o.set["patch-size"] {
		cfg.PatchSize = o.patchSize
	}
	if o.set["order"] {
		cfg.Order = o.order
	}
	if o.set["debug"] {
		cfg.Debug = o.debug
	}
}
