package config

import (
	"errors"
	"flag"
	"fmt"
)

// Shader dialects accepted by -shader-dialect.
const (
	DialectGLSL330 = "glsl330"
	DialectWebGL2  = "webgl2"
)

// Options is the startup configuration read from the command line.
type Options struct {
	Width  int
	Height int
	Title  string

	ShaderDir     string
	ShaderDialect string

	// SoundPath is the jump sound. Empty disables sound.
	SoundPath string

	FPSLimit int
	VSync    bool
	Verbose  bool
}

func Defaults() Options {
	return Options{
		Width:         600,
		Height:        600,
		Title:         "Cube Maze",
		ShaderDir:     "assets/shaders",
		ShaderDialect: DialectGLSL330,
		FPSLimit:      60,
		VSync:         true,
	}
}

// RegisterFlags binds every option to a flag on fs, using the current
// values as defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "window width in pixels")
	fs.IntVar(&o.Height, "height", o.Height, "window height in pixels")
	fs.StringVar(&o.Title, "title", o.Title, "window title")
	fs.StringVar(&o.ShaderDir, "shaders", o.ShaderDir, "directory holding the shader sources")
	fs.StringVar(&o.ShaderDialect, "shader-dialect", o.ShaderDialect, "shader source dialect: glsl330 or webgl2")
	fs.StringVar(&o.SoundPath, "sound", o.SoundPath, "sound file played on jump (wav, or anything ffmpeg decodes)")
	fs.IntVar(&o.FPSLimit, "fps", o.FPSLimit, "frame rate cap, 0 for uncapped")
	fs.BoolVar(&o.VSync, "vsync", o.VSync, "wait for vertical sync")
	fs.BoolVar(&o.Verbose, "verbose", o.Verbose, "log frame rate once per second")
}

// Validate reports every invalid option at once.
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", o.Width, o.Height))
	}
	if o.ShaderDir == "" {
		errs = append(errs, errors.New("shader directory is empty"))
	}
	switch o.ShaderDialect {
	case DialectGLSL330, DialectWebGL2:
	default:
		errs = append(errs, fmt.Errorf("unknown shader dialect %q", o.ShaderDialect))
	}
	if o.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps limit %d is negative", o.FPSLimit))
	}
	return errors.Join(errs...)
}

// Parse reads options from args and applies the runtime settings.
func Parse(name string, args []string) (Options, error) {
	o := Defaults()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("invalid options: %w", err)
	}
	SetFPSLimit(o.FPSLimit)
	SetVerbose(o.Verbose)
	return o, nil
}
