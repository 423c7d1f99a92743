package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Exit codes
const (
	exitOK = iota
	exitNoOptions
	exitUnknownOption
	exitNoArgument
	exitLightDistance
	exitFOV
	exitLightModel
	exitOutputFile
	exitResolution
	exitRecursionLevels
	exitShadowFactor
	exitThreads
	_ // unused
	exitSceneFile
	exitInitWorld
	exitWriteScene
)

// options holds the command line settings. Nil fields were not given and
// leave the scene or default value in place.
type options struct {
	distance    *float64
	fov         *float64
	width       *int
	height      *int
	depth       *int
	shadow      *float64
	threads     *int
	attenuation *lights.Attenuation

	output    string
	quiet     bool
	sceneName string
	files     []string
}

// apply overrides config with every option given on the command line
func (o *options) apply(config renderer.Config) renderer.Config {
	if o.distance != nil {
		config.MaxDistance = *o.distance
	}
	if o.fov != nil {
		config.FOV = *o.fov
	}
	if o.width != nil {
		config.Width, config.Height = *o.width, *o.height
	}
	if o.depth != nil {
		config.MaxDepth = *o.depth
	}
	if o.shadow != nil {
		config.ShadowFactor = *o.shadow
	}
	if o.threads != nil {
		config.NumWorkers = *o.threads
	}
	if o.attenuation != nil {
		config.Attenuation = *o.attenuation
	}
	return config
}

// usageError is a command line error with the exit code it maps to
type usageError struct {
	code int
	err  error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printHelp(stderr)
		return exitNoOptions
	}

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		printHelp(stdout)
		return exitOK
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		return uerr.code
	}

	if len(opts.files) == 0 && opts.sceneName == "" {
		fmt.Fprintln(stderr, "missing toml file")
		return exitSceneFile
	}
	if len(opts.files) > 0 && opts.sceneName != "" {
		fmt.Fprintln(stderr, "use either --scene or toml files, not both")
		return exitSceneFile
	}

	autoName := len(opts.files) > 1 || opts.output == ""
	if len(opts.files) > 1 && opts.output != "" {
		fmt.Fprintln(stderr, "multiple toml files: do not use -o/--output-file")
		return exitOutputFile
	}

	logger := renderer.NewNopLogger()
	if !opts.quiet {
		logger = renderer.NewDefaultLogger(stdout)
	}

	if opts.sceneName != "" {
		s, err := scene.NewBuiltinScene(opts.sceneName)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInitWorld
		}
		output := opts.output
		if output == "" {
			output = s.Name + ".png"
		}
		return renderScene(s, output, opts, logger, stdout, stderr)
	}

	for _, file := range opts.files {
		if !opts.quiet {
			fmt.Fprintf(stdout, "processing %s\n", file)
		}

		s, err := scene.NewSceneFromFile(file, nil)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInitWorld
		}

		output := opts.output
		if autoName {
			output = strings.TrimSuffix(file, ".toml") + ".png"
		}
		if code := renderScene(s, output, opts, logger, stdout, stderr); code != exitOK {
			return code
		}
	}

	return exitOK
}

// renderScene renders s with defaults, scene settings and command line
// options applied in that order, then writes the image to output
func renderScene(s *scene.Scene, output string, opts *options, logger core.Logger, stdout, stderr io.Writer) int {
	config := opts.apply(s.RenderConfig(renderer.DefaultConfig()))
	if err := config.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitInitWorld
	}

	fb, stats, err := renderer.NewRaytracer(s, config, logger).Render()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInitWorld
	}
	if !opts.quiet {
		fmt.Fprintf(stdout, "render time: %.2fs (%.2fs normalized)\n",
			stats.WallTime.Seconds(), stats.NormalizedTime.Seconds())
	}

	if err := renderer.WriteImage(output, fb); err != nil {
		fmt.Fprintf(stderr, "error writing scene: %v\n", err)
		return exitWriteScene
	}
	if !opts.quiet {
		fmt.Fprintf(stdout, "saved %s\n", output)
	}
	return exitOK
}

// parseArgs parses options and positional scene files, which may be mixed
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("mirror-raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	// Exit code of the option whose value failed to parse
	code := exitOK
	value := func(names []string, c int, set func(string) error) {
		for _, name := range names {
			fs.Func(name, "", func(s string) error {
				if err := set(s); err != nil {
					code = c
					return err
				}
				return nil
			})
		}
	}

	value([]string{"d", "light-distance"}, exitLightDistance, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return errors.New("light distance must be a positive number")
		}
		opts.distance = &v
		return nil
	})
	value([]string{"f", "fov"}, exitFOV, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < renderer.MinFOV || v > renderer.MaxFOV {
			return fmt.Errorf("field of vision must be in [%g, %g]", renderer.MinFOV, renderer.MaxFOV)
		}
		opts.fov = &v
		return nil
	})
	value([]string{"r", "resolution"}, exitResolution, func(s string) error {
		w, h, err := parseResolution(s)
		if err != nil {
			return err
		}
		opts.width, opts.height = &w, &h
		return nil
	})
	value([]string{"R", "recursion-levels"}, exitRecursionLevels, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < renderer.MinDepth || v > renderer.MaxDepth {
			return fmt.Errorf("recursion levels must be in [%d, %d]", renderer.MinDepth, renderer.MaxDepth)
		}
		opts.depth = &v
		return nil
	})
	value([]string{"s", "shadow-factor"}, exitShadowFactor, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 || v > 1 {
			return errors.New("shadow factor must be in (0, 1]")
		}
		opts.shadow = &v
		return nil
	})
	value([]string{"t", "threads"}, exitThreads, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < renderer.MinWorkers || v > renderer.MaxWorkers {
			return fmt.Errorf("threads must be in [%d, %d]", renderer.MinWorkers, renderer.MaxWorkers)
		}
		opts.threads = &v
		return nil
	})
	value([]string{"a", "attenuation"}, exitLightModel, func(s string) error {
		model, err := lights.ParseAttenuation(s)
		if err != nil {
			return err
		}
		opts.attenuation = &model
		return nil
	})
	fs.StringVar(&opts.output, "o", "", "")
	fs.StringVar(&opts.output, "output-file", "", "")
	fs.BoolVar(&opts.quiet, "q", false, "")
	fs.BoolVar(&opts.quiet, "quiet", false, "")
	fs.StringVar(&opts.sceneName, "scene", "", "")

	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			switch {
			case code != exitOK:
			case strings.HasPrefix(err.Error(), "flag needs an argument"):
				code = exitNoArgument
			default:
				code = exitUnknownOption
			}
			return nil, &usageError{code: code, err: err}
		}
		if fs.NArg() == 0 {
			break
		}
		opts.files = append(opts.files, fs.Arg(0))
		args = fs.Args()[1:]
	}

	return opts, nil
}

// parseResolution reads WxH, accepting either case of the separator
func parseResolution(s string) (int, int, error) {
	left, right, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errors.New("invalid format of resolution, want WxH")
	}
	width, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, errors.New("unable to convert width")
	}
	if width < renderer.MinWidth || width > renderer.MaxWidth {
		return 0, 0, fmt.Errorf("width must be in [%d, %d]", renderer.MinWidth, renderer.MaxWidth)
	}
	height, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, errors.New("unable to convert height")
	}
	if height < renderer.MinHeight || height > renderer.MaxHeight {
		return 0, 0, fmt.Errorf("height must be in [%d, %d]", renderer.MinHeight, renderer.MaxHeight)
	}
	return width, height, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Mirror Raytracer")
	fmt.Fprintln(w, "Usage: mirror-raytracer [OPTION]... FILE...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	for _, o := range []struct{ short, long, info string }{
		{"-a", "--attenuation", "light attenuation: none, linear, quadratic (def.)"},
		{"-d", "--light-distance", "distance to darken light (def. 60)"},
		{"-f", "--fov", "field of vision, in degrees (def. 93)"},
		{"-h", "--help", "print this help screen"},
		{"-o", "--output-file", "output filename, format by extension (png, jpg, bmp, tiff)"},
		{"-q", "--quiet", "suppress all messages, except errors"},
		{"-r", "--resolution", "resolution: 640x480 (def.), 1024x768, etc."},
		{"-R", "--recursion-levels", "levels of recursion for reflected rays (def. 3)"},
		{"-s", "--shadow-factor", "shadow factor (def. 0.25)"},
		{"-t", "--threads", "rendering threads: 0 (auto), 1 (def.), 2, 4, etc."},
		{"", "--scene", "render a built-in scene instead of files"},
	} {
		if o.short == "" {
			fmt.Fprintf(w, "      %-21s%s\n", o.long, o.info)
			continue
		}
		fmt.Fprintf(w, "%4s, %-21s%s\n", o.short, o.long, o.info)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Built-in scenes:")
	for _, info := range scene.BuiltinSceneInfos() {
		fmt.Fprintf(w, "  %-10s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  mirror-raytracer -r 1620x1080 -f 110 -o scene2.png scene2.toml")
}
