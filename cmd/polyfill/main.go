package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/osuushi/polyfill/advanced"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Fill a polygon onto a text board and print it. The polygon is one of the
// built-in presets, or read from an .svg or .yaml file. Every flag can also be
// set through a POLYFILL_* environment variable, optionally from a .env file
// in the working directory.
//
// Positional words are accepted as shorthands: a preset name, "outline",
// "noprint", or a bare integer board size, so "polyfill poly outline 128"
// equals "polyfill --outline --size 128 poly".

type config struct {
	words    []string
	preset   string
	file     string
	outline  bool
	noPrint  bool
	size     int
	naive    bool
	compare  bool
	rule     string
	workers  int
	png      string
	pngScale int
	imgcat   bool
	color    bool
	logLevel string
}

var log = logrus.New()

func main() {
	// A missing .env is fine; only a malformed one is worth reporting.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env")
	}

	app, cfg := newApp()
	kingpin.MustParse(parseArgs(app, cfg, os.Args[1:]))

	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		app.Fatalf("invalid log level %q", cfg.logLevel)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	advanced.SetLogger(log)

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("polyfill failed")
	}
}

func newApp() (*kingpin.Application, *config) {
	cfg := &config{}
	app := kingpin.New("polyfill", "Rasterize a polygon onto a pixel board with a scanline fill.")
	app.HelpFlag.Short('h')
	app.Arg("words", "Any of: a built-in polygon ("+strings.Join(advanced.PresetNames(), ", ")+
		"), outline, noprint, or a board size such as 128.").StringsVar(&cfg.words)
	app.Flag("preset", "Built-in polygon: "+strings.Join(advanced.PresetNames(), ", ")+".").
		Default("tri").Envar("POLYFILL_PRESET").EnumVar(&cfg.preset, advanced.PresetNames()...)
	app.Flag("file", "Read the polygon from an .svg or .yaml file instead of a preset.").
		Envar("POLYFILL_FILE").StringVar(&cfg.file)
	app.Flag("outline", "Only mark the edge crossings.").
		Envar("POLYFILL_OUTLINE").BoolVar(&cfg.outline)
	app.Flag("noprint", "Do not print the board.").
		Envar("POLYFILL_NOPRINT").BoolVar(&cfg.noPrint)
	app.Flag("size", "Board width in pixels. The height and the polygon are scaled to match.").
		Default("64").Envar("POLYFILL_SIZE").IntVar(&cfg.size)
	app.Flag("naive", "Use the per-pixel reference fill.").
		Envar("POLYFILL_NAIVE").BoolVar(&cfg.naive)
	app.Flag("compare", "Run both fills, report their timings and any pixels they disagree on.").
		Envar("POLYFILL_COMPARE").BoolVar(&cfg.compare)
	app.Flag("rule", "How rows through a vertex are counted.").
		Default("half-open").Envar("POLYFILL_RULE").EnumVar(&cfg.rule, "half-open", "closed")
	app.Flag("workers", "Fill rows on this many goroutines. 0 fills on the calling goroutine.").
		Default("0").Envar("POLYFILL_WORKERS").IntVar(&cfg.workers)
	app.Flag("png", "Also write the board, with the polygon drawn over it, to this PNG file.").
		Envar("POLYFILL_PNG").StringVar(&cfg.png)
	app.Flag("png-scale", "Output pixels per board pixel in the PNG.").
		Default("8").Envar("POLYFILL_PNG_SCALE").IntVar(&cfg.pngScale)
	app.Flag("imgcat", "Show the PNG inline (iTerm only).").
		Envar("POLYFILL_IMGCAT").BoolVar(&cfg.imgcat)
	app.Flag("color", "Colorize the printed board.").
		Default("true").Envar("POLYFILL_COLOR").BoolVar(&cfg.color)
	app.Flag("log-level", "Log level (debug, info, warn, error).").
		Default("warn").Envar("POLYFILL_LOG_LEVEL").StringVar(&cfg.logLevel)
	return app, cfg
}

// parseArgs parses flags and then folds the positional words into cfg.
// Words win over flags and environment variables.
func parseArgs(app *kingpin.Application, cfg *config, args []string) (string, error) {
	command, err := app.Parse(args)
	if err != nil {
		return command, err
	}
	return command, cfg.applyWords()
}

func (cfg *config) applyWords() error {
	for _, word := range cfg.words {
		if _, ok := advanced.Preset(word); ok {
			cfg.preset = word
			continue
		}
		switch word {
		case "outline":
			cfg.outline = true
			continue
		case "noprint":
			cfg.noPrint = true
			continue
		}
		size, err := strconv.Atoi(word)
		if err != nil {
			return fmt.Errorf("unknown argument %q, want a preset (%s), outline, noprint or a size",
				word, strings.Join(advanced.PresetNames(), ", "))
		}
		cfg.size = size
	}
	return nil
}

func run(cfg *config) error {
	poly, err := loadPolygon(cfg)
	if err != nil {
		return err
	}
	if cfg.size <= 0 {
		return fmt.Errorf("size must be positive, got %d", cfg.size)
	}

	factor := float64(cfg.size) / float64(advanced.PresetShape.Width)
	shape := advanced.Shape{
		Width:  cfg.size,
		Height: int(float64(advanced.PresetShape.Height) * factor),
	}
	poly.Scale(factor)

	rule := advanced.CrossingHalfOpen
	if cfg.rule == "closed" {
		rule = advanced.CrossingClosed
	}

	var board advanced.Board
	if cfg.compare {
		c, err := advanced.Compare(shape, poly, rule)
		if err != nil {
			return err
		}
		fmt.Printf("Scanline fill time: %.3fms\n", c.ScanlineSeconds*1e3)
		fmt.Printf("Naive fill time: %.3fms\n", c.NaiveSeconds*1e3)
		fmt.Printf("Mismatched pixels: %d\n", len(c.Mismatches))
		board = c.Scanline
	} else {
		board, err = advanced.NewBoard(shape)
		if err != nil {
			return err
		}
		opts := advanced.Options{Outline: cfg.outline, Rule: rule}
		var fillErr error
		_, seconds := measure(func() {
			switch {
			case cfg.naive:
				fillErr = advanced.FillNaiveWith(board, shape, poly, rule)
			case cfg.workers > 0:
				fillErr = advanced.FillParallel(board, shape, poly, opts, cfg.workers)
			default:
				fillErr = advanced.FillWith(board, shape, poly, opts)
			}
		})
		if fillErr != nil {
			return fillErr
		}
		log.WithField("ms", seconds*1e3).Info("filled polygon")
	}

	if !cfg.noPrint {
		if err := advanced.PrintBoard(os.Stdout, board, shape, cfg.color); err != nil {
			return err
		}
	}
	if cfg.png != "" {
		img, err := advanced.Render(board, shape, poly, cfg.pngScale)
		if err != nil {
			return err
		}
		if err := advanced.SavePNG(cfg.png, img); err != nil {
			return err
		}
		if cfg.imgcat {
			advanced.CatPNG(cfg.png, os.Stdout)
		}
	}
	return nil
}

func measure(f func()) (struct{}, float64) {
	return advanced.MeasureTime(func() struct{} {
		f()
		return struct{}{}
	})
}

func loadPolygon(cfg *config) (advanced.Polygon, error) {
	if cfg.file == "" {
		poly, _ := advanced.Preset(cfg.preset)
		return poly, nil
	}
	f, err := os.Open(cfg.file)
	if err != nil {
		return advanced.Polygon{}, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(cfg.file)) {
	case ".svg":
		return advanced.LoadSVG(f)
	case ".yaml", ".yml":
		return advanced.LoadYAML(f)
	}
	return advanced.Polygon{}, fmt.Errorf("unsupported polygon file %q, want .svg or .yaml", cfg.file)
}
