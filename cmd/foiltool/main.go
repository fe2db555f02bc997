package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/internal/config"
	"github.com/akeil/foiltool/pkg/controller"
	"github.com/akeil/foiltool/pkg/render"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

func main() {
	foiltool.SetLogLevel("warning")

	app := kingpin.New("foiltool", "Airfoil twist and scale viewer")
	app.HelpFlag.Short('h')

	var (
		configPath = app.Flag("config", "Path to a JSON config file").Short('c').String()
		logLevel   = app.Flag("log-level", "Log level (debug, info, warning, error, none)").String()
		sep        = app.Flag("sep", "Column separator of the input file").String()
		xCol       = app.Flag("x-col", "Name of the X column").String()
		yCol       = app.Flag("y-col", "Name of the Y column").String()
		width      = app.Flag("width", "Image width in pixels").Int()
		height     = app.Flag("height", "Image height in pixels").Int()
		angle      = app.Flag("angle", "Initial twist angle in degrees").String()
		scale      = app.Flag("scale", "Initial scale factor").String()
	)

	view := app.Command("view", "Show the airfoil in an interactive terminal viewer").Default()
	var (
		viewPath    = view.Arg("file", "Coordinate file").Required().ExistingFile()
		snapshotDir = view.Flag("snapshots", "Directory for snapshots").Short('o').Default(".").ExistingDir()
		viewFormat  = view.Flag("format", "Image format for snapshots (png, webp, tga)").Short('f').String()
	)

	rnd := app.Command("render", "Render a single frame to an image file")
	var (
		renderPath   = rnd.Arg("file", "Coordinate file").Required().ExistingFile()
		renderMode   = rnd.Flag("mode", "Transformation mode").Short('m').Default(controller.LeadingEdgeTwist.String()).String()
		renderOut    = rnd.Flag("output", "Output file").Short('o').Required().String()
		renderFormat = rnd.Flag("format", "Image format (png, webp, tga); derived from the output name if not set").Short('f').String()
	)

	report := app.Command("report", "Render all modes into a PDF")
	var (
		reportPath  = report.Arg("file", "Coordinate file").Required().ExistingFile()
		reportOut   = report.Flag("output", "Output file").Short('o').Default("report.pdf").String()
		reportTitle = report.Flag("title", "Document title").Short('t').String()
		reportCheck = report.Flag("check", "Validate the PDF after writing").Bool()
	)

	replay := app.Command("replay", "Replay an event script and save a frame for every snapshot")
	var (
		replayPath   = replay.Arg("file", "Coordinate file").Required().ExistingFile()
		replayScript = replay.Arg("script", "Event script").Required().ExistingFile()
		replayOut    = replay.Flag("output", "Output directory").Short('o').Default(".").String()
		replayFormat = replay.Flag("format", "Image format (png, webp, tga)").Short('f').String()
		replayPrefix = replay.Flag("prefix", "File name prefix").Default("frame").String()
	)

	serve := app.Command("serve", "Serve the controller over a websocket")
	var (
		servePath   = serve.Arg("file", "Coordinate file").Required().ExistingFile()
		serveListen = serve.Flag("listen", "Listen address").Short('l').Default("localhost:8080").String()
		serveRoute  = serve.Flag("path", "URL path of the websocket endpoint").Default("/ws").String()
		serveOrigin = serve.Flag("allow-origin", "Accept connections from pages on this origin (repeatable, '*' for any, 'null' for local files)").Strings()
	)

	info := app.Command("info", "Show statistics for a coordinate file")
	infoPath := info.Arg("file", "Coordinate file").Required().ExistingFile()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	flags := config.Flags{
		Separator: *sep,
		XColumn:   *xCol,
		YColumn:   *yCol,
		Width:     *width,
		Height:    *height,
		LogLevel:  *logLevel,
	}
	s, err := setup(*configPath, flags, *angle, *scale)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "view":
		err = doView(s, *viewPath, *snapshotDir, *viewFormat)
	case "render":
		err = doRender(s, *renderPath, *renderMode, *renderOut, *renderFormat)
	case "report":
		err = doReport(s, *reportPath, *reportOut, *reportTitle, *reportCheck)
	case "replay":
		err = doReplay(s, *replayPath, *replayScript, *replayOut, *replayFormat, *replayPrefix)
	case "serve":
		err = doServe(s, *servePath, *serveListen, *serveRoute, *serveOrigin)
	case "info":
		err = doInfo(s, *infoPath)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// settings are the resolved configuration shared by all commands.
type settings struct {
	cfg  config.Config
	read foiltool.ReadOptions
}

func setup(path string, flags config.Flags, angle, scale string) (settings, error) {
	var s settings
	var err error

	flags.Angle, err = parseOptional("angle", angle)
	if err != nil {
		return s, err
	}
	flags.Scale, err = parseOptional("scale", scale)
	if err != nil {
		return s, err
	}

	if path != "" {
		s.cfg, err = config.Load(path)
		if err != nil {
			return s, err
		}
	}
	s.cfg.Resolve(flags)
	foiltool.SetLogLevel(s.cfg.LogLevel)

	sep, err := s.cfg.SeparatorRune()
	if err != nil {
		return s, err
	}
	s.read = foiltool.ReadOptions{
		Separator: sep,
		XColumn:   s.cfg.XColumn,
		YColumn:   s.cfg.YColumn,
	}

	return s, nil
}

func parseOptional(name, v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %v %q", name, v)
	}
	return &f, nil
}

// load reads the coordinate file. Errors here end the program before any
// output is produced.
func (s settings) load(path string) (foiltool.PointSet, error) {
	points, err := foiltool.ReadFile(path, s.read)
	if err != nil {
		return nil, foiltool.Wrap(err, "failed to read %q", path)
	}
	err = points.Validate()
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (s settings) controller(points foiltool.PointSet) *controller.Controller {
	return controller.New(points).WithDefaults(*s.cfg.Angle, *s.cfg.Scale)
}

func (s settings) renderContext() *render.Context {
	rc := render.NewContext(s.cfg.Width, s.cfg.Height, render.DefaultPalette())
	rc.Supersample = s.cfg.Supersample
	return rc
}

// format picks the image format from the explicit name, the output path
// or the configured default, in that order.
func (s settings) format(name, path string) (render.Format, error) {
	if name != "" {
		return render.ParseFormat(name)
	}
	if path != "" {
		f, err := render.FormatFromPath(path)
		if err == nil {
			return f, nil
		}
	}
	return render.ParseFormat(s.cfg.Format)
}
