package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/folio/internal/bench"
	"github.com/san-kum/folio/internal/chat"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/server"
	"github.com/san-kum/folio/internal/storage"
	"github.com/san-kum/folio/internal/tui"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/viz"
)

var (
	dataDir     string
	configFile  string
	contentFile string
	theme       string
	preset      string
	seed        uint64

	// bench
	frames  int
	width   float64
	height  float64
	ratio   float64
	pointer string
	sweep   bool
	save    bool
	asJSON  bool

	// plot
	series string

	// export
	outFile string

	// headline
	steps int
	live  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "interactive terminal portfolio",
		RunE:  runPage,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".folio", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio content file (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "colour theme")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "field preset")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the portfolio api",
		RunE:  runServe,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "render the field headlessly and measure each frame",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames to render")
	benchCmd.Flags().Float64Var(&width, "width", 1440, "viewport width")
	benchCmd.Flags().Float64Var(&height, "height", 900, "viewport height")
	benchCmd.Flags().Float64Var(&ratio, "ratio", 1, "device pixel ratio")
	benchCmd.Flags().StringVar(&pointer, "pointer", "orbit", "pointer path (none, orbit, sweep)")
	benchCmd.Flags().BoolVar(&sweep, "sweep", false, "run a grid of common viewports")
	benchCmd.Flags().BoolVar(&save, "save", false, "store the run under --data")
	benchCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as json")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored bench runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "links,us", "comma separated series (links, nodes, lines, circles, us)")

	exportCmd := &cobra.Command{
		Use:   "export [svg|gif|braille]",
		Short: "render the field to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportField,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file")
	exportCmd.Flags().IntVar(&frames, "frames", 90, "frames to simulate")
	exportCmd.Flags().Float64Var(&width, "width", 960, "viewport width")
	exportCmd.Flags().Float64Var(&height, "height", 540, "viewport height")
	exportCmd.Flags().StringVar(&pointer, "pointer", "orbit", "pointer path (none, orbit, sweep)")

	headlineCmd := &cobra.Command{
		Use:   "headline",
		Short: "print the typewriter headline",
		RunE:  runHeadline,
	}
	headlineCmd.Flags().IntVar(&steps, "steps", 40, "steps to print (0 runs until interrupted)")
	headlineCmd.Flags().BoolVar(&live, "live", false, "animate in real time")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list field presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list colour themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range viz.Themes {
				fmt.Println(viz.GradientText(t.Name, t.Primary, t.Secondary))
			}
		},
	}

	rootCmd.AddCommand(serveCmd, benchCmd, runsCmd, plotCmd, exportCmd, headlineCmd, presetsCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if contentFile != "" {
		cfg.ContentFile = contentFile
	}
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Field = p
	}
	if err := cfg.Options().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadContent(path string) (*content.Content, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}

func newChat(apiKey, model, baseURL string, c *content.Content) chat.Generator {
	return chat.NewClient(chat.Config{
		APIKey:      apiKey,
		Model:       model,
		BaseURL:     baseURL,
		Instruction: c.Profile.Assistant.Instruction,
	})
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	srv, err := config.LoadServer()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Config:  cfg,
		Content: c,
		Chat:    newChat(srv.APIKey, srv.Model, srv.GeminiURL, c),
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	srv, err := config.LoadServer()
	if err != nil {
		return err
	}
	path := cfg.ContentFile
	if srv.ContentFile != "" && contentFile == "" {
		path = srv.ContentFile
	}
	c, err := loadContent(path)
	if err != nil {
		return err
	}
	gin.SetMode(srv.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(srv, c, newChat(srv.APIKey, srv.Model, srv.GeminiURL, c),
		server.WithTiming(cfg.Headline.Timing()),
		server.WithPhrases(cfg.Headline.Phrases),
	)
	return s.Run(ctx)
}

func benchConfig(cfg *config.Config, w, h float64) bench.Config {
	bc := bench.DefaultConfig()
	bc.Preset = preset
	if bc.Preset == "" {
		bc.Preset = "default"
	}
	bc.Width, bc.Height, bc.PixelRatio = w, h, ratio
	bc.Frames = frames
	bc.Interval = cfg.FrameInterval()
	bc.Pointer = bench.PointerPath(pointer)
	bc.Options = cfg.Options()
	if cfg.Seed != 0 {
		bc.Seed = cfg.Seed
	}
	return bc
}

var viewports = [][2]float64{
	{375, 812},
	{768, 1024},
	{1440, 900},
	{2560, 1440},
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sizes := [][2]float64{{width, height}}
	if sweep {
		sizes = viewports
	}

	st := storage.New(dataDir)
	if save {
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if !asJSON {
		fmt.Fprintln(w, "VIEWPORT\tNODES\tMEAN LINKS\tPEAK LINKS\tMEAN µs\tP95 µs\tCOVERAGE\tRUN")
	}
	cfgs := make([]bench.Config, len(sizes))
	for i, size := range sizes {
		cfgs[i] = benchConfig(cfg, size[0], size[1])
	}
	results, err := bench.RunAll(cmd.Context(), cfgs)
	if err != nil {
		return err
	}

	for _, res := range results {
		if asJSON {
			if err := storage.ExportJSON(os.Stdout, res); err != nil {
				return err
			}
			continue
		}

		runID := "-"
		if save {
			if runID, err = st.Save(res); err != nil {
				return err
			}
		}
		nodes := 0
		if len(res.Frames) > 0 {
			nodes = res.Frames[0].Nodes
		}
		fmt.Fprintf(w, "%.0fx%.0f\t%d\t%.1f\t%.0f\t%.1f\t%.1f\t%.0f%%\t%s\n",
			res.Config.Width, res.Config.Height, nodes,
			res.Metrics["mean_links"], res.Metrics["peak_links"],
			res.Metrics["mean_frame_us"], res.Metrics["p95_frame_us"],
			res.Metrics["pointer_coverage"]*100, runID)
	}
	if asJSON {
		return nil
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tVIEWPORT\tFRAMES\tPOINTER\tMEAN LINKS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fx%.0f\t%d\t%s\t%.1f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Frames,
			run.Pointer,
			run.Metrics["mean_links"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	recorded, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(recorded) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("viewport: %.0fx%.0f  preset: %s\n", meta.Width, meta.Height, meta.Preset)
	fmt.Printf("frames: %d\n\n", len(recorded))

	res := &bench.Result{Frames: recorded}
	for _, name := range strings.Split(series, ",") {
		name = strings.TrimSpace(name)
		data, err := res.Series(name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(captionFor(name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func captionFor(name string) string {
	switch name {
	case "links":
		return "links drawn per frame"
	case "us":
		return "frame time (µs)"
	case "nodes":
		return "node count"
	}
	return name
}

// exportField runs the field on a virtual clock and writes the result.
func exportField(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kind := args[0]
	switch kind {
	case "svg", "gif":
		if outFile == "" {
			outFile = "field." + kind
		}
	case "braille":
		if outFile == "" {
			outFile = "field-braille.svg"
		}
	default:
		return fmt.Errorf("unknown format %q (svg, gif, braille)", kind)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	field, err := particles.NewField(cfg.Options(), rng)
	if err != nil {
		return err
	}
	field.Resize(width, height, 1)

	scale := cfg.Scale
	if scale <= 0 {
		scale = config.DefaultScale
	}
	var (
		surface particles.Surface
		svg     *export.SVG
		raster  *export.Raster
		canvas  *viz.Canvas
		rec     = &export.GIFRecorder{Delay: 100 / max(cfg.FPS, 1)}
	)
	switch kind {
	case "svg":
		svg = export.NewSVG(width, height)
		surface = svg
	case "gif":
		raster = export.NewRaster(int(width), int(height), 1)
		surface = raster
	case "braille":
		// the same cell grid the terminal page would use at this viewport
		canvas = viz.NewCanvas(int(math.Ceil(width/(2*scale))), int(math.Ceil(height/(4*scale))))
		surface = viz.Scaled{Surface: canvas, Factor: 1 / scale}
	}

	bc := benchConfig(cfg, width, height)
	clock := sched.NewManual()
	mount := particles.NewMount(field, func() (particles.Surface, bool) { return surface, true }, clock, cfg.FrameInterval())
	defer mount.Unmount()

	for i := 1; ; i++ {
		if raster != nil {
			rec.Capture(raster.Img)
		}
		if i >= frames {
			break
		}
		movePointer(field, bc, i)
		clock.Step()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	switch {
	case svg != nil:
		_, err = f.WriteString(svg.String())
	case canvas != nil:
		_, err = f.WriteString(export.Braille(canvas, scale, particles.BackgroundFrom))
	default:
		err = rec.Encode(f)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames, %d links in the last)\n", outFile, field.Stats().Frames, field.Stats().Links)
	return nil
}

func movePointer(f *particles.Field, bc bench.Config, i int) {
	x, y, ok := bc.PointerAt(i)
	if !ok {
		f.PointerLeave()
		return
	}
	f.PointerMove(x, y)
}

func runHeadline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	phrases := cfg.Headline.Phrases
	if len(phrases) == 0 {
		phrases = c.Profile.Headlines
	}
	rot, err := typewriter.New(phrases, cfg.Headline.Timing())
	if err != nil {
		return err
	}

	if !live {
		clock := sched.NewManual()
		runner := typewriter.NewRunner(rot, clock)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "T\tPHASE\tTEXT")
		if steps <= 0 {
			steps = 40
		}
		count := 0
		runner.OnChange(func(text string) {
			count++
			fmt.Fprintf(w, "%v\t%s\t%q\n", clock.Now(), rot.Phase(), text)
			if count >= steps {
				runner.Stop()
			}
		})
		runner.Start()
		for clock.Step() {
		}
		return w.Flush()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	loop := sched.NewLoop()
	runner := typewriter.NewRunner(rot, loop)
	count := 0
	blink := true
	runner.OnChange(func(text string) {
		count++
		blink = !blink
		fmt.Printf("\r\033[K%s%s", text, rot.Cursor(blink))
		if steps > 0 && count >= steps {
			stop()
		}
	})
	runner.Start()
	_ = loop.Run(ctx)
	runner.Stop()
	fmt.Println()
	return nil
}
