package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/nonogram-server/internal/format"
	"github.com/vancomm/nonogram-server/internal/nonogram"
	"github.com/vancomm/nonogram-server/internal/render"
)

var log = logrus.New()

var (
	formatName   string
	maxSolutions int
	maxDepth     int
	probeRounds  int
	noProbe      bool
	timeout      time.Duration
	svgOut       string
	verbose      bool
	logFile      string
)

func init() {
	flag.StringVar(&formatName, "format", "", "puzzle format: ini, json or xml (default: by file extension)")
	flag.IntVar(&maxSolutions, "max-solutions", 2, "stop after this many solutions")
	flag.IntVar(&maxDepth, "max-depth", 0, "search depth limit (0 = unlimited)")
	flag.IntVar(&probeRounds, "probe-rounds", 0, "contradiction round limit (0 = until stalled)")
	flag.BoolVar(&noProbe, "no-probe", false, "skip contradiction rounds")
	flag.DurationVar(&timeout, "timeout", 0, "give up after this long (0 = no limit)")
	flag.StringVar(&svgOut, "svg", "", "write the first solution as SVG to this file")
	flag.BoolVar(&verbose, "v", false, "log solver progress")
	flag.StringVar(&logFile, "log-file", "", "also log to this file (rotated)")
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}

	nonogram.Log = log
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".xml":
		return "xml"
	default:
		return "ini"
	}
}

func main() {
	flag.Parse()
	setupLogging()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [flags] <puzzle file>", os.Args[0])
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	kind := formatName
	if kind == "" {
		kind = detectFormat(path)
	}

	def, err := format.Read(f, kind)
	if err != nil {
		log.Fatal("unable to parse puzzle: ", err)
	}
	board, err := def.Board()
	if err != nil {
		log.Fatal("bad puzzle: ", err)
	}

	log.Infof("%dx%d puzzle, %d colors",
		board.Height(), board.Width(), board.Palette().Size())

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res := nonogram.Solve(ctx, board, nonogram.Options{
		MaxSolutions:   maxSolutions,
		MaxDepth:       maxDepth,
		ProbeMaxRounds: probeRounds,
		DisableProbing: noProbe,
	})

	for i, s := range res.Solutions {
		if len(res.Solutions) > 1 {
			fmt.Printf("solution %d:\n", i+1)
		}
		fmt.Println(render.Text(s))
	}
	if res.Partial != nil {
		fmt.Println("partial board:")
		fmt.Println(render.Text(res.Partial))
	}

	log.WithFields(logrus.Fields{
		"status":         res.Status.String(),
		"solutions":      len(res.Solutions),
		"contradictions": res.Stats.Contradictions,
		"probe_rounds":   res.Stats.ProbeRounds,
		"depth":          res.Stats.Depth,
		"nodes":          res.Stats.Nodes,
		"duration":       res.Stats.Duration,
	}).Info("done")

	if svgOut != "" && len(res.Solutions) > 0 {
		err := os.WriteFile(svgOut, []byte(render.SVG(res.Solutions[0])), 0o644)
		if err != nil {
			log.Fatal("unable to write svg: ", err)
		}
		log.Info("svg written to ", svgOut)
	}

	switch res.Status {
	case nonogram.StatusSolvedUnique, nonogram.StatusSolvedMultiple:
	default:
		os.Exit(2)
	}
}
