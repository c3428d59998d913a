package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	logging "github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/katalvlaran/junctions/pairs"
	"github.com/katalvlaran/junctions/point"
)

var log = logging.MustGetLogger("junctions")

const logFormat = `%{color}[%{time:15:04:05.000} %{shortfile} %{level:.4s}]%{color:reset} %{message}`

// commonFlags are shared by every subcommand.
type commonFlags struct {
	input      string
	verbose    bool
	profile    string
	profileDir string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.input, "input", "-", "Path to the points file, or - for stdin.")
	fs.BoolVar(&c.verbose, "v", false, "Log every applied pair.")
	fs.StringVar(&c.profile, "profile", "", "Profile the run: cpu or mem.")
	fs.StringVar(&c.profileDir, "profile-dir", ".", "Directory for profile output.")
}

// setupLogging points the package logger at w, at DEBUG with -v and at INFO
// otherwise.
func (c *commonFlags) setupLogging(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	if c.verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	log.SetBackend(leveled)
}

// startProfile starts the requested profiler and returns its stop function.
func (c *commonFlags) startProfile() (func(), error) {
	var mode func(*profile.Profile)
	switch c.profile {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown -profile %q (want cpu or mem)", c.profile)
	}
	p := profile.Start(mode, profile.ProfilePath(c.profileDir), profile.Quiet, profile.NoShutdownHook)

	return p.Stop, nil
}

// load parses the input points and orders every pair by distance.
func (c *commonFlags) load() ([]point.Point, []pairs.Pair, error) {
	var r io.Reader = os.Stdin
	if c.input != "-" {
		f, err := os.Open(c.input)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	pts, err := point.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", c.input, err)
	}
	ordered := pairs.Ordered(pts)
	log.Infof("loaded %s points, %s pairs", humanize.Comma(int64(len(pts))), humanize.Comma(int64(len(ordered))))

	return pts, ordered, nil
}

// logPair is the cluster OnConnect hook used by both subcommands.
func logPair(pts []point.Point) func(pairs.Pair, bool) {
	return func(p pairs.Pair, merged bool) {
		if !log.IsEnabledFor(logging.DEBUG) {
			return
		}
		log.Debugf("connect %s %v-%v merged=%t", p, pts[p.A], pts[p.B], merged)
	}
}

// run wraps body with logging, profiling and interrupt handling, and turns
// its error into an exit code.
func (c *commonFlags) run(a subcommands.Application, body func(ctx context.Context) error) int {
	c.setupLogging(a.GetErr())

	stop, err := c.startProfile()
	if err != nil {
		log.Error(err)
		return 1
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := body(ctx); err != nil {
		log.Errorf("%s", err)
		return 1
	}

	return 0
}
