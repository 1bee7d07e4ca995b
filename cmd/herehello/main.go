// herehello emits notices from a handful of concurrent workers, as a quick
// way to see what notices look like, and how the options route them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffval"
	"github.com/peterbourgon/here"
	"github.com/peterbourgon/here/hereenv"
)

func main() {
	var (
		ctx    = context.Background()
		stdout = os.Stdout
		stderr = os.Stderr
		args   = os.Args[1:]
	)
	err := exec(ctx, stdout, stderr, args)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	stdout io.Writer
	stderr io.Writer

	workers    int
	count      int
	interval   time.Duration
	production bool
	quiet      bool
	log        string
	logdev     string
	noColor    bool
	logLevel   string

	info, debug *log.Logger
}

func (cfg *config) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'w', LongName: "workers" /*    */, Value: ffval.NewValueDefault(&cfg.workers, 2) /*                 */, Usage: "number of concurrent workers"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "count" /*      */, Value: ffval.NewValueDefault(&cfg.count, 3) /*                   */, Usage: "greetings per worker, 0 for no limit"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'i', LongName: "interval" /*   */, Value: ffval.NewValueDefault(&cfg.interval, 100*time.Millisecond) /* */, Usage: "delay between greetings"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "production" /* */, Value: ffval.NewValue(&cfg.production) /*                      */, Usage: "emit notices even in a production environment", NoDefault: true})
	fs.AddFlag(ff.FlagConfig{ShortName: 'q', LongName: "quiet" /*      */, Value: ffval.NewValue(&cfg.quiet) /*                           */, Usage: "don't print notices to stdout", NoDefault: true})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "log" /*        */, Value: ffval.NewValue(&cfg.log) /*                             */, Usage: "force logging notices on or off e.g. 'true', 'off'", Placeholder: "BOOL"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "logdev" /*     */, Value: ffval.NewValue(&cfg.logdev) /*                          */, Usage: "log device: file path, '$stdout', or " + os.DevNull, Placeholder: "DEVICE"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "no-color" /*   */, Value: ffval.NewValue(&cfg.noColor) /*                         */, Usage: "never use colors", NoDefault: true})
	fs.AddFlag(ff.FlagConfig{ShortName: 'l', LongName: "log-level" /*  */, Value: ffval.NewEnum(&cfg.logLevel, "info", "i", "debug", "d", "none", "n") /* */, Usage: "log level: i/info, d/debug, n/none", Placeholder: "LEVEL"})
}

func exec(ctx context.Context, stdout, stderr io.Writer, args []string) (err error) {
	cfg := &config{
		stdout: stdout,
		stderr: stderr,
	}

	fs := ff.NewFlagSet("herehello")
	cfg.register(fs)

	command := &ff.Command{
		Name:      "herehello",
		ShortHelp: "emit greeting notices from concurrent workers",
		LongHelp:  "The host environment is read from HERE_ environment variables, see package hereenv.",
		Flags:     fs,
		Exec:      cfg.Exec,
	}

	// Print help when appropriate.
	showHelp := true
	defer func() {
		errHelp := errors.Is(err, ff.ErrHelp)
		if showHelp || errHelp {
			fmt.Fprintf(stderr, "\n%s\n", ffhelp.Command(command))
		}
		if errHelp {
			err = nil
		}
	}()

	if err := command.Parse(args, ff.WithEnvVarPrefix("HEREHELLO")); err != nil {
		return err
	}

	{
		var infodst, debugdst io.Writer
		switch cfg.logLevel {
		case "n", "none":
			infodst, debugdst = io.Discard, io.Discard
		case "i", "info":
			infodst, debugdst = stderr, io.Discard
		case "d", "debug":
			infodst, debugdst = stderr, stderr
		default:
			return fmt.Errorf("invalid log level %q", cfg.logLevel)
		}
		cfg.info = log.New(infodst, "", 0)
		cfg.debug = log.New(debugdst, "[DEBUG] ", log.Lmsgprefix)
	}

	if cfg.workers <= 0 {
		return fmt.Errorf("at least one worker is required")
	}

	showHelp = false

	return command.Run(ctx)
}

func (cfg *config) Exec(ctx context.Context, args []string) error {
	env, err := hereenv.Parse(nil)
	if err != nil {
		return fmt.Errorf("host environment: %w", err)
	}
	defer env.Close()

	cfg.debug.Printf("environment: %s (production %v)", env.Name, env.IsProduction())

	styler := here.AutoStyler(cfg.stdout)
	if cfg.noColor {
		styler = here.PlainStyler{}
	}

	tracer := here.NewTracer(here.Config{
		Host:    env,
		Console: &syncWriter{w: cfg.stdout},
		Styler:  styler,
	})

	opts := cfg.noticeOptions()
	cfg.debug.Printf("notice options: %d", len(opts))

	var g run.Group

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return cfg.runWorkers(ctx, tracer, opts)
		}, func(error) {
			cancel()
		})
	}

	{
		g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))
	}

	if err := g.Run(); err != nil {
		return err
	}

	cfg.info.Printf("greetings: %d", tracer.Pulses().Count())
	return nil
}

func (cfg *config) noticeOptions() []here.Option {
	var opts []here.Option
	if cfg.production {
		opts = append(opts, here.Production(true))
	}
	if cfg.quiet {
		opts = append(opts, here.Out(false))
	}
	if cfg.log != "" {
		opts = append(opts, here.Log(cfg.log))
	}
	if cfg.logdev != "" {
		opts = append(opts, here.Logdev(cfg.logdev))
	}
	return opts
}

func (cfg *config) runWorkers(ctx context.Context, tracer *here.Tracer, opts []here.Option) error {
	var (
		wg   sync.WaitGroup
		errc = make(chan error, cfg.workers)
	)
	for i := 1; i <= cfg.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			g := &greeter{id: id, tracer: tracer, opts: opts}
			errc <- g.run(ctx, cfg.count, cfg.interval)
		}(i)
	}
	wg.Wait()
	close(errc)

	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

// syncWriter serializes writes from concurrent workers.
type syncWriter struct {
	mtx sync.Mutex
	w   io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.w.Write(p)
}
