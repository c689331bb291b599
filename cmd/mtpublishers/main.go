package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/app"
	"github.com/kapu/mediatrends-publishers-go/internal/config"
	"github.com/kapu/mediatrends-publishers-go/internal/publisher"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type publishFlags struct {
	publishers string
	force      bool
	test       bool
	static     bool
}

func run(args []string, stderr io.Writer) int {
	var opts config.LoadOptions

	root := flag.NewFlagSet("mtpublishers", flag.ContinueOnError)
	root.SetOutput(stderr)
	root.StringVar(&opts.ConfigDir, "c", "", "configuration directory")
	root.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory")
	root.StringVar(&opts.Mode, "m", "", "configuration mode (dev, prod, ...)")
	root.StringVar(&opts.Mode, "mode", "", "configuration mode (dev, prod, ...)")
	root.Usage = func() {
		fmt.Fprintln(stderr, "usage: mtpublishers [-c DIR] [-m MODE] publish [-p website[,json] [json ...]] [-f] [--test] [--static]")
		root.PrintDefaults()
	}
	if err := root.Parse(args); err != nil {
		return exitUsage
	}

	rest := root.Args()
	if len(rest) == 0 {
		root.Usage()
		return exitUsage
	}
	switch rest[0] {
	case "publish":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		root.Usage()
		return exitUsage
	}

	pf, names, code := parsePublish(rest[1:], stderr)
	if code != exitOK {
		return code
	}

	cfg, err := config.Load(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitError
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return exitError
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		return exitError
	}
	defer container.Close()

	logger.Info("Publish task starting",
		zap.String("mode", cfg.Mode),
		zap.String("config", cfg.File),
		zap.Strings("publishers", names),
		zap.Bool("force", pf.force),
		zap.Bool("test", pf.test),
		zap.Bool("static", pf.static),
	)

	if _, err := container.Publish(ctx, app.PublishOptions{
		Publishers: names,
		Force:      pf.force,
		Test:       pf.test,
		SQLData:    !pf.static,
	}); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Publish interrupted")
		} else {
			logger.Error("Publish failed", zap.Error(err))
		}
		return exitError
	}
	return exitOK
}

// parsePublish accepts publisher names both comma separated and as trailing
// words, so "-p website,json" and "-p website json" are equivalent.
func parsePublish(args []string, stderr io.Writer) (publishFlags, []string, int) {
	var pf publishFlags

	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&pf.publishers, "p", "", "publishers, comma or space separated (default website)")
	fs.StringVar(&pf.publishers, "publishers", "", "publishers, comma or space separated (default website)")
	fs.BoolVar(&pf.force, "f", false, "publish even if data did not change")
	fs.BoolVar(&pf.force, "force", false, "publish even if data did not change")
	fs.BoolVar(&pf.test, "test", false, "render without writing artifacts or hash")
	fs.BoolVar(&pf.static, "static", false, "use the static fixture instead of SQL")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return pf, nil, exitUsage
		}
		rest = fs.Args()
		for len(rest) > 0 && (rest[0] == "-" || !strings.HasPrefix(rest[0], "-")) {
			positional = append(positional, rest[0])
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "p" || f.Name == "publishers" {
			explicit = true
		}
	})

	names := util.SplitList(pf.publishers)
	for _, word := range positional {
		names = append(names, util.SplitList(word)...)
	}
	if len(names) == 0 {
		if explicit {
			fmt.Fprintln(stderr, "at least one publisher is required")
			return pf, nil, exitUsage
		}
		names = []string{"website"}
	}

	known := publisher.NewDefaultRegistry(publisher.Options{})
	for _, name := range names {
		if !known.Has(name) {
			fmt.Fprintf(stderr, "invalid publisher %q (choose from %s)\n", name, strings.Join(known.Names(), ", "))
			return pf, nil, exitUsage
		}
	}
	return pf, names, exitOK
}
