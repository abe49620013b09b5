// nano-highlight: syntax highlighting rules for nano.
//
// Writes Python, JavaScript, HTML and CSS rule files to ~/.nano/, writes a
// ~/.nanorc that sets the editor options and includes them, then prints a
// verification report.  Existing files are replaced.
//
// Usage:
//
//	nano-highlight [-config config.yaml] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	nh "github.com/cptaffe/nano-highlight"
	"github.com/cptaffe/nano-highlight/config"
	"github.com/cptaffe/nano-highlight/logger"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml (optional)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	execute(context.Background(), os.Stdout, *cfgPath, *verbose)
}

// execute is the single error boundary: any failure is printed as one
// diagnostic line on out and the process still exits 0.
func execute(ctx context.Context, out io.Writer, cfgPath string, verbose bool) {
	if err := run(ctx, out, cfgPath, verbose); err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
	}
}

func run(ctx context.Context, out io.Writer, cfgPath string, verbose bool) error {
	cfg := &config.Config{}
	if cfgPath != "" {
		c, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}

	l, err := logger.New(verbose || cfg.Verbose)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck
	ctx = logger.NewContext(ctx, l)

	paths, err := nh.ResolvePaths(cfg.Home)
	if err != nil {
		return err
	}
	l.Debug("resolved paths",
		zap.String("nano_dir", paths.NanoDir), zap.String("master", paths.Master))

	if err := nh.Run(ctx, paths); err != nil {
		return err
	}
	nh.VerifyAndReport(out, paths)
	return nil
}
