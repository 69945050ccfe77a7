package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/JCaesar45/Cut-a-rectangle/internal/rectcut"
)

var log = logrus.New()

var (
	rows     = flag.Int("rows", 0, "grid rows")
	cols     = flag.Int("cols", 0, "grid columns")
	all      = flag.Bool("all", false, "print every solution as an ASCII grid")
	maxCells = flag.Int("max-cells", 0, "override the exhaustive-search bound on rows*cols")
	verbose  = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	query := rectcut.NewQuery(rectcut.Enumerator{MaxCells: *maxCells})

	solutions, err := query.Solutions(ctx, *rows, *cols)
	switch {
	case errors.Is(err, rectcut.ErrInvalidDimensions):
		log.WithField("error", err).Fatal("bad dimensions; pass -rows and -cols between 1 and 20")
	case errors.Is(err, rectcut.ErrSearchSpaceTooLarge):
		log.WithField("error", err).Fatal("grid too large for exhaustive search")
	case errors.Is(err, context.Canceled):
		log.Fatal("interrupted")
	case err != nil:
		log.WithField("error", err).Fatal("enumeration failed")
	}

	render(os.Stdout, *rows, *cols, solutions, *all)
}

func render(w io.Writer, rows, cols int, solutions []rectcut.Partition, all bool) {
	if all {
		for i, p := range solutions {
			fmt.Fprintf(w, "#%d\n%s\n", i+1, p)
		}
	}
	fmt.Fprintf(w, "%d x %d: %d\n", rows, cols, len(solutions))
}
