package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mwantia/vls/cmd"
	"github.com/mwantia/vls/list"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, paths, err := cmd.Parse(os.Args[1:])
	if err != nil {
		var usage *cmd.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintf(os.Stderr, "vls: %s\n", usage)
			fmt.Fprintln(os.Stderr, cmd.Usage())
			return 2
		}
		fmt.Fprintf(os.Stderr, "vls: %s\n", err)
		return 2
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vls: %s\n", err)
		return 2
	}

	src, err := newSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vls: %s\n", err)
		return 2
	}

	ctx := context.Background()
	if err := src.Open(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "vls: cannot open source %s: %s\n", src.Name(), err)
		return 1
	}
	defer src.Close(ctx)

	logger.Debug("listing via source '%s'", src.Name())

	lister := list.NewLister(src, list.WithLogger(logger.Named("list")))
	if err := lister.Run(ctx, paths, opts); err != nil {
		fmt.Fprintf(os.Stderr, "vls: %s\n", err)
		return 1
	}

	return 0
}
