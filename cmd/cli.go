package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"unionlotto/config"
)

// RunPick generates random sets and prints one copy line per set.
// Usage: pick [n] [--seed s]
func RunPick(ctx context.Context, cfg *config.Config, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(out)
	seed := fs.Uint64("seed", 0, "Seed for reproducible picks (0 uses crypto randomness)")

	count, err := parseWithPositional(fs, args)
	if err != nil {
		return err
	}

	opts := []AppOption{WithoutNATS()}
	if *seed != 0 {
		opts = append(opts, WithSeed(*seed))
	}
	app, err := NewApp(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer app.Close()

	batch, err := app.Session.PickRandom(ctx, count)
	if err != nil {
		return err
	}

	for idx, set := range batch {
		fmt.Fprintf(out, "#%d %s\n", idx+1, set.CopyText())
	}
	return nil
}

// RunAI asks the AI provider for a set based on the given context and prints it with the reasoning.
// Usage: ai "<context>"
func RunAI(ctx context.Context, cfg *config.Config, out io.Writer, args []string) error {
	userContext := strings.TrimSpace(strings.Join(args, " "))
	if userContext == "" {
		return fmt.Errorf("usage: unionlotto ai \"<context>\"")
	}

	app, err := NewApp(ctx, cfg, WithoutNATS())
	if err != nil {
		return err
	}
	defer app.Close()

	set, err := app.Session.SuggestLucky(ctx, userContext)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, set.CopyText())
	fmt.Fprintln(out, set.AIReasoning)
	return nil
}

// parseWithPositional accepts the optional count before or after the flags
func parseWithPositional(fs *flag.FlagSet, args []string) (int, error) {
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	count := 1
	if fs.NArg() > 0 {
		parsed, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return 0, fmt.Errorf("invalid count %q: %w", fs.Arg(0), err)
		}
		count = parsed

		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return 0, err
		}
		if fs.NArg() > 0 {
			return 0, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
	}
	return count, nil
}
