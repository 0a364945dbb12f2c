package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Meesho/BharatMLStack/memchurn/internal/bench"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// parseArgs reads the two required options, -i (iteration count) and
// -b (buffer size). There are no defaults, no long forms and no help flag;
// anything missing or non-integer is an error.
func parseArgs(args []string) (bench.Config, error) {
	fs := flag.NewFlagSet("churntest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	numIterations := fs.Int("i", 0, "number of iterations")
	bufferSize := fs.Int("b", 0, "buffer size")

	if err := fs.Parse(args); err != nil {
		return bench.Config{}, err
	}

	seen := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if !seen["i"] {
		return bench.Config{}, fmt.Errorf("missing required flag -i")
	}
	if !seen["b"] {
		return bench.Config{}, fmt.Errorf("missing required flag -b")
	}

	return bench.Config{NumIterations: *numIterations, BufferSize: *bufferSize}, nil
}

// paramsLine reports the parsed values, before any clamping.
func paramsLine(cfg bench.Config) string {
	return fmt.Sprintf("num_iterations=%d, buffer_size=%d", cfg.NumIterations, cfg.BufferSize)
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	fmt.Println(paramsLine(cfg))

	bench.NewRunner(cfg).Run()
}
