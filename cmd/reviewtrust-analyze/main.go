// Command reviewtrust-analyze scores a dataset JSON file without any backend
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"reviewtrust/internal/core/profile"
	"reviewtrust/internal/core/review"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/platform/net/http/bind"
	"reviewtrust/internal/services/api/trust/domain"
	trustsvc "reviewtrust/internal/services/api/trust/service"
)

// maxInput bounds the accepted input size
const maxInput = 8 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses flags, analyzes one input and writes the result; the return value is the exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("reviewtrust-analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "-", "input JSON path, - for stdin; same shape as POST /api/v1/trust/analyze")
	mode := fs.String("mode", string(review.ModeStandard), "default analysis mode: lenient, standard or strict")
	minReviews := fs.Int("min-reviews", review.DefaultMinimumReviews, "default minimum reviews for the polarization heuristic")
	profilePath := fs.String("profile", "", "optional YAML analysis profile")
	pretty := fs.Bool("pretty", false, "indent the output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger.Init(logger.Options{Level: "warn", Format: "console", Writer: stderr, Service: "reviewtrust-analyze"})

	set := profile.Defaults()
	if *profilePath != "" {
		var err error
		if set, err = profile.LoadFile(*profilePath, set); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: profile: %v\n", err)
			return 1
		}
	}

	var r io.Reader = stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	input, err := bind.Decode[domain.AnalyzeInput](r, bind.JSONOptions{MaxBytes: maxInput, DisallowUnknown: true})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: input: %v\n", err)
		return 1
	}

	svc := trustsvc.New(trustsvc.NewAnalyzer(set), trustsvc.Config{
		Defaults: review.Settings{
			AnalysisMode:              review.ParseMode(*mode),
			MinimumReviewsForAnalysis: *minReviews,
			ShowDetailedAnalysis:      true,
		},
	})
	out, err := svc.Analyze(context.Background(), input)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
