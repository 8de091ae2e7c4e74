package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spacesedan/intentai/internal/clients"
	"github.com/spacesedan/intentai/internal/logging"
	"github.com/spacesedan/intentai/internal/models"
	"github.com/spacesedan/intentai/internal/sentiment"
)

func main() {
	threshold := flag.Float64("threshold", 0.3, "score above which a label is reported as likely")
	remoteURL := flag.String("url", "", "classifier /predict endpoint; scores locally when empty")
	modelPath := flag.String("model", os.Getenv("MODEL_PATH"), "ONNX model directory for local scoring")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, `Usage: infer [flags] "Your input text here"`)
		flag.PrintDefaults()
		os.Exit(2)
	}
	logging.InitLogger("warn")
	color.Enable = !*noColor

	text := strings.Join(flag.Args(), " ")
	scores, err := score(text, *remoteURL, *modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Inference failed: %v\n", err)
		os.Exit(1)
	}

	render(os.Stdout, scores, *threshold)
}

func score(text, remoteURL, modelPath string) (models.PredictResponse, error) {
	if remoteURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return clients.NewClassifierClient(remoteURL, "").Scores(ctx, text)
	}

	scorer, err := sentiment.NewScorer(modelPath)
	if err != nil {
		return nil, err
	}
	defer scorer.Close()
	return scorer.Score(text)
}

func render(out io.Writer, scores models.PredictResponse, threshold float64) {
	labels := orderedLabels(scores)

	fmt.Fprintln(out, "\n=== Predicted intent scores ===")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Label", "Score"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, label := range labels {
		table.Append([]string{label, strconv.FormatFloat(scores[label], 'f', 3, 64)})
	}
	table.Render()

	fmt.Fprintf(out, "\n=== Threshold-passed labels (threshold > %g) ===\n", threshold)
	likely := lo.Filter(labels, func(label string, _ int) bool {
		return scores[label] > threshold
	})
	if len(likely) == 0 {
		fmt.Fprintln(out, color.Gray.Render("none"))
		return
	}
	for _, label := range likely {
		fmt.Fprintf(out, "%s: %s\n", label, color.Green.Render("Likely"))
	}
}

// orderedLabels lists known labels first, then anything else the classifier returned.
func orderedLabels(scores models.PredictResponse) []string {
	known := lo.Filter(models.IntentLabels, func(label string, _ int) bool {
		_, ok := scores[label]
		return ok
	})
	extra := lo.Without(lo.Keys(scores), models.IntentLabels...)
	slices.Sort(extra)
	return append(known, extra...)
}
