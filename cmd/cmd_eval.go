package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/williamBlazing/gpu-bdb/dataset"
	"github.com/williamBlazing/gpu-bdb/dist"
	"github.com/williamBlazing/gpu-bdb/metrics"
)

var (
	// CLI flags for the evaluation run
	configPath string  // optional YAML config; flags below are its fallbacks
	reviewsCSV string  // reviews CSV path (empty = synthetic labels)
	numWorkers int     // number of simulated workers
	partitions int     // number of label partitions
	average    string  // precision averaging mode
	normalize  string  // confusion-matrix normalization
	seed       int64   // synthetic generation seed
	rows       int     // synthetic row count
	classes    int     // synthetic class count
	flipProb   float64 // synthetic prediction error rate
	logLevel   string  // log verbosity level
)

// evalCmd runs one end-to-end metric evaluation over partitioned labels.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate classification metrics over worker-partitioned labels",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := &EvalConfig{
			Reviews:    reviewsCSV,
			Workers:    numWorkers,
			Partitions: partitions,
			Average:    average,
			Normalize:  normalize,
			Seed:       seed,
			Rows:       rows,
			Classes:    classes,
			FlipProb:   flipProb,
		}
		if configPath != "" {
			cfg, err = LoadEvalConfig(configPath)
			if err != nil {
				logrus.Fatalf("Could not load eval config: %v", err)
			}
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid eval config: %v", err)
		}

		yTrue, yPred, err := buildLabels(cfg)
		if err != nil {
			logrus.Fatalf("Could not build labels: %v", err)
		}

		workers := make([]string, cfg.Workers)
		for i := range workers {
			workers[i] = fmt.Sprintf("worker-%d", i)
		}
		pool := dist.NewPool(workers)
		defer pool.Close()

		trueSeq := dataset.PartitionValues(yTrue, workers, cfg.Partitions)
		predSeq := dataset.PartitionValues(yPred, workers, cfg.Partitions)
		logrus.Infof("Evaluating %d rows in %d partitions across %d workers",
			trueSeq.Len(), trueSeq.NumParts(), cfg.Workers)

		ctx := context.Background()
		coord := metrics.NewCoordinator(pool)

		acc, err := coord.Accuracy(ctx, trueSeq, predSeq)
		if err != nil {
			logrus.Fatalf("Accuracy failed: %v", err)
		}
		logrus.Infof("Accuracy: %.4f", acc)

		prec, err := coord.Precision(ctx, trueSeq, predSeq, metrics.Average(cfg.Average))
		if err != nil {
			logrus.Fatalf("Precision failed: %v", err)
		}
		logrus.Infof("Precision (%s): %.4f", cfg.Average, prec)

		cm, err := coord.ConfusionMatrix(ctx, trueSeq, predSeq, metrics.Normalize(cfg.Normalize), nil)
		if err != nil {
			logrus.Fatalf("Confusion matrix failed: %v", err)
		}
		logrus.Infof("Confusion matrix:\n%v", mat.Formatted(cm))
	},
}

// buildLabels produces aligned truth and prediction slices, either from a
// reviews CSV (rating-derived labels, baseline predictor trained on the
// 90% train split) or from seeded synthetic data.
func buildLabels(cfg *EvalConfig) (yTrue, yPred []int, err error) {
	if cfg.Reviews == "" {
		yTrue = dataset.SyntheticLabels(cfg.Seed, cfg.Rows, cfg.Classes)
		yPred = dataset.CorruptLabels(cfg.Seed+1, yTrue, cfg.FlipProb, cfg.Classes)
		return yTrue, yPred, nil
	}

	reviews, err := dataset.LoadReviews(cfg.Reviews)
	if err != nil {
		return nil, nil, err
	}
	train, test := dataset.SplitTrainTest(reviews)
	if len(test) == 0 {
		return nil, nil, fmt.Errorf("no test rows after split (%d reviews loaded)", len(reviews))
	}

	model := dataset.TrainMostFrequent(dataset.MapRatings(train))
	yTrue = dataset.MapRatings(test)
	yPred = model.Predict(dataset.Contents(test))
	return yTrue, yPred, nil
}

// init sets up CLI flags and subcommands
func init() {
	evalCmd.Flags().StringVar(&configPath, "config", "", "YAML eval config path (overrides other flags)")
	evalCmd.Flags().StringVar(&reviewsCSV, "reviews", "", "Product reviews CSV path (empty = synthetic labels)")
	evalCmd.Flags().IntVar(&numWorkers, "workers", 4, "Number of simulated workers")
	evalCmd.Flags().IntVar(&partitions, "partitions", 8, "Number of label partitions")
	evalCmd.Flags().StringVar(&average, "average", "macro", "Precision averaging mode (binary, macro, micro)")
	evalCmd.Flags().StringVar(&normalize, "normalize", "", "Confusion-matrix normalization (true, pred, all; empty = raw counts)")
	evalCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic label generation")
	evalCmd.Flags().IntVar(&rows, "rows", 100000, "Synthetic row count")
	evalCmd.Flags().IntVar(&classes, "classes", 3, "Synthetic class count")
	evalCmd.Flags().Float64Var(&flipProb, "flip-prob", 0.25, "Synthetic prediction error rate")
	evalCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(evalCmd)
}
