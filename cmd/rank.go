package cmd

import (
	"context"
	"time"

	"github.com/spigell/resume-matcher/internal/ranking"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rankCmd = &cobra.Command{
	Use:   "rank --jd FILE RESUME...",
	Short: "Rank resumes by their final score against the job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rank(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
	addJDFlags(rankCmd)

	rankCmd.Flags().Float64("min-score", 0, "drop resumes with a final score below this value (0-100)")
	rankCmd.Flags().Int("top", 0, "keep only the best N resumes. Default is all.")
	rankCmd.Flags().String("csv", "", "append the scores of every scored resume to this CSV file")

	viper.BindPFlag("scoring.min-score", rankCmd.Flags().Lookup("min-score"))
}

func rank(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	svc := setup()
	log := svc.logger

	format, err := outputFormat(cmd)
	if err != nil {
		log.Fatal("parsing flags", zap.Error(err))
	}

	jd, resumes := loadInputs(cmd, args, log)

	scorer, err := svc.scorer(ctx)
	if err != nil {
		log.Fatal("building scorer", zap.Error(err))
	}

	opts := ranking.Options{}
	if svc.config.Scoring != nil {
		opts.MinScore = svc.config.Scoring.MinScore
	}
	opts.Top, _ = cmd.Flags().GetInt("top")

	result := ranking.New(scorer, log).Rank(ctx, jd, resumes, opts)

	log.Info("ranking finished",
		zap.String("run_id", result.RunID),
		zap.Int("ranked", len(result.Entries)),
		zap.Int("failed", len(result.Failures)),
	)

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		if err := ranking.AppendCSV(path, jd.Name, result.Scored, time.Now()); err != nil {
			log.Fatal("saving scores", zap.Error(err))
		}
		log.Info("appended scores", zap.String("filename", path))
	}

	out := cmd.OutOrStdout()
	if format == outputJSON {
		if err := writeJSON(out, result); err != nil {
			log.Fatal("writing output", zap.Error(err))
		}
		return
	}

	writeEntries(out, result.Entries, true)
}
