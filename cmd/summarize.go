package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize --jd FILE RESUME...",
	Short: "Write a fit summary of every resume for the job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summarize(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	addJDFlags(summarizeCmd)

	summarizeCmd.Flags().String("jd-id", "", "identifier of the job description in the cache. Default is the file name.")
}

func summarize(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	svc := setup()
	log := svc.logger

	format, err := outputFormat(cmd)
	if err != nil {
		log.Fatal("parsing flags", zap.Error(err))
	}

	jd, resumes := loadInputs(cmd, args, log)

	jdID, _ := cmd.Flags().GetString("jd-id")
	if jdID == "" {
		jdID = jd.Name
	}

	pipeline, err := svc.summaryPipeline(ctx)
	if err != nil {
		log.Fatal("building summary pipeline", zap.Error(err))
	}

	texts := make([]string, 0, len(resumes))
	names := make([]string, 0, len(resumes))
	for _, r := range resumes {
		texts = append(texts, r.Text)
		names = append(names, r.Name)
	}

	report, err := pipeline.Run(ctx, texts, jd.Text, names, jdID)
	if err != nil {
		log.Fatal("summarizing resumes", zap.Error(err))
	}

	if len(report.Missing) > 0 {
		log.Warn("summaries unavailable, retry later", zap.Strings("resumes", report.Missing))
	}

	out := cmd.OutOrStdout()
	if format == outputJSON {
		if err := writeJSON(out, report.Results); err != nil {
			log.Fatal("writing output", zap.Error(err))
		}
		return
	}

	writeSummaries(out, report.Results)
}
