package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spigell/resume-matcher/internal/documents"
	"github.com/spigell/resume-matcher/internal/ranking"
	"github.com/spigell/resume-matcher/internal/summary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func addJDFlags(cmd *cobra.Command) {
	cmd.Flags().String("jd", "", "job description file (.txt, .md, .pdf, .docx)")
	cmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	cmd.MarkFlagRequired("jd")
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format = strings.ToLower(strings.TrimSpace(format)); format {
	case outputText, outputJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s", format)
	}
}

// loadInputs reads the job description and resume files named on the command line.
func loadInputs(cmd *cobra.Command, args []string, logger *zap.Logger) (*documents.Document, []*documents.Document) {
	jdPath, _ := cmd.Flags().GetString("jd")

	jd, err := documents.Load(jdPath)
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	resumes, err := documents.LoadAll(args)
	if err != nil {
		logger.Fatal("loading resumes", zap.Error(err))
	}

	logger.Info("loaded documents", zap.String("jd", jd.Name), zap.Int("resumes", len(resumes)))
	return jd, resumes
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeEntries(w io.Writer, entries []ranking.Entry, withRank bool) {
	for _, e := range entries {
		b := e.Breakdown
		prefix := ""
		if withRank {
			prefix = fmt.Sprintf("%d. ", e.Rank)
		}
		email := e.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(w, "%s%s\t%s\tfinal=%.2f\tembedding=%.2f\tllm=%.2f\tkeywords=%.2f\n",
			prefix, e.Name, email, b.FinalScore, b.EmbeddingScore, b.LLMScore, b.KeywordOverlap)
	}
}

func writeSummaries(w io.Writer, results []summary.Result) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s ==\n%s\n", r.Name, r.Summary)
	}
}
