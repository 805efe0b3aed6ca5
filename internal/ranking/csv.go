package ranking

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{"timestamp", "jd_name", "resume_name", "email", "embedding_score", "llm_score", "keyword_overlap", "final_score"}

// AppendCSV appends one row per entry to path, writing the header when the
// file is new.
func AppendCSV(path, jdName string, entries []Entry, now time.Time) error {
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open scores file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	stamp := now.UTC().Format(time.RFC3339)
	for _, e := range entries {
		row := []string{
			stamp,
			jdName,
			e.Name,
			e.Email,
			formatScore(e.Breakdown.EmbeddingScore),
			formatScore(e.Breakdown.LLMScore),
			formatScore(e.Breakdown.KeywordOverlap),
			formatScore(e.Breakdown.FinalScore),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush scores file: %w", err)
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
