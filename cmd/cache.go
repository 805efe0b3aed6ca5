package cmd

import (
	"context"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the summary cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached summary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		clearCache(cmd)
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	cacheClearCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation")
}

func clearCache(cmd *cobra.Command) {
	ctx := context.Background()
	svc := setup()
	log := svc.logger

	store, err := svc.summaryStore(ctx)
	if err != nil {
		log.Fatal("opening summary cache", zap.Error(err))
	}

	if approve, _ := cmd.Flags().GetBool("auto-aprove"); !approve {
		prompt := promptui.Select{
			Label: "Delete all cached summaries?",
			Items: []string{PromptNo, PromptYes},
		}

		_, answer, err := prompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}
		if answer != PromptYes {
			log.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	if err := store.Clear(ctx); err != nil {
		log.Fatal("clearing summary cache", zap.Error(err))
	}

	log.Info("summary cache cleared")
}
