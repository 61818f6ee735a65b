package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readerline/readerline/internal/content"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics and their generation profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-12s  %-18s  %9s  %9s  %s\n",
			"ID", "Name", "Words", "Questions", "Reading Time")
		fmt.Println(strings.Repeat("─", 64))

		for _, t := range content.AllTopics() {
			p, err := content.ProfileFor(t)
			if err != nil {
				return err
			}
			questions := fmt.Sprintf("%d", p.QuestionCount)
			if p.QuestionCount == 0 {
				questions = "none"
			}
			fmt.Printf("%-12s  %-18s  %4d-%-4d  %9s  %s\n",
				string(t), t.Display(), p.MinWords, p.MaxWords, questions, p.AvgTime)
		}

		fmt.Println()
		fmt.Println("Difficulties:")
		for _, d := range content.AllDifficulties() {
			fmt.Printf("  %-10s  %s\n", string(d), d.Display())
		}
		return nil
	},
}
