package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/llm"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an LLM-generated passage (no database)",
	Long: `Generate a passage and answer its questions in the terminal.

This is a stateless developer tool — no database, no attempt tracking, no events.
Useful for evaluating passage quality and tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "business", "Topic: business, fiction, or quick-read")
	previewCmd.Flags().String("difficulty", "standard", "Difficulty: standard or challenge")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	diffVal, _ := cmd.Flags().GetString("difficulty")

	topic := content.Topic(topicVal)
	if !topic.Valid() {
		return fmt.Errorf("invalid topic %q: must be business, fiction, or quick-read", topicVal)
	}
	difficulty := content.Difficulty(diffVal)
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be standard or challenge", diffVal)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := content.New(provider, content.DefaultConfig())

	fmt.Printf("Generating a %s passage (%s)...\n\n", topic.Display(), difficulty.Display())
	session, err := gen.Generate(ctx, topic, difficulty)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Printf("── %s ──\n", session.Title)
	if session.AvgTime != "" {
		fmt.Printf("(%s)\n", session.AvgTime)
	}
	fmt.Println()
	for _, para := range session.Paragraphs() {
		fmt.Println(para)
		fmt.Println()
	}

	if session.QuickRead() {
		fmt.Println("── Quick read: no questions ──")
		if session.Summary != "" {
			fmt.Printf("Summary: %s\n", session.Summary)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i, q := range session.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(session.Questions))
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'a'+j, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		chosen := int(answer[0] - 'a')
		if chosen == q.CorrectIndex {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %c) %s\n",
				'a'+q.CorrectIndex, q.Options[q.CorrectIndex])
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(session.Questions))
	if session.Summary != "" {
		fmt.Printf("Passage summary: %s\n", session.Summary)
	}
	return nil
}
