package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		reader, err := s.ReaderRepo().First(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if reader == nil {
			fmt.Println("No profile yet. Run readerline to get started.")
			return nil
		}

		attempts, err := s.AttemptRepo().ByReader(ctx, reader.ID, 0)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		type bucket struct {
			completed int
			inFlight  int
			score     int
			total     int
		}
		buckets := make(map[string]*bucket)
		key := func(topic, difficulty string) string { return topic + "\x00" + difficulty }

		for _, a := range attempts {
			b := buckets[key(a.Topic, a.Difficulty)]
			if b == nil {
				b = &bucket{}
				buckets[key(a.Topic, a.Difficulty)] = b
			}
			if !a.Completed {
				b.inFlight++
				continue
			}
			b.completed++
			b.score += a.Score
			b.total += a.Total
		}

		fmt.Printf("Reader: %s\n\n", reader.Name)
		fmt.Printf("%-18s  %-10s  %9s  %10s  %8s\n",
			"Topic", "Difficulty", "Completed", "Unfinished", "Accuracy")
		fmt.Println(strings.Repeat("─", 64))

		totalCompleted := 0
		for _, topic := range content.AllTopics() {
			for _, diff := range content.AllDifficulties() {
				b := buckets[key(string(topic), string(diff))]
				if b == nil {
					continue
				}
				accuracy := "-"
				if b.total > 0 {
					accuracy = fmt.Sprintf("%.0f%%", float64(b.score)/float64(b.total)*100)
				}
				fmt.Printf("%-18s  %-10s  %9d  %10d  %8s\n",
					topic.Display(), diff.Display(), b.completed, b.inFlight, accuracy)
				totalCompleted += b.completed
			}
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%d passages read in total\n", totalCompleted)
		return nil
	},
}
