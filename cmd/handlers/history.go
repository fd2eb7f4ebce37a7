package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kingdom/internal/core"
	"kingdom/internal/hashtags"
	"kingdom/internal/logger"
	"kingdom/internal/render"
	"kingdom/internal/trends"
)

const defaultUser = "local"

// NewHistoryCmd creates the history management command
func NewHistoryCmd() *cobra.Command {
	var userID string

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Record posts and inspect your hashtag history",
		Long: `Manage the SQLite history of your published posts. Every recorded post
updates the running performance of its hashtags, which personalizes
future suggestions.`,
	}
	historyCmd.PersistentFlags().StringVar(&userID, "user", defaultUser, "user the history belongs to")

	historyCmd.AddCommand(newHistoryRecordCmd(&userID))
	historyCmd.AddCommand(newHistoryListCmd(&userID))
	historyCmd.AddCommand(newHistoryReportCmd(&userID))
	historyCmd.AddCommand(newHistoryStatsCmd())
	historyCmd.AddCommand(newHistoryCleanupCmd())

	return historyCmd
}

func newHistoryRecordCmd(userID *string) *cobra.Command {
	var (
		platform      string
		tags          string
		engagement    float64
		reach         float64
		reachIncrease float64
		conversions   int
		postedAt      string
		file          string
	)

	cmd := &cobra.Command{
		Use:   "record [content...]",
		Short: "Record a published post and its results",
		Example: `  kingdom history record --platform instagram --tags "#launch,#smallbusiness" \
    --engagement 240 --reach 1800 --conversions 3 "Grand opening this Saturday!"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ""
			if len(args) > 0 || file != "" {
				var err error
				if content, err = readContent(args, file); err != nil {
					return err
				}
			}

			post := core.Post{
				Platform:    core.NormalizePlatform(platform),
				Content:     content,
				Hashtags:    splitTags(tags),
				Engagement:  engagement,
				Reach:       reach,
				Conversions: conversions,
			}
			if postedAt != "" {
				t, err := time.Parse("2006-01-02", postedAt)
				if err != nil {
					return fmt.Errorf("invalid --posted-at %q: use YYYY-MM-DD", postedAt)
				}
				post.PostedAt = t
			}
			return runHistoryRecord(cmd.Context(), *userID, post, reachIncrease)
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "instagram", "platform the post was published on")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "hashtags used, comma or space separated")
	cmd.Flags().Float64Var(&engagement, "engagement", 0, "likes, comments, shares and saves")
	cmd.Flags().Float64Var(&reach, "reach", 0, "accounts reached")
	cmd.Flags().Float64Var(&reachIncrease, "reach-increase", 0, "percent reach above your usual, credited to each hashtag")
	cmd.Flags().IntVar(&conversions, "conversions", 0, "sales, bookings or sign-ups attributed to the post")
	cmd.Flags().StringVar(&postedAt, "posted-at", "", "publish date as YYYY-MM-DD (default now)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from a text or HTML file")

	return cmd
}

func runHistoryRecord(ctx context.Context, userID string, post core.Post, reachIncrease float64) error {
	a, err := newApp(ctx, userID, true)
	if err != nil {
		return err
	}
	defer a.Close()

	saved, err := a.store.RecordPost(ctx, userID, post, hashtags.PostUsage(post, reachIncrease))
	if err != nil {
		return err
	}
	logger.Info("Recorded post", "id", saved.ID, "user_id", userID, "hashtags", len(saved.Hashtags))

	return output(saved, fmt.Sprintf("✅ Recorded post %s on %s with %d hashtags\n", saved.ID, saved.Platform, len(saved.Hashtags)))
}

func newHistoryListCmd(userID *string) *cobra.Command {
	var analyze bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hashtag performance, best first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *userID, true)
			if err != nil {
				return err
			}
			defer a.Close()

			history, err := a.store.ListHashtagPerformance(ctx, *userID)
			if err != nil {
				return err
			}
			if !analyze {
				return output(history, render.Performance(history))
			}
			report := a.hashtags.AnalyzePerformance(history)
			return output(report, render.HashtagReport(report))
		},
	}
	cmd.Flags().BoolVar(&analyze, "analyze", false, "show top performers, underperformers and recommendations")
	return cmd
}

func newHistoryReportCmd(userID *string) *cobra.Command {
	var (
		platform  string
		window    time.Duration
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare your latest posting window with the one before",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *userID, true)
			if err != nil {
				return err
			}
			defer a.Close()

			source := trends.NewHistorySource(a.store.ForUser(*userID))
			if window > 0 {
				source.Window = window
			}
			report, err := source.Report(ctx, core.NormalizePlatform(platform))
			if err != nil {
				return err
			}

			markdown := trends.FormatReport(report)
			if outputDir != "" {
				filename := fmt.Sprintf("trends_%s_%s.md", report.Platform, report.EndDate.Format("2006-01-02"))
				path, err := render.WriteReportToFile(markdown, outputDir, filename)
				if err != nil {
					return err
				}
				logger.Info("Report written", "path", path)
			}
			return output(report, markdown)
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "instagram", "platform to report on")
	cmd.Flags().DurationVar(&window, "window", 7*24*time.Hour, "length of each comparison window")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "also write the markdown report to this directory")

	return cmd
}

func newHistoryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show history database statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, "", true)
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get history statistics: %w", err)
			}

			text := fmt.Sprintf("📊 History Statistics\n"+
				"====================\n"+
				"📝 Posts recorded: %d\n"+
				"#️⃣  Hashtags tracked: %d\n"+
				"👤 Users: %d\n"+
				"💾 Database size: %.2f MB\n"+
				"📅 Last updated: %s\n",
				stats.PostCount, stats.HashtagCount, stats.UserCount,
				float64(stats.Size)/1024/1024, stats.LastUpdated.Format("2006-01-02 15:04:05"))
			return output(stats, text)
		},
	}
}

func newHistoryCleanupCmd() *cobra.Command {
	var (
		maxAge  time.Duration
		confirm bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete old posts (hashtag performance is kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Printf("⚠️  This will delete posts older than %s. Continue? [y/N]: ", maxAge)
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" && response != "yes" {
					fmt.Println("Cleanup cancelled")
					return nil
				}
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, "", true)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.store.CleanupOldPosts(ctx, maxAge)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Removed %d posts\n", removed)
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "older-than", 365*24*time.Hour, "delete posts older than this")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "skip confirmation prompt")
	return cmd
}
