package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kingdom/internal/core"
	"kingdom/internal/hashtags"
	"kingdom/internal/logger"
	"kingdom/internal/render"
)

// NewHashtagsCmd creates the hashtags command
func NewHashtagsCmd() *cobra.Command {
	var (
		platform    string
		file        string
		niche       string
		season      string
		userID      string
		historyFile string
	)

	cmd := &cobra.Command{
		Use:   "hashtags [content...]",
		Short: "Suggest personalized hashtags for a post",
		Long: `Rank hashtags for a post from five pools: words in the post, current
trends, the mode's community tags, seasonal tags and your niche.

Past performance from --history-file or the stored history for --user raises
the tags that worked for you before.`,
		Example: `  kingdom hashtags --platform instagram "I launched my new business today"
  kingdom hashtags --platform tiktok --niche photography --file caption.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args, file)
			if err != nil {
				return err
			}
			return runHashtags(cmd.Context(), hashtagOptions{
				content:     content,
				platform:    core.NormalizePlatform(platform),
				niche:       niche,
				season:      season,
				userID:      userID,
				historyFile: historyFile,
			})
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "instagram", "target platform")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from a text or HTML file")
	cmd.Flags().StringVar(&niche, "niche", "", "your niche, e.g. photography or fitness")
	cmd.Flags().StringVar(&season, "season", "", "season override (default from today's date)")
	cmd.Flags().StringVar(&userID, "user", "", "use the stored hashtag history for this user")
	cmd.Flags().StringVar(&historyFile, "history-file", "", "JSON file of hashtag performance records")

	return cmd
}

type hashtagOptions struct {
	content     string
	platform    core.Platform
	niche       string
	season      string
	userID      string
	historyFile string
}

func runHashtags(ctx context.Context, opts hashtagOptions) error {
	a, err := newApp(ctx, opts.userID, opts.userID != "")
	if err != nil {
		return err
	}
	defer a.Close()

	var history []core.HashtagPerformance
	switch {
	case opts.historyFile != "":
		history, err = readHistory(opts.historyFile)
		if err != nil {
			return err
		}
	case opts.userID != "":
		history, err = a.store.ListHashtagPerformance(ctx, opts.userID)
		if err != nil {
			return fmt.Errorf("failed to load hashtag history: %w", err)
		}
	}

	list := a.hashtags.PersonalizedHashtags(ctx, hashtags.Request{
		Mode:     a.mode,
		Content:  opts.content,
		Platform: opts.platform,
		History:  history,
		Niche:    opts.niche,
		Season:   opts.season,
	})
	logger.Debug("Ranked hashtags", "count", len(list), "platform", string(opts.platform), "history", len(history))

	return output(list, render.Hashtags(opts.platform, list))
}

// NewTrendingCmd creates the trending command
func NewTrendingCmd() *cobra.Command {
	var (
		platform string
		userID   string
	)

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending hashtags for a platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), userID, false)
			if err != nil {
				return err
			}
			defer a.Close()

			p := core.NormalizePlatform(platform)
			list := a.hashtags.TrendingHashtags(cmd.Context(), a.mode, p)
			return output(list, render.Hashtags(p, list))
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "instagram", "target platform")
	cmd.Flags().StringVar(&userID, "user", "", "user whose posts feed the history trend source")

	return cmd
}
