package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kingdom/internal/catalog"
	"kingdom/internal/core"
	"kingdom/internal/intelligence"
	"kingdom/internal/optimize"
	"kingdom/internal/render"
)

// NewIdeasCmd creates the ideas command
func NewIdeasCmd() *cobra.Command {
	var (
		platforms []string
		season    string
		holiday   string
		goalsFile string
		goalSpecs []string
		niche     string
		product   string
		prodType  string
		userID    string
		viral     []string
	)

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Generate personalized content ideas",
		Long: `Combine seasonal, holiday, goal-focused, trending and educational ideas
and rank them by expected engagement. Niche and product flags add ideas for
your niche and for a product you want to promote. Each --viral-topic adds
that topic in every viral format.`,
		Example: `  kingdom ideas --platform instagram --goal followers:1000
  kingdom ideas --platform tiktok,instagram --niche fitness --product "Spring Mini Sessions" --product-type service
  kingdom ideas --platform tiktok --viral-topic "golden hour" --viral-topic "client gallery"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goals, err := parseGoals(goalsFile, goalSpecs)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, userID, false)
			if err != nil {
				return err
			}
			defer a.Close()

			now := time.Now()
			seasonal := core.SeasonalContext{Season: season, Holiday: holiday, Month: int(now.Month())}
			if seasonal.Season == "" {
				seasonal.Season = catalog.SeasonForMonth(now.Month())
			}
			if seasonal.Holiday == "" {
				seasonal.Holiday = catalog.HolidayForMonth(now.Month())
			}
			profile := core.UserPersonality{Niche: niche, ProductName: product, ProductType: prodType}
			targets := parsePlatforms(platforms)

			ideas := a.composer.GeneratePersonalizedContent(ctx, a.mode, profile, goals, seasonal, targets)
			if len(viral) > 0 {
				ideas = append(ideas, a.composer.GenerateViralContent(a.mode, viral, targets)...)
			}

			return output(ideas, render.Ideas(ideas))
		},
	}

	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", []string{"instagram"}, "target platforms (repeat or comma-separate)")
	cmd.Flags().StringVar(&season, "season", "", "season (default from today's date)")
	cmd.Flags().StringVar(&holiday, "holiday", "", "upcoming holiday (default from today's date)")
	cmd.Flags().StringVar(&goalsFile, "goals", "", "JSON file of marketing goals")
	cmd.Flags().StringArrayVar(&goalSpecs, "goal", nil, "active goal as type:target, e.g. followers:1000 (repeatable)")
	cmd.Flags().StringVar(&niche, "niche", "", "your niche, e.g. photography")
	cmd.Flags().StringVar(&product, "product", "", "product or service to promote")
	cmd.Flags().StringVar(&prodType, "product-type", "", "product type, e.g. course, service, physical")
	cmd.Flags().StringVar(&userID, "user", "", "user whose posts feed the history trend source")
	cmd.Flags().StringArrayVar(&viral, "viral-topic", nil, "topic to cross with every viral format (repeatable)")

	return cmd
}

// NewStrategyCmd creates the strategy command
func NewStrategyCmd() *cobra.Command {
	var (
		platform  string
		userID    string
		goalsFile string
		goalSpecs []string
	)

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Build a weekly content plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goals, err := parseGoals(goalsFile, goalSpecs)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, userID, false)
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.composer.GenerateContentStrategy(ctx, a.mode, userID, core.NormalizePlatform(platform), goals)
			return output(s, render.Strategy(s))
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "instagram", "target platform")
	cmd.Flags().StringVar(&userID, "user", "", "user the plan is for")
	cmd.Flags().StringVar(&goalsFile, "goals", "", "JSON file of marketing goals")
	cmd.Flags().StringArrayVar(&goalSpecs, "goal", nil, "active goal as type:target (repeatable)")

	return cmd
}

type contentFlags struct {
	platform string
	file     string
}

func (f *contentFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.platform, "platform", "p", "instagram", "target platform")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read content from a text or HTML file")
}

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	var flags contentFlags

	cmd := &cobra.Command{
		Use:   "analyze [content...]",
		Short: "Score a post and suggest improvements",
		Long: `Ask the configured AI provider to score a post. When the provider is not
configured or fails, documented fallback scores are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args, flags.file)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), "", false)
			if err != nil {
				return err
			}
			defer a.Close()

			platform := core.NormalizePlatform(flags.platform)
			score := a.intelligence.AnalyzeContent(cmd.Context(), a.mode, content, platform)
			suggestions := optimize.Suggestions(a.mode, content, platform, score)
			a.recorder.Suggestions("optimization", len(suggestions))

			result := struct {
				Score       core.ContentScore             `json:"score"`
				Suggestions []core.OptimizationSuggestion `json:"suggestions"`
			}{score, suggestions}
			return output(result, render.Score(score)+"\n"+render.Suggestions(suggestions))
		},
	}
	flags.bind(cmd)
	return cmd
}

// NewOptimizeCmd creates the optimize command
func NewOptimizeCmd() *cobra.Command {
	var (
		flags  contentFlags
		scores []string
	)

	cmd := &cobra.Command{
		Use:   "optimize [content...]",
		Short: "List optimization suggestions for a post",
		Long: `Turn a content score into concrete suggestions. Scores default to an AI
analysis; pass --score name=value (overall, engagement, reach, conversion,
virality, faith) to supply them yourself.`,
		Example: `  kingdom optimize --score reach=40 --score engagement=80 "Book your fall session"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args, flags.file)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), "", false)
			if err != nil {
				return err
			}
			defer a.Close()

			platform := core.NormalizePlatform(flags.platform)
			var score core.ContentScore
			if len(scores) > 0 {
				score, err = parseScore(scores, a.mode)
				if err != nil {
					return err
				}
			} else {
				score = a.intelligence.AnalyzeContent(cmd.Context(), a.mode, content, platform)
			}

			suggestions := optimize.Suggestions(a.mode, content, platform, score)
			a.recorder.Suggestions("optimization", len(suggestions))
			return output(suggestions, render.Suggestions(suggestions))
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringArrayVar(&scores, "score", nil, "score override as name=value (repeatable)")
	return cmd
}

// NewViralCmd creates the viral command
func NewViralCmd() *cobra.Command {
	var (
		flags      contentFlags
		variations int
	)

	cmd := &cobra.Command{
		Use:   "viral [content...]",
		Short: "Estimate a post's viral potential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if variations > intelligence.MaxVariations {
				return fmt.Errorf("--variations must be at most %d", intelligence.MaxVariations)
			}
			content, err := readContent(args, flags.file)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), "", false)
			if err != nil {
				return err
			}
			defer a.Close()

			platform := core.NormalizePlatform(flags.platform)
			prediction := a.intelligence.PredictViralPotential(cmd.Context(), a.mode, content, platform)
			if variations <= 0 {
				return output(prediction, render.Viral(prediction))
			}

			alts := a.intelligence.GenerateVariations(cmd.Context(), a.mode, content, platform, variations)
			var text strings.Builder
			text.WriteString(render.Viral(prediction))
			text.WriteString("\nVariations to A/B test:\n")
			for i, v := range alts {
				text.WriteString(strings.Repeat(" ", 2))
				text.WriteString(string(rune('A' + i%26)))
				text.WriteString(". ")
				text.WriteString(v)
				text.WriteString("\n")
			}
			result := struct {
				core.ViralPrediction
				Variations []string `json:"variations"`
			}{prediction, alts}
			return output(result, text.String())
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&variations, "variations", 0, "also suggest this many caption variations")
	return cmd
}
