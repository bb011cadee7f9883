package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cultistcircle/circlebot/internal/ammo"
	"github.com/cultistcircle/circlebot/internal/catalog"
	"github.com/cultistcircle/circlebot/internal/format"
	"github.com/cultistcircle/circlebot/internal/models"
	"github.com/cultistcircle/circlebot/internal/selector"
)

var (
	apiURL    string
	redisAddr string
	cacheTTL  time.Duration

	threshold int
	maxItems  int
	regime    string
	randomize bool
	priceMode string
	listAmmo  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "circle",
		Short: "Cultist Circle item selection toolkit",
		Long: `Tools for the Escape from Tarkov Cultist Circle: auto-select
sacrifice items to reach a base value threshold at minimum cost, look up
item prices and base values, and query ammo stats.`,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", catalog.DefaultURL, "Price worker endpoint")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for a shared catalog cache (default: in-memory)")
	rootCmd.PersistentFlags().DurationVar(&cacheTTL, "cache-ttl", catalog.DefaultTTL, "Catalog cache lifetime")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Auto-select items to reach a base value threshold with minimum total cost",
		Run:   runSolve,
	}
	solveCmd.Flags().IntVarP(&threshold, "threshold", "t", 400_000, "Target total base value in roubles")
	solveCmd.Flags().IntVarP(&maxItems, "max-items", "k", 5, "Maximum number of items")
	solveCmd.Flags().StringVarP(&regime, "mode", "m", "pvp", "Cost source: pvp (trader) or pve (flea)")
	solveCmd.Flags().BoolVarP(&randomize, "randomize", "r", false, "Shuffle candidates to vary equal-cost picks")

	priceCmd := &cobra.Command{
		Use:   "price <item name>",
		Short: "Look up an item's prices",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPrice,
	}
	priceCmd.Flags().StringVarP(&priceMode, "mode", "m", "pvp", "Price data: pvp or pve")

	baseCmd := &cobra.Command{
		Use:   "base <item name>",
		Short: "Show an item's base value",
		Args:  cobra.MinimumNArgs(1),
		Run:   runBase,
	}

	ammoCmd := &cobra.Command{
		Use:   "ammo <name>",
		Short: "Look up ammunition stats",
		Args:  cobra.ArbitraryArgs,
		Run:   runAmmo,
	}
	ammoCmd.Flags().BoolVarP(&listAmmo, "list", "l", false, "List every known round name")

	bossesCmd := &cobra.Command{
		Use:   "bosses",
		Short: "Show the latest boss spawn changes",
		Run:   runBosses,
	}

	faqCmd := &cobra.Command{
		Use:   "faq <question>",
		Short: "Ask about Cultist Circle timings and thresholds",
		Args:  cobra.MinimumNArgs(1),
		Run:   runFAQ,
	}

	rootCmd.AddCommand(solveCmd, priceCmd, baseCmd, ammoCmd, bossesCmd, faqCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() *catalog.Client {
	opts := []catalog.Option{
		catalog.WithURL(apiURL),
		catalog.WithTTL(cacheTTL),
	}
	if redisAddr != "" {
		opts = append(opts, catalog.WithCache(catalog.NewRedisCache(redisAddr)))
	}
	return catalog.NewClient(opts...)
}

func fetchCatalog() (*models.Catalog, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := newClient().Items(ctx)
	if err != nil {
		color.Red("Error: could not fetch items data: %v", err)
		return nil, false
	}
	return items, true
}

func runSolve(cmd *cobra.Command, args []string) {
	mode, err := models.ParseRegime(regime)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	items, ok := fetchCatalog()
	if !ok {
		os.Exit(1)
	}

	req := selector.Request{
		Threshold: threshold,
		MaxItems:  maxItems,
		Regime:    mode,
		Randomize: randomize,
	}
	sel, err := selector.New().Solve(items, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoFeasibleSelection):
			color.Red("No combination reaches %d₽ within %d items.", threshold, maxItems)
		case errors.Is(err, models.ErrNoValidCandidates):
			color.Red("No catalog item has usable value and cost data for this mode.")
		default:
			color.Red("Error: %v", err)
		}
		os.Exit(1)
	}

	status := color.New(color.FgGreen, color.Bold)
	if sel.TotalValue < threshold {
		status = color.New(color.FgYellow, color.Bold)
		status.Printf("\n⚠️ Threshold not met (%s mode)\n\n", mode.Label())
	} else {
		status.Printf("\n✅ Threshold met (%s mode)\n\n", mode.Label())
	}

	format.SelectionTable(os.Stdout, sel)
}

func runPrice(cmd *cobra.Command, args []string) {
	mode, err := models.ParseRegime(priceMode)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	items, ok := fetchCatalog()
	if !ok {
		os.Exit(1)
	}

	query := joinArgs(args)
	it := catalog.FindItem(items, query, catalog.FuzzyMatcher{})
	if it == nil {
		color.Red("Could not find item matching '%s'", query)
		os.Exit(1)
	}

	format.RenderEmbed(os.Stdout, format.Price(it, mode, time.Now().UTC()))
}

func runBase(cmd *cobra.Command, args []string) {
	items, ok := fetchCatalog()
	if !ok {
		os.Exit(1)
	}

	query := joinArgs(args)
	it := catalog.FindItem(items, query, catalog.FuzzyMatcher{})
	if it == nil {
		color.Red("Could not find item matching '%s'", query)
		os.Exit(1)
	}

	format.RenderEmbed(os.Stdout, format.BaseValue(it))
}

func runBosses(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	changes, err := newClient().BossChanges(ctx)
	if err != nil {
		color.Red("Error: could not fetch boss changes: %v", err)
		os.Exit(1)
	}
	if len(changes) == 0 {
		fmt.Println("No boss changes found.")
		return
	}
	format.RenderEmbed(os.Stdout, format.BossChanges(changes, time.Now().UTC()))
}

func runAmmo(cmd *cobra.Command, args []string) {
	if listAmmo {
		for _, name := range ammo.Names() {
			fmt.Println(name)
		}
		return
	}
	if len(args) == 0 {
		_ = cmd.Usage()
		os.Exit(1)
	}

	query := joinArgs(args)
	name, round, ok := ammo.Find(query)
	if !ok {
		format.RenderEmbed(os.Stdout, format.AmmoNotFound(query))
		os.Exit(1)
	}
	format.RenderEmbed(os.Stdout, format.Ammo(name, round))
}

func runFAQ(cmd *cobra.Command, args []string) {
	format.RenderEmbed(os.Stdout, format.Help(joinArgs(args)))
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
