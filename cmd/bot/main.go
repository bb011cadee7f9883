package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"github.com/cultistcircle/circlebot/internal/ammo"
	"github.com/cultistcircle/circlebot/internal/catalog"
	"github.com/cultistcircle/circlebot/internal/format"
	"github.com/cultistcircle/circlebot/internal/models"
	"github.com/cultistcircle/circlebot/internal/selector"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	bot, err := newBot(cfg)
	if err != nil {
		slog.Error("startup", "err", err)
		os.Exit(1)
	}

	if err := bot.run(); err != nil {
		slog.Error("bot stopped", "err", err)
		os.Exit(1)
	}
}

type config struct {
	Token     string
	APIURL    string
	CacheTTL  time.Duration
	RedisAddr string
	GuildID   string
}

func loadConfig() (*config, error) {
	v := viper.New()
	v.SetDefault("api_url", catalog.DefaultURL)
	v.SetDefault("cache_ttl", catalog.DefaultTTL)

	v.SetConfigName("circlebot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/circlebot")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()
	_ = v.BindEnv("discord_token", "DISCORD_TOKEN")
	_ = v.BindEnv("api_url", "CIRCLE_API_URL")
	_ = v.BindEnv("cache_ttl", "CIRCLE_CACHE_TTL")
	_ = v.BindEnv("redis_addr", "CIRCLE_REDIS_ADDR")
	_ = v.BindEnv("guild_id", "CIRCLE_GUILD_ID")

	cfg := &config{
		Token:     v.GetString("discord_token"),
		APIURL:    v.GetString("api_url"),
		CacheTTL:  v.GetDuration("cache_ttl"),
		RedisAddr: v.GetString("redis_addr"),
		GuildID:   v.GetString("guild_id"),
	}
	if cfg.Token == "" {
		return nil, errors.New("bot token not found (set DISCORD_TOKEN)")
	}
	return cfg, nil
}

type bot struct {
	session *discordgo.Session
	client  *catalog.Client
	solver  *selector.Solver
	matcher catalog.Matcher
	guildID string
	log     *slog.Logger
}

func newBot(cfg *config) (*bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	opts := []catalog.Option{
		catalog.WithURL(cfg.APIURL),
		catalog.WithTTL(cfg.CacheTTL),
	}
	if cfg.RedisAddr != "" {
		opts = append(opts, catalog.WithCache(catalog.NewRedisCache(cfg.RedisAddr)))
	}

	return &bot{
		session: session,
		client:  catalog.NewClient(opts...),
		solver:  selector.New(),
		matcher: catalog.FuzzyMatcher{},
		guildID: cfg.GuildID,
		log:     slog.Default(),
	}, nil
}

func (b *bot) run() error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info("connected", "user", r.User.String())
	})
	b.session.AddHandler(b.handleInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}
	defer b.session.Close()

	if err := b.registerCommands(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	b.log.Info("shutting down")
	return nil
}

func (b *bot) registerCommands() error {
	minThreshold := float64(0)
	minItems := float64(1)
	maxItemsBound := float64(15)

	modeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "PvP (Trader cost)", Value: "pvp"},
		{Name: "PvE (Flea cost)", Value: "pve"},
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "cultist",
			Description: "Auto-select items to reach base value threshold with min total cost",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "threshold", Description: "Target total base value in roubles (default: 400000)", MinValue: &minThreshold},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "max_items", Description: "Maximum number of items allowed (default: 5)", MinValue: &minItems, MaxValue: maxItemsBound},
				{Type: discordgo.ApplicationCommandOptionString, Name: "mode", Description: "Cost source: PvP (trader) or PvE (flea)", Choices: modeChoices},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "randomize", Description: "Slightly randomize ties (shuffle candidates)"},
			},
		},
		{
			Name:        "price",
			Description: "Search for item prices",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "item_name", Description: "Name of the item to search for", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "mode", Description: "Choose PvP or PvE price data (default: PvP)", Choices: modeChoices},
			},
		},
		{
			Name:        "base",
			Description: "Show item's base value",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "item_name", Description: "Name of the item to search for", Required: true},
			},
		},
		{
			Name:        "bosschanges",
			Description: "Show the latest 3 boss spawn changes",
		},
		{
			Name:        "ammo",
			Description: "Look up information about ammunition types",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Ammo name", Required: true},
			},
		},
		{
			Name:        "help",
			Description: "Get information about Cultist Circle timings and thresholds",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "question", Description: "Your question", Required: true},
			},
		},
	}

	appID := b.session.State.User.ID
	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(appID, b.guildID, cmd); err != nil {
			return fmt.Errorf("registering /%s: %w", cmd.Name, err)
		}
	}
	b.log.Info("registered commands", "count", len(commands))
	return nil
}

func (b *bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case "cultist":
		b.handleCultist(s, i, data)
	case "price":
		b.handlePrice(s, i, data)
	case "base":
		b.handleBase(s, i, data)
	case "bosschanges":
		b.handleBossChanges(s, i)
	case "ammo":
		b.handleAmmo(s, i, data)
	case "help":
		b.handleHelp(s, i, data)
	}
}

func options(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		out[opt.Name] = opt
	}
	return out
}

func (b *bot) ack(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.log.Error("deferring interaction", "err", err)
		return false
	}
	return true
}

func (b *bot) followUpEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, e *format.Embed) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{toDiscordEmbed(e)},
	})
	if err != nil {
		b.log.Error("sending follow-up", "err", err)
	}
}

func (b *bot) followUpText(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{Content: msg})
	if err != nil {
		b.log.Error("sending follow-up", "err", err)
	}
}

func (b *bot) handleCultist(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if !b.ack(s, i) {
		return
	}

	req := selector.Request{Threshold: 400_000, MaxItems: 5, Regime: models.RegimeTrader}
	opts := options(data)
	if o, ok := opts["threshold"]; ok {
		req.Threshold = int(o.IntValue())
	}
	if o, ok := opts["max_items"]; ok {
		req.MaxItems = int(o.IntValue())
	}
	if o, ok := opts["mode"]; ok {
		if mode, err := models.ParseRegime(o.StringValue()); err == nil {
			req.Regime = mode
		}
	}
	if o, ok := opts["randomize"]; ok {
		req.Randomize = o.BoolValue()
	}

	items, err := b.catalog(s, i)
	if err != nil {
		return
	}

	sel, err := b.solver.Solve(items, req)
	if err != nil {
		b.followUpText(s, i, "Error: "+err.Error())
		return
	}
	b.followUpEmbed(s, i, format.Selection(sel, req))
}

func (b *bot) handlePrice(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if !b.ack(s, i) {
		return
	}

	opts := options(data)
	mode := models.RegimeTrader
	if o, ok := opts["mode"]; ok {
		if m, err := models.ParseRegime(o.StringValue()); err == nil {
			mode = m
		}
	}

	items, err := b.catalog(s, i)
	if err != nil {
		return
	}

	query := opts["item_name"].StringValue()
	it := catalog.FindItem(items, query, b.matcher)
	if it == nil {
		b.followUpText(s, i, fmt.Sprintf("Could not find item matching '%s'", query))
		return
	}
	b.followUpEmbed(s, i, format.Price(it, mode, time.Now().UTC()))
}

func (b *bot) handleBase(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if !b.ack(s, i) {
		return
	}

	items, err := b.catalog(s, i)
	if err != nil {
		return
	}

	query := options(data)["item_name"].StringValue()
	it := catalog.FindItem(items, query, b.matcher)
	if it == nil {
		b.followUpText(s, i, fmt.Sprintf("Could not find item matching '%s'", query))
		return
	}
	b.followUpEmbed(s, i, format.BaseValue(it))
}

func (b *bot) handleBossChanges(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.ack(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	changes, err := b.client.BossChanges(ctx)
	if err != nil {
		b.followUpText(s, i, "Error: Could not fetch boss changes")
		return
	}
	if len(changes) == 0 {
		b.followUpText(s, i, "No boss changes found.")
		return
	}
	b.followUpEmbed(s, i, format.BossChanges(changes, time.Now().UTC()))
}

func (b *bot) handleAmmo(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if !b.ack(s, i) {
		return
	}

	query := options(data)["name"].StringValue()
	name, round, ok := ammo.Find(query)
	if !ok {
		b.followUpEmbed(s, i, format.AmmoNotFound(query))
		return
	}
	b.followUpEmbed(s, i, format.Ammo(name, round))
}

func (b *bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	question := options(data)["question"].StringValue()
	embed := toDiscordEmbed(format.Help(question))
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
	if err != nil {
		b.log.Error("responding to /help", "err", err)
	}
}

// catalog fetches the item list and reports failures to the channel so the
// user is never left with a silent deferred response.
func (b *bot) catalog(s *discordgo.Session, i *discordgo.InteractionCreate) (*models.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := b.client.Items(ctx)
	if err != nil {
		b.followUpText(s, i, "Error: Could not fetch items data")
		return nil, err
	}
	return items, nil
}

func toDiscordEmbed(e *format.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		URL:         e.URL,
		Description: e.Descr,
		Color:       e.Color,
	}
	if e.Thumbnail != "" {
		out.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if e.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}
	return out
}
