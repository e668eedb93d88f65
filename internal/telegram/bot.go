// Package telegram gives the marketing team a bot front end to the
// content calendar: today's schedule, on-demand AI ideas and usage
// reports.
package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"seedtech-calendar/internal/calendar"
	"seedtech-calendar/internal/config"
	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/i18n"
	"seedtech-calendar/internal/ideas"
	"seedtech-calendar/internal/metrics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API, the content store and the idea generator.
type Bot struct {
	api          *tgbotapi.BotAPI
	store        *content.Store
	translator   *i18n.Translator
	generator    *ideas.Generator
	metricsStore *metrics.Store
	cfg          *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	store *content.Store,
	translator *i18n.Translator,
	generator *ideas.Generator,
	metricsStore *metrics.Store,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:          api,
		store:        store,
		translator:   translator,
		generator:    generator,
		metricsStore: metricsStore,
		cfg:          cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	switch {
	case msg.Text == "/usage":
		b.handleUsageRequest(msg)
	case msg.Text == "/today":
		b.handleToday(msg.Chat.ID)
	case strings.HasPrefix(msg.Text, "/ideas"):
		b.handleIdeas(msg.Chat.ID, strings.TrimSpace(strings.TrimPrefix(msg.Text, "/ideas")))
	default:
		b.sendHelp(msg.Chat.ID)
	}
}

func (b *Bot) sendHelp(chatID int64) {
	help := "📅 *Seedtech Calendar Bot*\n\n" +
		"/today - today's scheduled posts\n" +
		"/ideas <instructions> - generate AI post ideas for today\n" +
		"/usage - token usage report (admin)"
	msg := tgbotapi.NewMessage(chatID, help)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) country() content.CountryID {
	id, err := content.ParseCountry(b.cfg.DefaultCountry)
	if err != nil {
		return content.Sudan
	}
	return id
}

func (b *Bot) handleToday(chatID int64) {
	countryID := b.country()
	ds, err := b.store.Country(countryID)
	if err != nil {
		b.api.Send(tgbotapi.NewMessage(chatID, "❌ Country dataset unavailable."))
		return
	}

	now := time.Now()
	year, month, day := now.Year(), int(now.Month())-1, now.Day()
	detail := calendar.ResolveDay(&ds.Calendar, year, month, day)

	countryName := b.translator.T(i18n.English, string(countryID), nil)
	monthName := b.translator.MonthName(i18n.English, month)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *%s — %s %d*\n\n", countryName, monthName, day)

	if len(detail.ActiveHours) > 0 {
		fmt.Fprintf(&sb, "⏰ *Posting windows:* %s\n\n", strings.Join(detail.ActiveHours, ", "))
	}

	if len(detail.Posts) == 0 {
		sb.WriteString("_No posts scheduled today._")
	}
	for _, entry := range detail.Posts {
		fmt.Fprintf(&sb, "*%s*\n", entry.Platform)
		for _, post := range entry.Posts {
			fmt.Fprintf(&sb, "• *%s*\n  _%s_\n", post.Title, post.Description)
		}
		sb.WriteString("\n")
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) handleIdeas(chatID int64, instructions string) {
	statusMsg := tgbotapi.NewMessage(chatID, "✨ *Generating ideas...*")
	statusMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(statusMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	countryID := b.country()
	now := time.Now()
	req := ideas.Request{
		Country:      b.translator.T(i18n.English, string(countryID), nil),
		MonthName:    b.translator.MonthName(i18n.English, int(now.Month())-1),
		Day:          now.Day(),
		Platform:     content.All,
		Instructions: instructions,
	}

	posts, meta, err := b.generator.Generate(ctx, req)

	if b.metricsStore != nil {
		if recErr := b.metricsStore.RecordMeta(meta); recErr != nil {
			log.Printf("Warning: failed to record generation metric: %v", recErr)
		}
	}

	var finalText string
	if err != nil {
		finalText = "❌ " + ideas.GenericFailureMessage
	} else {
		var sb strings.Builder
		sb.WriteString("✨ *AI Post Ideas*\n\n")
		for _, post := range posts {
			fmt.Fprintf(&sb, "*%s*\n%s\n\n", post.Title, post.Description)
		}
		if len(posts) == 0 {
			sb.WriteString("_No ideas came back, try again._")
		}
		finalText = sb.String()
	}

	edit := tgbotapi.NewEditMessageText(chatID, sentMsg.MessageID, finalText)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}

func (b *Bot) handleUsageRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.TelegramAdminID {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "⛔ *Access Denied*: Admin only."))
		return
	}

	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Error fetching usage."))
		return
	}

	health := metrics.GetSysHealth(filepath.Dir(b.cfg.DatabasePath))

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent Generation Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		fmt.Fprintf(&sb, "• *%s*: %d tokens (%d generations)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution)
	}

	sb.WriteString("\n🧠 *System Health*\n")
	fmt.Fprintf(&sb, "• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB)
	fmt.Fprintf(&sb, "• Goroutines: %d\n", health.Goroutines)
	fmt.Fprintf(&sb, "• Disk Data: %s\n", health.DataDiskSize)

	report := tgbotapi.NewMessage(msg.Chat.ID, sb.String())
	report.ParseMode = "Markdown"
	b.api.Send(report)
}
