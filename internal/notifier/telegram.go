package notifier

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	logx "onepaslots/pkg/logx"
	"onepaslots/pkg/tgui"
)

// Telegram sends HTML messages to one chat through the Bot API.
type Telegram struct {
	cfg     Config
	log     logx.Logger
	bot     *tele.Bot
	chat    tele.Recipient
	limiter *rate.Limiter
}

// chatRecipient accepts numeric chat ids as well as "@channel" usernames.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// New builds the notifier. With an incomplete credential pair it returns a
// disabled notifier whose Send reports ErrDisabled without network access.
func New(cfg Config, log logx.Logger) (*Telegram, error) {
	if log.IsZero() {
		log = logx.Nop()
	}
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.ChatID = strings.TrimSpace(cfg.ChatID)
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	t := &Telegram{cfg: cfg, log: log}
	if !cfg.enabled() {
		return t, nil
	}

	b, err := tele.NewBot(tele.Settings{
		URL:    strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/"),
		Token:  cfg.Token,
		Client: &http.Client{Timeout: cfg.Timeout},
		// Sending only: skip the getMe handshake.
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	t.bot = b
	t.chat = chatRecipient(cfg.ChatID)

	limit := rate.Inf
	if cfg.MessageDelay > 0 {
		limit = rate.Every(cfg.MessageDelay)
	}
	t.limiter = rate.NewLimiter(limit, 1)
	return t, nil
}

// Enabled reports whether Send will attempt delivery.
func (t *Telegram) Enabled() bool { return t != nil && t.bot != nil }

// Send delivers text (Telegram HTML) in chunks of at most ChunkSize
// characters, in order. The first failing chunk aborts the rest.
func (t *Telegram) Send(ctx context.Context, text string) error {
	if !t.Enabled() {
		if t != nil {
			t.log.Info("telegram credentials not configured; skipping notification")
		}
		return ErrDisabled
	}

	chunks := tgui.SplitHTML(text, t.cfg.ChunkSize)
	for i, chunk := range chunks {
		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := t.bot.Send(t.chat, chunk, &tele.SendOptions{ParseMode: tele.ModeHTML}); err != nil {
			t.log.Error("telegram send failed",
				logx.Int("chunk", i+1),
				logx.Int("chunks", len(chunks)),
				logx.Err(err),
			)
			return fmt.Errorf("send chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	t.log.Debug("telegram message sent", logx.Int("chunks", len(chunks)))
	return nil
}
