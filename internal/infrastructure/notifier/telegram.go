package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"dealradar/internal/domain/entity"
	"dealradar/pkg/logx"
)

// TelegramBot pushes insane-tier finds to a chat.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run consumes alerts until the channel closes or the context ends.
func (b *TelegramBot) Run(ctx context.Context, alerts <-chan entity.DealAlert) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case alert, ok := <-alerts:
			if !ok {
				return nil
			}
			if err := b.SendAlert(ctx, alert); err != nil {
				logger(ctx).Error("failed to send alert", logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendAlert(ctx context.Context, alert entity.DealAlert) error {
	text := fmt.Sprintf(
		"🔥 <b>INSANE DEAL</b>\n\n"+
			"🎮 <b>%s</b>\n"+
			"💰 $%.2f → $%.2f (-%d%%)\n"+
			"⭐ Quality: %s\n"+
			"📈 Score: %.2f\n\n"+
			"%s",
		alert.Deal.Title,
		alert.Deal.ListPrice,
		alert.Deal.CurrentPrice,
		alert.DiscountPercent,
		alert.Quality,
		alert.Score,
		claimLines(alert.Deal),
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText sends a plain text message, used for startup notices.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)

	return err
}

func claimLines(d entity.Deal) string {
	lines := make([]string, 0, len(d.ClaimLinks))

	for store, link := range d.ClaimLinks {
		lines = append(lines, fmt.Sprintf(`🔗 <a href="%s">%s</a>`, link, store))
	}

	return strings.Join(lines, "\n")
}
