package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the owner's admin chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, bookingCreatedText(b))
}

func (n *TelegramNotifier) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking) {
	n.send(ctx, bookingStatusText(b))
}

func bookingCreatedText(b *domain.Booking) string {
	return fmt.Sprintf(
		"*New booking #%d*\n\n"+"Service: %s\n"+"When: %s at %s\n"+"Customer: %s\n"+"Email: %s\n"+"Phone: %s",
		b.ID, escape(b.ServiceName),
		b.BookingDate.Format("Mon, 02 Jan 2006"), escape(b.BookingTime),
		escape(b.CustomerName), escape(b.CustomerEmail), escape(b.CustomerPhone),
	)
}

func bookingStatusText(b *domain.Booking) string {
	return fmt.Sprintf(
		"*Booking #%d is now %s*\n\n"+"Service: %s\n"+"When: %s at %s\n"+"Customer: %s",
		b.ID, b.Status, escape(b.ServiceName),
		b.BookingDate.Format("Mon, 02 Jan 2006"), escape(b.BookingTime),
		escape(b.CustomerName),
	)
}

// escape neutralises Markdown entities in form-supplied text.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
