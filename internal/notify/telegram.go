// Package notify pushes pipeline results to Telegram so high-priority
// matches surface without anyone watching a terminal.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// Reporter sends formatted notifications through a Telegram bot.
type Reporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewReporter initializes the bot with the given token. An empty token
// returns (nil, nil) so callers can treat notifications as optional.
func NewReporter(token string, chatID int64, logger *zap.Logger) (*Reporter, error) {
	if token == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Reporter{bot: bot, chatID: chatID, logger: logger}, nil
}

// FormatMatch builds the HTML message body for a scored posting.
func FormatMatch(job *types.JobPosting, match types.MatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 <b>%s</b>\n", job.Title)
	fmt.Fprintf(&b, "🏢 %s\n", job.Company)
	if job.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", job.Location)
	}
	if job.Salary != "" {
		fmt.Fprintf(&b, "💰 %s\n", job.Salary)
	}
	fmt.Fprintf(&b, "📊 %.1f%% match (%s)\n", match.Score*100, match.Priority)
	if job.URL != "" {
		fmt.Fprintf(&b, "🔗 <a href=\"%s\">Apply Now</a>", job.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SendMatch notifies about one scored posting.
func (r *Reporter) SendMatch(job *types.JobPosting, match types.MatchResult) error {
	if err := r.send(FormatMatch(job, match)); err != nil {
		return err
	}
	r.logger.Info("match notification sent",
		zap.String("company", job.Company), zap.String("role", job.Title))
	return nil
}

// SendError notifies about a pipeline failure.
func (r *Reporter) SendError(cause error) error {
	return r.send(fmt.Sprintf("⚠️ <b>Job Agent Error</b>:\n%v", cause))
}

func (r *Reporter) send(text string) error {
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "HTML"
	if _, err := r.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
