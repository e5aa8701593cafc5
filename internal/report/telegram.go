package report

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

// TelegramNotifier pushes qualified-job summaries to a chat so the daily
// review file does not go unnoticed.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendQualifiedJob sends a one-job summary with score and skill overlap.
func (t *TelegramNotifier) SendQualifiedJob(job models.StoredJob) error {
	matched := "-"
	missing := "-"
	if score := job.JobDetails.ATSScore; score != nil {
		if len(score.MatchedSkills) > 0 {
			matched = strings.Join(score.MatchedSkills, ", ")
		}
		if len(score.MissingSkills) > 0 {
			missing = strings.Join(score.MissingSkills, ", ")
		}
	}
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"📅 %s\n"+
			"🎯 ATS score: <b>%d</b>\n"+
			"✅ Matched: %s\n"+
			"❌ Missing: %s",
		job.Title,
		job.Company,
		job.JobDetails.CompanyLocation,
		job.PostedDate,
		job.OverallScore(),
		matched,
		missing,
	)
	return t.SendMessage(text)
}

// SendRunSummary sends the end-of-run pipeline statistics.
func (t *TelegramNotifier) SendRunSummary(total, qualified, germanRequired int) error {
	text := fmt.Sprintf(
		"📊 <b>Job hunt run complete</b>\n"+
			"Analyzed: %d\n"+
			"Qualified: %d\n"+
			"Skipped (German required): %d",
		total, qualified, germanRequired,
	)
	return t.SendMessage(text)
}
