package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendSlotOpenNotification tells every queued player that a seat freed up.
func (s *Notifier) SendSlotOpenNotification(r *booking.Reservation, userIDs []string, dryRun bool) error {
	msg := s.formatSlotOpenNotification(r, userIDs)
	return s.sendMessage(msg, dryRun)
}

// SendSuspensionNotification tells a player they have been suspended.
func (s *Notifier) SendSuspensionNotification(userID string, until time.Time, reason string, dryRun bool) error {
	msg := s.formatSuspensionNotification(userID, until, reason)
	return s.sendMessage(msg, dryRun)
}

// SendGameSummaryNotification posts the final score and highlights of a completed game.
func (s *Notifier) SendGameSummaryNotification(r *booking.Reservation, dryRun bool) error {
	msg := s.formatGameSummaryNotification(r)
	return s.sendMessage(msg, dryRun)
}

// formatSlotOpenNotification creates the Slack message for a freed seat using Block Kit.
func (s *Notifier) formatSlotOpenNotification(r *booking.Reservation, userIDs []string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ A spot just opened up! ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Pitch: %s\nWhen: %s, %s", r.PitchName, r.Date, r.Time)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	var mentions []string
	for _, id := range userIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	if len(mentions) > 0 {
		queueText := "Waiting list (first come, first served):\n" + strings.Join(mentions, " ")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", queueText, false, false), nil, nil))
	}

	contextText := slack.NewTextBlockObject("plain_text", "The seat is not reserved for you - claim it by joining the game.", true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// formatSuspensionNotification creates the Slack message for a suspension using Block Kit.
func (s *Notifier) formatSuspensionNotification(userID string, until time.Time, reason string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🟥 Player suspended", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("<@%s> is suspended until %s.\nReason: %s", userID, until.Format("Monday 02 Jan"), reason)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", detailsText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatGameSummaryNotification creates the Slack message for a completed game using Block Kit.
func (s *Notifier) formatGameSummaryNotification(r *booking.Reservation) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ Full time! ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Pitch: %s\nWhen: %s, %s", r.PitchName, r.Date, r.Time)
	if r.FinalScore != "" {
		detailsText += fmt.Sprintf("\nFinal score: %s", r.FinalScore)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if r.MVPPlayerID != "" {
		mvpText := fmt.Sprintf("🏆 MVP: <@%s>", r.MVPPlayerID)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", mvpText, false, false), nil, nil))
	}

	var lines []string
	for _, h := range r.Highlights {
		lines = append(lines, fmt.Sprintf("• %d' %s - %s", h.Minute, highlightLabel(h), h.PlayerName))
	}
	if len(lines) > 0 {
		highlightsText := "Highlights:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", highlightsText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func highlightLabel(h booking.Highlight) string {
	switch h.Type {
	case booking.HighlightGoal:
		if h.IsPenalty {
			return "Goal (pen)"
		}
		return "Goal"
	case booking.HighlightAssist:
		return "Assist"
	case booking.HighlightYellowCard:
		return "Yellow card"
	case booking.HighlightRedCard:
		return "Red card"
	case booking.HighlightSave:
		return "Save"
	case booking.HighlightOther:
		return "Highlight"
	}
	return string(h.Type)
}
