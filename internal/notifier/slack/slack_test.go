package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.NotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSent())
	assert.Equal(t, 0, metrics.NotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.NotifSent())
	assert.Equal(t, 1, metrics.NotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendSlotOpenNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	r := &booking.Reservation{
		ID:        "res-1",
		PitchName: "Camp Nou Five-a-Side",
		Date:      "2026-09-01",
		Time:      "19:00 - 20:00",
	}
	err := notifier.SendSlotOpenNotification(r, []string{"p1", "p2"}, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled)
}

func TestFormatSuspensionNotification(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	until := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	msg := notifier.formatSuspensionNotification("p1", until, "repeated no-shows")

	require.NotEmpty(t, msg.Blocks.BlockSet)
	assert.Len(t, msg.Blocks.BlockSet, 2)
}

func TestFormatGameSummaryNotification(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	r := &booking.Reservation{
		PitchName:   "South Dome",
		Date:        "2026-09-01",
		Time:        "18:00 - 19:30",
		FinalScore:  "3-2",
		MVPPlayerID: "p1",
		Highlights: []booking.Highlight{
			{Type: booking.HighlightGoal, PlayerName: "Player One", Minute: 42, IsPenalty: true},
			{Type: booking.HighlightRedCard, PlayerName: "Player Two", Minute: 88},
		},
	}
	msg := notifier.formatGameSummaryNotification(r)

	// Header, details, MVP and highlights blocks.
	assert.Len(t, msg.Blocks.BlockSet, 4)
}

func TestHighlightLabel(t *testing.T) {
	assert.Equal(t, "Goal (pen)", highlightLabel(booking.Highlight{Type: booking.HighlightGoal, IsPenalty: true}))
	assert.Equal(t, "Goal", highlightLabel(booking.Highlight{Type: booking.HighlightGoal}))
	assert.Equal(t, "Red card", highlightLabel(booking.Highlight{Type: booking.HighlightRedCard}))
	assert.Equal(t, "Highlight", highlightLabel(booking.Highlight{Type: booking.HighlightOther}))
}
