package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
)

// Notification payloads are row_to_json of the inserted row, so column
// names and Postgres timestamp formatting apply.

type messageRow struct {
	ID          string `json:"id"`
	ChatID      string `json:"chat_id"`
	SenderID    string `json:"sender_id"`
	Content     string `json:"content"`
	ClientToken string `json:"client_token"`
	CreatedAt   string `json:"created_at"`
}

type storyRow struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	MediaURL  string `json:"media_url"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

func decodeMessageRow(payload []byte) (*models.Message, error) {
	var row messageRow
	if err := json.Unmarshal(payload, &row); err != nil {
		return nil, fmt.Errorf("decoding message notification: %w", err)
	}
	return &models.Message{
		ID:          row.ID,
		ChatID:      row.ChatID,
		SenderID:    row.SenderID,
		Content:     row.Content,
		ClientToken: row.ClientToken,
		CreatedAt:   parsePgTime(row.CreatedAt),
	}, nil
}

func decodeStoryRow(payload []byte) (*models.Story, error) {
	var row storyRow
	if err := json.Unmarshal(payload, &row); err != nil {
		return nil, fmt.Errorf("decoding story notification: %w", err)
	}
	return &models.Story{
		ID:        row.ID,
		UserID:    row.UserID,
		Content:   row.Content,
		MediaURL:  row.MediaURL,
		CreatedAt: parsePgTime(row.CreatedAt),
		ExpiresAt: parsePgTime(row.ExpiresAt),
	}, nil
}

var pgTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999-07:00",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
}

func parsePgTime(value string) time.Time {
	for _, layout := range pgTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
