package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor marks the last row of a page ordered by (date DESC, created_at DESC, id DESC).
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// EncodeCursor creates a base64 encoded token from a page's last row.
func EncodeCursor(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.Date.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}
