package favorite

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindMatch  Kind = "match"
	KindPlayer Kind = "player"
)

func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindMatch:
		return KindMatch, nil
	case KindPlayer:
		return KindPlayer, nil
	default:
		return "", fmt.Errorf("unknown favorite kind %q", raw)
	}
}

// Favorite is a user-pinned upstream identifier.
type Favorite struct {
	Kind      Kind
	Key       string
	CreatedAt time.Time
}
