// Package validate holds request-surface validation rules applied before a
// payload reaches the service layer.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	titleMaxLen   = 100
	messageMaxLen = 2000
)

// ownerIdRx: lowercase letters, digits, hyphen, underscore, 1-64 chars.
var ownerIdRx = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// OwnerID validates the caller identifier carried in the X-User-ID header.
func OwnerID(v string) error {
	if v == "" {
		return fmt.Errorf("user id is required")
	}
	if !ownerIdRx.MatchString(v) {
		return fmt.Errorf("user id must be 1-64 lowercase letters, digits, hyphen or underscore")
	}
	return nil
}

// Title validates a conversation, blog or deck title.
func Title(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("title is required")
	}
	if len(v) > titleMaxLen {
		return fmt.Errorf("title exceeds %d characters", titleMaxLen)
	}
	return nil
}

// MessageText validates one chat message body.
func MessageText(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("message text is required")
	}
	if len(v) > messageMaxLen {
		return fmt.Errorf("message exceeds %d characters", messageMaxLen)
	}
	return nil
}
