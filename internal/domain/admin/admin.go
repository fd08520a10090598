package admin

import (
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Account struct {
	ID            common.UUID  `json:"id"`
	Email         string       `json:"email"`
	PasswordHash  string       `json:"-"`
	Name          string       `json:"name"`
	ContactEmails []string     `json:"contact_emails"`
	ContactPhones []string     `json:"contact_phones"`
	Address       string       `json:"address"`
	MapLink       string       `json:"map_link"`
	SocialLinks   []SocialLink `json:"social_links"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Profile carries the admin-editable fields of an Account.
type Profile struct {
	Name          string
	ContactEmails []string
	ContactPhones []string
	Address       string
	MapLink       string
	SocialLinks   []SocialLink
}
