package job

import (
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

func ValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

type Job struct {
	ID               common.UUID    `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Department       string         `json:"department"`
	Location         string         `json:"location"`
	EmploymentType   EmploymentType `json:"employment_type"`
	Description      string         `json:"description"`
	Responsibilities []string       `json:"responsibilities"`
	Requirements     []string       `json:"requirements"`
	Benefits         []string       `json:"benefits"`
	Published        bool           `json:"published"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
