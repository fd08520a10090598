package module

import (
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

// Type is one of the twelve fixed offering categories.
type Type string

const (
	TypeStudyAbroad       Type = "study-abroad"
	TypeStudyIndia        Type = "study-india"
	TypePlacements        Type = "placements"
	TypeInternships       Type = "internships"
	TypeTraining          Type = "training"
	TypeLoans             Type = "loans"
	TypeScholarships      Type = "scholarships"
	TypeMBBSAbroad        Type = "mbbs-abroad"
	TypeOnlineDegrees     Type = "online-degrees"
	TypeTestPrep          Type = "test-prep"
	TypeVisaServices      Type = "visa-services"
	TypeCareerCounselling Type = "career-counselling"
)

var Types = []Type{
	TypeStudyAbroad, TypeStudyIndia, TypePlacements, TypeInternships,
	TypeTraining, TypeLoans, TypeScholarships, TypeMBBSAbroad,
	TypeOnlineDegrees, TypeTestPrep, TypeVisaServices, TypeCareerCounselling,
}

func ValidType(t Type) bool {
	for _, known := range Types {
		if known == t {
			return true
		}
	}
	return false
}

type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Module struct {
	ID              common.UUID   `json:"id"`
	Type            Type          `json:"module_type"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"long_description"`
	Category        string        `json:"category"`
	CustomFields    []CustomField `json:"custom_fields"`
	Highlights      []string      `json:"highlights"`
	CoverImage      string        `json:"cover_image"`
	GalleryImages   []string      `json:"gallery_images"`
	Published       bool          `json:"published"`
	Slug            string        `json:"slug,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Category is a pure lookup entity; modules reference it by name only.
type Category struct {
	ID        common.UUID `json:"id"`
	Name      string      `json:"name"`
	Type      Type        `json:"module_type"`
	CreatedAt time.Time   `json:"created_at"`
}
