// models.go database models for the portfolio site
package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SkillCategory string

const (
	SkillCategoryTechnical SkillCategory = "technical"
	SkillCategorySoft      SkillCategory = "soft"
)

func (c SkillCategory) Valid() bool {
	return c == SkillCategoryTechnical || c == SkillCategorySoft
}

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

func (p ProficiencyLevel) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

type AwardCertificationType string

const (
	TypeAward         AwardCertificationType = "award"
	TypeCertification AwardCertificationType = "certification"
)

func (t AwardCertificationType) Valid() bool {
	return t == TypeAward || t == TypeCertification
}

// StringList is stored as a JSON array in a text column. An empty list
// persists as "[]", never as NULL.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

type PersonalInfo struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// Slot is always 1; its unique index is what enforces the
	// single-row invariant at the store level.
	Slot                int       `json:"-" gorm:"uniqueIndex;not null;default:1"`
	Name                string    `json:"name" gorm:"not null"`
	Email               string    `json:"email" gorm:"not null"`
	Phone               *string   `json:"phone"`
	LinkedinURL         *string   `json:"linkedin_url"`
	GithubURL           *string   `json:"github_url"`
	ProfessionalSummary string    `json:"professional_summary" gorm:"not null"`
	PhotoURL            *string   `json:"photo_url"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (PersonalInfo) TableName() string {
	return "personal_info"
}

type WorkExperience struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Company          string     `json:"company" gorm:"not null"`
	Title            string     `json:"title" gorm:"not null"`
	StartDate        time.Time  `json:"start_date" gorm:"not null"`
	EndDate          *time.Time `json:"end_date"` // null while the position is current
	Responsibilities string     `json:"responsibilities" gorm:"not null"`
	IsCurrent        bool       `json:"is_current" gorm:"not null;default:false"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (WorkExperience) TableName() string {
	return "work_experience"
}

type Education struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Degree      string     `json:"degree" gorm:"not null"`
	Major       string     `json:"major" gorm:"not null"`
	Institution string     `json:"institution" gorm:"not null"`
	StartDate   time.Time  `json:"start_date" gorm:"not null"`
	EndDate     *time.Time `json:"end_date"`
	GPA         *float64   `json:"gpa" gorm:"column:gpa"`
	IsCurrent   bool       `json:"is_current" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Education) TableName() string {
	return "education"
}

type Skill struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null"`
	Category         SkillCategory     `json:"category" gorm:"type:text;not null"`
	ProficiencyLevel *ProficiencyLevel `json:"proficiency_level" gorm:"type:text"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}

type AwardCertification struct {
	ID            uint                   `json:"id" gorm:"primaryKey"`
	Title         string                 `json:"title" gorm:"not null"`
	Issuer        string                 `json:"issuer" gorm:"not null"`
	DateReceived  time.Time              `json:"date_received" gorm:"not null"`
	Description   *string                `json:"description"`
	Type          AwardCertificationType `json:"type" gorm:"type:text;not null"`
	ExpiryDate    *time.Time             `json:"expiry_date"`
	CredentialURL *string                `json:"credential_url"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func (AwardCertification) TableName() string {
	return "awards_certifications"
}

type PortfolioProject struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description" gorm:"not null"`
	ImageURL     *string    `json:"image_url"`
	DemoURL      *string    `json:"demo_url"`
	GithubURL    *string    `json:"github_url"`
	Technologies StringList `json:"technologies" gorm:"type:text;not null"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
	IsFeatured   bool       `json:"is_featured" gorm:"not null;default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (PortfolioProject) TableName() string {
	return "portfolio_projects"
}

type ContactForm struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null"`
	Subject     *string   `json:"subject"`
	Message     string    `json:"message" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"not null"`
}

func (ContactForm) TableName() string {
	return "contact_form"
}
