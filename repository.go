// repository.go CRUD operations for the portfolio database
package main

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var db *gorm.DB

func initDB(path string) {
	var err error
	db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err := migrateSchema(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
}

func migrateSchema(g *gorm.DB) error {
	return g.AutoMigrate(
		&PersonalInfo{},
		&WorkExperience{},
		&Education{},
		&Skill{},
		&AwardCertification{},
		&PortfolioProject{},
		&ContactForm{},
	)
}

// Skills sort by the declared category order (technical before soft), which
// is not the lexical order of the two words.
const skillCategoryOrder = "CASE category WHEN 'technical' THEN 0 ELSE 1 END, name ASC"

// ----- Personal info (single row) -----

type PersonalInfoInput struct {
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               *string `json:"phone"`
	LinkedinURL         *string `json:"linkedin_url"`
	GithubURL           *string `json:"github_url"`
	ProfessionalSummary string  `json:"professional_summary"`
	PhotoURL            *string `json:"photo_url"`
}

func (in *PersonalInfoInput) validate() error {
	f := fieldErrors{}
	f.requireString("name", in.Name)
	f.checkEmail("email", in.Email)
	f.requireString("professional_summary", in.ProfessionalSummary)
	f.checkURL("linkedin_url", in.LinkedinURL)
	f.checkURL("github_url", in.GithubURL)
	f.checkURL("photo_url", in.PhotoURL)
	return f.err()
}

// getPersonalInfo returns nil without error when no row exists yet.
func getPersonalInfo() (*PersonalInfo, error) {
	var info PersonalInfo
	err := db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &info, nil
}

// upsertPersonalInfo inserts the row or overwrites the existing one in a
// single conflict-handling statement, so two racing calls cannot both take
// the insert branch. The existing id and created_at survive the overwrite.
func upsertPersonalInfo(in *PersonalInfoInput) (*PersonalInfo, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := PersonalInfo{
		Slot:                1,
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		LinkedinURL:         in.LinkedinURL,
		GithubURL:           in.GithubURL,
		ProfessionalSummary: in.ProfessionalSummary,
		PhotoURL:            in.PhotoURL,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "phone", "linkedin_url", "github_url",
			"professional_summary", "photo_url", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, storeErr(err)
	}

	var saved PersonalInfo
	if err := db.Where("slot = ?", 1).First(&saved).Error; err != nil {
		return nil, storeErr(err)
	}
	return &saved, nil
}

// ----- Work experience -----

type CreateWorkExperienceInput struct {
	Company          string     `json:"company"`
	Title            string     `json:"title"`
	StartDate        *Timestamp `json:"start_date"`
	EndDate          *Timestamp `json:"end_date"`
	Responsibilities string     `json:"responsibilities"`
	IsCurrent        bool       `json:"is_current"`
}

func (in *CreateWorkExperienceInput) validate() error {
	f := fieldErrors{}
	f.requireString("company", in.Company)
	f.requireString("title", in.Title)
	f.requireString("responsibilities", in.Responsibilities)
	if in.StartDate == nil {
		f.add("start_date", "is required")
	}
	return f.err()
}

func createWorkExperience(in *CreateWorkExperienceInput) (*WorkExperience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := WorkExperience{
		Company:          in.Company,
		Title:            in.Title,
		StartDate:        in.StartDate.Time,
		Responsibilities: in.Responsibilities,
		IsCurrent:        in.IsCurrent,
	}
	if in.EndDate != nil {
		t := in.EndDate.Time
		row.EndDate = &t
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, storeErr(err)
	}
	return &row, nil
}

func listWorkExperience() ([]WorkExperience, error) {
	rows := []WorkExperience{}
	if err := db.Order("start_date DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

type UpdateWorkExperienceInput struct {
	ID               uint                `json:"id"`
	Company          Optional[string]    `json:"company"`
	Title            Optional[string]    `json:"title"`
	StartDate        Optional[Timestamp] `json:"start_date"`
	EndDate          Optional[Timestamp] `json:"end_date"`
	Responsibilities Optional[string]    `json:"responsibilities"`
	IsCurrent        Optional[bool]      `json:"is_current"`
}

func (in *UpdateWorkExperienceInput) validate() error {
	f := fieldErrors{}
	if in.Company.Set && (!in.Company.Valid || in.Company.Value == "") {
		f.add("company", "cannot be empty")
	}
	if in.Title.Set && (!in.Title.Valid || in.Title.Value == "") {
		f.add("title", "cannot be empty")
	}
	if in.Responsibilities.Set && (!in.Responsibilities.Valid || in.Responsibilities.Value == "") {
		f.add("responsibilities", "cannot be empty")
	}
	if in.StartDate.Set && !in.StartDate.Valid {
		f.add("start_date", "cannot be null")
	}
	if in.IsCurrent.Set && !in.IsCurrent.Valid {
		f.add("is_current", "cannot be null")
	}
	return f.err()
}

func updateWorkExperience(in *UpdateWorkExperienceInput) (*WorkExperience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row WorkExperience
	if err := db.First(&row, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "work experience", ID: in.ID}
		}
		return nil, storeErr(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if in.Company.Set {
		updates["company"] = in.Company.Value
	}
	if in.Title.Set {
		updates["title"] = in.Title.Value
	}
	if in.StartDate.Set {
		updates["start_date"] = in.StartDate.Value.Time
	}
	if in.EndDate.Set {
		if in.EndDate.Valid {
			updates["end_date"] = in.EndDate.Value.Time
		} else {
			updates["end_date"] = nil
		}
	}
	if in.Responsibilities.Set {
		updates["responsibilities"] = in.Responsibilities.Value
	}
	if in.IsCurrent.Set {
		updates["is_current"] = in.IsCurrent.Value
	}
	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return nil, storeErr(err)
	}

	var saved WorkExperience
	if err := db.First(&saved, in.ID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &saved, nil
}

// deleteWorkExperience treats a missing row as an error, like skills and
// portfolio projects do.
func deleteWorkExperience(id uint) error {
	res := db.Delete(&WorkExperience{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "work experience", ID: id}
	}
	return nil
}

// ----- Education -----

type CreateEducationInput struct {
	Degree      string     `json:"degree"`
	Major       string     `json:"major"`
	Institution string     `json:"institution"`
	StartDate   *Timestamp `json:"start_date"`
	EndDate     *Timestamp `json:"end_date"`
	GPA         *float64   `json:"gpa"`
	IsCurrent   bool       `json:"is_current"`
}

func (in *CreateEducationInput) validate() error {
	f := fieldErrors{}
	f.requireString("degree", in.Degree)
	f.requireString("major", in.Major)
	f.requireString("institution", in.Institution)
	if in.StartDate == nil {
		f.add("start_date", "is required")
	}
	return f.err()
}

func createEducation(in *CreateEducationInput) (*Education, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := Education{
		Degree:      in.Degree,
		Major:       in.Major,
		Institution: in.Institution,
		StartDate:   in.StartDate.Time,
		GPA:         in.GPA,
		IsCurrent:   in.IsCurrent,
	}
	if in.EndDate != nil {
		t := in.EndDate.Time
		row.EndDate = &t
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, storeErr(err)
	}
	return &row, nil
}

func listEducation() ([]Education, error) {
	rows := []Education{}
	if err := db.Order("start_date DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

type UpdateEducationInput struct {
	ID          uint                `json:"id"`
	Degree      Optional[string]    `json:"degree"`
	Major       Optional[string]    `json:"major"`
	Institution Optional[string]    `json:"institution"`
	StartDate   Optional[Timestamp] `json:"start_date"`
	EndDate     Optional[Timestamp] `json:"end_date"`
	GPA         Optional[float64]   `json:"gpa"`
	IsCurrent   Optional[bool]      `json:"is_current"`
}

func (in *UpdateEducationInput) validate() error {
	f := fieldErrors{}
	if in.Degree.Set && (!in.Degree.Valid || in.Degree.Value == "") {
		f.add("degree", "cannot be empty")
	}
	if in.Major.Set && (!in.Major.Valid || in.Major.Value == "") {
		f.add("major", "cannot be empty")
	}
	if in.Institution.Set && (!in.Institution.Valid || in.Institution.Value == "") {
		f.add("institution", "cannot be empty")
	}
	if in.StartDate.Set && !in.StartDate.Valid {
		f.add("start_date", "cannot be null")
	}
	if in.IsCurrent.Set && !in.IsCurrent.Valid {
		f.add("is_current", "cannot be null")
	}
	return f.err()
}

func updateEducation(in *UpdateEducationInput) (*Education, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row Education
	if err := db.First(&row, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "education", ID: in.ID}
		}
		return nil, storeErr(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if in.Degree.Set {
		updates["degree"] = in.Degree.Value
	}
	if in.Major.Set {
		updates["major"] = in.Major.Value
	}
	if in.Institution.Set {
		updates["institution"] = in.Institution.Value
	}
	if in.StartDate.Set {
		updates["start_date"] = in.StartDate.Value.Time
	}
	if in.EndDate.Set {
		if in.EndDate.Valid {
			updates["end_date"] = in.EndDate.Value.Time
		} else {
			updates["end_date"] = nil
		}
	}
	if in.GPA.Set {
		if in.GPA.Valid {
			updates["gpa"] = in.GPA.Value
		} else {
			updates["gpa"] = nil
		}
	}
	if in.IsCurrent.Set {
		updates["is_current"] = in.IsCurrent.Value
	}
	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return nil, storeErr(err)
	}

	var saved Education
	if err := db.First(&saved, in.ID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &saved, nil
}

// deleteEducation is an idempotent no-op when the row is already gone.
func deleteEducation(id uint) error {
	if err := db.Delete(&Education{}, id).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// ----- Skills -----

type CreateSkillInput struct {
	Name             string            `json:"name"`
	Category         SkillCategory     `json:"category"`
	ProficiencyLevel *ProficiencyLevel `json:"proficiency_level"`
}

func (in *CreateSkillInput) validate() error {
	f := fieldErrors{}
	f.requireString("name", in.Name)
	if !in.Category.Valid() {
		f.add("category", "must be one of: technical, soft")
	}
	if in.ProficiencyLevel != nil && !in.ProficiencyLevel.Valid() {
		f.add("proficiency_level", "must be one of: beginner, intermediate, advanced, expert")
	}
	return f.err()
}

func createSkill(in *CreateSkillInput) (*Skill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := Skill{
		Name:             in.Name,
		Category:         in.Category,
		ProficiencyLevel: in.ProficiencyLevel,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, storeErr(err)
	}
	return &row, nil
}

func listSkills() ([]Skill, error) {
	rows := []Skill{}
	if err := db.Order(skillCategoryOrder).Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

type UpdateSkillInput struct {
	ID               uint                       `json:"id"`
	Name             Optional[string]           `json:"name"`
	Category         Optional[SkillCategory]    `json:"category"`
	ProficiencyLevel Optional[ProficiencyLevel] `json:"proficiency_level"`
}

func (in *UpdateSkillInput) validate() error {
	f := fieldErrors{}
	if in.Name.Set && (!in.Name.Valid || in.Name.Value == "") {
		f.add("name", "cannot be empty")
	}
	if in.Category.Set && (!in.Category.Valid || !in.Category.Value.Valid()) {
		f.add("category", "must be one of: technical, soft")
	}
	if in.ProficiencyLevel.Set && in.ProficiencyLevel.Valid && !in.ProficiencyLevel.Value.Valid() {
		f.add("proficiency_level", "must be one of: beginner, intermediate, advanced, expert")
	}
	return f.err()
}

func updateSkill(in *UpdateSkillInput) (*Skill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row Skill
	if err := db.First(&row, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "skill", ID: in.ID}
		}
		return nil, storeErr(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if in.Name.Set {
		updates["name"] = in.Name.Value
	}
	if in.Category.Set {
		updates["category"] = in.Category.Value
	}
	if in.ProficiencyLevel.Set {
		if in.ProficiencyLevel.Valid {
			updates["proficiency_level"] = in.ProficiencyLevel.Value
		} else {
			updates["proficiency_level"] = nil
		}
	}
	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return nil, storeErr(err)
	}

	var saved Skill
	if err := db.First(&saved, in.ID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &saved, nil
}

func deleteSkill(id uint) error {
	res := db.Delete(&Skill{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "skill", ID: id}
	}
	return nil
}

// ----- Awards and certifications -----

type CreateAwardCertificationInput struct {
	Title         string                 `json:"title"`
	Issuer        string                 `json:"issuer"`
	DateReceived  *Timestamp             `json:"date_received"`
	Description   *string                `json:"description"`
	Type          AwardCertificationType `json:"type"`
	ExpiryDate    *Timestamp             `json:"expiry_date"`
	CredentialURL *string                `json:"credential_url"`
}

func (in *CreateAwardCertificationInput) validate() error {
	f := fieldErrors{}
	f.requireString("title", in.Title)
	f.requireString("issuer", in.Issuer)
	if in.DateReceived == nil {
		f.add("date_received", "is required")
	}
	if !in.Type.Valid() {
		f.add("type", "must be one of: award, certification")
	}
	f.checkURL("credential_url", in.CredentialURL)
	return f.err()
}

func createAwardCertification(in *CreateAwardCertificationInput) (*AwardCertification, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := AwardCertification{
		Title:         in.Title,
		Issuer:        in.Issuer,
		DateReceived:  in.DateReceived.Time,
		Description:   in.Description,
		Type:          in.Type,
		CredentialURL: in.CredentialURL,
	}
	if in.ExpiryDate != nil {
		t := in.ExpiryDate.Time
		row.ExpiryDate = &t
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, storeErr(err)
	}
	return &row, nil
}

func listAwardsCertifications() ([]AwardCertification, error) {
	rows := []AwardCertification{}
	if err := db.Order("date_received DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

type UpdateAwardCertificationInput struct {
	ID            uint                             `json:"id"`
	Title         Optional[string]                 `json:"title"`
	Issuer        Optional[string]                 `json:"issuer"`
	DateReceived  Optional[Timestamp]              `json:"date_received"`
	Description   Optional[string]                 `json:"description"`
	Type          Optional[AwardCertificationType] `json:"type"`
	ExpiryDate    Optional[Timestamp]              `json:"expiry_date"`
	CredentialURL Optional[string]                 `json:"credential_url"`
}

func (in *UpdateAwardCertificationInput) validate() error {
	f := fieldErrors{}
	if in.Title.Set && (!in.Title.Valid || in.Title.Value == "") {
		f.add("title", "cannot be empty")
	}
	if in.Issuer.Set && (!in.Issuer.Valid || in.Issuer.Value == "") {
		f.add("issuer", "cannot be empty")
	}
	if in.DateReceived.Set && !in.DateReceived.Valid {
		f.add("date_received", "cannot be null")
	}
	if in.Type.Set && (!in.Type.Valid || !in.Type.Value.Valid()) {
		f.add("type", "must be one of: award, certification")
	}
	if in.CredentialURL.Set && in.CredentialURL.Valid && !validURL(in.CredentialURL.Value) {
		f.add("credential_url", "must be an absolute URL")
	}
	return f.err()
}

func updateAwardCertification(in *UpdateAwardCertificationInput) (*AwardCertification, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row AwardCertification
	if err := db.First(&row, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "award/certification", ID: in.ID}
		}
		return nil, storeErr(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if in.Title.Set {
		updates["title"] = in.Title.Value
	}
	if in.Issuer.Set {
		updates["issuer"] = in.Issuer.Value
	}
	if in.DateReceived.Set {
		updates["date_received"] = in.DateReceived.Value.Time
	}
	if in.Description.Set {
		if in.Description.Valid {
			updates["description"] = in.Description.Value
		} else {
			updates["description"] = nil
		}
	}
	if in.Type.Set {
		updates["type"] = in.Type.Value
	}
	if in.ExpiryDate.Set {
		if in.ExpiryDate.Valid {
			updates["expiry_date"] = in.ExpiryDate.Value.Time
		} else {
			updates["expiry_date"] = nil
		}
	}
	if in.CredentialURL.Set {
		if in.CredentialURL.Valid {
			updates["credential_url"] = in.CredentialURL.Value
		} else {
			updates["credential_url"] = nil
		}
	}
	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return nil, storeErr(err)
	}

	var saved AwardCertification
	if err := db.First(&saved, in.ID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &saved, nil
}

// deleteAwardCertification is an idempotent no-op when the row is already gone.
func deleteAwardCertification(id uint) error {
	if err := db.Delete(&AwardCertification{}, id).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// ----- Portfolio projects -----

type CreatePortfolioProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url"`
	DemoURL      *string  `json:"demo_url"`
	GithubURL    *string  `json:"github_url"`
	Technologies []string `json:"technologies"`
	DisplayOrder int      `json:"display_order"`
	IsFeatured   bool     `json:"is_featured"`
}

func (in *CreatePortfolioProjectInput) validate() error {
	f := fieldErrors{}
	f.requireString("title", in.Title)
	f.requireString("description", in.Description)
	f.checkURL("image_url", in.ImageURL)
	f.checkURL("demo_url", in.DemoURL)
	f.checkURL("github_url", in.GithubURL)
	return f.err()
}

func createPortfolioProject(in *CreatePortfolioProjectInput) (*PortfolioProject, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	techs := StringList(in.Technologies)
	if techs == nil {
		techs = StringList{}
	}
	row := PortfolioProject{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		DemoURL:      in.DemoURL,
		GithubURL:    in.GithubURL,
		Technologies: techs,
		DisplayOrder: in.DisplayOrder,
		IsFeatured:   in.IsFeatured,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, storeErr(err)
	}
	return &row, nil
}

// Featured projects come first, then manual order, then the newest.
func listPortfolioProjects() ([]PortfolioProject, error) {
	rows := []PortfolioProject{}
	if err := db.Order("is_featured DESC, display_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

type UpdatePortfolioProjectInput struct {
	ID           uint               `json:"id"`
	Title        Optional[string]   `json:"title"`
	Description  Optional[string]   `json:"description"`
	ImageURL     Optional[string]   `json:"image_url"`
	DemoURL      Optional[string]   `json:"demo_url"`
	GithubURL    Optional[string]   `json:"github_url"`
	Technologies Optional[[]string] `json:"technologies"`
	DisplayOrder Optional[int]      `json:"display_order"`
	IsFeatured   Optional[bool]     `json:"is_featured"`
}

func (in *UpdatePortfolioProjectInput) validate() error {
	f := fieldErrors{}
	if in.Title.Set && (!in.Title.Valid || in.Title.Value == "") {
		f.add("title", "cannot be empty")
	}
	if in.Description.Set && (!in.Description.Valid || in.Description.Value == "") {
		f.add("description", "cannot be empty")
	}
	if in.ImageURL.Set && in.ImageURL.Valid && !validURL(in.ImageURL.Value) {
		f.add("image_url", "must be an absolute URL")
	}
	if in.DemoURL.Set && in.DemoURL.Valid && !validURL(in.DemoURL.Value) {
		f.add("demo_url", "must be an absolute URL")
	}
	if in.GithubURL.Set && in.GithubURL.Valid && !validURL(in.GithubURL.Value) {
		f.add("github_url", "must be an absolute URL")
	}
	if in.Technologies.Set && !in.Technologies.Valid {
		f.add("technologies", "cannot be null")
	}
	if in.DisplayOrder.Set && !in.DisplayOrder.Valid {
		f.add("display_order", "cannot be null")
	}
	if in.IsFeatured.Set && !in.IsFeatured.Valid {
		f.add("is_featured", "cannot be null")
	}
	return f.err()
}

func updatePortfolioProject(in *UpdatePortfolioProjectInput) (*PortfolioProject, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row PortfolioProject
	if err := db.First(&row, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "portfolio project", ID: in.ID}
		}
		return nil, storeErr(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if in.Title.Set {
		updates["title"] = in.Title.Value
	}
	if in.Description.Set {
		updates["description"] = in.Description.Value
	}
	if in.ImageURL.Set {
		if in.ImageURL.Valid {
			updates["image_url"] = in.ImageURL.Value
		} else {
			updates["image_url"] = nil
		}
	}
	if in.DemoURL.Set {
		if in.DemoURL.Valid {
			updates["demo_url"] = in.DemoURL.Value
		} else {
			updates["demo_url"] = nil
		}
	}
	if in.GithubURL.Set {
		if in.GithubURL.Valid {
			updates["github_url"] = in.GithubURL.Value
		} else {
			updates["github_url"] = nil
		}
	}
	if in.Technologies.Set {
		// The list replaces the stored one wholesale; elements never merge.
		updates["technologies"] = StringList(in.Technologies.Value)
	}
	if in.DisplayOrder.Set {
		updates["display_order"] = in.DisplayOrder.Value
	}
	if in.IsFeatured.Set {
		updates["is_featured"] = in.IsFeatured.Value
	}
	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return nil, storeErr(err)
	}

	var saved PortfolioProject
	if err := db.First(&saved, in.ID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &saved, nil
}

func deletePortfolioProject(id uint) error {
	res := db.Delete(&PortfolioProject{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "portfolio project", ID: id}
	}
	return nil
}

// ----- Contact form submissions (append-only) -----

type CreateContactFormInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func (in *CreateContactFormInput) validate() error {
	f := fieldErrors{}
	f.requireString("name", in.Name)
	f.checkEmail("email", in.Email)
	f.requireString("message", in.Message)
	return f.err()
}

func createContactForm(in *CreateContactFormInput) (*ContactForm, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := ContactForm{
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC(),
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, storeErr(err)
	}
	return &row, nil
}

func listContactForms() ([]ContactForm, error) {
	rows := []ContactForm{}
	if err := db.Order("submitted_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}
