package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio_test.db")
	g, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrateSchema(g))
	db = g
}

func ptr[T any](v T) *T {
	return &v
}

func setVal[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

func setNull[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func ts(s string) *Timestamp {
	parsed, err := parseDate(s)
	if err != nil {
		panic(err)
	}
	return &Timestamp{Time: parsed}
}

func TestCreateWorkExperienceAppliesDefaults(t *testing.T) {
	setupTestDB(t)

	created, err := createWorkExperience(&CreateWorkExperienceInput{
		Company:          "Acme Corp",
		Title:            "Engineer",
		StartDate:        ts("2020-01-15"),
		Responsibilities: "Built things",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.IsCurrent)
	assert.Nil(t, created.EndDate)
	assert.False(t, created.UpdatedAt.Before(created.CreatedAt))

	rows, err := listWorkExperience()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Corp", rows[0].Company)
	assert.Equal(t, "Engineer", rows[0].Title)
	assert.Equal(t, "Built things", rows[0].Responsibilities)
}

func TestUpdateWorkExperiencePartialMerge(t *testing.T) {
	setupTestDB(t)

	created, err := createWorkExperience(&CreateWorkExperienceInput{
		Company:          "Acme Corp",
		Title:            "Engineer",
		StartDate:        ts("2020-01-15"),
		EndDate:          ts("2022-06-30"),
		Responsibilities: "Built things",
	})
	require.NoError(t, err)

	// Only the title is supplied; everything else must survive.
	updated, err := updateWorkExperience(&UpdateWorkExperienceInput{
		ID:    created.ID,
		Title: setVal("Senior Engineer"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Title)
	assert.Equal(t, "Acme Corp", updated.Company)
	assert.Equal(t, "Built things", updated.Responsibilities)
	require.NotNil(t, updated.EndDate)

	// Explicit null clears the nullable end date.
	updated, err = updateWorkExperience(&UpdateWorkExperienceInput{
		ID:      created.ID,
		EndDate: setNull[Timestamp](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
	assert.Equal(t, "Senior Engineer", updated.Title)
}

func TestUpdateRefreshesUpdatedAtOnNoOp(t *testing.T) {
	setupTestDB(t)

	created, err := createWorkExperience(&CreateWorkExperienceInput{
		Company:          "Acme Corp",
		Title:            "Engineer",
		StartDate:        ts("2020-01-15"),
		Responsibilities: "Built things",
	})
	require.NoError(t, err)

	updated, err := updateWorkExperience(&UpdateWorkExperienceInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt),
		"updated_at must strictly increase even when no business field changed")
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateWorkExperienceNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := updateWorkExperience(&UpdateWorkExperienceInput{
		ID:    999,
		Title: setVal("Ghost"),
	})
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, uint(999), nfe.ID)

	// The failed update must not create or mutate anything.
	rows, err := listWorkExperience()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPersonalInfoSingleton(t *testing.T) {
	setupTestDB(t)

	info, err := getPersonalInfo()
	require.NoError(t, err)
	assert.Nil(t, info, "absent personal info reads as nil, not an error")

	first, err := upsertPersonalInfo(&PersonalInfoInput{
		Name:                "Jane Doe",
		Email:               "jane@example.com",
		ProfessionalSummary: "Engineer",
	})
	require.NoError(t, err)

	var last *PersonalInfo
	for i := 0; i < 3; i++ {
		last, err = upsertPersonalInfo(&PersonalInfoInput{
			Name:                "Jane Q. Doe",
			Email:               "jane.doe@example.com",
			Phone:               ptr("+1 555 0100"),
			LinkedinURL:         ptr("https://linkedin.com/in/janedoe"),
			ProfessionalSummary: "Senior engineer",
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&PersonalInfo{}).Count(&count).Error)
		assert.EqualValues(t, 1, count, "upsert must never grow the table past one row")
	}

	assert.Equal(t, first.ID, last.ID)
	assert.True(t, last.CreatedAt.Equal(first.CreatedAt))
	assert.Equal(t, "Jane Q. Doe", last.Name)
	assert.Equal(t, "jane.doe@example.com", last.Email)
	require.NotNil(t, last.Phone)
	assert.Equal(t, "+1 555 0100", *last.Phone)
	assert.Nil(t, last.GithubURL)
}

func TestPersonalInfoUpsertOverwritesToNull(t *testing.T) {
	setupTestDB(t)

	_, err := upsertPersonalInfo(&PersonalInfoInput{
		Name:                "Jane Doe",
		Email:               "jane@example.com",
		Phone:               ptr("+1 555 0100"),
		ProfessionalSummary: "Engineer",
	})
	require.NoError(t, err)

	// The upsert is a full overwrite; omitted nullable fields become null.
	saved, err := upsertPersonalInfo(&PersonalInfoInput{
		Name:                "Jane Doe",
		Email:               "jane@example.com",
		ProfessionalSummary: "Engineer",
	})
	require.NoError(t, err)
	assert.Nil(t, saved.Phone)
}

func TestPortfolioProjectTechnologiesRoundTrip(t *testing.T) {
	setupTestDB(t)

	created, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title:        "Compiler",
		Description:  "A toy compiler",
		Technologies: []string{"C++", "C#"},
	})
	require.NoError(t, err)

	rows, err := listPortfolioProjects()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
	assert.Equal(t, StringList{"C++", "C#"}, rows[0].Technologies)

	empty, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title:       "Empty",
		Description: "No stack listed",
	})
	require.NoError(t, err)
	assert.NotNil(t, empty.Technologies)

	var fetched PortfolioProject
	require.NoError(t, db.First(&fetched, empty.ID).Error)
	assert.NotNil(t, fetched.Technologies, "empty list must round-trip as [], not null")
	assert.Len(t, fetched.Technologies, 0)
}

func TestUpdatePortfolioProjectReplacesTechnologies(t *testing.T) {
	setupTestDB(t)

	created, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title:        "Site",
		Description:  "Personal site",
		Technologies: []string{"Go", "SQLite"},
	})
	require.NoError(t, err)

	updated, err := updatePortfolioProject(&UpdatePortfolioProjectInput{
		ID:           created.ID,
		Technologies: setVal([]string{"TypeScript"}),
	})
	require.NoError(t, err)
	assert.Equal(t, StringList{"TypeScript"}, updated.Technologies)
}

func TestPortfolioProjectOrdering(t *testing.T) {
	setupTestDB(t)

	a, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title: "A", Description: "d", DisplayOrder: 2,
	})
	require.NoError(t, err)
	b, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title: "B", Description: "d", DisplayOrder: 3, IsFeatured: true,
	})
	require.NoError(t, err)
	c, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title: "C", Description: "d", DisplayOrder: 1,
	})
	require.NoError(t, err)
	// Same display order as C but created later, so it lists first of the two.
	d, err := createPortfolioProject(&CreatePortfolioProjectInput{
		Title: "D", Description: "d", DisplayOrder: 1,
	})
	require.NoError(t, err)

	rows, err := listPortfolioProjects()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []uint{b.ID, d.ID, c.ID, a.ID},
		[]uint{rows[0].ID, rows[1].ID, rows[2].ID, rows[3].ID})
}

func TestSkillOrdering(t *testing.T) {
	setupTestDB(t)

	for _, s := range []CreateSkillInput{
		{Name: "Zebra", Category: SkillCategoryTechnical},
		{Name: "Apple", Category: SkillCategorySoft},
		{Name: "Mango", Category: SkillCategoryTechnical},
	} {
		_, err := createSkill(&s)
		require.NoError(t, err)
	}

	rows, err := listSkills()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Mango", rows[0].Name)
	assert.Equal(t, "Zebra", rows[1].Name)
	assert.Equal(t, "Apple", rows[2].Name, "soft skills sort after technical ones")
}

func TestWorkAndEducationOrdering(t *testing.T) {
	setupTestDB(t)

	_, err := createWorkExperience(&CreateWorkExperienceInput{
		Company: "Old Co", Title: "Junior", StartDate: ts("2015-03-01"), Responsibilities: "r",
	})
	require.NoError(t, err)
	_, err = createWorkExperience(&CreateWorkExperienceInput{
		Company: "New Co", Title: "Senior", StartDate: ts("2021-09-01"), Responsibilities: "r", IsCurrent: true,
	})
	require.NoError(t, err)

	work, err := listWorkExperience()
	require.NoError(t, err)
	require.Len(t, work, 2)
	assert.Equal(t, "New Co", work[0].Company, "most recent start date first")

	_, err = createEducation(&CreateEducationInput{
		Degree: "BSc", Major: "CS", Institution: "State U", StartDate: ts("2010-09-01"),
	})
	require.NoError(t, err)
	_, err = createEducation(&CreateEducationInput{
		Degree: "MSc", Major: "CS", Institution: "Tech U", StartDate: ts("2014-09-01"),
	})
	require.NoError(t, err)

	edu, err := listEducation()
	require.NoError(t, err)
	require.Len(t, edu, 2)
	assert.Equal(t, "MSc", edu[0].Degree)
}

func TestAwardCertificationOrdering(t *testing.T) {
	setupTestDB(t)

	_, err := createAwardCertification(&CreateAwardCertificationInput{
		Title: "Old Cert", Issuer: "Org", DateReceived: ts("2018-05-01"), Type: TypeCertification,
	})
	require.NoError(t, err)
	_, err = createAwardCertification(&CreateAwardCertificationInput{
		Title: "New Award", Issuer: "Org", DateReceived: ts("2023-11-20"), Type: TypeAward,
	})
	require.NoError(t, err)

	rows, err := listAwardsCertifications()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "New Award", rows[0].Title)
}

func TestDeleteAsymmetry(t *testing.T) {
	setupTestDB(t)

	var nfe *NotFoundError
	require.ErrorAs(t, deleteWorkExperience(42), &nfe)
	require.ErrorAs(t, deleteSkill(42), &nfe)
	require.ErrorAs(t, deletePortfolioProject(42), &nfe)

	// Education and awards tolerate a missing id.
	assert.NoError(t, deleteEducation(42))
	assert.NoError(t, deleteAwardCertification(42))
}

func TestDeleteRemovesRow(t *testing.T) {
	setupTestDB(t)

	created, err := createSkill(&CreateSkillInput{Name: "Go", Category: SkillCategoryTechnical})
	require.NoError(t, err)

	require.NoError(t, deleteSkill(created.ID))
	rows, err := listSkills()
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Second delete now hits the missing-row policy.
	var nfe *NotFoundError
	require.ErrorAs(t, deleteSkill(created.ID), &nfe)
}

func TestCreateContactFormRejectsBadEmail(t *testing.T) {
	setupTestDB(t)

	_, err := createContactForm(&CreateContactFormInput{
		Name:    "Visitor",
		Email:   "not-an-email",
		Message: "Hello",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")

	rows, err := listContactForms()
	require.NoError(t, err)
	assert.Empty(t, rows, "rejected input must not persist")
}

func TestContactFormSubmittedAtAndOrdering(t *testing.T) {
	setupTestDB(t)

	first, err := createContactForm(&CreateContactFormInput{
		Name: "A", Email: "a@example.com", Message: "first",
	})
	require.NoError(t, err)
	assert.False(t, first.SubmittedAt.IsZero())

	second, err := createContactForm(&CreateContactFormInput{
		Name: "B", Email: "b@example.com", Subject: ptr("Hi"), Message: "second",
	})
	require.NoError(t, err)

	rows, err := listContactForms()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID, "newest submission first")
}

func TestCreateSkillRejectsBadEnums(t *testing.T) {
	setupTestDB(t)

	_, err := createSkill(&CreateSkillInput{Name: "Juggling", Category: "magic"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "category")

	bad := ProficiencyLevel("legendary")
	_, err = createSkill(&CreateSkillInput{
		Name: "Go", Category: SkillCategoryTechnical, ProficiencyLevel: &bad,
	})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "proficiency_level")

	rows, err := listSkills()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateSkillClearsProficiency(t *testing.T) {
	setupTestDB(t)

	level := ProficiencyExpert
	created, err := createSkill(&CreateSkillInput{
		Name: "Go", Category: SkillCategoryTechnical, ProficiencyLevel: &level,
	})
	require.NoError(t, err)

	updated, err := updateSkill(&UpdateSkillInput{
		ID:               created.ID,
		ProficiencyLevel: setNull[ProficiencyLevel](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ProficiencyLevel)
	assert.Equal(t, "Go", updated.Name)
}

func TestUpdateEducationClearsGPA(t *testing.T) {
	setupTestDB(t)

	created, err := createEducation(&CreateEducationInput{
		Degree: "BSc", Major: "CS", Institution: "State U",
		StartDate: ts("2010-09-01"), GPA: ptr(3.8),
	})
	require.NoError(t, err)
	require.NotNil(t, created.GPA)

	updated, err := updateEducation(&UpdateEducationInput{
		ID:  created.ID,
		GPA: setNull[float64](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.GPA)
	assert.Equal(t, "BSc", updated.Degree)
}

func TestUpsertPersonalInfoRejectsBadURL(t *testing.T) {
	setupTestDB(t)

	_, err := upsertPersonalInfo(&PersonalInfoInput{
		Name:                "Jane Doe",
		Email:               "jane@example.com",
		ProfessionalSummary: "Engineer",
		LinkedinURL:         ptr("linkedin.com/janedoe"),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "linkedin_url")

	info, err := getPersonalInfo()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestUpdateAwardCertificationMergeAndClear(t *testing.T) {
	setupTestDB(t)

	created, err := createAwardCertification(&CreateAwardCertificationInput{
		Title:         "Cloud Cert",
		Issuer:        "Vendor",
		DateReceived:  ts("2022-02-02"),
		Type:          TypeCertification,
		ExpiryDate:    ts("2025-02-02"),
		CredentialURL: ptr("https://verify.example.com/abc"),
	})
	require.NoError(t, err)

	updated, err := updateAwardCertification(&UpdateAwardCertificationInput{
		ID:         created.ID,
		Issuer:     setVal("New Vendor"),
		ExpiryDate: setNull[Timestamp](),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Vendor", updated.Issuer)
	assert.Nil(t, updated.ExpiryDate)
	assert.Equal(t, "Cloud Cert", updated.Title)
	require.NotNil(t, updated.CredentialURL)
}

func TestUpdateRejectsNullingRequiredField(t *testing.T) {
	setupTestDB(t)

	created, err := createWorkExperience(&CreateWorkExperienceInput{
		Company: "Acme", Title: "Eng", StartDate: ts("2020-01-01"), Responsibilities: "r",
	})
	require.NoError(t, err)

	_, err = updateWorkExperience(&UpdateWorkExperienceInput{
		ID:        created.ID,
		StartDate: setNull[Timestamp](),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "start_date")
}
