package services

import (
	"testing"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestInternProfileUpsertRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewProfileService(db, false)
	user := createUser(t, db, "intern@example.com", models.RoleIntern)

	_, err := svc.GetOwnInternProfile(user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	req := &dto.UpsertInternProfileRequest{
		FullName:       "Grace Hopper",
		University:     "Yale",
		Major:          "Mathematics",
		GraduationYear: ptr(2027),
		Skills:         ptr("go,sql"),
		Bio:            ptr("compilers"),
		ResumeURL:      ptr("https://example.com/cv.pdf"),
		GithubURL:      ptr("https://github.com/grace"),
	}
	saved, err := svc.UpsertOwnInternProfile(user.ID, req)
	require.NoError(t, err)

	got, err := svc.GetOwnInternProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Grace Hopper", got.FullName)
	assert.Equal(t, "Yale", got.University)
	assert.Equal(t, "Mathematics", got.Major)
	assert.Equal(t, 2027, *got.GraduationYear)
	assert.Equal(t, "go,sql", *got.Skills)
	assert.Equal(t, "compilers", *got.Bio)
	assert.Equal(t, "https://example.com/cv.pdf", *got.ResumeURL)
	assert.Equal(t, "https://github.com/grace", *got.GithubURL)
	assert.Nil(t, got.PortfolioURL)
	assert.Nil(t, got.LinkedinURL)

	req.Major = "Computer Science"
	req.Bio = nil
	again, err := svc.UpsertOwnInternProfile(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	got, err = svc.GetOwnInternProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", got.Major)
	assert.Nil(t, got.Bio)

	var count int64
	db.Model(&models.InternProfile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetInternProfileByID(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewProfileService(db, false)
	user := createUser(t, db, "seen@example.com", models.RoleIntern)

	profile, err := svc.UpsertOwnInternProfile(user.ID, &dto.UpsertInternProfileRequest{
		FullName: "Seen", University: "MIT", Major: "EE",
	})
	require.NoError(t, err)

	got, err := svc.GetInternProfileByID(profile.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "seen@example.com", got.User.Email)

	_, err = svc.GetInternProfileByID(profile.ID + 100)
	assert.ErrorIs(t, err, ErrInternProfileNotFound)
}

func TestProviderProfileMergeAndPublicView(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewProfileService(db, false)
	user := createUser(t, db, "acme@example.com", models.RoleProvider)

	_, err := svc.UpsertOwnProviderProfile(user.ID, &dto.UpsertProviderProfileRequest{CompanyName: "Acme"})
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	created, err := svc.UpsertOwnProviderProfile(user.ID, &dto.UpsertProviderProfileRequest{
		CompanyName: "Acme",
		Industry:    "Software",
		Location:    ptr("Berlin"),
	})
	require.NoError(t, err)

	updated, err := svc.UpsertOwnProviderProfile(user.ID, &dto.UpsertProviderProfileRequest{
		Mission:     ptr("Ship it"),
		FoundedYear: ptr(1999),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "Berlin", *updated.Location)
	assert.Equal(t, "Ship it", *updated.Mission)

	for i := 0; i < 7; i++ {
		status := models.InternshipOpen
		if i == 0 {
			status = models.InternshipClosed
		}
		require.NoError(t, db.Create(&models.Internship{
			ProviderID: created.ID, Title: "Role", Description: "d", Requirements: "r",
			Location: "Berlin", Duration: "3 months", Status: status,
		}).Error)
	}

	public, err := svc.GetProviderProfileByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, public.Internships, companyPreviewLimit)
	for _, in := range public.Internships {
		assert.Equal(t, models.InternshipOpen, in.Status)
	}

	own, err := svc.GetOwnProviderProfile(user.ID)
	require.NoError(t, err)
	assert.Len(t, own.Internships, 7)

	companies, err := svc.ListProviders()
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, int64(6), companies[0].OpenInternshipCount)

	_, err = svc.GetProviderProfileByID(created.ID + 1)
	assert.ErrorIs(t, err, ErrProviderProfileNotFound)
}

func TestCompanyPagesHideUnapprovedInternships(t *testing.T) {
	db := testutil.NewDB(t)
	internships := NewInternshipService(db, true)
	profiles := NewProfileService(db, true)
	user, provider := createProvider(t, db, "gated@example.com")

	pending, err := internships.Create(user.ID, internshipRequest("Pending"))
	require.NoError(t, err)
	approved, err := internships.Create(user.ID, internshipRequest("Approved"))
	require.NoError(t, err)
	_, err = internships.SetApproval(approved.ID, true)
	require.NoError(t, err)

	page, err := profiles.GetProviderProfileByID(provider.ID)
	require.NoError(t, err)
	assert.False(t, containsInternship(page.Internships, pending.ID))
	assert.True(t, containsInternship(page.Internships, approved.ID))

	companies, err := profiles.ListProviders()
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, int64(1), companies[0].OpenInternshipCount)

	ungated, err := NewProfileService(db, false).ListProviders()
	require.NoError(t, err)
	assert.Equal(t, int64(2), ungated[0].OpenInternshipCount)
}
