package services

import (
	"testing"
	"time"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createProvider(t *testing.T, db *gorm.DB, email string) (*models.User, *models.ProviderProfile) {
	t.Helper()
	user := createUser(t, db, email, models.RoleProvider)
	profile := models.ProviderProfile{UserID: user.ID, CompanyName: "Co " + email, Industry: "Software"}
	require.NoError(t, db.Create(&profile).Error)
	return user, &profile
}

func internshipRequest(title string) *dto.CreateInternshipRequest {
	return &dto.CreateInternshipRequest{
		Title:               title,
		Description:         "Build things",
		Requirements:        "Go",
		Location:            "Remote",
		Duration:            "3 months",
		ApplicationDeadline: time.Now().Add(30 * 24 * time.Hour).UTC().Format("2006-01-02"),
	}
}

func containsInternship(list []models.Internship, id uint) bool {
	for _, in := range list {
		if in.ID == id {
			return true
		}
	}
	return false
}

func TestInternshipPublicListingFollowsStatus(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewInternshipService(db, false)
	user, _ := createProvider(t, db, "p@example.com")

	created, err := svc.Create(user.ID, internshipRequest("Backend intern"))
	require.NoError(t, err)
	assert.Equal(t, models.InternshipOpen, created.Status)
	assert.False(t, created.IsApproved)

	public, err := svc.ListPublic()
	require.NoError(t, err)
	assert.True(t, containsInternship(public, created.ID))

	closed := "CLOSED"
	updated, err := svc.Update(user.ID, created.ID, &dto.UpdateInternshipRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, models.InternshipClosed, updated.Status)

	public, err = svc.ListPublic()
	require.NoError(t, err)
	assert.False(t, containsInternship(public, created.ID))

	_, err = svc.GetPublic(created.ID)
	assert.ErrorIs(t, err, ErrInternshipNotFound)
}

func TestInternshipApprovalGate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewInternshipService(db, true)
	user, _ := createProvider(t, db, "gate@example.com")

	created, err := svc.Create(user.ID, internshipRequest("Data intern"))
	require.NoError(t, err)

	public, err := svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, public)

	approved, err := svc.SetApproval(created.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.Equal(t, models.InternshipOpen, approved.Status)

	public, err = svc.ListPublic()
	require.NoError(t, err)
	assert.True(t, containsInternship(public, created.ID))

	rejected, err := svc.SetApproval(created.ID, false)
	require.NoError(t, err)
	assert.False(t, rejected.IsApproved)
	assert.Equal(t, models.InternshipOpen, rejected.Status)

	_, err = svc.SetApproval(created.ID+10, true)
	assert.ErrorIs(t, err, ErrInternshipNotFound)
}

func TestInternshipOwnership(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewInternshipService(db, false)
	owner, _ := createProvider(t, db, "owner@example.com")
	other, _ := createProvider(t, db, "other@example.com")

	created, err := svc.Create(owner.ID, internshipRequest("Owned"))
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(other.ID, created.ID, &dto.UpdateInternshipRequest{Title: &title})
	assert.ErrorIs(t, err, ErrInternshipNotFound)

	assert.ErrorIs(t, svc.Delete(other.ID, created.ID), ErrInternshipNotFound)

	stipend := 1500.0
	deadline := "2030-06-01T12:00:00Z"
	updated, err := svc.Update(owner.ID, created.ID, &dto.UpdateInternshipRequest{
		Stipend:             &stipend,
		ApplicationDeadline: &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "Owned", updated.Title)
	assert.Equal(t, 1500.0, *updated.Stipend)
	assert.Equal(t, 2030, updated.ApplicationDeadline.Year())

	bad := "next tuesday"
	_, err = svc.Update(owner.ID, created.ID, &dto.UpdateInternshipRequest{ApplicationDeadline: &bad})
	assert.ErrorIs(t, err, ErrInvalidDeadline)

	blank := "   "
	_, err = svc.Update(owner.ID, created.ID, &dto.UpdateInternshipRequest{Title: &blank})
	assert.ErrorIs(t, err, ErrBlankField)
	draft := "DRAFT"
	_, err = svc.Update(owner.ID, created.ID, &dto.UpdateInternshipRequest{Status: &draft})
	assert.ErrorIs(t, err, ErrInternshipStatus)
	unchanged, err := svc.GetPublic(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owned", unchanged.Title)

	noProfile := createUser(t, db, "np@example.com", models.RoleProvider)
	_, err = svc.Create(noProfile.ID, internshipRequest("Orphan"))
	assert.ErrorIs(t, err, ErrProviderProfileNotFound)
}

func TestInternshipDeleteRemovesApplications(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewInternshipService(db, false)
	user, _ := createProvider(t, db, "del@example.com")

	created, err := svc.Create(user.ID, internshipRequest("Temp"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Application{InternID: 1, InternshipID: created.ID, Status: models.ApplicationPending}).Error)

	require.NoError(t, svc.Delete(user.ID, created.ID))

	var count int64
	db.Model(&models.Application{}).Where("internship_id = ?", created.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Internship{}).Count(&count)
	assert.Zero(t, count)
}

func TestInternshipListForProviderIncludesApplications(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewInternshipService(db, false)
	user, _ := createProvider(t, db, "list@example.com")
	intern := createUser(t, db, "applicant@example.com", models.RoleIntern)
	profile := models.InternProfile{UserID: intern.ID, FullName: "Applicant", University: "U", Major: "M"}
	require.NoError(t, db.Create(&profile).Error)

	created, err := svc.Create(user.ID, internshipRequest("With apps"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Application{InternID: profile.ID, InternshipID: created.ID, Status: models.ApplicationPending}).Error)

	list, err := svc.ListForProvider(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Applications, 1)
	require.NotNil(t, list[0].Applications[0].Intern)
	assert.Equal(t, "Applicant", list[0].Applications[0].Intern.FullName)
}

func TestCloseExpired(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewInternshipService(db, false)
	user, _ := createProvider(t, db, "exp@example.com")

	past := internshipRequest("Past")
	past.ApplicationDeadline = time.Now().Add(-72 * time.Hour).UTC().Format(time.RFC3339)
	expired, err := svc.Create(user.ID, past)
	require.NoError(t, err)
	current, err := svc.Create(user.ID, internshipRequest("Current"))
	require.NoError(t, err)

	closed, err := svc.CloseExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	var gotExpired, gotCurrent models.Internship
	require.NoError(t, db.First(&gotExpired, expired.ID).Error)
	assert.Equal(t, models.InternshipClosed, gotExpired.Status)
	require.NoError(t, db.First(&gotCurrent, current.ID).Error)
	assert.Equal(t, models.InternshipOpen, gotCurrent.Status)
}
