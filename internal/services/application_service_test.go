package services

import (
	"sync"
	"testing"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	wg   sync.WaitGroup
}

func (m *recordingMailer) Send(to, _, _ string) error {
	defer m.wg.Done()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func createIntern(t *testing.T, db *gorm.DB, email string) (*models.User, *models.InternProfile) {
	t.Helper()
	user := createUser(t, db, email, models.RoleIntern)
	profile := models.InternProfile{UserID: user.ID, FullName: "Intern " + email, University: "MIT", Major: "CS"}
	require.NoError(t, db.Create(&profile).Error)
	return user, &profile
}

type applicationFixture struct {
	db         *gorm.DB
	svc        *ApplicationService
	mailer     *recordingMailer
	provider   *models.User
	intern     *models.User
	internship *models.Internship
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	db := testutil.NewDB(t)
	mailer := &recordingMailer{}
	provider, _ := createProvider(t, db, "provider@example.com")
	intern, _ := createIntern(t, db, "intern@example.com")

	internship, err := NewInternshipService(db, false).Create(provider.ID, internshipRequest("Data intern"))
	require.NoError(t, err)

	return &applicationFixture{
		db:         db,
		svc:        NewApplicationService(db, mailer, false),
		mailer:     mailer,
		provider:   provider,
		intern:     intern,
		internship: internship,
	}
}

func (f *applicationFixture) apply(t *testing.T) *models.Application {
	t.Helper()
	f.mailer.wg.Add(1)
	app, err := f.svc.Apply(f.intern.ID, &dto.ApplyRequest{InternshipID: f.internship.ID, CoverLetter: ptr("hello")})
	require.NoError(t, err)
	f.mailer.wg.Wait()
	return app
}

func TestApplyCreatesPendingApplicationAndNotifiesProvider(t *testing.T) {
	f := newApplicationFixture(t)

	app := f.apply(t)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, "hello", *app.CoverLetter)
	assert.Nil(t, app.Resume)

	var notes []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", f.provider.ID).Find(&notes).Error)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "Data intern")
	assert.False(t, notes[0].IsRead)

	assert.Equal(t, []string{"provider@example.com"}, f.mailer.sent)
}

func TestApplyTwiceConflicts(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t)

	_, err := f.svc.Apply(f.intern.ID, &dto.ApplyRequest{InternshipID: f.internship.ID})
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	var count int64
	require.NoError(t, f.db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyRejectsUnavailableInternships(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(f.intern.ID, &dto.ApplyRequest{InternshipID: f.internship.ID + 100})
	assert.ErrorIs(t, err, ErrInternshipNotOpen)

	require.NoError(t, f.db.Model(f.internship).Update("status", models.InternshipClosed).Error)
	_, err = f.svc.Apply(f.intern.ID, &dto.ApplyRequest{InternshipID: f.internship.ID})
	assert.ErrorIs(t, err, ErrInternshipNotOpen)

	var count int64
	require.NoError(t, f.db.Model(&models.Application{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyRequiresApprovalWhenConfigured(t *testing.T) {
	f := newApplicationFixture(t)
	gated := NewApplicationService(f.db, nil, true)

	_, err := gated.Apply(f.intern.ID, &dto.ApplyRequest{InternshipID: f.internship.ID})
	assert.ErrorIs(t, err, ErrInternshipNotOpen)

	require.NoError(t, f.db.Model(f.internship).Update("is_approved", true).Error)
	_, err = gated.Apply(f.intern.ID, &dto.ApplyRequest{InternshipID: f.internship.ID})
	assert.NoError(t, err)
}

func TestApplyWithoutInternProfile(t *testing.T) {
	f := newApplicationFixture(t)
	bare := createUser(t, f.db, "bare@example.com", models.RoleIntern)

	_, err := f.svc.Apply(bare.ID, &dto.ApplyRequest{InternshipID: f.internship.ID})
	assert.ErrorIs(t, err, ErrInternProfileNotFound)
}

func TestApplicationListsAreScoped(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t)

	otherProvider, _ := createProvider(t, f.db, "other@example.com")
	otherIntern, _ := createIntern(t, f.db, "other-intern@example.com")

	mine, err := f.svc.ListForProvider(f.provider.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Intern)
	require.NotNil(t, mine[0].Intern.User)
	assert.Equal(t, "intern@example.com", mine[0].Intern.User.Email)
	require.NotNil(t, mine[0].Internship)
	assert.Equal(t, "Data intern", mine[0].Internship.Title)

	theirs, err := f.svc.ListForProvider(otherProvider.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	own, err := f.svc.ListForIntern(f.intern.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.NotNil(t, own[0].Internship.Provider)

	none, err := f.svc.ListForIntern(otherIntern.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := f.svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t)

	_, err := f.svc.UpdateStatus(f.provider.ID, app.ID, models.ApplicationStatus("HIRED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := f.svc.UpdateStatus(f.provider.ID, app.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationShortlisted, updated.Status)

	_, err = f.svc.UpdateStatus(f.provider.ID, app.ID, models.ApplicationPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err = f.svc.UpdateStatus(f.provider.ID, app.ID, models.ApplicationSelected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationSelected, updated.Status)

	_, err = f.svc.UpdateStatus(f.provider.ID, app.ID, models.ApplicationRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var notes []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", f.intern.ID).Order("id").Find(&notes).Error)
	require.Len(t, notes, 2)
	assert.Contains(t, notes[0].Message, "SHORTLISTED")
	assert.Contains(t, notes[1].Message, "SELECTED")
}

func TestUpdateStatusByNonOwnerLeavesApplicationUnchanged(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t)
	stranger, _ := createProvider(t, f.db, "stranger@example.com")

	_, err := f.svc.UpdateStatus(stranger.ID, app.ID, models.ApplicationRejected)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	_, err = f.svc.UpdateStatus(f.intern.ID, app.ID, models.ApplicationRejected)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	var stored models.Application
	require.NoError(t, f.db.First(&stored, app.ID).Error)
	assert.Equal(t, models.ApplicationPending, stored.Status)
}
