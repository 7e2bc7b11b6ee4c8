package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/config"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/client/services"
	"github.com/dmitrijs2005/divergentflow/internal/common"
	"github.com/dmitrijs2005/divergentflow/internal/logging"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeSession struct {
	services.SessionService

	sess     *models.Session
	loginErr error

	loginEmail string
	loginToken string
	logouts    int
}

func (f *fakeSession) Login(_ context.Context, email string, token []byte) (*models.Session, error) {
	f.loginEmail = email
	f.loginToken = string(token)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.sess = &models.Session{Email: email, UserID: "u1", Token: string(token)}
	return f.sess, nil
}

func (f *fakeSession) Logout() {
	f.logouts++
	f.sess = nil
}

func (f *fakeSession) Current() (*models.Session, error) {
	if f.sess == nil {
		return nil, client.PreconditionFrom(common.ErrNotLoggedIn)
	}
	return f.sess, nil
}

type fakeCaptures struct {
	services.CaptureService

	created   []string
	createErr error

	batchText string
	batchRes  models.BatchResult
	batchErr  error

	listMigrated *bool
	listCalled   bool
	listUserID   string
	listEmail    string
	listRet      []models.Capture
	listErr      error

	updated []models.UpdateCaptureRequest
	deleted []string
}

func (f *fakeCaptures) Create(_ context.Context, userID, text, token string) (*models.Capture, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, text)
	return &models.Capture{ID: "c1", UserID: userID, RawText: text}, nil
}

func (f *fakeCaptures) CreateBatch(_ context.Context, _, text, _ string) (models.BatchResult, error) {
	f.batchText = text
	return f.batchRes, f.batchErr
}

func (f *fakeCaptures) ListByUser(_ context.Context, userID, _ string, migrated *bool) ([]models.Capture, error) {
	f.listCalled = true
	f.listUserID = userID
	f.listMigrated = migrated
	return f.listRet, f.listErr
}

func (f *fakeCaptures) ListByEmail(_ context.Context, email, _ string, migrated *bool) ([]models.Capture, error) {
	f.listCalled = true
	f.listEmail = email
	f.listMigrated = migrated
	return f.listRet, f.listErr
}

func (f *fakeCaptures) Update(_ context.Context, id, userID, text, _ string) (*models.Capture, error) {
	f.updated = append(f.updated, models.UpdateCaptureRequest{ID: id, UserID: userID, RawText: text})
	return &models.Capture{ID: id, UserID: userID, RawText: text}, nil
}

func (f *fakeCaptures) Delete(_ context.Context, id, _ string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePrefs struct {
	neuro models.NeuroMode
	ui    models.UIMode
	err   error
}

func (f *fakePrefs) Load(context.Context) (models.Preferences, error) {
	return models.Preferences{NeuroMode: f.neuro, UIMode: f.ui}, f.err
}

func (f *fakePrefs) Save(_ context.Context, p models.Preferences) error {
	if f.err != nil {
		return f.err
	}
	f.neuro, f.ui = p.NeuroMode, p.UIMode
	return nil
}

func (f *fakePrefs) Reset(context.Context) (models.Preferences, error) {
	if f.err != nil {
		return models.Preferences{}, f.err
	}
	f.neuro, f.ui = models.NeuroModeTypical, models.UIModeLight
	return models.Preferences{NeuroMode: f.neuro, UIMode: f.ui}, nil
}

type fakeUsers struct {
	services.UserService

	cachedID string
	user     *models.User
	err      error
}

func (f *fakeUsers) CachedUserID() (string, bool) { return f.cachedID, f.cachedID != "" }

func (f *fakeUsers) GetUserByEmail(_ context.Context, email, _ string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user != nil {
		return f.user, nil
	}
	return &models.User{ID: f.cachedID, Email: email}, nil
}

type fakeVersion struct {
	v   *models.VersionInfo
	err error
}

func (f *fakeVersion) GetVersion(context.Context) (*models.VersionInfo, error) { return f.v, f.err }

type testApp struct {
	*App
	out      *bytes.Buffer
	session  *fakeSession
	captures *fakeCaptures
	prefs    *fakePrefs
	users    *fakeUsers
	version  *fakeVersion
}

func newTestApp(input string) *testApp {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	ta := &testApp{
		out:      &bytes.Buffer{},
		session:  &fakeSession{},
		captures: &fakeCaptures{},
		prefs:    &fakePrefs{neuro: models.NeuroModeTypical, ui: models.UIModeLight},
		users:    &fakeUsers{},
		version:  &fakeVersion{},
	}
	ta.App = &App{
		config:    cfg,
		log:       logging.Discard(),
		version:   ta.version,
		captures:  ta.captures,
		users:     ta.users,
		session:   ta.session,
		prefs:     ta.prefs,
		neuroMode: models.NeuroModeTypical,
		uiMode:    models.UIModeLight,
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       ta.out,
		now:       func() time.Time { return fixedNow },
	}
	return ta
}

func (ta *testApp) login() {
	ta.session.sess = &models.Session{Email: "a@b.co", UserID: "u1", Token: "tok123"}
	ta.users.cachedID = "u1"
}
