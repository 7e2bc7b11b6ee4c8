package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/client/repositories/preferences"
)

// fakeCaptureAPI records calls and delegates to optional funcs.
type fakeCaptureAPI struct {
	client.CaptureAPI

	mu      sync.Mutex
	creates []models.CreateCaptureRequest
	updates []models.UpdateCaptureRequest
	deletes []string
	lists   []listCall

	createFn  func(req models.CreateCaptureRequest) (*models.Capture, error)
	updateErr error
	deleteErr error
	listRet   []models.Capture
	listErr   error
}

type listCall struct {
	Key      string
	ByEmail  bool
	Token    string
	Migrated *bool
}

func (f *fakeCaptureAPI) CreateCapture(_ context.Context, req models.CreateCaptureRequest, _ string) (*models.Capture, error) {
	f.mu.Lock()
	f.creates = append(f.creates, req)
	f.mu.Unlock()

	if f.createFn != nil {
		return f.createFn(req)
	}
	return &models.Capture{ID: "c-" + req.RawText, UserID: req.UserID, RawText: req.RawText}, nil
}

func (f *fakeCaptureAPI) ListCapturesByUser(_ context.Context, userID, token string, migrated *bool) ([]models.Capture, error) {
	f.lists = append(f.lists, listCall{Key: userID, Token: token, Migrated: migrated})
	return f.listRet, f.listErr
}

func (f *fakeCaptureAPI) ListCapturesByEmail(_ context.Context, email, token string, migrated *bool) ([]models.Capture, error) {
	f.lists = append(f.lists, listCall{Key: email, ByEmail: true, Token: token, Migrated: migrated})
	return f.listRet, f.listErr
}

func (f *fakeCaptureAPI) UpdateCapture(_ context.Context, req models.UpdateCaptureRequest, _ string) (*models.Capture, error) {
	f.updates = append(f.updates, req)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Capture{ID: req.ID, UserID: req.UserID, RawText: req.RawText}, nil
}

func (f *fakeCaptureAPI) DeleteCapture(_ context.Context, id string, _ string) error {
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

// fakeUserAPI maps emails to ids and counts lookups.
type fakeUserAPI struct {
	ids   map[string]string
	err   error
	calls atomic.Int32
}

func (f *fakeUserAPI) GetUserByEmail(_ context.Context, email, _ string) (*models.User, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.ids[email]
	if !ok {
		return nil, &client.Error{Kind: client.KindAPI, Status: 404, Detail: "user not found"}
	}
	return &models.User{ID: id, Email: email}, nil
}

var _ preferences.Repository = (*memPrefs)(nil)

// memPrefs is an in-memory preferences.Repository.
type memPrefs struct {
	m   map[string]string
	err error
}

func newMemPrefs() *memPrefs { return &memPrefs{m: map[string]string{}} }

func (p *memPrefs) SetMany(_ context.Context, values map[string]string) error {
	if p.err != nil {
		return p.err
	}
	for k, v := range values {
		p.m[k] = v
	}
	return nil
}

func (p *memPrefs) List(_ context.Context) (map[string]string, error) {
	return p.m, p.err
}

func (p *memPrefs) Clear(_ context.Context) error {
	if p.err != nil {
		return p.err
	}
	p.m = map[string]string{}
	return nil
}
