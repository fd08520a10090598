package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/admin"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/application"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/job"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/partner"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/video"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/captcha"
)

type nopLogger struct{}

func (nopLogger) Info(msg string)  {}
func (nopLogger) Error(msg string) {}

type fakeAdminRepo struct {
	mu       sync.Mutex
	accounts map[common.UUID]*admin.Account
	// reset token state, keyed by account id
	tokenHash    map[common.UUID]string
	tokenExpires map[common.UUID]time.Time
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		accounts:     make(map[common.UUID]*admin.Account),
		tokenHash:    make(map[common.UUID]string),
		tokenExpires: make(map[common.UUID]time.Time),
	}
}

func (r *fakeAdminRepo) Seed(ctx context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			return nil
		}
	}
	id := common.NewUUID()
	r.accounts[id] = &admin.Account{ID: id, Email: email, PasswordHash: passwordHash}
	return nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*admin.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			clone := *account
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "admin not found", nil)
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id common.UUID) (*admin.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.accounts[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "admin not found", nil)
	}
	clone := *account
	return &clone, nil
}

func (r *fakeAdminRepo) UpdateProfile(ctx context.Context, id common.UUID, profile admin.Profile) (*admin.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.accounts[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "admin not found", nil)
	}
	account.Name = profile.Name
	account.ContactEmails = profile.ContactEmails
	account.ContactPhones = profile.ContactPhones
	account.Address = profile.Address
	account.MapLink = profile.MapLink
	account.SocialLinks = profile.SocialLinks
	clone := *account
	return &clone, nil
}

func (r *fakeAdminRepo) SetResetToken(ctx context.Context, id common.UUID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.accounts[id] == nil {
		return common.NewError(common.CodeNotFound, "admin not found", nil)
	}
	r.tokenHash[id] = tokenHash
	r.tokenExpires[id] = expiresAt
	return nil
}

func (r *fakeAdminRepo) ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, hash := range r.tokenHash {
		if hash == tokenHash && r.tokenExpires[id].After(now) {
			r.accounts[id].PasswordHash = passwordHash
			delete(r.tokenHash, id)
			delete(r.tokenExpires, id)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "invalid or expired reset token", nil)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string]string
	deleted chan string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: make(map[string]string),
		deleted: make(chan string, 32),
	}
}

func (s *fakeObjectStore) Upload(ctx context.Context, key string, data io.Reader, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = contentType
	return nil
}

func (s *fakeObjectStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	s.deleted <- key
	return nil
}

func (s *fakeObjectStore) waitDeleted(n int, timeout time.Duration) []string {
	var keys []string
	deadline := time.After(timeout)
	for len(keys) < n {
		select {
		case key := <-s.deleted:
			keys = append(keys, key)
		case <-deadline:
			return keys
		}
	}
	return keys
}

type fakeModuleRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*module.Module
}

func newFakeModuleRepo() *fakeModuleRepo {
	return &fakeModuleRepo{items: make(map[common.UUID]*module.Module)}
}

func (r *fakeModuleRepo) Create(ctx context.Context, m module.Module) (*module.Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = common.NewUUID()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	r.items[m.ID] = &m
	clone := m
	return &clone, nil
}

func (r *fakeModuleRepo) Update(ctx context.Context, m module.Module) (*module.Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[m.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "module not found", nil)
	}
	m.UpdatedAt = time.Now().UTC()
	r.items[m.ID] = &m
	clone := m
	return &clone, nil
}

func (r *fakeModuleRepo) GetByID(ctx context.Context, id common.UUID) (*module.Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.items[id]
	if m == nil {
		return nil, common.NewError(common.CodeNotFound, "module not found", nil)
	}
	clone := *m
	return &clone, nil
}

func (r *fakeModuleRepo) GetBySlug(ctx context.Context, slug string) (*module.Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.Slug == slug {
			clone := *m
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "module not found", nil)
}

func (r *fakeModuleRepo) List(ctx context.Context, filter module.Filter) ([]module.Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []module.Module
	for _, m := range r.items {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.Published != nil && m.Published != *filter.Published {
			continue
		}
		items = append(items, *m)
	}
	return items, nil
}

func (r *fakeModuleRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[id] == nil {
		return common.NewError(common.CodeNotFound, "module not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeCategoryRepo struct {
	mu    sync.Mutex
	items []module.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c module.Category) (*module.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == c.Name && existing.Type == c.Type {
			return nil, common.NewConflictError("category already exists for this module type", "name")
		}
	}
	c.ID = common.NewUUID()
	c.CreatedAt = time.Now().UTC()
	r.items = append(r.items, c)
	return &c, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, moduleType module.Type) ([]module.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []module.Category
	for _, c := range r.items {
		if moduleType != "" && c.Type != moduleType {
			continue
		}
		items = append(items, c)
	}
	return items, nil
}

type fakeJobRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{items: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	r.items[j.ID] = &j
	clone := j
	return &clone, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[j.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.UpdatedAt = time.Now().UTC()
	r.items[j.ID] = &j
	clone := j
	return &clone, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.items[id]
	if j == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	clone := *j
	return &clone, nil
}

func (r *fakeJobRepo) GetBySlug(ctx context.Context, slug string) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.items {
		if j.Slug == slug {
			clone := *j
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) SlugExists(ctx context.Context, slug string, excludeID common.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.items {
		if j.Slug == slug && j.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeJobRepo) List(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.items {
		if filter.Published != nil && j.Published != *filter.Published {
			continue
		}
		items = append(items, *j)
	}
	return items, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[id] == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*application.Application
	// createErr, when set, makes the next Create fail
	createErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return nil, err
	}
	a.ID = common.NewUUID()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	r.items[a.ID] = &a
	clone := a
	return &clone, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.items[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	clone := *a
	return &clone, nil
}

func (r *fakeApplicationRepo) List(ctx context.Context, filter application.Filter) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, a := range r.items {
		if filter.JobID != "" && a.JobID != filter.JobID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		items = append(items, *a)
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.items[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[id] == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeLeadRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*lead.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{items: make(map[common.UUID]*lead.Lead)}
}

func (r *fakeLeadRepo) Create(ctx context.Context, l lead.Lead) (*lead.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = common.NewUUID()
	l.CreatedAt = time.Now().UTC()
	l.UpdatedAt = l.CreatedAt
	r.items[l.ID] = &l
	clone := l
	return &clone, nil
}

func (r *fakeLeadRepo) GetByID(ctx context.Context, id common.UUID) (*lead.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.items[id]
	if l == nil {
		return nil, common.NewError(common.CodeNotFound, "lead not found", nil)
	}
	clone := *l
	return &clone, nil
}

func (r *fakeLeadRepo) FindByContact(ctx context.Context, email, phone string) (*lead.Lead, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.items {
		if email != "" && strings.EqualFold(l.Email, email) {
			clone := *l
			return &clone, "email", nil
		}
		if phone != "" && l.Phone == phone {
			clone := *l
			return &clone, "phone", nil
		}
	}
	return nil, "", nil
}

func (r *fakeLeadRepo) List(ctx context.Context, filter lead.Filter) ([]lead.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []lead.Lead
	for _, l := range r.items {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		items = append(items, *l)
	}
	return items, nil
}

func (r *fakeLeadRepo) UpdateStatus(ctx context.Context, id common.UUID, status lead.Status) (*lead.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.items[id]
	if l == nil {
		return nil, common.NewError(common.CodeNotFound, "lead not found", nil)
	}
	l.Status = status
	clone := *l
	return &clone, nil
}

func (r *fakeLeadRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[id] == nil {
		return common.NewError(common.CodeNotFound, "lead not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakePartnerRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*partner.Application
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{items: make(map[common.UUID]*partner.Application)}
}

func (r *fakePartnerRepo) Create(ctx context.Context, a partner.Application) (*partner.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = common.NewUUID()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	r.items[a.ID] = &a
	clone := a
	return &clone, nil
}

func (r *fakePartnerRepo) GetByID(ctx context.Context, id common.UUID) (*partner.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.items[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "partner application not found", nil)
	}
	clone := *a
	return &clone, nil
}

func (r *fakePartnerRepo) FindByContact(ctx context.Context, email, phone string) (*partner.Application, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if email != "" && strings.EqualFold(a.Email, email) {
			clone := *a
			return &clone, "email", nil
		}
		if phone != "" && a.Phone == phone {
			clone := *a
			return &clone, "phone", nil
		}
	}
	return nil, "", nil
}

func (r *fakePartnerRepo) List(ctx context.Context, filter partner.Filter) ([]partner.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []partner.Application
	for _, a := range r.items {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		items = append(items, *a)
	}
	return items, nil
}

func (r *fakePartnerRepo) UpdateStatus(ctx context.Context, id common.UUID, status partner.Status) (*partner.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.items[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "partner application not found", nil)
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

func (r *fakePartnerRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[id] == nil {
		return common.NewError(common.CodeNotFound, "partner application not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeVideoRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*video.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{items: make(map[common.UUID]*video.Video)}
}

func (r *fakeVideoRepo) Create(ctx context.Context, v video.Video) (*video.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = common.NewUUID()
	v.CreatedAt = time.Now().UTC()
	v.UpdatedAt = v.CreatedAt
	r.items[v.ID] = &v
	clone := v
	return &clone, nil
}

func (r *fakeVideoRepo) Update(ctx context.Context, v video.Video) (*video.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[v.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "video not found", nil)
	}
	v.UpdatedAt = time.Now().UTC()
	r.items[v.ID] = &v
	clone := v
	return &clone, nil
}

func (r *fakeVideoRepo) GetByID(ctx context.Context, id common.UUID) (*video.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.items[id]
	if v == nil {
		return nil, common.NewError(common.CodeNotFound, "video not found", nil)
	}
	clone := *v
	return &clone, nil
}

func (r *fakeVideoRepo) List(ctx context.Context, published *bool, page, limit int) ([]video.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []video.Video
	for _, v := range r.items {
		if published != nil && v.Published != *published {
			continue
		}
		items = append(items, *v)
	}
	return items, nil
}

func (r *fakeVideoRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[id] == nil {
		return common.NewError(common.CodeNotFound, "video not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeCaptcha struct {
	result captcha.Result
	err    error
	calls  int
}

func (c *fakeCaptcha) Verify(ctx context.Context, token, remoteIP string) (captcha.Result, error) {
	c.calls++
	return c.result, c.err
}
