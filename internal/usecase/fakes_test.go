package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"breneo/internal/domain/job"
	"breneo/internal/domain/matching"
	"breneo/internal/domain/notification"
	"breneo/internal/domain/user"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  []job.Job
	err   error
	calls int
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, err := f.FindByID(context.Background(), id)
	return err == nil, nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return job.Job{}, f.err
	}
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) ListJobs(_ context.Context, limit, offset int) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.jobs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.jobs) {
		end = len(f.jobs)
	}
	return append([]job.Job(nil), f.jobs[offset:end]...), nil
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return job.Job{}, f.err
	}
	j.CreatedAt = time.Now().UTC()
	f.jobs = append([]job.Job{j}, f.jobs...)
	return j, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]user.MatchProfile
	err      error
	finds    int
}

func newFakeProfileRepo(ps ...user.MatchProfile) *fakeProfileRepo {
	f := &fakeProfileRepo{profiles: map[uuid.UUID]user.MatchProfile{}}
	for _, p := range ps {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, id uuid.UUID) (user.MatchProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if f.err != nil {
		return user.MatchProfile{}, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return user.MatchProfile{}, repository.ErrMatchProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p user.MatchProfile) (user.MatchProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return user.MatchProfile{}, f.err
	}
	p.UpdatedAt = time.Now().UTC()
	f.profiles[p.UserID] = p
	return p, nil
}

func (f *fakeProfileRepo) ListProfiles(_ context.Context, limit, offset int) ([]user.MatchProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	all := make([]user.MatchProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID.String() < all[j].UserID.String() })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.UserID == n.UserID && it.JobID == n.JobID {
			return false, nil
		}
	}
	n.CreatedAt = time.Now().UTC()
	f.items = append(f.items, n)
	return true, nil
}

func (f *fakeNotificationRepo) ListByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []notification.Notification{}
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it.ID == id && it.UserID == userID {
			now := time.Now().UTC()
			f.items[i].ReadAt = &now
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification.Notification
}

func (f *fakeNotifier) NotifyJobMatch(n notification.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
}

type fakeAssessmentRepo struct {
	answers map[uuid.UUID][]matching.Answer
	err     error
}

func (f *fakeAssessmentRepo) ListAnswersByUserID(_ context.Context, id uuid.UUID) ([]matching.Answer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.answers[id], nil
}

func (f *fakeAssessmentRepo) SaveAnswer(_ context.Context, id uuid.UUID, _ string, a matching.Answer) error {
	if f.err != nil {
		return f.err
	}
	if f.answers == nil {
		f.answers = map[uuid.UUID][]matching.Answer{}
	}
	f.answers[id] = append(f.answers[id], a)
	return nil
}

// fakeCache mirrors the Redis cache's JSON round trip through an in-memory
// map of already-encoded values.
type fakeCache struct {
	mu          sync.Mutex
	data        map[string]any
	invalidated []string
	recoDropped int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]any{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	switch dst := out.(type) {
	case *matching.UserMatchProfile:
		*dst = v.(matching.UserMatchProfile)
	case *[]JobRecommendationItem:
		*dst = v.([]JobRecommendationItem)
	default:
		return false, nil
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) InvalidateUser(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, userID)
	for k := range c.data {
		if strings.Contains(k, userID) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *fakeCache) InvalidateRecommendations(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recoDropped++
	for k := range c.data {
		if strings.HasPrefix(k, "reco:") {
			delete(c.data, k)
		}
	}
	return nil
}

type fakeAcademyRepo struct {
	raw map[uuid.UUID]map[string]any
}

func (f fakeAcademyRepo) FindRawByID(_ context.Context, id uuid.UUID) (map[string]any, error) {
	r, ok := f.raw[id]
	if !ok {
		return nil, repository.ErrAcademyNotFound
	}
	return r, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func ptr[T any](v T) *T { return &v }

func newNote(userID uuid.UUID, title string) notification.Notification {
	return notification.Notification{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Title: title, MatchPercent: 80}
}
