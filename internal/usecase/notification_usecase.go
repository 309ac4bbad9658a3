package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"breneo/internal/domain/job"
	"breneo/internal/domain/matching"
	"breneo/internal/domain/notification"
	"breneo/internal/domain/user"
	"breneo/internal/pkg/kvstore"
	"breneo/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrNotificationNotFound = errors.New("notification not found")

const (
	defaultNotifyMinScore    = 70
	defaultNotifyConcurrency = 8
	profilePageSize          = 500
)

// MatchNotifier pushes a freshly stored notification to the user's live
// connections. Delivery is best effort.
type MatchNotifier interface {
	NotifyJobMatch(n notification.Notification)
}

type PublishInput struct {
	Title              string
	Company            string
	Location           string
	Description        string
	SkillsRequired     []string
	SkillsPreferred    []string
	Seniority          *string
	RoleCategory       string
	MinYearsExperience *float64
	LanguagesRequired  []string
	TechStack          []string
	IndustryTags       *string
}

type PublishResult struct {
	Job      job.Job
	Notified int
}

type JobPublishUsecase interface {
	Publish(ctx context.Context, in PublishInput) (PublishResult, error)
	NotifyMatches(ctx context.Context, j job.Job) (int, error)
}

type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

type NotifyOptions struct {
	MinScore    int
	Concurrency int
}

type JobPublisher struct {
	jobs          repository.JobRepository
	profiles      repository.MatchProfileRepository
	notifications repository.NotificationRepository
	store         kvstore.Store
	notifier      MatchNotifier
	cache         MatchCache
	opts          NotifyOptions
	logger        *log.Logger
}

func NewJobPublisher(
	jobs repository.JobRepository,
	profiles repository.MatchProfileRepository,
	notifications repository.NotificationRepository,
	store kvstore.Store,
	notifier MatchNotifier,
	cache MatchCache,
	opts NotifyOptions,
	logger *log.Logger,
) *JobPublisher {
	if opts.MinScore <= 0 {
		opts.MinScore = defaultNotifyMinScore
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultNotifyConcurrency
	}
	if store == nil {
		store = kvstore.NewMemory()
	}
	return &JobPublisher{
		jobs:          jobs,
		profiles:      profiles,
		notifications: notifications,
		store:         store,
		notifier:      notifier,
		cache:         cache,
		opts:          opts,
		logger:        logger,
	}
}

func (u *JobPublisher) Publish(ctx context.Context, in PublishInput) (PublishResult, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return PublishResult{}, ErrInvalidInput
	}
	if in.MinYearsExperience != nil && *in.MinYearsExperience < 0 {
		return PublishResult{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := u.jobs.Create(ctx, job.Job{
		ID:                 uuid.New(),
		Title:              title,
		Company:            strings.TrimSpace(in.Company),
		Location:           strings.TrimSpace(in.Location),
		Description:        in.Description,
		SkillsRequired:     trimList(in.SkillsRequired),
		SkillsPreferred:    trimList(in.SkillsPreferred),
		Seniority:          in.Seniority,
		RoleCategory:       strings.TrimSpace(in.RoleCategory),
		MinYearsExperience: in.MinYearsExperience,
		LanguagesRequired:  trimList(in.LanguagesRequired),
		TechStack:          trimList(in.TechStack),
		IndustryTags:       in.IndustryTags,
		PostedAt:           &now,
	})
	if err != nil {
		return PublishResult{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateRecommendations(ctx); err != nil {
			u.logf("Publish | recommendation cache invalidate failed | error=%v", err)
		}
	}

	n, err := u.NotifyMatches(ctx, created)
	if err != nil {
		// the job is stored; a failed fan-out is reported but does not undo it
		u.logf("Publish | notify failed | job_id=%s error=%v", created.ID, err)
	}
	return PublishResult{Job: created, Notified: n}, nil
}

// NotifyMatches scores every match profile against j and notifies each user
// at or above the threshold exactly once per job.
func (u *JobPublisher) NotifyMatches(ctx context.Context, j job.Job) (int, error) {
	structured := j.Structured()
	var notified atomic.Int64

	for offset := 0; ; offset += profilePageSize {
		page, err := u.profiles.ListProfiles(ctx, profilePageSize, offset)
		if err != nil {
			return int(notified.Load()), ErrInternal
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(u.opts.Concurrency)
		for _, p := range page {
			g.Go(func() error {
				ok, err := u.notifyOne(gctx, j, structured, p)
				if err != nil {
					if ctxErr := gctx.Err(); ctxErr != nil {
						return ctxErr
					}
					u.logf("Publish | notify user failed | user_id=%s job_id=%s error=%v", p.UserID, j.ID, err)
					return nil
				}
				if ok {
					notified.Add(1)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return int(notified.Load()), err
		}

		if len(page) < profilePageSize {
			break
		}
	}

	total := int(notified.Load())
	u.logf("Publish | fan-out done | job_id=%s notified=%d", j.ID, total)
	return total, nil
}

func (u *JobPublisher) notifyOne(ctx context.Context, j job.Job, structured matching.StructuredJob, p user.MatchProfile) (bool, error) {
	res := matching.ComputeMatch(structured, p.Profile)
	if res.OverallPercent < u.opts.MinScore {
		return false, nil
	}

	first, err := u.store.SetIfNotExists(ctx, notifiedKey(p.UserID, j.ID), "1", 0)
	if err != nil {
		// the unique (user, job) row still guards against duplicates
		u.logf("Publish | dedupe store unavailable | user_id=%s error=%v", p.UserID, err)
	} else if !first {
		return false, nil
	}

	n := notification.Notification{
		ID:           uuid.New(),
		UserID:       p.UserID,
		JobID:        j.ID,
		Title:        j.Title,
		MatchPercent: res.OverallPercent,
	}
	created, err := u.notifications.Create(ctx, n)
	if err != nil {
		_ = u.store.Delete(ctx, notifiedKey(p.UserID, j.ID))
		return false, err
	}
	if !created {
		return false, nil
	}

	if u.notifier != nil {
		u.notifier.NotifyJobMatch(n)
	}
	return true, nil
}

func notifiedKey(userID, jobID uuid.UUID) string {
	return fmt.Sprintf("notified:%s:%s", userID, jobID)
}

func (u *JobPublisher) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

type Notifications struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *Notifications {
	return &Notifications{notifications: notifications}
}

func (u *Notifications) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.notifications.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if id == uuid.Nil {
		return ErrNotificationNotFound
	}
	if err := u.notifications.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}
