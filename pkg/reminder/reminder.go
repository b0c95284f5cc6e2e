// Package reminder logs a morning digest of each user's open tasks.
package reminder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"farmmate/entities"
	"farmmate/pkg/logx"
	"farmmate/pkg/schedule"
)

// DueLister returns every user's incomplete tasks on a date.
type DueLister interface {
	DueOn(ctx context.Context, date string) ([]entities.Task, error)
}

type Digest struct {
	UserID string
	Date   string
	Titles []string
}

type Service struct {
	mu     sync.Mutex
	tasks  DueLister
	log    logx.Logger
	loc    *time.Location
	expr   string
	parser cron.Parser
	c      *cron.Cron
}

func New(tasks DueLister, expr string, loc *time.Location, log logx.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		tasks:  tasks,
		log:    log,
		loc:    loc,
		expr:   expr,
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

// Start registers the digest job. An empty expression leaves the reminder off.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c != nil || s.expr == "" {
		return nil
	}
	sched, err := s.parser.Parse(s.expr)
	if err != nil {
		return fmt.Errorf("reminder schedule %q: %w", s.expr, err)
	}
	s.c = cron.New(cron.WithParser(s.parser), cron.WithLocation(s.loc))
	s.c.Schedule(sched, cron.FuncJob(func() {
		if _, err := s.RunOnce(ctx, time.Now()); err != nil {
			s.log.Error("reminder run failed", logx.Err(err))
		}
	}))
	s.c.Start()
	s.log.Info("reminder started", logx.String("expr", s.expr), logx.String("tz", s.loc.String()))
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c == nil {
		return
	}
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
	}
	s.c = nil
}

// RunOnce builds and logs the digests for the local day of now.
func (s *Service) RunOnce(ctx context.Context, now time.Time) ([]Digest, error) {
	date := schedule.Today(now, s.loc)
	due, err := s.tasks.DueOn(ctx, date)
	if err != nil {
		return nil, err
	}
	digests := Group(date, due)
	for _, d := range digests {
		s.log.Info("tasks due today",
			logx.String("uid", d.UserID),
			logx.String("date", d.Date),
			logx.Int("count", len(d.Titles)),
			logx.Strings("titles", d.Titles),
		)
	}
	return digests, nil
}

// Group collects task titles per user, users sorted by id.
func Group(date string, tasks []entities.Task) []Digest {
	byUser := map[string][]string{}
	for _, t := range tasks {
		byUser[t.UserID] = append(byUser[t.UserID], t.Title)
	}
	out := make([]Digest, 0, len(byUser))
	for uid, titles := range byUser {
		out = append(out, Digest{UserID: uid, Date: date, Titles: titles})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
