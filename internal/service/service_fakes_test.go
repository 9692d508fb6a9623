package service

import (
	"context"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/contract"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer, shared by the service tests.

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(topic string, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*entity.Subscription

	// beforeCreate runs before the insert and createErr fails it; together
	// they simulate a concurrent writer winning the unique index.
	beforeCreate func()
	createErr    error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uuid.UUID]*entity.Subscription)}
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	if r.createErr != nil {
		return r.createErr
	}
	if sub.Id == uuid.Nil {
		sub.Id = uuid.New()
	}
	cp := *sub
	r.subs[sub.Id] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *entity.Subscription) error {
	cp := *sub
	r.subs[sub.Id] = &cp
	return nil
}

// FindOne understands the two specs the services use: ActiveForUser and ByID.
func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ActiveForUser:
			for _, sub := range r.subs {
				if sub.UserId == s.UserID && sub.Active && !sub.EndDate.Before(s.Now) {
					cp := *sub
					return &cp, nil
				}
			}
			return nil, nil
		case specification.ByID:
			if sub, ok := r.subs[s.ID]; ok {
				cp := *sub
				return &cp, nil
			}
			return nil, nil
		case specification.ByMidtransOrderId:
			for _, sub := range r.subs {
				if sub.MidtransOrderId != nil && *sub.MidtransOrderId == s.OrderID {
					cp := *sub
					return &cp, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	out := make([]*entity.Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		cp := *sub
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) IncrementUsage(ctx context.Context, id uuid.UUID, kind entity.PlanKind, limit int) (bool, error) {
	sub, ok := r.subs[id]
	if !ok {
		return false, nil
	}
	if kind == entity.PlanKindMeal {
		if sub.MealPlansGenerated >= limit {
			return false, nil
		}
		sub.MealPlansGenerated++
		return true, nil
	}
	if sub.WorkoutPlansGenerated >= limit {
		return false, nil
	}
	sub.WorkoutPlansGenerated++
	return true, nil
}

func (r *fakeSubscriptionRepo) MarkPremium(ctx context.Context, id uuid.UUID, periodEnd time.Time) error {
	if sub, ok := r.subs[id]; ok {
		sub.Plan = entity.PlanTierPremium
		sub.Active = true
		sub.EndDate = periodEnd
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u, ok := r.users[s.ID]; ok {
				cp := *u
				return &cp, nil
			}
			return nil, nil
		case specification.ByEmail:
			for _, u := range r.users {
				if u.Email == s.Email {
					cp := *u
					return &cp, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.TrainingSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.TrainingSession)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.TrainingSession) error {
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.TrainingSession) error {
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error) {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			if session, found := r.sessions[s.ID]; found {
				cp := *session
				return &cp, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error) {
	out := make([]*entity.TrainingSession, 0)
	for _, session := range r.sessions {
		matches := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByTrainer:
				if session.TrainerId != s.TrainerID {
					matches = false
				}
			case specification.UserOwnedBy:
				if session.UserId != s.UserID {
					matches = false
				}
			case specification.ByStatus:
				if string(session.Status) != s.Status {
					matches = false
				}
			}
		}
		if matches {
			cp := *session
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	if n.Id == uuid.Nil {
		n.Id = uuid.New()
	}
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	out := make([]*entity.Notification, 0)
	for _, n := range r.notifications {
		matches := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.UserOwnedBy:
				if n.UserId != s.UserID {
					matches = false
				}
			case specification.ByID:
				if n.Id != s.ID {
					matches = false
				}
			}
		}
		if matches {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	for _, n := range r.notifications {
		if n.Id == id {
			n.IsRead = true
		}
	}
	return nil
}

// fakeUnitOfWork satisfies unitofwork.UnitOfWork over the in-memory repos.
type fakeUnitOfWork struct {
	users         *fakeUserRepo
	subscriptions *fakeSubscriptionRepo
	sessions      *fakeSessionRepo
	notifications *fakeNotificationRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func (u *fakeUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return u.subscriptions
}

func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return u.sessions
}

func (u *fakeUnitOfWork) NotificationRepository() contract.NotificationRepository {
	return u.notifications
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			users:         newFakeUserRepo(),
			subscriptions: newFakeSubscriptionRepo(),
			sessions:      newFakeSessionRepo(),
			notifications: &fakeNotificationRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
