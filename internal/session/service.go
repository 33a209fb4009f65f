package session

import (
	"context"
	"time"

	"github.com/aurodavid1986/ordering-app/internal/order"

	"go.uber.org/zap"
)

type Service struct {
	repo     Repository
	catalog  order.Catalog
	flowOpts []order.Option
	now      func() time.Time
	log      *zap.Logger
}

func NewService(
	repo Repository,
	catalog order.Catalog,
	log *zap.Logger,
	flowOpts ...order.Option,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		catalog:  catalog,
		flowOpts: append([]order.Option{order.WithLogger(log)}, flowOpts...),
		now:      time.Now,
		log:      log,
	}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (s *Service) Start() (*Session, error) {
	now := s.now()
	sess := &Session{
		Flow:      order.NewFlow(s.catalog, s.flowOpts...),
		CreatedAt: now,
	}
	sess.touch(now)

	if err := s.repo.Save(sess); err != nil {
		return nil, err
	}

	s.log.Info("session started", zap.String("session_id", sess.ID))
	return sess, nil
}

func (s *Service) End(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.Info("session ended", zap.String("session_id", id))
	return nil
}

// Sweep drops sessions idle for longer than maxIdle.
func (s *Service) Sweep(maxIdle time.Duration) int {
	removed := s.repo.Sweep(s.now().Add(-maxIdle))
	if removed > 0 {
		s.log.Info("idle sessions swept",
			zap.Int("removed", removed),
			zap.Int("remaining", s.repo.Count()))
	}
	return removed
}

// do runs fn against the session's flow while holding its lock and
// returns the view as it stands afterwards, even when fn failed.
func (s *Service) do(id string, fn func(f *order.Flow) error) (order.View, error) {
	sess, err := s.repo.Get(id)
	if err != nil {
		return order.View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.touch(s.now())
	err = fn(sess.Flow)
	return sess.Flow.View(), err
}

// --------------------------------------------------
// Wizard operations
// --------------------------------------------------

func (s *Service) View(id string) (order.View, error) {
	return s.do(id, func(*order.Flow) error { return nil })
}

func (s *Service) SelectDate(id, date string) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.SelectDate(date) })
}

func (s *Service) ToggleItem(id string, itemID int) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.ToggleItem(itemID) })
}

func (s *Service) SetQuantity(id string, itemID, quantity int) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.SetQuantity(itemID, quantity) })
}

func (s *Service) Increment(id string, itemID int) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.Increment(itemID) })
}

func (s *Service) Decrement(id string, itemID int) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.Decrement(itemID) })
}

func (s *Service) SetField(id string, field order.Field, value string) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.SetField(field, value) })
}

func (s *Service) SetCard(id string, card order.Card) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.SetCard(card) })
}

func (s *Service) Next(ctx context.Context, id string) (order.View, error) {
	return s.do(id, func(f *order.Flow) error {
		from := f.Step()
		if err := f.Next(ctx); err != nil {
			s.logRefused(id, "next", from, err)
			return err
		}

		fields := []zap.Field{
			zap.String("session_id", id),
			zap.Stringer("from", from),
			zap.Stringer("to", f.Step()),
		}
		if f.Step() == order.StepConfirmed {
			v := f.View()
			fields = append(fields,
				zap.String("order_number", v.Confirmation.OrderNumber),
				zap.Int("total", v.Confirmation.Total))
		}
		s.log.Info("step advanced", fields...)
		return nil
	})
}

func (s *Service) Back(id string) (order.View, error) {
	return s.do(id, func(f *order.Flow) error {
		from := f.Step()
		if err := f.Back(); err != nil {
			s.logRefused(id, "back", from, err)
			return err
		}
		s.log.Info("step retreated",
			zap.String("session_id", id),
			zap.Stringer("from", from),
			zap.Stringer("to", f.Step()))
		return nil
	})
}

func (s *Service) ExportCalendar(ctx context.Context, id string) (order.View, error) {
	return s.do(id, func(f *order.Flow) error { return f.ExportCalendar(ctx) })
}

func (s *Service) logRefused(id, action string, from order.Step, err error) {
	reason, _ := order.ReasonOf(err)
	fields := []zap.Field{
		zap.String("session_id", id),
		zap.String("action", action),
		zap.Stringer("step", from),
		zap.String("reason", string(reason)),
	}

	if reason == order.ReasonPaymentDeclined {
		s.log.Warn("transition refused", append(fields, zap.Error(err))...)
		return
	}
	s.log.Debug("transition refused", fields...)
}
