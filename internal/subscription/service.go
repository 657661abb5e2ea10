package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"cuotas/internal/logger"
	"cuotas/internal/metrics"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReceiptNotFound = errors.New("receipt not found")
)

// Forgetter drops display state kept for a deleted subscription.
type Forgetter interface {
	Forget(ctx context.Context, subscriptionID int64) error
}

// View is a subscription with its derived figures.
type View struct {
	Subscription
	Summary Summary `json:"summary"`
}

type Service interface {
	List(ctx context.Context) ([]View, error)
	Get(ctx context.Context, id int64) (*View, error)
	Create(ctx context.Context, in SubscriptionInput) (*View, error)
	Update(ctx context.Context, id int64, in SubscriptionInput) (*View, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) ([]View, error)
	Restore(ctx context.Context, snapshot []Subscription) ([]View, error)

	AddMember(ctx context.Context, subID int64, in MemberInput) (*Member, error)
	UpdateMember(ctx context.Context, subID int64, memberID string, in MemberInput) (*Member, error)
	RemoveMember(ctx context.Context, subID int64, memberID string) error
	SetMemberPaid(ctx context.Context, subID int64, memberID string, paid bool) (*Member, error)

	AddComment(ctx context.Context, subID int64, memberID, text string) (*Member, error)
	EditComment(ctx context.Context, subID int64, memberID string, index int, text string) (*Member, error)
	DeleteComment(ctx context.Context, subID int64, memberID string, index int) (*Member, error)
	AddReceipt(ctx context.Context, subID int64, memberID, image string) (*Member, error)
	RemoveReceipt(ctx context.Context, subID int64, memberID string, index int) (*Member, error)

	Pricing() Pricing
	Count(ctx context.Context) (int, error)
}

type service struct {
	store   Store
	session *Session
	pricing Pricing
	prefs   Forgetter

	// mu serializes read-modify-write sequences issued by this process.
	mu sync.Mutex
}

// NewService wires the tracker use cases. prefs may be nil.
func NewService(store Store, session *Session, pricing Pricing, prefs Forgetter) Service {
	return &service{
		store:   store,
		session: session,
		pricing: pricing,
		prefs:   prefs,
	}
}

func (s *service) Pricing() Pricing {
	return s.pricing
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func (s *service) view(sub Subscription) View {
	return View{Subscription: sub, Summary: s.pricing.Summarize(sub)}
}

func (s *service) views(subs []Subscription) []View {
	out := make([]View, 0, len(subs))
	for _, sub := range subs {
		out = append(out, s.view(sub))
	}
	return out
}

// refresh reloads the session after a write. The write already succeeded,
// so a failed reload is logged and the cache stays stale.
func (s *service) refresh(ctx context.Context) {
	if err := s.session.Refresh(ctx); err != nil {
		metrics.RecordStoreError("list")
		logger.Warn("session refresh failed", "error", err)
		return
	}
	metrics.SetSessionSize(s.session.Len())
}

func (s *service) List(ctx context.Context) ([]View, error) {
	if !s.session.Loaded() {
		if err := s.session.Refresh(ctx); err != nil {
			metrics.RecordStoreError("list")
			return nil, err
		}
		metrics.SetSessionSize(s.session.Len())
	}
	return s.views(s.session.Subscriptions()), nil
}

func (s *service) Get(ctx context.Context, id int64) (*View, error) {
	if sub, ok := s.session.Find(id); ok {
		v := s.view(sub)
		return &v, nil
	}
	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*sub)
	return &v, nil
}

func (s *service) Create(ctx context.Context, in SubscriptionInput) (*View, error) {
	sub := Subscription{
		Name:         in.Name,
		USDPrice:     in.USDPrice,
		TotalDebited: in.TotalDebited,
		Frequency:    in.Frequency,
		Members:      Members{},
	}
	if in.Logo != nil {
		sub.Logo = *in.Logo
	}
	sub.normalize()
	if err := validateSubscription(&sub); err != nil {
		return nil, err
	}
	s.defaultTotalDebited(&sub)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.Create(ctx, &sub)
	if err != nil {
		metrics.RecordStoreError("create")
		return nil, err
	}
	logger.Info("subscription created", "id", id, "name", sub.Name, "frequency", sub.Frequency)
	metrics.RecordSubscriptionCreated(string(sub.Frequency))

	s.refresh(ctx)
	if cached, ok := s.session.Find(id); ok {
		sub = cached
	}
	v := s.view(sub)
	return &v, nil
}

func (s *service) Update(ctx context.Context, id int64, in SubscriptionInput) (*View, error) {
	sub, err := s.mutate(ctx, id, "update", func(sub *Subscription) error {
		sub.Name = in.Name
		sub.USDPrice = in.USDPrice
		sub.TotalDebited = in.TotalDebited
		sub.Frequency = in.Frequency
		if in.Logo != nil {
			sub.Logo = *in.Logo
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	v := s.view(*sub)
	return &v, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, id); err != nil {
		metrics.RecordStoreError("remove")
		return err
	}
	logger.Info("subscription deleted", "id", id)
	metrics.RecordSubscriptionDeleted()

	s.forget(ctx, id)

	s.refresh(ctx)
	return nil
}

// defaultTotalDebited persists the converted price when no amount was given.
func (s *service) defaultTotalDebited(sub *Subscription) {
	if sub.TotalDebited == nil || *sub.TotalDebited == 0 {
		td, _ := s.pricing.GTQPrice(sub.USDPrice).Float64()
		sub.TotalDebited = &td
	}
}

// forget drops display state kept for a removed subscription. The removal
// already happened, so a failure is only logged.
func (s *service) forget(ctx context.Context, id int64) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.Forget(ctx, id); err != nil {
		logger.Warn("failed to forget display state", "id", id, "error", err)
	}
}

// Reorder persists a new order given as the full list of subscription ids.
func (s *service) Reorder(ctx context.Context, ids []int64) ([]View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.ListAll(ctx)
	if err != nil {
		metrics.RecordStoreError("list")
		return nil, err
	}
	if len(ids) != len(current) {
		return nil, invalid("ids", "permutation", fmt.Sprintf("ids must list all %d subscriptions exactly once", len(current)))
	}

	byID := make(map[int64]Subscription, len(current))
	for _, sub := range current {
		byID[sub.ID] = sub
	}
	ordered := make([]Subscription, 0, len(ids))
	for _, id := range ids {
		sub, ok := byID[id]
		if !ok {
			return nil, invalid("ids", "permutation", fmt.Sprintf("ids must list all %d subscriptions exactly once", len(current)))
		}
		delete(byID, id)
		ordered = append(ordered, sub)
	}

	return s.replaceAll(ctx, ordered)
}

// Restore replaces the whole collection with snapshot. Running it again
// with the same snapshot yields the same collection.
func (s *service) Restore(ctx context.Context, snapshot []Subscription) ([]View, error) {
	subs := make([]Subscription, len(snapshot))
	for i := range snapshot {
		subs[i] = snapshot[i].Clone()
		subs[i].normalize()
		if err := validateSubscription(&subs[i]); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.ListAll(ctx)
	if err != nil {
		metrics.RecordStoreError("list")
		return nil, err
	}
	known := make(map[int64]bool, len(current))
	for _, sub := range current {
		known[sub.ID] = true
	}
	for i := range subs {
		// Records deleted since the snapshot was taken come back as new rows.
		if !known[subs[i].ID] {
			subs[i].ID = 0
			s.defaultTotalDebited(&subs[i])
		}
		known[subs[i].ID] = false
	}

	views, err := s.replaceAll(ctx, subs)
	if err != nil {
		return nil, err
	}
	for _, sub := range current {
		if known[sub.ID] {
			s.forget(ctx, sub.ID)
		}
	}
	return views, nil
}

func (s *service) replaceAll(ctx context.Context, subs []Subscription) ([]View, error) {
	if err := s.store.ReorderAll(ctx, subs); err != nil {
		metrics.RecordStoreError("reorder")
		metrics.RecordReorder("failed")
		return nil, err
	}
	metrics.RecordReorder("ok")
	logger.Info("subscriptions reordered", "count", len(subs))

	s.refresh(ctx)
	return s.views(s.session.Subscriptions()), nil
}

// mutate loads the current record, applies fn and writes the whole record
// back. Validation runs after fn and before the write.
func (s *service) mutate(ctx context.Context, id int64, op string, fn func(*Subscription) error) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrSubscriptionNotFound) {
			metrics.RecordStoreError("get")
		}
		return nil, err
	}
	if err := fn(sub); err != nil {
		return nil, err
	}
	sub.normalize()
	if err := validateSubscription(sub); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, sub); err != nil {
		if !errors.Is(err, ErrSubscriptionNotFound) && !errors.Is(err, ErrVersionConflict) {
			metrics.RecordStoreError("update")
		}
		return nil, err
	}
	logger.Debug("subscription updated", "id", id, "op", op, "version", sub.Version)

	s.refresh(ctx)
	return sub, nil
}

// mutateMember applies fn to one member and returns the stored copy.
func (s *service) mutateMember(ctx context.Context, subID int64, memberID, op string, fn func(*Member) error) (*Member, error) {
	var out Member
	_, err := s.mutate(ctx, subID, op, func(sub *Subscription) error {
		i := sub.Members.index(memberID)
		if i < 0 {
			return ErrMemberNotFound
		}
		if err := fn(&sub.Members[i]); err != nil {
			return err
		}
		sub.Members[i].normalize()
		if err := validateMember(&sub.Members[i]); err != nil {
			return err
		}
		out = sub.Members[i].clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) AddMember(ctx context.Context, subID int64, in MemberInput) (*Member, error) {
	var m Member
	in.apply(&m)
	m.normalize()
	if err := validateMember(&m); err != nil {
		return nil, err
	}

	_, err := s.mutate(ctx, subID, "add_member", func(sub *Subscription) error {
		sub.Members = append(sub.Members, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordMemberChange("added")
	logger.Info("member added", "subscription_id", subID, "member_id", m.ID)
	return &m, nil
}

func (s *service) UpdateMember(ctx context.Context, subID int64, memberID string, in MemberInput) (*Member, error) {
	m, err := s.mutateMember(ctx, subID, memberID, "update_member", func(m *Member) error {
		in.apply(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordMemberChange("updated")
	return m, nil
}

func (s *service) RemoveMember(ctx context.Context, subID int64, memberID string) error {
	_, err := s.mutate(ctx, subID, "remove_member", func(sub *Subscription) error {
		i := sub.Members.index(memberID)
		if i < 0 {
			return ErrMemberNotFound
		}
		sub.Members = append(sub.Members[:i], sub.Members[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	metrics.RecordMemberChange("removed")
	logger.Info("member removed", "subscription_id", subID, "member_id", memberID)
	return nil
}

func (s *service) SetMemberPaid(ctx context.Context, subID int64, memberID string, paid bool) (*Member, error) {
	m, err := s.mutateMember(ctx, subID, memberID, "set_paid", func(m *Member) error {
		m.IsPaid = paid
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordMemberChange("payment_status")
	return m, nil
}

func commentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", invalid("text", "required", "text is required")
	}
	return text, nil
}

func (s *service) AddComment(ctx context.Context, subID int64, memberID, text string) (*Member, error) {
	text, err := commentText(text)
	if err != nil {
		return nil, err
	}
	return s.mutateMember(ctx, subID, memberID, "add_comment", func(m *Member) error {
		m.Comments = append(m.Comments, text)
		return nil
	})
}

func (s *service) EditComment(ctx context.Context, subID int64, memberID string, index int, text string) (*Member, error) {
	text, err := commentText(text)
	if err != nil {
		return nil, err
	}
	return s.mutateMember(ctx, subID, memberID, "edit_comment", func(m *Member) error {
		if index < 0 || index >= len(m.Comments) {
			return ErrCommentNotFound
		}
		m.Comments[index] = text
		return nil
	})
}

func (s *service) DeleteComment(ctx context.Context, subID int64, memberID string, index int) (*Member, error) {
	return s.mutateMember(ctx, subID, memberID, "delete_comment", func(m *Member) error {
		if index < 0 || index >= len(m.Comments) {
			return ErrCommentNotFound
		}
		m.Comments = append(m.Comments[:index], m.Comments[index+1:]...)
		return nil
	})
}

func (s *service) AddReceipt(ctx context.Context, subID int64, memberID, image string) (*Member, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return nil, invalid("image", "required", "image is required")
	}
	return s.mutateMember(ctx, subID, memberID, "add_receipt", func(m *Member) error {
		m.ReceiptImages = append(m.ReceiptImages, image)
		return nil
	})
}

func (s *service) RemoveReceipt(ctx context.Context, subID int64, memberID string, index int) (*Member, error) {
	return s.mutateMember(ctx, subID, memberID, "remove_receipt", func(m *Member) error {
		if index < 0 || index >= len(m.ReceiptImages) {
			return ErrReceiptNotFound
		}
		m.ReceiptImages = append(m.ReceiptImages[:index], m.ReceiptImages[index+1:]...)
		return nil
	})
}
