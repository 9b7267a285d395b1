package service

import (
	"context"
	"sort"

	perr "sayitanyway/internal/platform/errors"
	dom "sayitanyway/internal/services/journal/domain"
)

// ListMessages returns a recipient's messages newest first
func (s *Svc) ListMessages(ctx context.Context, recipientID string, includeHidden bool) ([]dom.Message, error) {
	ms, err := s.store.Messages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dom.Message, 0, len(ms))
	for _, m := range ms {
		if m.RecipientID != recipientID || (m.IsHidden && !includeHidden) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

// HideMessage sets or clears the hidden flag
func (s *Svc) HideMessage(ctx context.Context, id string, hidden bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms, err := s.store.Messages(ctx)
	if err != nil {
		return err
	}
	i := indexMessage(ms, id)
	if i < 0 {
		return messageNotFound(id)
	}
	ms[i].IsHidden = hidden
	if err := s.store.SaveMessages(ctx, ms); err != nil {
		return err
	}
	s.log.Debug().Str("message_id", id).Bool("hidden", hidden).Msg("message visibility changed")
	return nil
}

// DeleteMessage removes message id. Recording time spent on it is not refunded
func (s *Svc) DeleteMessage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms, err := s.store.Messages(ctx)
	if err != nil {
		return err
	}
	i := indexMessage(ms, id)
	if i < 0 {
		return messageNotFound(id)
	}
	if err := s.store.SaveMessages(ctx, append(ms[:i:i], ms[i+1:]...)); err != nil {
		return err
	}
	s.log.Info().Str("message_id", id).Msg("message deleted")
	return nil
}

func indexMessage(ms []dom.Message, id string) int {
	for i := range ms {
		if ms[i].ID == id {
			return i
		}
	}
	return -1
}

func messageNotFound(id string) error {
	return perr.WithField(perr.NotFoundf("message %s not found", id), "messageId")
}
