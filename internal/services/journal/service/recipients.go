package service

import (
	"context"

	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/validate"
	dom "sayitanyway/internal/services/journal/domain"
)

// AddRecipient validates in and appends a new recipient.
// Marking it default clears the flag on every other recipient
func (s *Svc) AddRecipient(ctx context.Context, in dom.RecipientInput) (dom.Recipient, error) {
	if err := validate.Struct(in); err != nil {
		return dom.Recipient{}, perr.WithOp(err, "journal.add_recipient")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.store.Recipients(ctx)
	if err != nil {
		return dom.Recipient{}, err
	}
	r := in.Apply(dom.Recipient{ID: s.newID()})
	if r.IsDefault {
		clearDefault(rs)
	}
	rs = append(rs, r)
	if err := s.store.SaveRecipients(ctx, rs); err != nil {
		return dom.Recipient{}, err
	}
	s.log.Info().Str("recipient_id", r.ID).Msg("recipient added")
	return r, nil
}

// UpdateRecipient replaces the editable fields of recipient id
func (s *Svc) UpdateRecipient(ctx context.Context, id string, in dom.RecipientInput) (dom.Recipient, error) {
	if err := validate.Struct(in); err != nil {
		return dom.Recipient{}, perr.WithOp(err, "journal.update_recipient")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.store.Recipients(ctx)
	if err != nil {
		return dom.Recipient{}, err
	}
	i := indexRecipient(rs, id)
	if i < 0 {
		return dom.Recipient{}, recipientNotFound(id)
	}
	if in.IsDefault {
		clearDefault(rs)
	}
	rs[i] = in.Apply(rs[i])
	if err := s.store.SaveRecipients(ctx, rs); err != nil {
		return dom.Recipient{}, err
	}
	s.log.Debug().Str("recipient_id", id).Msg("recipient updated")
	return rs[i], nil
}

// DeleteRecipient removes recipient id and every message addressed to them
func (s *Svc) DeleteRecipient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.store.Recipients(ctx)
	if err != nil {
		return err
	}
	i := indexRecipient(rs, id)
	if i < 0 {
		return recipientNotFound(id)
	}
	ms, err := s.store.Messages(ctx)
	if err != nil {
		return err
	}

	kept := ms[:0:0]
	for _, m := range ms {
		if m.RecipientID != id {
			kept = append(kept, m)
		}
	}
	// messages first so a failure never leaves orphans behind a missing recipient
	if err := s.store.SaveMessages(ctx, kept); err != nil {
		return err
	}
	if err := s.store.SaveRecipients(ctx, append(rs[:i:i], rs[i+1:]...)); err != nil {
		return err
	}
	s.log.Info().Str("recipient_id", id).Int("messages_removed", len(ms)-len(kept)).Msg("recipient deleted")
	return nil
}

// GetRecipient returns recipient id or a not found error
func (s *Svc) GetRecipient(ctx context.Context, id string) (dom.Recipient, error) {
	rs, err := s.store.Recipients(ctx)
	if err != nil {
		return dom.Recipient{}, err
	}
	i := indexRecipient(rs, id)
	if i < 0 {
		return dom.Recipient{}, recipientNotFound(id)
	}
	return rs[i], nil
}

// ListRecipients returns recipients in the order they were added
func (s *Svc) ListRecipients(ctx context.Context) ([]dom.Recipient, error) {
	return s.store.Recipients(ctx)
}

func indexRecipient(rs []dom.Recipient, id string) int {
	for i := range rs {
		if rs[i].ID == id {
			return i
		}
	}
	return -1
}

func clearDefault(rs []dom.Recipient) {
	for i := range rs {
		rs[i].IsDefault = false
	}
}

func recipientNotFound(id string) error {
	return perr.WithField(perr.NotFoundf("recipient %s not found", id), "recipientId")
}
