package service

import (
	"context"

	"sayitanyway/internal/core/langhint"
	"sayitanyway/internal/core/quota"
	"sayitanyway/internal/core/screening"
	perr "sayitanyway/internal/platform/errors"
	pstrings "sayitanyway/internal/platform/strings"
	"sayitanyway/internal/platform/validate"
	dom "sayitanyway/internal/services/journal/domain"
)

// Compose saves a message to a recipient.
//
// Audio costs its duration in recording seconds and is charged before the
// message is written; a balance that cannot cover it blocks the save with
// ErrorCodeInsufficientTime. Text is free. Content is screened after charging
// and a flagged verdict never blocks the save, it only sets RedirectToSupport
func (s *Svc) Compose(ctx context.Context, in dom.ComposeInput) (dom.ComposeResult, error) {
	if err := validate.Struct(in); err != nil {
		return dom.ComposeResult{}, perr.WithOp(err, "journal.compose")
	}
	if in.Type == dom.MessageText && pstrings.IsBlank(in.Text) {
		return dom.ComposeResult{}, perr.WithOp(perr.WithField(perr.New(perr.ErrorCodeValidation, "text must not be blank"), "text"), "journal.compose")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.store.Recipients(ctx)
	if err != nil {
		return dom.ComposeResult{}, err
	}
	ri := indexRecipient(rs, in.RecipientID)
	if ri < 0 {
		return dom.ComposeResult{}, recipientNotFound(in.RecipientID)
	}

	now := s.now().UnixMilli()
	msg := dom.Message{
		ID:                  s.newID(),
		RecipientID:         in.RecipientID,
		Timestamp:           now,
		Type:                in.Type,
		TranscriptionStatus: dom.TranscriptionNone,
	}

	content := in.Text
	switch in.Type {
	case dom.MessageText:
		msg.TextContent = in.Text
	case dom.MessageAudio:
		if err := s.charge(ctx, in.DurationSeconds); err != nil {
			return dom.ComposeResult{}, err
		}
		msg.AudioURI = in.AudioURI
		msg.AudioDuration = in.DurationSeconds
		msg.Transcript, msg.TranscriptionStatus, msg.TranscriptionError = s.transcribe(ctx, in)
		content = msg.Transcript
	}

	verdict := s.screener().Screen(content)
	hint := langhint.Detect(content)

	ms, err := s.store.Messages(ctx)
	if err != nil {
		return dom.ComposeResult{}, err
	}
	if err := s.store.SaveMessages(ctx, append(ms, msg)); err != nil {
		return dom.ComposeResult{}, err
	}
	rs[ri].LastMessageAt = now
	if err := s.store.SaveRecipients(ctx, rs); err != nil {
		return dom.ComposeResult{}, err
	}

	ev := s.log.Info()
	if verdict.IsFlagged {
		ev = s.log.Warn()
	}
	ev.Str("message_id", msg.ID).
		Str("type", string(msg.Type)).
		Bool("flagged", verdict.IsFlagged).
		Str("confidence", string(verdict.Confidence)).
		Int("matched", len(verdict.MatchedPatterns)).
		Str("script", hint.Script).
		Msg("message saved")
	if !hint.Latin() {
		s.log.Debug().Str("script", hint.Script).Str("lang", hint.Lang).Msg("screening rules do not cover this script")
	}

	return dom.ComposeResult{
		Message:           msg,
		Screening:         verdict,
		RedirectToSupport: verdict.IsFlagged,
		Language:          hint,
	}, nil
}

// charge must be called with mu held
func (s *Svc) charge(ctx context.Context, seconds int) error {
	if s.needs.Ledger == nil {
		return perr.New(perr.ErrorCodeUnknown, "journal: no ledger wired for audio messages")
	}
	ok, err := s.needs.Ledger.HasRecordingTime(ctx, seconds)
	if err != nil {
		return err
	}
	if ok {
		ok, err = s.needs.Ledger.DeductRecordingTime(ctx, seconds)
		if err != nil {
			return err
		}
	}
	if !ok {
		avail, err := s.needs.Ledger.GetTotalRecordingTime(ctx)
		if err != nil {
			return err
		}
		s.log.Info().Int("requested", seconds).Int("available", avail).Msg("audio blocked, not enough recording time")
		return perr.WithField(perr.InsufficientTimef("recording needs %s but only %s is available",
			quota.FormatSeconds(seconds), quota.FormatSeconds(avail)), "durationSeconds")
	}
	return nil
}

func (s *Svc) transcribe(ctx context.Context, in dom.ComposeInput) (string, dom.TranscriptionStatus, string) {
	if s.needs.Transcriber == nil {
		return "", dom.TranscriptionPending, ""
	}
	text, err := s.needs.Transcriber.Transcribe(ctx, in.AudioURI, in.DurationSeconds)
	if err != nil {
		s.log.Warn().Err(err).Msg("transcription failed")
		return "", dom.TranscriptionFailed, err.Error()
	}
	return text, dom.TranscriptionCompleted, ""
}

func (s *Svc) screener() screening.Screener {
	if s.needs.Screener != nil {
		return s.needs.Screener
	}
	return screening.Default()
}
