package module

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"sayitanyway/internal/adapters/transcribe"
	"sayitanyway/internal/modkit"
	"sayitanyway/internal/modkit/module"
	"sayitanyway/internal/platform/config"
	"sayitanyway/internal/platform/logger"
	blobrepo "sayitanyway/internal/services/blobs/repo"
	dom "sayitanyway/internal/services/journal/domain"
	rtmod "sayitanyway/internal/services/recordingtime/module"
)

func TestNew_DefaultsScreenerAndTranscriber(t *testing.T) {
	deps := modkit.Deps{Log: logger.Nop(), Cfg: config.New()}.WithBlobs(blobrepo.NewMemory())
	ledger := module.MustPortsOf[rtmod.Ports](rtmod.New(deps)).Ledger

	m := New(deps, modkit.WithPorts(dom.Needs{Ledger: ledger}))
	require.Equal(t, "journal", m.Name())
	j := module.MustPortsOf[Ports](m).Journal

	ctx := context.Background()
	r, err := j.AddRecipient(ctx, dom.RecipientInput{Name: "Grandpa"})
	require.NoError(t, err)

	res, err := j.Compose(ctx, dom.ComposeInput{RecipientID: r.ID, Type: dom.MessageAudio, AudioURI: "file:///a.m4a", DurationSeconds: 30})
	require.NoError(t, err)
	require.Equal(t, transcribe.PlaceholderTranscript, res.Message.Transcript)
	require.Len(t, res.Message.ID, 36)

	total, err := ledger.GetTotalRecordingTime(ctx)
	require.NoError(t, err)
	require.Equal(t, 270, total)
}
