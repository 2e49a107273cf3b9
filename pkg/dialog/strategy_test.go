package dialog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-assistant-be/internal/pkg/logger"
)

type fakeProvider struct {
	reply    string
	failWith error
	prompts  []string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.failWith != nil {
		return "", f.failWith
	}
	return f.reply, nil
}

func TestFreeformRespond(t *testing.T) {
	t.Run("passes prompt through and appends reply", func(t *testing.T) {
		provider := &fakeProvider{reply: "We stock three laptop models."}
		strategy := NewFreeformStrategy(provider, logger.NewNopLogger(), time.Second, 0)
		session := NewSession(ModeFreeform)

		reply, err := strategy.Respond(context.Background(), session, "what laptops do you sell?")

		require.NoError(t, err)
		assert.Equal(t, "We stock three laptop models.", reply.Text)
		assert.Equal(t, []string{"what laptops do you sell?"}, provider.prompts)

		// Stage machine untouched
		assert.Equal(t, StageInitial, session.Stage)
		require.Len(t, session.History, 2)
	})

	t.Run("model failure becomes an inline error message", func(t *testing.T) {
		provider := &fakeProvider{failWith: errors.New("quota exceeded")}
		strategy := NewFreeformStrategy(provider, logger.NewNopLogger(), time.Second, 0)
		session := NewSession(ModeFreeform)

		reply, err := strategy.Respond(context.Background(), session, "hello")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(reply.Text, ErrorPrefix))
		assert.False(t, session.Busy)
	})

	t.Run("busy session rejects input", func(t *testing.T) {
		strategy := NewFreeformStrategy(&fakeProvider{}, logger.NewNopLogger(), time.Second, 0)
		session := NewSession(ModeFreeform)
		session.Busy = true

		_, err := strategy.Respond(context.Background(), session, "hello")
		assert.ErrorIs(t, err, ErrSessionBusy)
	})

	t.Run("concurrent input while the model call is in flight is rejected", func(t *testing.T) {
		provider := &blockingProvider{entered: make(chan struct{}), release: make(chan struct{})}
		strategy := NewFreeformStrategy(provider, logger.NewNopLogger(), time.Second, 0)
		session := NewSession(ModeFreeform)

		done := make(chan error, 1)
		go func() {
			_, err := strategy.Respond(context.Background(), session, "first")
			done <- err
		}()
		<-provider.entered

		_, err := strategy.Respond(context.Background(), session, "second")
		assert.ErrorIs(t, err, ErrSessionBusy)

		close(provider.release)
		require.NoError(t, <-done)
		assert.False(t, session.IsBusy())
	})
}

// blockingProvider parks inside Generate until released.
type blockingProvider struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingProvider) Generate(ctx context.Context, prompt string) (string, error) {
	b.entered <- struct{}{}
	<-b.release
	return "done", nil
}
