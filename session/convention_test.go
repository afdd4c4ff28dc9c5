package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/wsession/codec"
)

func TestSendDefaultsMediaType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType codec.MediaType
		expected  codec.MediaType
	}{
		{
			name:     "Zero media type resolves to default",
			expected: codec.Default,
		},
		{
			name:      "Explicit media type passes through",
			mediaType: codec.TextPlain,
			expected:  codec.TextPlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSession("a", nil)

			msg, err := waitFuture(t, SendAsync(s, "hello", tt.mediaType))
			require.NoError(t, err)
			assert.Equal(t, "hello", msg, "completion carries the original message")

			sent := s.sentMessages()
			require.Len(t, sent, 1)
			assert.Equal(t, tt.expected, sent[0].mediaType)
		})
	}
}

func TestSendProducerEquivalent(t *testing.T) {
	s := newFakeSession("a", nil)

	fut := ToFuture(Send(s, "hello", ""), "hello")
	msg, err := waitFuture(t, fut)
	require.NoError(t, err)
	assert.Equal(t, "hello", msg)

	sent := s.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, codec.Default, sent[0].mediaType)
}

func TestSendAndSendAsyncAreIndependentTransmissions(t *testing.T) {
	s := newFakeSession("a", nil)

	_, err := waitFuture(t, SendAsync(s, "m", codec.TextPlain))
	require.NoError(t, err)
	_, err = waitFuture(t, ToFuture(Send(s, "m", codec.TextPlain), "m"))
	require.NoError(t, err)

	assert.Len(t, s.sentMessages(), 2)
}

func TestSendSync(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := newFakeSession("a", nil)
		require.NoError(t, SendSync(context.Background(), s, "hello", ""))
		assert.Len(t, s.sentMessages(), 1)
	})

	t.Run("Failure wraps the cause", func(t *testing.T) {
		s := newFakeSession("a", nil)
		cause := errors.New("connection reset")
		s.failSends(cause)

		err := SendSync(context.Background(), s, "hello", "")
		require.Error(t, err)

		var sessErr *Error
		require.ErrorAs(t, err, &sessErr)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "send failure")
		assert.Contains(t, err.Error(), cause.Error())
	})

	t.Run("Interrupted wait", func(t *testing.T) {
		s := newFakeSession("a", nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := SendSync(ctx, s, "hello", "")
		require.Error(t, err)

		var sessErr *Error
		require.ErrorAs(t, err, &sessErr)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "send interrupted")
	})
}

func TestBroadcastDefaults(t *testing.T) {
	tests := []struct {
		name       string
		mediaType  codec.MediaType
		filter     func(exclude Session) Filter
		wantMedia  codec.MediaType
		wantPeerAB bool
		wantPeerC  bool
	}{
		{
			name:       "Nil filter and zero media type",
			wantMedia:  codec.Default,
			wantPeerAB: true,
			wantPeerC:  true,
		},
		{
			name:       "Explicit media type with nil filter",
			mediaType:  codec.TextPlain,
			wantMedia:  codec.TextPlain,
			wantPeerAB: true,
			wantPeerC:  true,
		},
		{
			name:       "Zero media type with filter",
			filter:     func(exclude Session) Filter { return Exclude(exclude) },
			wantMedia:  codec.Default,
			wantPeerAB: true,
			wantPeerC:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			a := newFakeSession("a", reg)
			b := newFakeSession("b", reg)
			c := newFakeSession("c", reg)

			var filter Filter
			if tt.filter != nil {
				filter = tt.filter(c)
			}

			msg, err := waitFuture(t, BroadcastAsync(a, "ping", tt.mediaType, filter))
			require.NoError(t, err)
			assert.Equal(t, "ping", msg)

			for _, peer := range []*fakeSession{a, b} {
				sent := peer.sentMessages()
				if assert.Len(t, sent, 1, "peer %s", peer.ID()) {
					assert.Equal(t, tt.wantMedia, sent[0].mediaType)
				}
			}

			if tt.wantPeerC {
				assert.Len(t, c.sentMessages(), 1)
			} else {
				assert.Empty(t, c.sentMessages())
			}
		})
	}
}

func TestBroadcastOnClientDegeneratesToSend(t *testing.T) {
	s := newFakeSession("client", nil)

	msg, err := waitFuture(t, BroadcastAsync(s, "hi", "", nil))
	require.NoError(t, err)
	assert.Equal(t, "hi", msg)
	assert.Len(t, s.sentMessages(), 1)
}

func TestBroadcastSync(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		reg := NewRegistry()
		a := newFakeSession("a", reg)
		b := newFakeSession("b", reg)

		require.NoError(t, BroadcastSync(context.Background(), a, "ping", "", nil))
		assert.Len(t, a.sentMessages(), 1)
		assert.Len(t, b.sentMessages(), 1)
	})

	t.Run("Aggregate failure wraps the first cause", func(t *testing.T) {
		reg := NewRegistry()
		a := newFakeSession("a", reg)
		b := newFakeSession("b", reg)

		cause := errors.New("peer b reset")
		b.failSends(cause)

		err := BroadcastSync(context.Background(), a, "ping", "", nil)
		require.Error(t, err)

		var sessErr *Error
		require.ErrorAs(t, err, &sessErr)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "broadcast failure")

		// the healthy peer still got its copy
		assert.Len(t, a.sentMessages(), 1)
	})

	t.Run("Interrupted wait", func(t *testing.T) {
		reg := NewRegistry()
		a := newFakeSession("a", reg)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := BroadcastSync(ctx, a, "ping", "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broadcast interrupted")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBroadcastAsyncCancelStopsAwaiting(t *testing.T) {
	reg := NewRegistry()
	a := newFakeSession("a", reg)
	newFakeSession("b", reg)

	fut := BroadcastAsync(a, "ping", "", nil)
	fut.Cancel()

	_, err := waitFuture(t, fut)
	// cancellation either won the race or the broadcast had already resolved
	if err != nil {
		assert.ErrorIs(t, err, ErrCanceled)
	}
}
