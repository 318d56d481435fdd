package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
)

type fakeMessenger struct {
	name     string
	err      error
	texts    []string
	payloads []map[string]any
}

func (f *fakeMessenger) Name() string { return f.name }

func (f *fakeMessenger) SendMessage(_ context.Context, text string, payload map[string]any) error {
	f.texts = append(f.texts, text)
	f.payloads = append(f.payloads, payload)
	return f.err
}

func TestTruncate_LongText(t *testing.T) {
	text := strings.Repeat("a", 5000)

	got := Truncate(text)
	assert.Equal(t, 4096+utf8.RuneCountInString(truncationMarker), utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.Equal(t, strings.Repeat("a", 4096), strings.TrimSuffix(got, truncationMarker))
}

func TestTruncate_CountsRunesNotBytes(t *testing.T) {
	// 5000 two-byte runes must be cut to 4096 runes, not 4096 bytes.
	text := strings.Repeat("я", 5000)

	got := Truncate(text)
	assert.Equal(t, 4096+utf8.RuneCountInString(truncationMarker), utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, truncationMarker))
}

func TestTruncate_ShortTextUntouched(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello"))
	exact := strings.Repeat("b", 4096)
	assert.Equal(t, exact, Truncate(exact))
}

func TestDeliver_FanOut(t *testing.T) {
	vk := &fakeMessenger{name: "vk"}
	tg := &fakeMessenger{name: "telegram"}
	d := NewDispatcher(zap.NewNop(), vk, tg)

	n := domain.Notification{
		Text:    "hello",
		Payload: map[string]any{"type": "post", "key": "new_wall_post"},
	}
	d.Deliver(context.Background(), n)

	require.Len(t, vk.texts, 1)
	require.Len(t, tg.texts, 1)
	assert.Equal(t, "hello", vk.texts[0])
	assert.Equal(t, n.Payload, vk.payloads[0])
}

func TestDeliver_FailureDoesNotStopOthers(t *testing.T) {
	failing := &fakeMessenger{name: "vk", err: errors.New("boom")}
	tg := &fakeMessenger{name: "telegram"}
	d := NewDispatcher(zap.NewNop(), failing, tg)

	d.Deliver(context.Background(), domain.Notification{Text: "hello"})

	assert.Len(t, failing.texts, 1)
	assert.Len(t, tg.texts, 1)
}

func TestDeliver_EnforcesCap(t *testing.T) {
	m := &fakeMessenger{name: "vk"}
	d := NewDispatcher(zap.NewNop(), m)

	d.Deliver(context.Background(), domain.Notification{Text: strings.Repeat("x", 5000)})

	require.Len(t, m.texts, 1)
	assert.Equal(t, 4096+utf8.RuneCountInString(truncationMarker), utf8.RuneCountInString(m.texts[0]))
}
