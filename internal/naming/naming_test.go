package naming

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
)

var palette = []string{"#ac4ef9", "#f94ef0", "#f94e9b", "#f9564e", "#f9ac4e"}

type stubNamer struct {
	name string
	err  error
}

func (s stubNamer) Name(context.Context, []string) (string, error) {
	return s.name, s.err
}

type blockingNamer struct{}

func (blockingNamer) Name(ctx context.Context, _ []string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		namer   Namer
		want    string
		wantErr bool
	}{
		{name: "plain answer", namer: stubNamer{name: "Sunset Bloom"}, want: "Sunset Bloom"},
		{name: "quotes are stripped", namer: stubNamer{name: "  \"Sunset 'Bloom'\"\n"}, want: "Sunset Bloom"},
		{name: "error falls back", namer: stubNamer{err: errors.New("boom")}, want: Fallback, wantErr: true},
		{name: "blank falls back", namer: stubNamer{name: " \"\" "}, want: Fallback, wantErr: true},
		{name: "nil namer falls back", namer: nil, want: Fallback, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(context.Background(), tc.namer, palette, time.Second)
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrNamingUnavailable)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestResolveTimesOut(t *testing.T) {
	t.Parallel()

	start := time.Now()
	got, err := Resolve(context.Background(), blockingNamer{}, palette, 20*time.Millisecond)
	require.ErrorIs(t, err, ErrNamingUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Fallback, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLabelNamer(t *testing.T) {
	t.Parallel()

	name, err := Resolve(context.Background(), LabelNamer{Rule: harmony.SplitComplementary}, palette, 0)
	require.NoError(t, err)
	assert.Equal(t, harmony.SplitComplementary.Label()+" Palette", name)
}

func TestHTTPNamer(t *testing.T) {
	t.Parallel()

	received := make(chan nameRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req nameRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received <- req
		_ = json.NewEncoder(w).Encode(nameResponse{Name: "'Neon Orchard'"})
	}))
	defer srv.Close()

	namer := NewHTTPNamer(srv.URL)
	name, err := Resolve(context.Background(), namer, palette, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Neon Orchard", name)
	assert.Equal(t, palette, (<-received).Colors)
}

func TestHTTPNamerFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("{"))
			},
		},
		{
			name: "slow server",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			name, err := Resolve(context.Background(), &HTTPNamer{Endpoint: srv.URL}, palette, 100*time.Millisecond)
			require.ErrorIs(t, err, ErrNamingUnavailable)
			assert.Equal(t, Fallback, name)
		})
	}
}
