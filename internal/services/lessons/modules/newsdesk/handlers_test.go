package newsdesk

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

func newTestMount(t *testing.T, clock func() time.Time) (http.Handler, *state.Registry) {
	t.Helper()
	states := state.NewRegistry()
	mount, err := New().Mount(module.Dependencies{States: states, Clock: clock})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler, states
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHeadlines(t *testing.T) {
	t.Parallel()

	t.Run("cycles_through_rotation", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t, nil)

		var seen []string
		for range len(headlines) + 1 {
			rec := do(t, h, http.MethodGet, "/news-desk/headlines")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			seen = append(seen, rec.Body.String())
		}
		for i, want := range headlines {
			if !strings.Contains(seen[i], want) {
				t.Errorf("request %d body = %s, want %q", i, seen[i], want)
			}
		}
		if !strings.Contains(seen[len(headlines)], headlines[0]) {
			t.Errorf("rotation did not wrap: %s", seen[len(headlines)])
		}
	})

	t.Run("index_page_shows_current_rotation_position", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t, nil)

		do(t, h, http.MethodGet, "/news-desk/headlines")
		rec := do(t, h, http.MethodGet, "/news-desk/")
		if !strings.Contains(rec.Body.String(), headlines[1]) {
			t.Errorf("body = %s, want headline after one poll", rec.Body.String())
		}
	})

	t.Run("reset_rewinds_rotation", func(t *testing.T) {
		t.Parallel()
		h, states := newTestMount(t, nil)

		do(t, h, http.MethodGet, "/news-desk/headlines")
		do(t, h, http.MethodGet, "/news-desk/headlines")
		states.ResetAll()

		rec := do(t, h, http.MethodGet, "/news-desk/headlines")
		if !strings.Contains(rec.Body.String(), headlines[0]) {
			t.Errorf("body = %s, want first headline after reset", rec.Body.String())
		}
	})
}

func TestBroadcastAlert(t *testing.T) {
	t.Parallel()
	h, _ := newTestMount(t, nil)

	rec := do(t, h, http.MethodPost, "/news-desk/broadcast/alert")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("HX-Trigger"); got != "newBreakingNews" {
		t.Errorf("HX-Trigger = %q, want %q", got, "newBreakingNews")
	}
	if rec.Body.Len() == 0 {
		t.Error("body empty, want confirmation fragment alongside trigger")
	}
}

func TestBreakingStory(t *testing.T) {
	t.Parallel()
	h, _ := newTestMount(t, nil)

	rec := do(t, h, http.MethodGet, "/news-desk/story/breaking")
	if !strings.Contains(rec.Body.String(), `data-testid="breaking-story"`) {
		t.Errorf("body = %s, want breaking story fragment", rec.Body.String())
	}
}

func TestCoordinatedUpdate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	clock := func() time.Time { return fixed }

	t.Run("carries_main_story_and_oob_sidebar", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t, clock)

		rec := do(t, h, http.MethodPost, "/news-desk/broadcast/coordinated-update")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `id="main-story"`) {
			t.Errorf("body missing main story: %s", body)
		}
		if !strings.Contains(body, `id="sidebar-alerts"`) {
			t.Errorf("body missing sidebar: %s", body)
		}
		if !strings.Contains(body, `hx-swap-oob="true"`) {
			t.Errorf("body missing out-of-band marker: %s", body)
		}
	})

	t.Run("pinned_clock_renders_deterministic_timestamp", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t, clock)

		first := do(t, h, http.MethodPost, "/news-desk/broadcast/coordinated-update").Body.String()
		if !strings.Contains(first, `data-at="09:26:53"`) {
			t.Errorf("body = %s, want pinned timestamp", first)
		}
	})

	t.Run("appends_to_seeded_alert_list", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t, clock)

		body := do(t, h, http.MethodPost, "/news-desk/broadcast/coordinated-update").Body.String()
		if !strings.Contains(body, "Weather advisory") {
			t.Errorf("body = %s, want seeded alert kept", body)
		}
		if !strings.Contains(body, `id="alert-2"`) {
			t.Errorf("body = %s, want appended alert", body)
		}
	})
}
