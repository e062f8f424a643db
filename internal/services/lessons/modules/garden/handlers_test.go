package garden

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

func newTestMount(t *testing.T) (http.Handler, *state.Registry) {
	t.Helper()
	states := state.NewRegistry()
	mount, err := New().Mount(module.Dependencies{States: states})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler, states
}

func doForm(t *testing.T, h http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPlantSeed(t *testing.T) {
	t.Parallel()

	t.Run("creates_plot_with_next_id", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodPost, "/garden/plots", url.Values{"plant_name": {"Basil Potion"}})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `id="plot-3"`) {
			t.Errorf("body missing new plot id: %s", body)
		}
		if !strings.Contains(body, `data-testid="plant-plot-basil-potion"`) {
			t.Errorf("body missing slugged test id: %s", body)
		}
		if !strings.Contains(body, "Basil Potion") {
			t.Errorf("body missing plant name: %s", body)
		}
	})

	t.Run("missing_plant_name_is_unprocessable", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodPost, "/garden/plots", url.Values{"plant_name": {"   "}})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
		}
	})

	t.Run("ids_never_reused_after_pull", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		doForm(t, h, http.MethodDelete, "/garden/plots/2", nil)
		rec := doForm(t, h, http.MethodPost, "/garden/plots", url.Values{"plant_name": {"Mint"}})
		if !strings.Contains(rec.Body.String(), `id="plot-3"`) {
			t.Errorf("body = %s, want plot id 3", rec.Body.String())
		}
	})
}

func TestReplacePlant(t *testing.T) {
	t.Parallel()

	t.Run("replaces_existing_plot", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodPut, "/garden/plots/2", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Carrot") {
			t.Errorf("body = %s, want replacement plant", body)
		}
		if !strings.Contains(body, `id="plot-2"`) {
			t.Errorf("body = %s, want same plot id", body)
		}
	})

	t.Run("absent_plot_is_not_found", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodPut, "/garden/plots/99", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("non_numeric_id_is_bad_request", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodPut, "/garden/plots/weed", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestPullPlot(t *testing.T) {
	t.Parallel()

	t.Run("returns_empty_body", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodDelete, "/garden/plots/1", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body = %q, want empty", rec.Body.String())
		}
	})

	t.Run("absent_plot_is_not_found", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodDelete, "/garden/plots/7", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestGardenStatus(t *testing.T) {
	t.Parallel()

	t.Run("needs_weeding_while_weed_planted", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		rec := doForm(t, h, http.MethodGet, "/garden/garden-status", nil)
		if !strings.Contains(rec.Body.String(), "Needs Weeding") {
			t.Errorf("body = %s, want weeding warning", rec.Body.String())
		}
	})

	t.Run("thriving_after_weed_replaced", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestMount(t)

		doForm(t, h, http.MethodPut, "/garden/plots/2", nil)
		rec := doForm(t, h, http.MethodGet, "/garden/garden-status", nil)
		if !strings.Contains(rec.Body.String(), "Garden is Thriving") {
			t.Errorf("body = %s, want thriving status", rec.Body.String())
		}
	})
}

func TestGardenReset(t *testing.T) {
	t.Parallel()
	h, states := newTestMount(t)

	doForm(t, h, http.MethodPost, "/garden/plots", url.Values{"plant_name": {"Mint"}})
	doForm(t, h, http.MethodPut, "/garden/plots/2", nil)
	states.ResetAll()

	rec := doForm(t, h, http.MethodGet, "/garden/garden-status", nil)
	if !strings.Contains(rec.Body.String(), "Needs Weeding") {
		t.Errorf("body = %s, want fresh weed back after reset", rec.Body.String())
	}
	rec = doForm(t, h, http.MethodPost, "/garden/plots", url.Values{"plant_name": {"Mint"}})
	if !strings.Contains(rec.Body.String(), `id="plot-3"`) {
		t.Errorf("body = %s, want id counter rewound", rec.Body.String())
	}
}

func TestGardenIndex(t *testing.T) {
	t.Parallel()
	h, _ := newTestMount(t)

	rec := doForm(t, h, http.MethodGet, "/garden/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Errorf("body is not a full document: %s", body)
	}
	if !strings.Contains(body, "Tomato") {
		t.Errorf("body missing seeded plot: %s", body)
	}
}
