package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
)

func TestChainAppliesInDeclarationOrder(t *testing.T) {
	t.Parallel()
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("first"), nil, tag("second"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("request id not injected into request")
		}
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id not echoed in response")
	}
}

func TestRequestIDPreservesExisting(t *testing.T) {
	t.Parallel()
	handler := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "caller-supplied")
	}
}

func TestRecoverPanicWrites500(t *testing.T) {
	t.Parallel()
	handler := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("handler exploded")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mix", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestWriteErrorRendersFragmentWithMappedStatus(t *testing.T) {
	t.Parallel()
	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.E(apperrors.KindConflict, "course is full"))

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "course is full") {
		t.Fatalf("body = %q, want explanatory fragment", rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q, want text/html", got)
	}
}

func TestWriteErrorNilErrIsOK(t *testing.T) {
	t.Parallel()
	rr := httptest.NewRecorder()
	WriteError(rr, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestFormValueRequiresField(t *testing.T) {
	t.Parallel()
	form := url.Values{"plant_name": {"Basil"}}
	req := httptest.NewRequest(http.MethodPost, "/garden/plots", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := FormValue(req, "plant_name")
	if err != nil {
		t.Fatalf("FormValue() error = %v", err)
	}
	if got != "Basil" {
		t.Fatalf("FormValue() = %q, want %q", got, "Basil")
	}

	_, err = FormValue(req, "missing")
	if err == nil {
		t.Fatal("FormValue(missing) error = nil, want invalid-input error")
	}
	if apperrors.HTTPStatus(err) != http.StatusUnprocessableEntity {
		t.Fatalf("HTTPStatus(err) = %d, want 422", apperrors.HTTPStatus(err))
	}
}

func TestFormValueRejectsBlank(t *testing.T) {
	t.Parallel()
	form := url.Values{"title": {"   "}}
	req := httptest.NewRequest(http.MethodPost, "/library/request-book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if _, err := FormValue(req, "title"); err == nil {
		t.Fatal("FormValue(blank) error = nil, want invalid-input error")
	}
}
