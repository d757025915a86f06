package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Apollo-Deploy/g11n/middlewares"
)

func TestFromQuery(t *testing.T) {
	t.Parallel()

	t.Run("returns query value", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromQuery("lang")

		r := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		val, ok := src(r)
		require.True(t, ok)
		require.Equal(t, "fr", val)
	})

	t.Run("returns false when absent", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromQuery("lang")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := src(r)
		require.False(t, ok)
	})
}

func TestFromCookie(t *testing.T) {
	t.Parallel()

	t.Run("returns cookie value", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromCookie("pref")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "pref", Value: "de"})
		val, ok := src(r)
		require.True(t, ok)
		require.Equal(t, "de", val)
	})

	t.Run("returns false when absent", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromCookie("pref")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := src(r)
		require.False(t, ok)
	})

	t.Run("returns false for empty value", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromCookie("pref")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "pref", Value: ""})
		_, ok := src(r)
		require.False(t, ok)
	})
}

func TestFromHeader(t *testing.T) {
	t.Parallel()

	t.Run("returns header value", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromHeader("X-Locale")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Locale", "pl")
		val, ok := src(r)
		require.True(t, ok)
		require.Equal(t, "pl", val)
	})

	t.Run("returns false when absent", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromHeader("X-Locale")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := src(r)
		require.False(t, ok)
	})
}

func TestFromChiParam(t *testing.T) {
	t.Parallel()

	t.Run("returns route param", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromChiParam("locale")

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("locale", "de")
		r := httptest.NewRequest(http.MethodGet, "/de/about", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		val, ok := src(r)
		require.True(t, ok)
		require.Equal(t, "de", val)
	})

	t.Run("returns false outside a chi route", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromChiParam("locale")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := src(r)
		require.False(t, ok)
	})
}
