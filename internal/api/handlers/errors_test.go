package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"handsup-market/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidTradeMethod, http.StatusBadRequest},
		{domain.ErrInvalidSortInput, http.StatusBadRequest},
		{domain.ErrEmptySortInput, http.StatusBadRequest},
		{fmt.Errorf("%w: provider said no", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrFCMTokenNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: auction x", domain.ErrNotFound), http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, errorResponse(ctx, c.err))
		assert.Equal(t, c.want, rec.Code, "error: %v", c.err)
	}
}
