package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-hanoi/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type custom struct {
	Value *int `json:"value"`
}

func (c *custom) Validate() error {
	if c.Value == nil {
		return CustomValidationErrors{{Field: "value", Message: "value is required"}}
	}
	return nil
}

type failing struct{}

func (*failing) Validate() error {
	return errors.New("value is odd")
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_EmptyBody(t *testing.T) {
	err := BindAndValidate(newContext(""), &custom{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.MsgBodyRequired, httpErr.Message)
}

func TestBindAndValidate_MalformedJSONIsNotAClientError(t *testing.T) {
	for _, body := range []string{`{"value":`, "   ", "\n\t", `value=1`} {
		err := BindAndValidate(newContext(body), &custom{})
		require.Error(t, err, "body %q", body)

		var httpErr *errs.HTTPError
		assert.False(t, errors.As(err, &httpErr), "body %q", body)
	}
}

func TestBindAndValidate_WrongShapeReachesValidate(t *testing.T) {
	for _, body := range []string{`"x"`, `[1]`, `null`, `{"value":"1"}`} {
		err := BindAndValidate(newContext(body), &custom{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, "body %s", body)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "value is required", httpErr.Message)
		assert.Equal(t, []errs.FieldError{{Field: "value", Error: "value is required"}}, httpErr.Errors)
	}
}

func TestBindAndValidate_PlainErrorKeepsMessage(t *testing.T) {
	err := BindAndValidate(newContext(`{"value":1}`), &failing{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "value is odd", httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_OK(t *testing.T) {
	payload := &custom{}
	require.NoError(t, BindAndValidate(newContext(`{"value":3,"extra":1}`), payload))
	require.NotNil(t, payload.Value)
	assert.Equal(t, 3, *payload.Value)
}
