package codec

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name     string   `json:"name"`
	Duration float64  `json:"duration"`
	Tags     []string `json:"tags"`
}

func newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJSONSerializer_Serialize(t *testing.T) {
	c, rec := newContext("")
	require.NoError(t, c.JSON(http.StatusCreated, map[string]string{"message": "ok"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestJSONSerializer_Deserialize(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		c, _ := newContext(`{"name":"Running","duration":30,"tags":["a"]}`)
		var p payload
		require.NoError(t, c.Bind(&p))
		assert.Equal(t, payload{Name: "Running", Duration: 30, Tags: []string{"a"}}, p)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		c, _ := newContext(`{"name":`)
		var p payload
		err := c.Bind(&p)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("wrong type is a bad request", func(t *testing.T) {
		c, _ := newContext(`{"duration":"thirty"}`)
		var p payload
		err := c.Bind(&p)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestMarshalUnmarshal(t *testing.T) {
	data, err := Marshal(payload{Name: "Yoga", Duration: 45})
	require.NoError(t, err)

	var got payload
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, "Yoga", got.Name)
	assert.Equal(t, 45.0, got.Duration)
}
