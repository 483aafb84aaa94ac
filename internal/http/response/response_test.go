package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"role": "admin"})

	assert.Equal(t, StatusOK, resp.Status)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","data":{"role":"admin"}}`, string(raw))
}

func TestOK_OmitsData(t *testing.T) {
	raw, err := json.Marshal(OK())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK"}`, string(raw))
}

func TestError(t *testing.T) {
	resp := Error("unauthorized access")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "unauthorized access", resp.Error)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Role  string `validate:"required,oneof=user admin"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email", Role: "root"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Role has an unsupported value")
}
