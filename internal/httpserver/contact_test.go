package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshowroom/backend/internal/models"
)

func TestSubmitContact_RequiredOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contacts", map[string]string{
		"full_name": "Binh", "email": "b@x.vn", "phone_number": "0911",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, decode[message](t, rec).Success)

	var stored models.Contact
	require.NoError(t, env.DB.First(&stored).Error)
	assert.Equal(t, "Binh", stored.FullName)
	assert.Nil(t, stored.RequestType)
	assert.Nil(t, stored.CarType)
	assert.Nil(t, stored.Budget)
	assert.Nil(t, stored.DetailedMessage)
}

func TestSubmitContact_AllFieldsAndRepeats(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{
		"full_name": "Binh", "email": "b@x.vn", "phone_number": "0911",
		"request_type": "test_drive", "car_type": "SUV", "budget": "800-900 million", "detailed_message": "weekend please",
	}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/contacts", body).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/contacts", body).Code)

	var stored []models.Contact
	require.NoError(t, env.DB.Order("id ASC").Find(&stored).Error)
	require.Len(t, stored, 2)
	require.NotNil(t, stored[0].Budget)
	assert.Equal(t, "800-900 million", *stored[0].Budget)
	require.NotNil(t, stored[1].DetailedMessage)
	assert.Equal(t, "weekend please", *stored[1].DetailedMessage)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	m := requireFailure(t, env.do(t, http.MethodPost, "/api/contacts", map[string]string{
		"email": "b@x.vn", "car_type": "SUV",
	}), http.StatusBadRequest)
	assert.Equal(t, "missing required fields: full_name, phone_number", m.Message)
	assert.Zero(t, env.count(t, &models.Contact{}))
}

func TestSubmitContact_NumericFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contacts",
		`{"full_name":"An","email":"a@x.vn","phone_number":901234567,"budget":800000000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var stored models.Contact
	require.NoError(t, env.DB.First(&stored).Error)
	assert.Equal(t, "901234567", stored.PhoneNumber)
	require.NotNil(t, stored.Budget)
	assert.Equal(t, "800000000", *stored.Budget)
	assert.Nil(t, stored.CarType)
}

func TestSubmitContact_ObjectFieldIsInvalid(t *testing.T) {
	env := newTestEnv(t)

	m := requireFailure(t, env.do(t, http.MethodPost, "/api/contacts",
		`{"full_name":"An","email":"a@x.vn","phone_number":"0901","budget":{"min":1}}`), http.StatusBadRequest)
	assert.Equal(t, "invalid body", m.Message)
	assert.Zero(t, env.count(t, &models.Contact{}))
}
