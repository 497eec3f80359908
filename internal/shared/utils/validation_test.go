package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/shared/errors"
)

type coordinateRequest struct {
	Lat  *float64 `json:"originLat" validate:"required,min=-90,max=90"`
	At   string   `json:"arrivalTime" validate:"required,hhmm"`
	Days []string `json:"activeDays" validate:"required,min=1,dive,weekday"`
}

func floatPtr(v float64) *float64 { return &v }

func TestValidateStruct_LatitudeBoundary(t *testing.T) {
	ok := coordinateRequest{Lat: floatPtr(90), At: "08:30", Days: []string{"mon"}}
	assert.NoError(t, ValidateStruct(ok))

	bad := coordinateRequest{Lat: floatPtr(91), At: "08:30", Days: []string{"mon"}}
	err := ValidateStruct(bad)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "originLat must be at most 90")
}

func TestValidateStruct_ZeroLatitudeIsAllowed(t *testing.T) {
	req := coordinateRequest{Lat: floatPtr(0), At: "00:00", Days: []string{"sun"}}
	assert.NoError(t, ValidateStruct(req))
}

func TestValidateStruct_MissingLatitude(t *testing.T) {
	err := ValidateStruct(coordinateRequest{At: "08:30", Days: []string{"mon"}})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Message, "originLat is required")
}

func TestValidateStruct_CustomTags(t *testing.T) {
	err := ValidateStruct(coordinateRequest{Lat: floatPtr(1), At: "24:00", Days: []string{"funday"}})
	require.Error(t, err)
	msg := errors.GetAppError(err).Message
	assert.Contains(t, msg, "arrivalTime must be a time in HH:MM format")
	assert.Contains(t, msg, "must contain only mon")
}

func TestIsHHMM(t *testing.T) {
	assert.True(t, IsHHMM("00:00"))
	assert.True(t, IsHHMM("23:59"))
	assert.False(t, IsHHMM("7:30"))
	assert.False(t, IsHHMM("12:60"))
}

func TestIsSettingKey(t *testing.T) {
	assert.True(t, IsSettingKey("weather.units"))
	assert.True(t, IsSettingKey("news.feed_limit"))
	assert.False(t, IsSettingKey("units"))
	assert.False(t, IsSettingKey("Weather.Units"))
	assert.False(t, IsSettingKey("weather."))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, MaskedValue, MaskSecret("sk-live-123"))
}

func TestSetupBindingValidator_CustomTags(t *testing.T) {
	SetupBindingValidator()

	type alarm struct {
		At string `json:"at" binding:"required,hhmm"`
	}
	require.NoError(t, binding.Validator.ValidateStruct(&alarm{At: "07:45"}))

	err := binding.Validator.ValidateStruct(&alarm{At: "7:45"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'at'")
}
