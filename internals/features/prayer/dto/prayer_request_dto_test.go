package dto

import (
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestCreatePrayerRequestTextBounds(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"too short", strings.Repeat("a", 9), true},
		{"minimum", strings.Repeat("a", 10), false},
		{"maximum", strings.Repeat("a", 2000), false},
		{"too long", strings.Repeat("a", 2001), true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreatePrayerRequestRequest{PrayerRequestText: tc.text}
			err := v.Struct(&req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePrayerRequestOptionalFields(t *testing.T) {
	v := validator.New()

	name := "Grace"
	email := "grace@example.com"
	req := CreatePrayerRequestRequest{
		PrayerRequestName:  &name,
		PrayerRequestEmail: &email,
		PrayerRequestText:  "Please pray for my family this week.",
	}
	assert.NoError(t, v.Struct(&req))

	bad := "not-an-email"
	req.PrayerRequestEmail = &bad
	assert.Error(t, v.Struct(&req))
}

func TestCreatePrayerRequestToModel(t *testing.T) {
	private := true
	req := CreatePrayerRequestRequest{
		PrayerRequestText:      "Please keep this between us and God.",
		PrayerRequestIsPrivate: &private,
	}
	m := req.ToModel()
	assert.True(t, m.PrayerRequestIsPrivate)
	assert.Nil(t, m.PrayerRequestName)

	m = (&CreatePrayerRequestRequest{PrayerRequestText: "A short but valid request."}).ToModel()
	assert.False(t, m.PrayerRequestIsPrivate)
}
