package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "2002-12-30T20:00:00Z", FormatEpoch(1041278400000))
	assert.Nil(t, FormatEpochPtr(nil))

	millis := int64(0)
	assert.Equal(t, "1970-01-01T00:00:00Z", *FormatEpochPtr(&millis))
}

func TestFormatDecimal2(t *testing.T) {
	assert.Equal(t, "10000.00", FormatDecimal2("10000"))
	assert.Equal(t, "1.50", FormatDecimal2("1.5"))
	assert.Equal(t, "1.25", FormatDecimal2("1.25"))
	assert.Equal(t, "-3.00", FormatDecimal2("-3"))
	assert.Equal(t, "", FormatDecimal2(""))
}

func TestSanitize(t *testing.T) {
	type request struct {
		Name   string
		INN    *string
		Absent *string
		Tags   []string
		Count  int
	}

	inn := "  7707083893 "
	req := request{Name: " ООО  ", INN: &inn, Tags: []string{" a ", "b "}, Count: 3}
	Sanitize(&req)

	assert.Equal(t, "ООО", req.Name)
	assert.Equal(t, "7707083893", *req.INN)
	assert.Nil(t, req.Absent)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.Equal(t, 3, req.Count)
}

func TestSanitizePanicsOnNonPointer(t *testing.T) {
	assert.Panics(t, func() { Sanitize(struct{}{}) })
}
