package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/factory-records/internal/model"
)

func TestGenerateRecordCard(t *testing.T) {
	registered := model.NewDate(2024, time.January, 1)
	card := model.CardOf(&model.Contract{ID: 9, Name: "C-9", DateRegistration: &registered})

	content, err := NewGenerator().Generate(card)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestSafeValue(t *testing.T) {
	assert.Equal(t, "-", safeValue(" "))
	assert.Equal(t, "x", safeValue("x"))
}
