package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/factory-records/internal/model"
)

type stubGenerator struct {
	out  []byte
	err  error
	seen model.RecordCard
}

func (g *stubGenerator) Generate(card model.RecordCard) ([]byte, error) {
	g.seen = card
	return g.out, g.err
}

func TestExportFormats(t *testing.T) {
	excel := &stubGenerator{out: []byte("xlsx")}
	pdf := &stubGenerator{out: []byte("%PDF")}
	svc := NewExportService(excel, pdf)
	record := &model.Workshop{ID: 4, Name: "Press"}

	res, err := svc.Export(record, "")
	require.NoError(t, err)
	assert.Equal(t, "workshop-4.xlsx", res.FileName)
	assert.Equal(t, []byte("xlsx"), res.Content)
	assert.Equal(t, "Workshop", excel.seen.Kind)

	res, err = svc.Export(record, " PDF ")
	require.NoError(t, err)
	assert.Equal(t, "workshop-4.pdf", res.FileName)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, uint64(4), pdf.seen.ID)
}

func TestExportErrors(t *testing.T) {
	failing := &stubGenerator{err: errors.New("boom")}
	svc := NewExportService(failing, failing)

	_, err := svc.Export(&model.User{ID: 1}, "csv")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Export(&model.User{ID: 1}, "xlsx")
	assert.ErrorContains(t, err, "boom")
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "work-shop_1", sanitizeFileName("work shop_1"))
	assert.Equal(t, "a", sanitizeFileName("/a/"))
}
