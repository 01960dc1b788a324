package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	pdf, err := exporter.Render(Dossier{
		Title: "Ayse Demir",
		Sections: []DossierSection{
			{Title: "Student", Rows: [][2]string{{"Number", "101"}, {"Class", "5-A"}}},
			{Title: "Mother", Rows: [][2]string{{"Name", "Fatma Demir"}}},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestPDFExporterRejectsEmptyDossier(t *testing.T) {
	exporter := NewPDFExporter()

	_, err := exporter.Render(Dossier{Title: "Empty"})
	assert.Error(t, err)
}
