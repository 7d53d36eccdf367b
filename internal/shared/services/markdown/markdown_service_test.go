package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTML("# Título\n\nUn párrafo con **negrita**.")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Título")
	assert.Contains(t, out, "<strong>negrita</strong>")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("Hola\n\n<script>alert(1)</script>")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Hola")
}

func TestSanitize_KeepsBasicFormatting(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p>ok</p><img src="x" onerror="alert(1)">`)

	assert.Contains(t, out, "<p>ok</p>")
	assert.NotContains(t, out, "onerror")
}
