package document

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
)

func zipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("%s not found", name)
	return ""
}

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	return zipEntry(t, data, "word/document.xml")
}

func sampleSet() *answer.Set {
	set := answer.NewSet(3)
	set.Put(answer.Entry{PersonaID: "Lord Krishna", Label: "Lord Krishna", Text: "Act without attachment."})
	set.Put(answer.Entry{PersonaID: "Police Guideline Officer", Label: "Police Guideline Officer", Text: "Call 100."})
	set.Put(answer.Entry{PersonaID: "Dr. Ambedkar", Text: answer.Placeholder, Failure: answer.FailureMissing})
	return set
}

func TestSectionsFollowOrder(t *testing.T) {
	b := NewBuilder()
	got := b.Sections(sampleSet(), []string{"Police Guideline Officer", "Dr. Ambedkar", "Unknown", "Lord Krishna"})

	assert.Equal(t, []Section{
		{Heading: "Police Guideline Officer", Body: "Call 100."},
		{Heading: "Dr. Ambedkar", Body: answer.Placeholder},
		{Heading: "Lord Krishna", Body: "Act without attachment."},
	}, got)
}

func TestBuildProducesDocx(t *testing.T) {
	artifact, err := NewBuilder().Build(sampleSet(), []string{"Police Guideline Officer", "Lord Krishna", "Dr. Ambedkar"})
	require.NoError(t, err)

	assert.Equal(t, "AI_Agent_Responses.docx", artifact.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", artifact.ContentType)
	require.NotEmpty(t, artifact.Data)

	xml := documentXML(t, artifact.Data)
	title := strings.Index(xml, Title)
	police := strings.Index(xml, "Police Guideline Officer")
	krishna := strings.Index(xml, "Lord Krishna")
	ambedkar := strings.Index(xml, "No answer generated.")

	require.True(t, title >= 0 && police >= 0 && krishna >= 0 && ambedkar >= 0, xml)
	assert.True(t, title < police && police < krishna && krishna < ambedkar)
	assert.Contains(t, xml, "Call 100.")
}

func TestBuildEmptySet(t *testing.T) {
	artifact, err := NewBuilder().Build(answer.NewSet(0), nil)
	require.NoError(t, err)
	assert.Contains(t, documentXML(t, artifact.Data), Title)
}

func TestBuildUsesHeadingStyles(t *testing.T) {
	artifact, err := NewBuilder().Build(sampleSet(), []string{"Lord Krishna", "Police Guideline Officer"})
	require.NoError(t, err)

	xml := documentXML(t, artifact.Data)
	assert.Equal(t, 1, strings.Count(xml, `w:pStyle w:val="Heading1"`))
	assert.Equal(t, 2, strings.Count(xml, `w:pStyle w:val="Heading2"`))

	styles := zipEntry(t, artifact.Data, "word/styles.xml")
	assert.Contains(t, styles, `w:styleId="Heading1"`)
	assert.Contains(t, styles, `w:styleId="Heading2"`)
	assert.Contains(t, styles, `<w:outlineLvl w:val="1"/>`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(styles), "</w:styles>"))
}

func TestWithHeadingStylesNeedsStylesElement(t *testing.T) {
	_, err := withHeadingStyles([]byte("<w:document/>"))
	assert.Error(t, err)
}
