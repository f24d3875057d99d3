package document

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"
	"testing/fstest"

	"github.com/fumiama/go-docx"
)

// Paragraph style ids defined by the outline template.
const (
	styleTitle   = "Heading1"
	styleHeading = "Heading2"
)

const stylesPath = "word/styles.xml"

// headingStyles registers Word's built-in "heading 1" and "heading 2" so that
// headed paragraphs appear in the navigation pane. "a" is the default theme's
// Normal style.
const headingStyles = `
    <w:style w:type="paragraph" w:styleId="Heading1">
        <w:name w:val="heading 1"/>
        <w:basedOn w:val="a"/>
        <w:next w:val="a"/>
        <w:uiPriority w:val="9"/>
        <w:qFormat/>
        <w:pPr>
            <w:keepNext/>
            <w:keepLines/>
            <w:spacing w:before="340" w:after="330"/>
            <w:outlineLvl w:val="0"/>
        </w:pPr>
        <w:rPr>
            <w:b/>
            <w:bCs/>
            <w:kern w:val="44"/>
            <w:sz w:val="36"/>
            <w:szCs w:val="36"/>
        </w:rPr>
    </w:style>
    <w:style w:type="paragraph" w:styleId="Heading2">
        <w:name w:val="heading 2"/>
        <w:basedOn w:val="a"/>
        <w:next w:val="a"/>
        <w:uiPriority w:val="9"/>
        <w:unhideWhenUsed/>
        <w:qFormat/>
        <w:pPr>
            <w:keepNext/>
            <w:keepLines/>
            <w:spacing w:before="260" w:after="260"/>
            <w:outlineLvl w:val="1"/>
        </w:pPr>
        <w:rPr>
            <w:b/>
            <w:bCs/>
            <w:sz w:val="28"/>
            <w:szCs w:val="28"/>
        </w:rPr>
    </w:style>
`

// outlineTemplate is the library's default template with heading styles added.
var outlineTemplate = sync.OnceValues(func() (fs.FS, error) {
	tmpl := make(fstest.MapFS, len(docx.DefaultTemplateFilesList))
	for _, name := range docx.DefaultTemplateFilesList {
		data, err := fs.ReadFile(docx.TemplateXMLFS, "xml/default/"+name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}
		if name == stylesPath {
			if data, err = withHeadingStyles(data); err != nil {
				return nil, err
			}
		}
		tmpl[name] = &fstest.MapFile{Data: data, Mode: 0o444}
	}
	return tmpl, nil
})

func withHeadingStyles(styles []byte) ([]byte, error) {
	end := bytes.LastIndex(styles, []byte("</w:styles>"))
	if end < 0 {
		return nil, fmt.Errorf("template %s has no closing styles element", stylesPath)
	}
	out := make([]byte, 0, len(styles)+len(headingStyles))
	out = append(out, styles[:end]...)
	out = append(out, headingStyles...)
	out = append(out, styles[end:]...)
	return out, nil
}

// newDocument starts an empty document on the outline template.
func newDocument() (*docx.Docx, error) {
	tmpl, err := outlineTemplate()
	if err != nil {
		return nil, err
	}
	return docx.New().UseTemplate("", docx.DefaultTemplateFilesList, tmpl), nil
}
