package writer

import (
	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeDocx stores text as a single paragraph in a new Word document
func writeDocx(text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")

	return doc.SaveTo(outputPath)
}
