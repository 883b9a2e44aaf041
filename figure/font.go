package figure

import (
	"sync"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
)

// pdfBoldSerif is the Liberation serif bold outline under a regular-weight
// descriptor. The PDF canvas appends its own "B" style to bold descriptors
// and then cannot find the face it registered, so bold text is swapped to
// this face for PDF output.
var pdfBoldSerif = font.Font{Typeface: "Liberation", Variant: "SerifBoldPDF"}

var registerPDFBold sync.Once

func registerBoldSerif() {
	registerPDFBold.Do(func() {
		for _, f := range liberation.Collection() {
			if f.Font.Variant == "Serif" && f.Font.Weight == xfont.WeightBold && f.Font.Style == xfont.StyleNormal {
				font.DefaultCache.Add(font.Collection{{Font: pdfBoldSerif, Face: f.Face}})
				return
			}
		}
	})
}

// pdfSafeTitle swaps a bold serif title of p to pdfBoldSerif and returns the
// function restoring the original font.
func pdfSafeTitle(p *plot.Plot) (restore func()) {
	orig := p.Title.TextStyle.Font
	if orig.Weight != xfont.WeightBold || orig.Style != xfont.StyleNormal || (orig.Variant != "" && orig.Variant != "Serif") {
		return func() {}
	}
	registerBoldSerif()
	p.Title.TextStyle.Font = font.From(pdfBoldSerif, orig.Size)

	return func() { p.Title.TextStyle.Font = orig }
}
