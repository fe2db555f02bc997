package render

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/controller"
)

// PDF renders one page per frame and writes the PDF document to the
// given writer.
//
// Each page has the plot image and a table with the parameters.
func (c *Context) PDF(title string, cmds []*controller.RenderCommand, w io.Writer) error {
	if len(cmds) == 0 {
		return fmt.Errorf("no frames to render")
	}
	logging.Debug("Render PDF %q with %d pages", title, len(cmds))

	pdf := setupPDF(title)
	for _, cmd := range cmds {
		err := c.pdfPage(pdf, cmd)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func setupPDF(title string) *gofpdf.Fpdf {
	orientation := "L" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer("foiltool", true)
	pdf.SetTitle(title, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), title)
	})

	return pdf
}

func (c *Context) pdfPage(pdf *gofpdf.Fpdf, cmd *controller.RenderCommand) error {
	img, err := c.Image(cmd)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = png.Encode(&buf, img)
	if err != nil {
		return err
	}

	pdf.AddPage()

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	// The plot is scaled to the usable page width,
	// leaving room for the parameter table below.
	wPage, hPage := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	w := wPage - left - right
	h := w * float64(c.Height) / float64(c.Width)
	if maxH := hPage - top - 110; h > maxH {
		h = maxH
		w = h * float64(c.Width) / float64(c.Height)
	}

	x := left + (wPage-left-right-w)/2
	y := top
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)

	pdf.SetY(top + h + 12)
	pdf.SetFont("helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.CellFormat(0, 14, tr(cmd.Mode.Label()), "", 1, "L", false, 0, "")

	pdf.SetFont("helvetica", "", 9)
	rows := [][2]string{
		{"Angle", fmt.Sprintf("%g°", cmd.Angle)},
		{"Scale factor", fmt.Sprintf("%g", cmd.Scale)},
		{"Reference point", cmd.Reference.String()},
		{"Points", fmt.Sprintf("%d", len(cmd.Original))},
	}
	for _, row := range rows {
		pdf.CellFormat(100, 12, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 12, tr(row[1]), "", 1, "L", false, 0, "")
	}

	return pdf.Error()
}

// ValidatePDF checks that the given data is a readable PDF document.
func ValidatePDF(rs io.ReadSeeker) error {
	conf := pdfcpu.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpu.ValidationRelaxed

	err := api.Validate(rs, conf)
	if err != nil {
		return fmt.Errorf("invalid PDF: %w", err)
	}
	return nil
}
