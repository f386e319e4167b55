package notifications

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

// ReceiptFileName is the attachment name shown to recipients.
const ReceiptFileName = "Detail_Pesanan.pdf"

// WriteReceipt renders the order receipt as a PDF document into w.
func WriteReceipt(w io.Writer, c models.OrderConfirmation) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Detail Pemesanan Gedung", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Detail Pemesanan Gedung", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("No. Pesanan: %d", c.OrderID),
		"Nama Pemesan: " + c.CustomerName,
		"Email: " + c.CustomerEmail,
		"Tanggal Pemesanan: " + c.Date,
		"Jam Pemesanan: " + c.Time,
		fmt.Sprintf("Paket: %s - %s", c.PackageName, c.Price.StringFixed(2)),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 9, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Terima kasih telah melakukan pemesanan!", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

// writeReceiptFile renders the receipt into a new file under dir and returns
// its path. The caller owns the file and must remove it.
func writeReceiptFile(dir string, c models.OrderConfirmation) (string, error) {
	f, err := os.CreateTemp(dir, fmt.Sprintf("order_%d_*.pdf", c.OrderID))
	if err != nil {
		return "", err
	}
	path := f.Name()

	if err := WriteReceipt(f, c); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
