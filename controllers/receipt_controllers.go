package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type ReceiptController struct {
	DB *gorm.DB
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: db}
}

// GenerateReceipt membuat struk PDF untuk transaksi yang sudah SELESAI.
func (rc *ReceiptController) GenerateReceipt(c *gin.Context) {
	orderID := c.Param("order_id")

	var trx models.Transaction
	if err := rc.DB.Preload("Lines.Item").
		Preload("Session").
		Preload("Store").
		First(&trx, "id = ?", orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transaksi tidak ditemukan"))
		return
	}

	if trx.Status != models.StatusDone {
		utils.RespondError(c, http.StatusBadRequest, errors.New("pesanan belum selesai"))
		return
	}

	idPrefix := trx.ID
	if len(idPrefix) > 8 {
		idPrefix = idPrefix[:8]
	}
	receiptNumber := fmt.Sprintf("RCP/%s/%s", time.Now().Format("20060102"), idPrefix)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, trx.Store.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Food Court Kampus", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("No. Struk : %s", receiptNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tanggal   : %s", trx.CreatedAt.Format("02-01-2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Meja      : %s", trx.Session.TableNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Bayar     : %s", trx.PaymentKind), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(40, 7, "Harga", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range trx.Lines {
		unitPrice := 0
		if line.Quantity > 0 {
			unitPrice = line.Subtotal / line.Quantity
		}
		pdf.CellFormat(80, 7, line.Item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, utils.FormatRupiah(unitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, utils.FormatRupiah(line.Subtotal), "", 1, "R", false, 0, "")
		if line.Note != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(0, 5, "  "+line.Note, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, utils.FormatRupiah(trx.Total), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Terima kasih atas kunjungan Anda", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.ErrorLogger.Printf("Error rendering receipt %s: %v", receiptNumber, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal membuat struk"))
		return
	}

	utils.InfoLogger.Printf("Receipt generated: %s (order=%s)", receiptNumber, trx.ID)

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", idPrefix))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
