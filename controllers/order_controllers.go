package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/cart"
	"github.com/bcfoodnet/foodcourt-app/live"
	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type checkoutLine struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Note     string `json:"note"`
}

type checkoutRequest struct {
	StoreID       string         `json:"store_id" binding:"required"`
	TableNumber   string         `json:"table_number" binding:"required"`
	PaymentMethod string         `json:"payment_method" binding:"required"`
	Lines         []checkoutLine `json:"lines" binding:"required,min=1,dive"`
}

// Checkout membuat pesanan dari keranjang buyer. Empat penulisan (meja,
// sesi, transaksi, baris order) dibungkus satu database transaction:
// kegagalan di tengah tidak meninggalkan row yatim.
func (oc *OrderController) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	buyerID := c.GetString("user_id")

	var store models.User
	if err := oc.DB.Where("id = ? AND role = ?", req.StoreID, models.RoleSeller).First(&store).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("toko tidak ditemukan"))
		return
	}
	if !store.IsOpen {
		utils.RespondError(c, http.StatusBadRequest, errors.New("toko sedang tutup"))
		return
	}

	paymentKind := models.NormalizePaymentKind(req.PaymentMethod)

	var trx models.Transaction
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		// Susun keranjang server-side dari request; harga diambil dari
		// database, bukan dari client.
		basket := cart.New()
		for _, line := range req.Lines {
			var item models.Item
			if err := tx.Where("id = ? AND store_id = ?", line.ItemID, req.StoreID).First(&item).Error; err != nil {
				return fmt.Errorf("item %s tidak ditemukan di toko ini", line.ItemID)
			}
			basket.SetQuantity(item.ID, line.Quantity)
			basket.SetNote(item.ID, line.Note)
			basket.Add(item)
		}
		if basket.Empty() {
			return errors.New("keranjang kosong")
		}

		// 1. okupansi meja: di-key nomor meja, timpa saja kalau sudah ada
		var table models.Table
		if err := tx.Where("table_number = ?", req.TableNumber).First(&table).Error; err != nil {
			table = models.Table{TableNumber: req.TableNumber, Status: models.TableOccupied}
			if err := tx.Create(&table).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&table).Update("status", models.TableOccupied).Error; err != nil {
				return err
			}
		}

		// 2. sesi pemesanan
		session := models.OrderSession{
			ID:          uuid.NewString(),
			TableNumber: req.TableNumber,
			BuyerID:     buyerID,
			Status:      models.SessionActive,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		// 3. transaksi dengan total hitung server
		trx = models.Transaction{
			ID:          uuid.NewString(),
			SessionID:   session.ID,
			StoreID:     req.StoreID,
			PaymentKind: paymentKind,
			Total:       basket.Total(),
			Status:      models.StatusWaiting,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		// 4. satu baris order per baris keranjang, subtotal dibekukan
		for _, line := range basket.Lines() {
			orderLine := models.OrderLine{
				ID:            uuid.NewString(),
				TransactionID: trx.ID,
				ItemID:        line.Item.ID,
				Quantity:      line.Quantity,
				Subtotal:      line.Quantity * line.Item.Price,
				Note:          line.Note,
			}
			if err := tx.Create(&orderLine).Error; err != nil {
				return err
			}
			trx.Lines = append(trx.Lines, orderLine)
		}

		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("Checkout failed (buyer=%s store=%s): %v", buyerID, req.StoreID, err)
		utils.RespondError(c, http.StatusInternalServerError, translateCheckoutError(err))
		return
	}

	utils.InfoLogger.Printf("Order created: %s (table=%s total=%d %s)",
		trx.ID, req.TableNumber, trx.Total, trx.PaymentKind)

	live.BroadcastOrderCreated(trx)
	live.BroadcastStoreNotification(fmt.Sprintf("Pesanan baru di meja %s", req.TableNumber))

	data := gin.H{"transaction": trx}
	if paymentKind == models.PaymentNonCash {
		qr, qrErr := paymentQR(trx)
		if qrErr != nil {
			utils.ErrorLogger.Printf("Error generating payment QR for %s: %v", trx.ID, qrErr)
		} else {
			data["payment_qr"] = qr
		}
	}

	utils.RespondJSON(c, http.StatusCreated, "Pesanan berhasil dibuat", data)
}

// translateCheckoutError menerjemahkan error skema yang sudah dikenal
// menjadi petunjuk yang bisa ditindaklanjuti.
func translateCheckoutError(err error) error {
	if strings.Contains(err.Error(), "no such column: note") ||
		strings.Contains(err.Error(), "Unknown column 'note'") {
		return errors.New("kolom note belum ada di tabel order line, jalankan migrasi terbaru")
	}
	return err
}

// paymentQR membuat PNG QR berisi payload pembayaran, dikembalikan base64.
func paymentQR(trx models.Transaction) (string, error) {
	payload := fmt.Sprintf("FOODCOURT-PAY|%s|%d", trx.ID, trx.Total)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// GetStoreOrders -> pesanan masuk sebuah toko; seller melihat tokonya
// sendiri, admin bisa toko manapun lewat query store_id.
func (oc *OrderController) GetStoreOrders(c *gin.Context) {
	role := c.GetString("role")
	storeID := c.GetString("user_id")
	if role == models.RoleAdmin {
		storeID = c.Query("store_id")
		if storeID == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("store_id harus diisi"))
			return
		}
	} else if role != models.RoleSeller {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	q := oc.DB.Preload("Lines.Item").Preload("Session").
		Where("store_id = ?", storeID).
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		q = q.Where("status = ?", parsed)
	}

	var orders []models.Transaction
	if err := q.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat pesanan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail satu transaksi untuk layar status buyer
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")

	var trx models.Transaction
	if err := oc.DB.Preload("Lines.Item").Preload("Session").
		First(&trx, "id = ?", orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transaksi tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", trx)
}

// GetBuyerHistory -> riwayat pesanan buyer: sesi dulu, lalu transaksinya,
// lalu nama toko, digabung in-memory.
func (oc *OrderController) GetBuyerHistory(c *gin.Context) {
	buyerID := c.GetString("user_id")

	var sessions []models.OrderSession
	if err := oc.DB.Where("buyer_id = ?", buyerID).Find(&sessions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat riwayat"))
		return
	}
	if len(sessions) == 0 {
		utils.RespondJSON(c, http.StatusOK, "Order history", []gin.H{})
		return
	}

	sessionIDs := make([]string, 0, len(sessions))
	tableBySession := make(map[string]string, len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.ID)
		tableBySession[s.ID] = s.TableNumber
	}

	var transactions []models.Transaction
	if err := oc.DB.Preload("Lines.Item").
		Where("session_id IN ?", sessionIDs).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat riwayat"))
		return
	}

	storeIDs := make([]string, 0, len(transactions))
	for _, t := range transactions {
		storeIDs = append(storeIDs, t.StoreID)
	}
	var stores []models.User
	if len(storeIDs) > 0 {
		if err := oc.DB.Where("id IN ?", storeIDs).Find(&stores).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat riwayat"))
			return
		}
	}
	storeName := make(map[string]string, len(stores))
	for _, s := range stores {
		storeName[s.ID] = s.Name
	}

	history := make([]gin.H, 0, len(transactions))
	for _, t := range transactions {
		history = append(history, gin.H{
			"transaction":  t,
			"store_name":   storeName[t.StoreID],
			"table_number": tableBySession[t.SessionID],
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Order history", history)
}

// UpdateOrderStatus -> seller/admin memindahkan status pesanan. Transisi
// di luar tabel status ditolak 400 dengan menyebut kedua status.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	next, err := models.ParseOrderStatus(body.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var trx models.Transaction
	if err := oc.DB.First(&trx, "id = ?", orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transaksi tidak ditemukan"))
		return
	}

	role := c.GetString("role")
	if role != models.RoleAdmin && !(role == models.RoleSeller && c.GetString("user_id") == trx.StoreID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if !trx.Status.CanTransition(next) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("transisi status %s -> %s tidak diizinkan", trx.Status, next))
		return
	}

	if err := oc.DB.Model(&trx).Update("status", next).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	trx.Status = next

	utils.InfoLogger.Printf("Order %s status -> %s", trx.ID, next)
	live.BroadcastOrderUpdate(trx)

	utils.RespondJSON(c, http.StatusOK, "Status pesanan diperbarui", trx)
}
