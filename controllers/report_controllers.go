package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

const topItemsLimit = 10

type topItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

// PeriodRange memetakan nama periode ke rentang waktu [start, end).
// "week" mulai Senin, "month" dari tanggal 1 sampai akhir bulan.
func PeriodRange(period string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "today":
		return today, today.AddDate(0, 0, 1), nil
	case "week":
		offset := int(today.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7 // Minggu dihitung akhir pekan, bukan awal
		}
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), nil
	}
	return time.Time{}, time.Time{}, errors.New("periode tidak dikenal: pilih today, week, atau month")
}

// GetSalesReport -> ringkasan penjualan toko untuk satu periode: total,
// pecahan tunai/non-tunai, dan item terlaris. Hanya transaksi SELESAI yang
// dihitung. Agregasi dilakukan in-memory setelah dua bulk read.
func (rc *ReportController) GetSalesReport(c *gin.Context) {
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

	period := c.DefaultQuery("period", "today")
	start, end, err := PeriodRange(period, time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var transactions []models.Transaction
	if err := rc.DB.
		Where("store_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			storeID, models.StatusDone, start, end).
		Find(&transactions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat laporan"))
		return
	}

	total, cash, nonCash := 0, 0, 0
	trxIDs := make([]string, 0, len(transactions))
	for _, t := range transactions {
		total += t.Total
		if t.PaymentKind == models.PaymentCash {
			cash += t.Total
		} else {
			nonCash += t.Total
		}
		trxIDs = append(trxIDs, t.ID)
	}

	var lines []models.OrderLine
	if len(trxIDs) > 0 {
		if err := rc.DB.Preload("Item").
			Where("transaction_id IN ?", trxIDs).
			Find(&lines).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat laporan"))
			return
		}
	}

	byItem := make(map[string]*topItem)
	for _, line := range lines {
		entry, ok := byItem[line.ItemID]
		if !ok {
			entry = &topItem{ItemID: line.ItemID, Name: line.Item.Name}
			byItem[line.ItemID] = entry
		}
		entry.Quantity += line.Quantity
		entry.Revenue += line.Subtotal
	}

	top := make([]topItem, 0, len(byItem))
	for _, entry := range byItem {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > topItemsLimit {
		top = top[:topItemsLimit]
	}

	utils.RespondJSON(c, http.StatusOK, "Sales report", gin.H{
		"period":      period,
		"start":       start,
		"end":         end,
		"order_count": len(transactions),
		"total":       total,
		"cash":        cash,
		"non_cash":    nonCash,
		"top_items":   top,
	})
}
