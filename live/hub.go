package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/bcfoodnet/foodcourt-app/models"
)

// Event types
const (
	EventOrderCreated = "order_created"
	EventOrderUpdate  = "order_update"
	EventStoreNotif   = "store_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client websocket (buyer, seller, admin) beserta rolenya.
// Buyer dan seller tetap boleh polling lewat REST; hub ini hanya jalur
// notifikasi tambahan agar perubahan status terlihat tanpa refresh.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient menambahkan connection ke set dengan role-nya.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient melepaskan dan menutup connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated disiarkan setelah checkout berhasil.
func BroadcastOrderCreated(trx models.Transaction) {
	broadcast(Message{
		Event: EventOrderCreated,
		Data:  trx,
	})
}

// BroadcastOrderUpdate disiarkan setiap status transaksi berubah.
func BroadcastOrderUpdate(trx models.Transaction) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  trx,
	})
}

// BroadcastStoreNotification mengirim pesan teks untuk seller.
func BroadcastStoreNotification(message string) {
	broadcast(Message{
		Event: EventStoreNotif,
		Data:  message,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for conn := range hub.clients {
		// Client yang gagal ditulis dibiarkan; reader loop-nya yang akan
		// meng-unregister saat koneksi putus.
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}
