package cart

import "github.com/bcfoodnet/foodcourt-app/models"

// Line adalah satu baris keranjang: item, jumlah, dan catatan bebas.
type Line struct {
	Item     models.Item
	Quantity int
	Note     string
}

// pending menampung input yang belum masuk keranjang (stepper qty + catatan).
type pending struct {
	quantity int
	note     string
}

// Cart mengakumulasi pilihan buyer sebelum checkout. State eksplisit, tidak
// ada global; satu Cart per sesi browsing dan tidak disimpan ke database
// sampai checkout.
type Cart struct {
	lines   []Line
	pending map[string]*pending
}

func New() *Cart {
	return &Cart{pending: make(map[string]*pending)}
}

// SetQuantity menggeser jumlah pending sebuah item sebesar delta.
// Minimum nol, tanpa batas atas.
func (c *Cart) SetQuantity(itemID string, delta int) {
	p := c.pendingFor(itemID)
	p.quantity += delta
	if p.quantity < 0 {
		p.quantity = 0
	}
}

// SetNote menimpa catatan pending sebuah item.
func (c *Cart) SetNote(itemID, note string) {
	c.pendingFor(itemID).note = note
}

// Add memindahkan jumlah+catatan pending ke keranjang. No-op kalau jumlah
// pending nol. Item yang sudah ada di keranjang digabung: jumlah ditambah,
// catatan baru disambung dengan koma. Input pending direset setelahnya.
func (c *Cart) Add(item models.Item) {
	p := c.pendingFor(item.ID)
	if p.quantity == 0 {
		return
	}

	merged := false
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += p.quantity
			c.lines[i].Note = joinNotes(c.lines[i].Note, p.note)
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, Line{Item: item, Quantity: p.quantity, Note: p.note})
	}

	delete(c.pending, item.ID)
}

// Remove menghapus baris keranjang tanpa syarat.
func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total dihitung ulang setiap dipanggil dari isi keranjang saat ini,
// tidak pernah di-cache.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity * line.Item.Price
	}
	return total
}

// Lines mengembalikan salinan isi keranjang.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) pendingFor(itemID string) *pending {
	p, ok := c.pending[itemID]
	if !ok {
		p = &pending{}
		c.pending[itemID] = p
	}
	return p
}

func joinNotes(existing, added string) string {
	if added == "" {
		return existing
	}
	if existing == "" {
		return added
	}
	return existing + "," + added
}
