package utils

import "fmt"

// FormatRupiah memformat nominal (rupiah utuh) dengan pemisah ribuan.
// Contoh: 15000 -> "Rp 15.000"
func FormatRupiah(amount int) string {
	if amount < 0 {
		return "-" + FormatRupiah(-amount)
	}

	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "Rp " + string(out)
}
