package recommend

import (
	"fmt"
	"strings"
	"time"

	"vendor-discovery-service/internal/domain"
)

// periodOf buckets an hour of day into the descriptive period used in
// prompts and fallback messages: [5,11) Pagi, [11,15) Siang, [15,18) Sore,
// otherwise Malam.
func periodOf(hour int) string {
	switch {
	case hour >= 5 && hour < 11:
		return "Pagi"
	case hour >= 11 && hour < 15:
		return "Siang"
	case hour >= 15 && hour < 18:
		return "Sore"
	default:
		return "Malam"
	}
}

// vendorLines renders nearby vendors as "name (category) - Nm" joined by
// commas, the listing form embedded in prompts.
func vendorLines(vendors []domain.VendorProximity) string {
	parts := make([]string, 0, len(vendors))
	for _, v := range vendors {
		parts = append(parts, fmt.Sprintf("%s (%s) - %dm", v.Vendor.Name, v.Vendor.Category, v.DistanceM))
	}
	return strings.Join(parts, ", ")
}

func buyerPrompt(w domain.WeatherSnapshot, center domain.Coordinate, nearby []domain.VendorProximity) string {
	var b strings.Builder
	b.WriteString("Kamu adalah asisten kuliner pintar. ")
	fmt.Fprintf(&b, "Cuaca saat ini: %s, suhu %.0f°C. ", w.Description, w.TemperatureC)
	fmt.Fprintf(&b, "Lokasi user di koordinat: %s. ", center)
	fmt.Fprintf(&b, "Pedagang keliling terdekat: %s. ", vendorLines(nearby))
	b.WriteString("Berikan 1 rekomendasi makanan/minuman yang cocok dengan cuaca ini dan tersedia dari pedagang terdekat. ")
	b.WriteString(`Jawab dalam format JSON saja: { "recommendation": "Nama makanan/minuman", "reason": "Alasan singkat kenapa cocok dengan cuaca", "shop_name": "Nama pedagang yang recommended" }.`)
	return b.String()
}

func insightPrompt(category, place string, now time.Time, period string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kamu adalah konsultan strategi lapangan untuk pedagang keliling (%s). \n", category)
	fmt.Fprintf(&b, "Saat ini adalah hari %s, Pukul %s (%s). \n", now.Format("Monday, 02 January 2006"), now.Format("15:04"), period)
	fmt.Fprintf(&b, "Posisi pedagang saat ini terdeteksi di: %s. \n\n", place)
	fmt.Fprintf(&b, "TUGAS: Analisa area %s tersebut. \n", place)
	fmt.Fprintf(&b, "Berikan 1 saran lokasi spesifik (nama tempat umum/gedung/taman) DALAM RADIUS 500 METER dari alamat tersebut yang potensial ramai pembeli pada jam %s %s ini. \n\n", now.Format("15:04"), period)
	b.WriteString("Contoh logika: Jika malam, cari pasar malam/alun-alun. Jika siang, cari sekolah/kantor. \n")
	b.WriteString("JANGAN menyarankan tempat yang jauh (beda kecamatan/kota). \n\n")
	fmt.Fprintf(&b, `Jawab JSON saja: { "message": "Kalimat penyemangat + alasan singkat (Sebutkan 'Selamat %s')", "target_location": "Nama Tempat Spesifik" }.`, period)
	return b.String()
}

func marketPrompt(category string, at domain.Coordinate, competitors []domain.VendorProximity) string {
	lines := vendorLines(competitors)
	if lines == "" {
		lines = "(tidak ada kompetitor terdeteksi)"
	}

	var b strings.Builder
	b.WriteString("Kamu adalah Konsultan Bisnis UMKM Kaki Lima. \n")
	fmt.Fprintf(&b, "Saya pedagang kategori: '%s'. \n", category)
	fmt.Fprintf(&b, "Lokasi saya di koordinat: %s. \n\n", at)
	b.WriteString("DATA KOMPETITOR (Radius 1KM dari saya):\n")
	fmt.Fprintf(&b, "%s \n\n", lines)
	b.WriteString("TUGASMU:\n")
	b.WriteString("1. Analisa Saturation: Apa jenis jualan yang sudah terlalu banyak/jenuh di sini?\n")
	b.WriteString("2. Analisa Opportunity: Apa jenis jualan yang BELUM ADA tapi berpotensi laku?\n")
	b.WriteString("3. Berikan saran strategi buat saya (ganti menu, atau pertahankan tapi tambah variasi).\n\n")
	b.WriteString("JAWAB DALAM JSON SAJA:\n")
	b.WriteString(`{ "saturated": "Ringkasan apa yang kebanyakan", "opportunity": "Saran jualan yang belum ada tapi dicari orang", "strategy": "Saran spesifik buat saya", "score": 80 }`)
	b.WriteString("\n(score adalah skor potensi lokasi 0-100)")
	return b.String()
}
