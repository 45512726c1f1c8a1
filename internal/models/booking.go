package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TourPackage is a batik workshop visit to the village, priced per participant.
type TourPackage struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Duration        string   `json:"duration"`
	Price           int64    `json:"price"`
	MinParticipants int      `json:"minParticipants"`
	Features        []string `json:"features"`
	Popular         bool     `json:"popular"`
}

const MinTourParticipants = 20

var tourPackages = []TourPackage{
	{
		ID:              "half-day",
		Title:           "Paket Half Day",
		Duration:        "4-5 Jam",
		Price:           150000,
		MinParticipants: MinTourParticipants,
		Features:        []string{"Workshop Membatik 2 jam", "Tour Sentra Batik", "Welcome Drink", "Sertifikat & Hasil Karya"},
	},
	{
		ID:              "full-day",
		Title:           "Paket Full Day",
		Duration:        "8-9 Jam",
		Price:           275000,
		MinParticipants: MinTourParticipants,
		Features: []string{"Workshop Membatik 4 jam", "Makan Siang Tradisional", "Trekking Desa & Watu Gagak",
			"Homestay Experience", "Sertifikat & Hasil Karya"},
		Popular: true,
	},
	{
		ID:              "study-tour",
		Title:           "Paket Study Tour",
		Duration:        "2 Hari 1 Malam",
		Price:           450000,
		MinParticipants: MinTourParticipants,
		Features: []string{"Workshop Batik Intensif", "Menginap di Homestay", "3x Makan (Lunch, Dinner, Breakfast)",
			"Cultural Night", "Dokumentasi Profesional", "Sertifikat & Souvenir"},
	},
}

// TourPackages returns a copy of the package list.
func TourPackages() []TourPackage {
	out := make([]TourPackage, len(tourPackages))
	for i, p := range tourPackages {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}

	return out
}

func FindTourPackage(id string) (TourPackage, bool) {
	idx := slices.IndexFunc(tourPackages, func(p TourPackage) bool { return p.ID == id })
	if idx < 0 {
		return TourPackage{}, false
	}

	return tourPackages[idx], true
}

type BookingRequest struct {
	PackageID    string `json:"packageType" validate:"required,oneof=half-day full-day study-tour"`
	VisitDate    string `json:"visitDate" validate:"required,datetime=2006-01-02"`
	Participants int    `json:"participants" validate:"required,min=20,max=500"`
	GroupName    string `json:"groupName" validate:"max=160"`
	Institution  string `json:"institution" validate:"max=160"`
	ContactName  string `json:"contactName" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=32"`
	Notes        string `json:"notes" validate:"max=1000"`
}

type BookingStatus string

const BookingStatusRequested BookingStatus = "requested"

type TourBooking struct {
	ID           uuid.UUID     `json:"id"`
	PackageID    string        `json:"packageType"`
	PackageTitle string        `json:"packageTitle"`
	VisitDate    time.Time     `json:"visitDate"`
	Participants int           `json:"participants"`
	GroupName    string        `json:"groupName,omitempty"`
	Institution  string        `json:"institution,omitempty"`
	ContactName  string        `json:"contactName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Notes        string        `json:"notes,omitempty"`
	UnitPrice    int64         `json:"unitPrice"`
	Total        int64         `json:"total"`
	Status       BookingStatus `json:"status"`
	WhatsAppURL  string        `json:"whatsappUrl,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Summary is the booking text handed to WhatsApp and the admin email.
func (b *TourBooking) Summary() string {
	return fmt.Sprintf("Halo! Saya ingin booking:\n\nPaket: %s\nTanggal: %s\nJumlah: %d peserta\nNama Kontak: %s\nEmail: %s\nHP: %s\n\nTotal: %s",
		b.PackageTitle, b.VisitDate.Format(time.DateOnly), b.Participants, b.ContactName, b.Email, b.Phone, FormatRupiah(b.Total))
}

// FormatRupiah renders whole rupiah with dot thousands separators, e.g. "Rp 5.500.000".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign, amount = "-", -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return sign + "Rp " + b.String()
}
