package models

import (
	"encoding/json"
	"strings"
	"time"
)

// CertificateRequest describes one certificate to mint for one order line.
type CertificateRequest struct {
	OrderID        string `json:"orderId" validate:"required"`
	LineNo         int    `json:"lineNo" validate:"gte=0"`
	CustomerEmail  string `json:"customerEmail" validate:"required,email"`
	CustomerName   string `json:"customerName"`
	ProductName    string `json:"productName" validate:"required"`
	ProductImage   string `json:"productImage"`
	Artisan        string `json:"artisan"`
	Location       string `json:"location"`
	Motif          string `json:"motif"`
	ProcessingTime string `json:"processingTime"`
}

// MotifFromName returns the text after "Motif " in a product name, or the whole name.
func MotifFromName(name string) string {
	if _, after, ok := strings.Cut(name, "Motif "); ok && after != "" {
		return after
	}

	return name
}

type CertificateAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type CertificateMetadata struct {
	Name            string                 `json:"name"`
	Image           string                 `json:"image"`
	Description     string                 `json:"description"`
	Attributes      []CertificateAttribute `json:"attributes"`
	ExternalURL     string                 `json:"external_url"`
	BackgroundColor string                 `json:"background_color"`
}

// Metadata builds the certificate payload issued on the given date.
func (r *CertificateRequest) Metadata(issued time.Time, externalURL string) CertificateMetadata {
	return CertificateMetadata{
		Name:        "Batik Giriloyo - " + r.ProductName,
		Image:       r.ProductImage,
		Description: "Sertifikat Keaslian Batik Tulis dari " + r.Artisan + ", " + r.Location,
		Attributes: []CertificateAttribute{
			{TraitType: "Motif", Value: r.Motif},
			{TraitType: "Pengrajin", Value: r.Artisan},
			{TraitType: "Lokasi", Value: r.Location},
			{TraitType: "Waktu Proses", Value: r.ProcessingTime},
			{TraitType: "Order ID", Value: r.OrderID},
			{TraitType: "Pemilik", Value: r.CustomerName},
			{TraitType: "Tanggal Penerbitan", Value: issued.Format(time.DateOnly)},
			{TraitType: "Jenis", Value: "Batik Tulis Authentic"},
			{TraitType: "Status", Value: "Certified Authentic"},
		},
		ExternalURL:     externalURL,
		BackgroundColor: "FEF3C7",
	}
}

type MintResult struct {
	NFTID           string `json:"nftId"`
	TransactionHash string `json:"transactionHash"`
	ContractAddress string `json:"contractAddress"`
}

// MintJob asks for the certificates of an order. An empty LineNos means every line.
type MintJob struct {
	OrderID string `json:"orderId"`
	LineNos []int  `json:"lineNos,omitempty"`
	// Retry allows failed lines to be claimed again.
	Retry bool `json:"retry"`
}

type MintSummary struct {
	OrderID   string `json:"orderId"`
	Attempted int    `json:"attempted"`
	Minted    int    `json:"minted"`
	Failed    int    `json:"failed"`
	Skipped   int    `json:"skipped"`
}

type NFTItemStatus struct {
	LineNo          int       `json:"lineNo"`
	ProductName     string    `json:"productName"`
	Status          NFTStatus `json:"status"`
	NFTID           string    `json:"nftId,omitempty"`
	TransactionHash string    `json:"transactionHash,omitempty"`
	ContractAddress string    `json:"contractAddress,omitempty"`
	Error           string    `json:"error,omitempty"`
	MintAttempts    int       `json:"mintAttempts"`
}

type NFTOrderStatus struct {
	OrderID     string          `json:"orderId"`
	OrderStatus OrderStatus     `json:"orderStatus"`
	NFTStatus   NFTStatus       `json:"nftStatus"`
	NFTIDs      []string        `json:"nftIds"`
	Items       []NFTItemStatus `json:"items"`
}

func NFTStatusOf(o *Order) *NFTOrderStatus {
	items := make([]NFTItemStatus, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, NFTItemStatus{
			LineNo:          it.LineNo,
			ProductName:     it.Name,
			Status:          it.NFTStatus,
			NFTID:           it.NFTID,
			TransactionHash: it.NFTTransactionHash,
			ContractAddress: it.NFTContractAddress,
			Error:           it.NFTError,
			MintAttempts:    it.MintAttempts,
		})
	}

	return &NFTOrderStatus{
		OrderID:     o.OrderID,
		OrderStatus: o.Status,
		NFTStatus:   o.NFTStatus(),
		NFTIDs:      o.NFTIDs(),
		Items:       items,
	}
}

// CertificateDetails is one minted NFT as reported by the minting service.
type CertificateDetails struct {
	LineNo  int             `json:"lineNo"`
	NFTID   string          `json:"nftId"`
	Details json.RawMessage `json:"details,omitempty"`
	Error   string          `json:"error,omitempty"`
}
