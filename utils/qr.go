package utils

import (
	"bytes"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const ticketQRPrefix = "CINEMA-TICKET:"

// GenerateQRCode tạo QR code và trả về bytes PNG
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TicketQRContent is what the door scanner reads back.
func TicketQRContent(ticketID string) string {
	return ticketQRPrefix + ticketID
}

func GenerateTicketQRCode(ticketID string, size int) ([]byte, error) {
	return GenerateQRCode(TicketQRContent(ticketID), size)
}
