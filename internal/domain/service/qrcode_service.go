package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders review share codes
type QRCodeService interface {
	// GenerateReviewQR generates a PNG QR code pointing at the review's share link
	GenerateReviewQR(reviewID uuid.UUID) ([]byte, error)
}
