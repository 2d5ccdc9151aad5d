package qrcode

import (
	"strings"

	"mimapa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultShareBaseURL = "mimapa://"
	reviewSharePath     = "resenas/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	sharePrefix          string
}

// NewQRCodeService creates a QR code service encoding share links under baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if baseURL == "" {
		baseURL = defaultShareBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		sharePrefix:          baseURL + reviewSharePath,
	}
}

// ShareLink returns the text a review QR code encodes
func (s *qrcodeService) ShareLink(reviewID uuid.UUID) string {
	return s.sharePrefix + reviewID.String()
}

// GenerateReviewQR renders the review share link as a PNG
func (s *qrcodeService) GenerateReviewQR(reviewID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareLink(reviewID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
