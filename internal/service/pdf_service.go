package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"exmora-backend/internal/domain"
	apperrors "exmora-backend/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFService extracts plain text from uploaded PDF files.
type PDFService struct {
	logger  domain.Logger
	timeout time.Duration
}

// NewPDFService creates a new PDF service. A timeout of 0 disables the
// extraction deadline.
func NewPDFService(logger domain.Logger, timeout time.Duration) *PDFService {
	return &PDFService{
		logger:  logger,
		timeout: timeout,
	}
}

// ExtractText returns the concatenated text of every page, one page per
// line. Extraction runs in its own goroutine so it can be abandoned when
// the timeout or the caller's context expires; malformed or very large
// PDFs can wedge the underlying library for a long time.
func (p *PDFService) ExtractText(ctx context.Context, pdfBytes []byte) (string, error) {
	type result struct {
		text string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		text, err := p.extract(pdfBytes)
		resultCh <- result{text: text, err: err}
	}()

	var timeoutCh <-chan time.Time
	if p.timeout > 0 {
		timer := time.NewTimer(p.timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case res := <-resultCh:
		if res.err != nil {
			return "", apperrors.NewProcessingError("failed to extract text from PDF", res.err)
		}
		return res.text, nil
	case <-timeoutCh:
		p.logger.Warn("PDF extraction timed out", "timeout_sec", int(p.timeout.Seconds()))
		return "", apperrors.NewProcessingError("PDF extraction timed out", context.DeadlineExceeded)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *PDFService) extract(pdfBytes []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var text strings.Builder
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("Extracting PDF page", "page", pageNum+1, "total", numPages)
		pageText, err := doc.Text(pageNum)
		if err != nil {
			// A single unreadable page doesn't fail the document.
			p.logger.Warn("Failed to extract page text", "page", pageNum+1, "error", err)
			continue
		}
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	return text.String(), nil
}
