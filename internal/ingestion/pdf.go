// Package ingestion turns uploaded documents, manual entries, and fetched
// job postings into the text and structures the interview pipeline consumes.
package ingestion

import (
	"bytes"
	"io"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/rs/zerolog/log"
)

var pdfMagic = []byte("%PDF-")

// ExtractPDFText extracts plain text from PDF bytes. The reader library
// panics on some malformed documents, so extraction runs behind a recover
// and surfaces every failure as an ExtractionError with a stable reason.
func ExtractPDFText(data []byte) (text string, err error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", &ExtractionError{Reason: ReasonInvalidFormat}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Msg("pdf reader panicked")
			text = ""
			err = &ExtractionError{Reason: ReasonUnknown}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Reason: classifyPDFError(err), Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Reason: classifyPDFError(err), Cause: err}
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", &ExtractionError{Reason: ReasonUnknown, Cause: err}
	}

	extracted := CleanText(sb.String())
	if extracted == "" {
		return "", &ExtractionError{Reason: ReasonUnknown}
	}
	return extracted, nil
}

func classifyPDFError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "encrypt"):
		return ReasonEncrypted
	case strings.Contains(msg, "malformed") || strings.Contains(msg, "invalid"):
		return ReasonInvalidFormat
	default:
		return ReasonUnknown
	}
}
