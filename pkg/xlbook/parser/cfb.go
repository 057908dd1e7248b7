package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
)

// ErrEncryptedPackage indicates a password-protected workbook. Encrypted
// xlsx files are stored inside a compound file instead of a zip archive.
var ErrEncryptedPackage = errors.New("workbook is encrypted")

// checkCompoundFile rejects compound files: encrypted packages and legacy
// binary workbooks. Anything else is left to the zip reader.
func checkCompoundFile(xlsxPath string) error {
	file, err := os.Open(xlsxPath)
	if err != nil {
		return err
	}
	defer file.Close()

	doc, err := mscfb.New(file)
	if err != nil {
		// Not a compound file.
		return nil
	}
	for {
		entry, err := doc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if entry.Name == "EncryptedPackage" {
			return ErrEncryptedPackage
		}
	}
	return fmt.Errorf("%w: legacy binary workbook", ErrInvalidFormat)
}
