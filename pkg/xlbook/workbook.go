package xlbook

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// book is the swappable state of a Workbook.
type book struct {
	sheets      []*Sheet
	activeSheet int

	relationships     relationshipSet
	rootRelationships relationshipSet
	manifest          *Manifest

	formats formatPool
	styles  []*models.Style
	strings stringPool

	properties    models.DocumentProperties
	appProperties models.AppProperties
	theme         models.Theme
	thumbnail     []byte

	encoding   string
	guessTypes bool
	dataOnly   bool
	readOnly   bool
}

func newBook() *book {
	return &book{
		manifest: newManifest(),
		formats:  newFormatPool(),
		encoding: DefaultEncoding,
	}
}

// Workbook is the aggregate root of a spreadsheet package. Sheets refer back
// to it by instance id, so a Workbook can be copied or swapped without
// patching pointers.
type Workbook struct {
	id  uuid.UUID
	log zerolog.Logger
	d   *book
}

// New returns a workbook with one sheet named "Sheet", the styles and theme
// relationships, the default manifest entries, the default format and the
// "Normal" style.
func New() *Workbook {
	wb, err := NewWithOptions(DefaultOptions())
	if err != nil {
		// DefaultOptions always validates.
		panic(err)
	}
	return wb
}

// NewWithOptions is New with explicit options.
func NewWithOptions(opts Options) (*Workbook, error) {
	wb := newEmpty(opts)

	if _, err := wb.CreateSheet("Sheet"); err != nil {
		return nil, err
	}
	wb.CreateRelationship("rId2", "styles.xml", models.RelationshipStyles)
	wb.CreateRelationship("rId3", "theme/theme1.xml", models.RelationshipTheme)

	m := wb.d.manifest
	m.AddDefaultType("rels", models.ContentTypeRelationships)
	m.AddDefaultType("xml", models.ContentTypeXML)
	m.AddOverrideType("/xl/workbook.xml", models.ContentTypeWorkbook)
	m.AddOverrideType("/xl/theme/theme1.xml", models.ContentTypeTheme)
	m.AddOverrideType("/xl/styles.xml", models.ContentTypeStyles)
	m.AddOverrideType("/docProps/core.xml", models.ContentTypeCoreProperties)
	m.AddOverrideType("/docProps/app.xml", models.ContentTypeExtendedProperties)

	wb.AddFormat(models.DefaultFormat())
	wb.CreateStyle("Normal").BuiltinID = 0
	wb.d.appProperties = models.DefaultAppProperties()

	if err := wb.applyOptions(opts); err != nil {
		return nil, err
	}
	return wb, nil
}

// newEmpty returns a workbook without any parts. Open fills it from a package.
func newEmpty(opts Options) *Workbook {
	return &Workbook{
		id:  uuid.New(),
		log: opts.logger(),
		d:   newBook(),
	}
}

// applyOptions sets the flags last so that ReadOnly does not block the
// construction of the default parts.
func (wb *Workbook) applyOptions(opts Options) error {
	if opts.Encoding != "" {
		if err := wb.SetEncoding(opts.Encoding); err != nil {
			return err
		}
	}
	wb.d.guessTypes = opts.GuessTypes
	wb.d.dataOnly = opts.DataOnly
	wb.d.readOnly = opts.ReadOnly
	return nil
}

// ID returns the instance id sheets use to refer to their workbook.
func (wb *Workbook) ID() uuid.UUID {
	return wb.id
}

// Manifest returns the content-type manifest.
func (wb *Workbook) Manifest() *Manifest {
	return wb.d.manifest
}

// Properties returns the core document properties.
func (wb *Workbook) Properties() models.DocumentProperties {
	return wb.d.properties
}

// SetProperties replaces the core document properties.
func (wb *Workbook) SetProperties(p models.DocumentProperties) {
	wb.d.properties = p
}

// AppProperties returns the extended application properties.
func (wb *Workbook) AppProperties() models.AppProperties {
	return wb.d.appProperties
}

// SetAppProperties replaces the extended application properties.
func (wb *Workbook) SetAppProperties(p models.AppProperties) {
	wb.d.appProperties = p
}

// Theme returns the theme part.
func (wb *Workbook) Theme() models.Theme {
	return wb.d.theme
}

// SetTheme replaces the theme part.
func (wb *Workbook) SetTheme(t models.Theme) {
	wb.d.theme = t
}

// Thumbnail returns the thumbnail image bytes, nil if there is none.
func (wb *Workbook) Thumbnail() []byte {
	return wb.d.thumbnail
}

// SetThumbnail replaces the thumbnail image bytes.
func (wb *Workbook) SetThumbnail(b []byte) {
	wb.d.thumbnail = b
}

// GuessTypes reports whether the cell layer should infer value types.
func (wb *Workbook) GuessTypes() bool { return wb.d.guessTypes }

// SetGuessTypes sets the guess-types flag.
func (wb *Workbook) SetGuessTypes(v bool) { wb.d.guessTypes = v }

// DataOnly reports whether the cell layer keeps cached values only.
func (wb *Workbook) DataOnly() bool { return wb.d.dataOnly }

// SetDataOnly sets the data-only flag.
func (wb *Workbook) SetDataOnly(v bool) { wb.d.dataOnly = v }

// ReadOnly reports whether sheet directory mutations are rejected.
func (wb *Workbook) ReadOnly() bool { return wb.d.readOnly }

// SetReadOnly sets the read-only flag.
func (wb *Workbook) SetReadOnly(v bool) { wb.d.readOnly = v }

// Encoding returns the preferred MIME name of the workbook encoding, or its
// IANA name when it has none.
func (wb *Workbook) Encoding() string {
	return wb.d.encoding
}

// SetEncoding validates name against the IANA registry and stores its
// preferred MIME name.
func (wb *Workbook) SetEncoding(name string) error {
	canonical, err := canonicalEncoding(name)
	if err != nil {
		return opError("set encoding", name, err)
	}
	wb.d.encoding = canonical
	return nil
}

// DecodeString converts b from the workbook encoding to UTF-8.
func (wb *Workbook) DecodeString(b []byte) (string, error) {
	enc, err := ianaindex.IANA.Encoding(wb.d.encoding)
	if err != nil || enc == nil {
		return "", opError("decode", wb.d.encoding, ErrInvalidEncoding)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", wb.d.encoding, err)
	}
	return string(out), nil
}

func canonicalEncoding(name string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", ErrInvalidEncoding
	}
	if canonical, err := ianaindex.MIME.Name(enc); err == nil {
		return canonical, nil
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return "", ErrInvalidEncoding
	}
	return canonical, nil
}

func (wb *Workbook) checkWritable(op, subject string) error {
	if wb.d.readOnly {
		return opError(op, subject, ErrReadOnly)
	}
	return nil
}
