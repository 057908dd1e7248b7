package xlbook

import "github.com/ukaji3/xlbook-go/pkg/xlbook/models"

// Manifest is the content-type registry of a package. Entries keep their
// insertion order; each extension and each part path appears at most once.
type Manifest struct {
	defaults  []models.DefaultType
	overrides []models.OverrideType
}

func newManifest() *Manifest {
	return &Manifest{}
}

// AddDefaultType maps extension to contentType, replacing an existing mapping
// in place.
func (m *Manifest) AddDefaultType(extension, contentType string) {
	for i := range m.defaults {
		if m.defaults[i].Extension == extension {
			m.defaults[i].ContentType = contentType
			return
		}
	}
	m.defaults = append(m.defaults, models.DefaultType{Extension: extension, ContentType: contentType})
}

// AddOverrideType maps partName to contentType, replacing an existing mapping
// in place.
func (m *Manifest) AddOverrideType(partName, contentType string) {
	for i := range m.overrides {
		if m.overrides[i].PartName == partName {
			m.overrides[i].ContentType = contentType
			return
		}
	}
	m.overrides = append(m.overrides, models.OverrideType{PartName: partName, ContentType: contentType})
}

// RemoveOverrideType drops the override for partName. It reports whether one
// existed. The order of the remaining entries is kept.
func (m *Manifest) RemoveOverrideType(partName string) bool {
	for i := range m.overrides {
		if m.overrides[i].PartName == partName {
			m.overrides = append(m.overrides[:i], m.overrides[i+1:]...)
			return true
		}
	}
	return false
}

// HasDefault reports whether extension has a default type.
func (m *Manifest) HasDefault(extension string) bool {
	_, ok := m.DefaultType(extension)
	return ok
}

// DefaultType returns the media type declared for extension.
func (m *Manifest) DefaultType(extension string) (string, bool) {
	for _, d := range m.defaults {
		if d.Extension == extension {
			return d.ContentType, true
		}
	}
	return "", false
}

// HasOverride reports whether partName has an override.
func (m *Manifest) HasOverride(partName string) bool {
	_, ok := m.OverrideType(partName)
	return ok
}

// OverrideType returns the media type declared for partName.
func (m *Manifest) OverrideType(partName string) (string, bool) {
	for _, o := range m.overrides {
		if o.PartName == partName {
			return o.ContentType, true
		}
	}
	return "", false
}

// Defaults returns the default entries in insertion order.
func (m *Manifest) Defaults() []models.DefaultType {
	return append([]models.DefaultType(nil), m.defaults...)
}

// Overrides returns the override entries in insertion order.
func (m *Manifest) Overrides() []models.OverrideType {
	return append([]models.OverrideType(nil), m.overrides...)
}

func (m *Manifest) clone() *Manifest {
	return &Manifest{
		defaults:  m.Defaults(),
		overrides: m.Overrides(),
	}
}
