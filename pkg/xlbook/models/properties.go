package models

import "time"

// DocumentProperties is the content of docProps/core.xml.
type DocumentProperties struct {
	Title          string    `json:"title,omitempty"`
	Subject        string    `json:"subject,omitempty"`
	Creator        string    `json:"creator,omitempty"`
	Keywords       string    `json:"keywords,omitempty"`
	Description    string    `json:"description,omitempty"`
	LastModifiedBy string    `json:"last_modified_by,omitempty"`
	Category       string    `json:"category,omitempty"`
	Created        time.Time `json:"created,omitzero"`
	Modified       time.Time `json:"modified,omitzero"`
}

// AppProperties is the content of docProps/app.xml.
type AppProperties struct {
	Application       string `json:"application,omitempty"`
	AppVersion        string `json:"app_version,omitempty"`
	Company           string `json:"company,omitempty"`
	DocSecurity       int    `json:"doc_security"`
	ScaleCrop         bool   `json:"scale_crop"`
	LinksUpToDate     bool   `json:"links_up_to_date"`
	SharedDoc         bool   `json:"shared_doc"`
	HyperlinksChanged bool   `json:"hyperlinks_changed"`
}

// DefaultAppProperties returns the application properties of a new workbook.
func DefaultAppProperties() AppProperties {
	return AppProperties{
		Application: "Microsoft Excel",
		AppVersion:  "12.0000",
	}
}

// Theme keeps the theme part as raw bytes; an empty Raw means the default
// theme is written.
type Theme struct {
	Raw []byte `json:"-"`
}

// Loaded reports whether the theme came from a package.
func (t Theme) Loaded() bool {
	return len(t.Raw) > 0
}
