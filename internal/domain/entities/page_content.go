package entities

// PageDocument is the loosely structured copy of a single page:
// section name -> field name -> text. No schema is enforced.
type PageDocument map[string]map[string]string

// PageContent maps a page key (e.g. "home", "about") to its document
type PageContent map[string]PageDocument

// Field returns the text for section/field, or "" when either is absent
func (d PageDocument) Field(section, field string) string {
	if d == nil {
		return ""
	}
	return d[section][field]
}
