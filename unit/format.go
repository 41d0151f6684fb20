package unit

// Format is an fmt template used to render floored magnitudes.
// Templates are not validated; a bad verb shows up as fmt's %! marker.
type Format struct {
	template string
}

func NewFormat(template string) Format {
	return Format{template: template}
}

// Template returns the raw template. The zero Format renders like %d.
func (f Format) Template() string {
	if f.template == "" {
		return "%d"
	}
	return f.template
}

// IsZero reports whether f was built from an empty template.
func (f Format) IsZero() bool {
	return f.template == ""
}

func (f Format) String() string {
	return f.Template()
}

// Digits returns the single, double and triple digit presets: 9, 09, 009.
func Digits() (single, double, triple Format) {
	return NewFormat("%d"), NewFormat("%02d"), NewFormat("%03d")
}
