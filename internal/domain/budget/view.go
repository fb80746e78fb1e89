package budget

import "io"

// View renders a Summary. Each output format (JSON, spreadsheet) is one View.
type View interface {
	ContentType() string
	FileExtension() string
	Render(w io.Writer, s Summary) error
}
