package format

import "time"

// DisplayDate converts an ISO calendar date (2006-01-02) to the
// day/month/year form shown on the document. Unparseable input is
// returned unchanged; date entry is best-effort, never an error.
func DisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
