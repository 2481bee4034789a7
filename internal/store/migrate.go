package store

import api "github.com/fieldops/fieldforms/api/v1alpha1"

// Migrate backfills payloads written before the payload carried its own
// record ID. It reports whether anything changed so the caller can write
// the list back exactly once.
func Migrate(forms []api.StoredForm) ([]api.StoredForm, bool) {
	changed := false
	for i := range forms {
		if forms[i].FormData.ID == "" && forms[i].ID != "" {
			forms[i].FormData.ID = forms[i].ID
			changed = true
		}
	}
	return forms, changed
}
