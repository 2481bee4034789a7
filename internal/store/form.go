package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/formid"
	"github.com/fieldops/fieldforms/internal/kv"
)

const formsKey = "stored_forms"

type Form interface {
	List(ctx context.Context) ([]api.StoredForm, error)
	Create(ctx context.Context, formCreate FormCreate) (*api.StoredForm, error)
	Get(ctx context.Context, id string) (*api.StoredForm, error)
	Update(ctx context.Context, id string, update FormUpdate) (*api.StoredForm, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// FormCreate carries the fields a caller may set on a new record. The
// record ID is generated when left empty.
type FormCreate struct {
	ID       string
	FormData api.FormData
	Status   api.FormStatus
}

// FormUpdate is a partial update. Nil fields are left untouched; FormData
// is deep-merged into the stored payload rather than replacing it.
type FormUpdate struct {
	Status       *api.FormStatus
	ClientRating *int
	Comments     *string
	FormData     map[string]any
}

type FormStore struct {
	db  kv.KV
	log *zap.SugaredLogger
}

// Make sure we conform to Form interface
var _ Form = (*FormStore)(nil)

func NewForm(db kv.KV) Form {
	return &FormStore{db: db, log: zap.S().Named("form_store")}
}

func (s *FormStore) List(ctx context.Context) ([]api.StoredForm, error) {
	forms, _, err := s.load(ctx)
	return forms, err
}

func (s *FormStore) Create(ctx context.Context, formCreate FormCreate) (*api.StoredForm, error) {
	forms, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	id := formCreate.ID
	if id == "" {
		id = formid.Generate()
	}
	data := formCreate.FormData
	data.ID = id

	status := formCreate.Status
	if status == "" {
		status = api.FormStatusDraft
	}

	now := time.Now().UTC()
	form := api.StoredForm{
		ID:                id,
		FormData:          data,
		OrderNumber:       data.OrderNumber,
		ClientName:        data.ClientName,
		TechnicianName:    data.TechnicianName,
		CompanyInspection: data.InspectionCompany,
		FormType:          data.FSOType,
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	forms = append(forms, form)
	if err := s.save(ctx, forms); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *FormStore) Get(ctx context.Context, id string) (*api.StoredForm, error) {
	forms, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].ID == id {
			return &forms[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *FormStore) Update(ctx context.Context, id string, update FormUpdate) (*api.StoredForm, error) {
	forms, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range forms {
		if forms[i].ID != id {
			continue
		}

		if update.Status != nil {
			forms[i].Status = *update.Status
		}
		if update.ClientRating != nil {
			forms[i].ClientRating = update.ClientRating
		}
		if update.Comments != nil {
			forms[i].Comments = *update.Comments
		}
		if update.FormData != nil {
			merged, err := mergeFormData(forms[i].FormData, update.FormData)
			if err != nil {
				return nil, err
			}
			// The payload keeps the record's identity no matter what
			// the patch says.
			merged.ID = id
			forms[i].FormData = merged
			forms[i].OrderNumber = merged.OrderNumber
			forms[i].ClientName = merged.ClientName
			forms[i].TechnicianName = merged.TechnicianName
			forms[i].CompanyInspection = merged.InspectionCompany
			forms[i].FormType = merged.FSOType
		}
		forms[i].UpdatedAt = time.Now().UTC()

		if err := s.save(ctx, forms); err != nil {
			return nil, err
		}
		return &forms[i], nil
	}
	return nil, ErrRecordNotFound
}

func (s *FormStore) Delete(ctx context.Context, id string) (bool, error) {
	forms, _, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := forms[:0]
	removed := false
	for _, form := range forms {
		if form.ID == id {
			removed = true
			continue
		}
		kept = append(kept, form)
	}
	if !removed {
		return false, nil
	}
	return true, s.save(ctx, kept)
}

// load reads and decodes the full list, running the lazy migration and
// writing back once when it changed anything. A corrupt document is logged
// and treated as empty rather than bricking the list.
func (s *FormStore) load(ctx context.Context) ([]api.StoredForm, bool, error) {
	raw, err := s.db.Get(ctx, formsKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []api.StoredForm{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var forms []api.StoredForm
	if err := json.Unmarshal(raw, &forms); err != nil {
		s.log.Errorw("discarding corrupt form list", "error", err)
		return []api.StoredForm{}, false, nil
	}

	forms, migrated := Migrate(forms)
	if migrated {
		if err := s.save(ctx, forms); err != nil {
			return nil, false, err
		}
	}
	return forms, migrated, nil
}

func (s *FormStore) save(ctx context.Context, forms []api.StoredForm) error {
	raw, err := json.Marshal(forms)
	if err != nil {
		return errors.Wrap(err, "encoding form list")
	}
	return s.db.Set(ctx, formsKey, raw)
}

// mergeFormData applies a field-name patch onto the stored payload via a
// JSON round trip, so patch keys use the same names as the wire format.
func mergeFormData(current api.FormData, patch map[string]any) (api.FormData, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return current, errors.Wrap(err, "encoding form data")
	}
	var base map[string]any
	if err := json.Unmarshal(raw, &base); err != nil {
		return current, errors.Wrap(err, "decoding form data")
	}
	for k, v := range patch {
		base[k] = v
	}
	raw, err = json.Marshal(base)
	if err != nil {
		return current, errors.Wrap(err, "encoding merged form data")
	}
	var merged api.FormData
	if err := json.Unmarshal(raw, &merged); err != nil {
		return current, errors.Wrap(err, "decoding merged form data")
	}
	return merged, nil
}
