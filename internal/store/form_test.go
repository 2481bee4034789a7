package store_test

import (
	"context"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/kv"
	"github.com/fieldops/fieldforms/internal/store"
)

// countingKV counts writes so tests can assert a load path stayed read-only.
type countingKV struct {
	kv.KV
	sets int
}

func (c *countingKV) Set(ctx context.Context, key string, value []byte) error {
	c.sets++
	return c.KV.Set(ctx, key, value)
}

var _ = Describe("form store", Ordered, func() {
	var (
		db kv.KV
		s  store.Store
	)

	BeforeEach(func() {
		db = kv.NewMemory()
		s = store.NewStore(db)
	})

	AfterEach(func() {
		Expect(s.Close()).To(BeNil())
	})

	Context("create", func() {
		It("generates an id and mirrors it into the payload", func() {
			form, err := s.Form().Create(context.TODO(), store.FormCreate{
				FormData: api.FormData{OrderNumber: "ORD-1", ClientName: "Ana"},
				Status:   api.FormStatusCompleted,
			})
			Expect(err).To(BeNil())
			Expect(form.ID).To(HavePrefix("form_"))
			Expect(form.FormData.ID).To(Equal(form.ID))
			Expect(form.OrderNumber).To(Equal("ORD-1"))
			Expect(form.ClientName).To(Equal("Ana"))
			Expect(form.Status).To(Equal(api.FormStatusCompleted))
			Expect(form.CreatedAt).To(BeTemporally("~", time.Now(), 5*time.Second))
		})

		It("defaults the status to draft", func() {
			form, err := s.Form().Create(context.TODO(), store.FormCreate{})
			Expect(err).To(BeNil())
			Expect(form.Status).To(Equal(api.FormStatusDraft))
		})

		It("appends in creation order", func() {
			first, err := s.Form().Create(context.TODO(), store.FormCreate{})
			Expect(err).To(BeNil())
			second, err := s.Form().Create(context.TODO(), store.FormCreate{})
			Expect(err).To(BeNil())

			forms, err := s.Form().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(forms).To(HaveLen(2))
			Expect(forms[0].ID).To(Equal(first.ID))
			Expect(forms[1].ID).To(Equal(second.ID))
		})
	})

	Context("list", func() {
		It("returns an empty list on a fresh install", func() {
			forms, err := s.Form().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(forms).To(BeEmpty())
		})

		It("treats a corrupt document as empty", func() {
			Expect(db.Set(context.TODO(), "stored_forms", []byte("{not json"))).To(BeNil())
			forms, err := s.Form().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(forms).To(BeEmpty())
		})

		It("backfills missing payload ids and writes back once", func() {
			legacy := []api.StoredForm{{
				ID:       "form_1700000000000_abcdefghi",
				FormData: api.FormData{OrderNumber: "ORD-9"},
			}}
			raw, err := json.Marshal(legacy)
			Expect(err).To(BeNil())
			Expect(db.Set(context.TODO(), "stored_forms", raw)).To(BeNil())

			forms, err := s.Form().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(forms[0].FormData.ID).To(Equal("form_1700000000000_abcdefghi"))

			// The migrated document is already durable.
			raw, err = db.Get(context.TODO(), "stored_forms")
			Expect(err).To(BeNil())
			var persisted []api.StoredForm
			Expect(json.Unmarshal(raw, &persisted)).To(BeNil())
			Expect(persisted[0].FormData.ID).To(Equal("form_1700000000000_abcdefghi"))
		})

		It("does not repeat the migration write on later reads", func() {
			counting := &countingKV{KV: kv.NewMemory()}
			cs := store.NewStore(counting)

			legacy := []api.StoredForm{{
				ID:       "form_1700000000000_abcdefghi",
				FormData: api.FormData{OrderNumber: "ORD-9"},
			}}
			raw, err := json.Marshal(legacy)
			Expect(err).To(BeNil())
			Expect(counting.Set(context.TODO(), "stored_forms", raw)).To(BeNil())

			first, err := cs.Form().List(context.TODO())
			Expect(err).To(BeNil())
			writes := counting.sets

			second, err := cs.Form().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(second).To(Equal(first))
			Expect(counting.sets).To(Equal(writes))
		})
	})

	Context("get", func() {
		It("finds a record by id", func() {
			created, err := s.Form().Create(context.TODO(), store.FormCreate{})
			Expect(err).To(BeNil())

			form, err := s.Form().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(form.ID).To(Equal(created.ID))
		})

		It("returns ErrRecordNotFound for unknown ids", func() {
			_, err := s.Form().Get(context.TODO(), "form_nope")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("update", func() {
		It("merges the payload patch and keeps untouched fields", func() {
			created, err := s.Form().Create(context.TODO(), store.FormCreate{
				FormData: api.FormData{OrderNumber: "ORD-1", ClientName: "Ana", DropMeters: "45"},
			})
			Expect(err).To(BeNil())

			form, err := s.Form().Update(context.TODO(), created.ID, store.FormUpdate{
				FormData: map[string]any{"nombreCliente": "Luisa", "id": "form_spoofed"},
			})
			Expect(err).To(BeNil())
			Expect(form.FormData.ClientName).To(Equal("Luisa"))
			Expect(form.FormData.DropMeters).To(Equal("45"))
			Expect(form.ClientName).To(Equal("Luisa"))
			// The patch cannot rewrite the payload identity.
			Expect(form.FormData.ID).To(Equal(created.ID))
		})

		It("applies status, rating and comments", func() {
			created, err := s.Form().Create(context.TODO(), store.FormCreate{})
			Expect(err).To(BeNil())

			status := api.FormStatusPending
			rating := 4
			comments := "revisar drop"
			form, err := s.Form().Update(context.TODO(), created.ID, store.FormUpdate{
				Status:       &status,
				ClientRating: &rating,
				Comments:     &comments,
			})
			Expect(err).To(BeNil())
			Expect(form.Status).To(Equal(api.FormStatusPending))
			Expect(*form.ClientRating).To(Equal(4))
			Expect(form.Comments).To(Equal("revisar drop"))
			Expect(form.UpdatedAt).To(BeTemporally(">=", form.CreatedAt))
		})

		It("returns ErrRecordNotFound for unknown ids", func() {
			_, err := s.Form().Update(context.TODO(), "form_nope", store.FormUpdate{})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("delete", func() {
		It("removes the record and reports it", func() {
			created, err := s.Form().Create(context.TODO(), store.FormCreate{})
			Expect(err).To(BeNil())

			removed, err := s.Form().Delete(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(removed).To(BeTrue())

			forms, err := s.Form().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(forms).To(BeEmpty())
		})

		It("reports false for unknown ids without failing", func() {
			removed, err := s.Form().Delete(context.TODO(), "form_nope")
			Expect(err).To(BeNil())
			Expect(removed).To(BeFalse())
		})
	})
})
