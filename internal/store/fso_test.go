package store_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/kv"
	"github.com/fieldops/fieldforms/internal/store"
)

var _ = Describe("fso store", Ordered, func() {
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

	Context("list", func() {
		It("seeds the demo feed on first read and persists it", func() {
			fsos, err := s.FSO().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(fsos).To(HaveLen(3))
			Expect(fsos[0].ID).To(Equal("fso_001"))
			Expect(fsos[0].ClientName).To(Equal("María González"))
			Expect(fsos[0].ProcessedAt).ToNot(BeNil())
			Expect(fsos[2].Status).To(Equal(api.FSOStatusPending))

			// Seeded once, not on every read.
			_, err = db.Get(context.TODO(), "fso_data")
			Expect(err).To(BeNil())
		})

		It("does not reseed a corrupt feed", func() {
			Expect(db.Set(context.TODO(), "fso_data", []byte("][,"))).To(BeNil())
			fsos, err := s.FSO().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(fsos).To(BeEmpty())
		})
	})

	Context("create", func() {
		It("prepends new uploads", func() {
			created, err := s.FSO().Create(context.TODO(), api.FSOData{
				ID:          "fso_1756500000000",
				OrderNumber: "ORD-100",
				Status:      api.FSOStatusCompleted,
			})
			Expect(err).To(BeNil())
			Expect(created.ID).To(Equal("fso_1756500000000"))

			fsos, err := s.FSO().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(fsos).To(HaveLen(4))
			Expect(fsos[0].ID).To(Equal("fso_1756500000000"))
		})
	})

	Context("by status", func() {
		It("filters on the given status", func() {
			fsos, err := s.FSO().ByStatus(context.TODO(), api.FSOStatusProcessing)
			Expect(err).To(BeNil())
			Expect(fsos).To(HaveLen(1))
			Expect(fsos[0].ID).To(Equal("fso_002"))
		})

		It("returns the whole feed for an empty status", func() {
			fsos, err := s.FSO().ByStatus(context.TODO(), "")
			Expect(err).To(BeNil())
			Expect(fsos).To(HaveLen(3))
		})
	})

	Context("get", func() {
		It("returns ErrRecordNotFound for unknown ids", func() {
			_, err := s.FSO().Get(context.TODO(), "fso_nope")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("update status", func() {
		It("stamps ProcessedAt only when moving to completed", func() {
			fso, err := s.FSO().UpdateStatus(context.TODO(), "fso_003", api.FSOStatusProcessing)
			Expect(err).To(BeNil())
			Expect(fso.Status).To(Equal(api.FSOStatusProcessing))
			Expect(fso.ProcessedAt).To(BeNil())

			fso, err = s.FSO().UpdateStatus(context.TODO(), "fso_003", api.FSOStatusCompleted)
			Expect(err).To(BeNil())
			Expect(fso.ProcessedAt).ToNot(BeNil())
			Expect(*fso.ProcessedAt).To(BeTemporally("~", time.Now(), 5*time.Second))
		})

		It("returns ErrRecordNotFound for unknown ids", func() {
			_, err := s.FSO().UpdateStatus(context.TODO(), "fso_nope", api.FSOStatusFailed)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})
})
