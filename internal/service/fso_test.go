package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/kv"
	"github.com/fieldops/fieldforms/internal/service"
	"github.com/fieldops/fieldforms/internal/store"
)

var _ = Describe("fso service", func() {
	var (
		s   store.Store
		svc *service.FSOService
	)

	BeforeEach(func() {
		s = store.NewStore(kv.NewMemory())
		svc = service.NewFSOService(s, nil)
	})

	AfterEach(func() {
		Expect(s.Close()).To(BeNil())
	})

	Context("save", func() {
		It("prepends the upload to the feed", func() {
			created, err := svc.SaveFSO(context.TODO(), api.FSOData{
				ID:          "fso_1756500000000",
				OrderNumber: "ORD-100",
				Status:      api.FSOStatusCompleted,
			})
			Expect(err).To(BeNil())

			fsos, err := svc.ListFSOs(context.TODO())
			Expect(err).To(BeNil())
			Expect(fsos[0].ID).To(Equal(created.ID))
		})
	})

	Context("process upload", func() {
		It("stores a successful response", func() {
			created, err := svc.ProcessUpload(context.TODO(), &api.ProcessedFSOResponse{
				Success: true,
				Data:    &api.FSOData{ID: "fso_1756500000001", OrderNumber: "ORD-200"},
			})
			Expect(err).To(BeNil())
			Expect(created.OrderNumber).To(Equal("ORD-200"))
		})

		It("rejects a failed response", func() {
			_, err := svc.ProcessUpload(context.TODO(), &api.ProcessedFSOResponse{Success: false})
			Expect(err).ToNot(BeNil())
		})
	})

	Context("update status", func() {
		It("translates missing records", func() {
			_, err := svc.UpdateStatus(context.TODO(), "fso_nope", api.FSOStatusFailed)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("detail", func() {
		It("is deterministic for the same id", func() {
			first, err := svc.GetDetail(context.TODO(), "fso_001")
			Expect(err).To(BeNil())
			second, err := svc.GetDetail(context.TODO(), "fso_001")
			Expect(err).To(BeNil())
			Expect(second).To(Equal(first))

			Expect(first.ClientPhone).NotTo(BeEmpty())
			Expect(first.Technician).NotTo(BeEmpty())
			Expect(first.Coordinates).NotTo(BeNil())
			// The base record comes from the seeded feed.
			Expect(first.ClientName).To(Equal("María González"))
		})

		It("fabricates a placeholder for unknown ids", func() {
			detail, err := svc.GetDetail(context.TODO(), "fso_phantom")
			Expect(err).To(BeNil())
			Expect(detail.ID).To(Equal("fso_phantom"))
			Expect(detail.ClientName).To(Equal("Cliente de Ejemplo"))
			Expect(detail.Status).To(Equal(api.FSOStatusPending))

			again, err := svc.GetDetail(context.TODO(), "fso_phantom")
			Expect(err).To(BeNil())
			Expect(again).To(Equal(detail))
		})
	})

	Context("formatting", func() {
		It("renders byte counts like the feed", func() {
			Expect(service.FormatFileSize(0)).To(Equal("0 Bytes"))
			Expect(service.FormatFileSize(512)).To(Equal("512 Bytes"))
			Expect(service.FormatFileSize(2048)).To(Equal("2 KB"))
			Expect(service.FormatFileSize(2456789)).To(Equal("2.34 MB"))
		})

		It("renders timestamps in the es-MX short style", func() {
			t := time.Date(2025, time.August, 15, 10, 30, 0, 0, time.UTC)
			Expect(service.FormatDate(t)).To(Equal("15 ago 2025, 10:30"))
		})
	})
})
