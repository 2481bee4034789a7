package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/kv"
	"github.com/fieldops/fieldforms/internal/service"
	"github.com/fieldops/fieldforms/internal/store"
)

var _ = Describe("form service", func() {
	var (
		s   store.Store
		svc *service.FormService
	)

	BeforeEach(func() {
		s = store.NewStore(kv.NewMemory())
		svc = service.NewFormService(s, nil)
	})

	AfterEach(func() {
		Expect(s.Close()).To(BeNil())
	})

	Context("save submitted", func() {
		It("stores the payload as completed", func() {
			form, err := svc.SaveSubmitted(context.TODO(), api.FormData{
				OrderNumber:    "ORD-1",
				TechnicianName: "Pedro",
				ClientName:     "Ana",
			})
			Expect(err).To(BeNil())
			Expect(form.Status).To(Equal(api.FormStatusCompleted))
			Expect(form.FormData.ID).To(Equal(form.ID))
			Expect(form.TechnicianName).To(Equal("Pedro"))
		})

		It("exposes the same path as a wizard persist hook", func() {
			hook := svc.PersistHook()
			Expect(hook(context.TODO(), api.FormData{OrderNumber: "ORD-2"}, &api.SubmitResult{Success: true})).To(BeNil())

			forms, err := svc.ListForms(context.TODO())
			Expect(err).To(BeNil())
			Expect(forms).To(HaveLen(1))
			Expect(forms[0].OrderNumber).To(Equal("ORD-2"))
		})
	})

	Context("save draft", func() {
		It("stores a partial payload as draft", func() {
			form, err := svc.SaveDraft(context.TODO(), api.FormData{
				OrderNumber:    "ORD-5",
				TechnicianName: "Pedro",
				ClientName:     "Ana",
			})
			Expect(err).To(BeNil())
			Expect(form.Status).To(Equal(api.FormStatusDraft))
			Expect(form.FormData.ID).To(Equal(form.ID))
		})
	})

	Context("get", func() {
		It("translates missing records", func() {
			_, err := svc.GetForm(context.TODO(), "form_nope")
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("delete", func() {
		It("translates missing records", func() {
			err := svc.DeleteForm(context.TODO(), "form_nope")
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("removes an existing record", func() {
			form, err := svc.SaveSubmitted(context.TODO(), api.FormData{OrderNumber: "ORD-3"})
			Expect(err).To(BeNil())
			Expect(svc.DeleteForm(context.TODO(), form.ID)).To(BeNil())
		})
	})

	Context("update", func() {
		It("applies a payload patch through the service", func() {
			form, err := svc.SaveSubmitted(context.TODO(), api.FormData{OrderNumber: "ORD-4", ClientName: "Ana"})
			Expect(err).To(BeNil())

			updated, err := svc.UpdateForm(context.TODO(), form.ID, store.FormUpdate{
				FormData: map[string]any{"nombreCliente": "Luisa"},
			})
			Expect(err).To(BeNil())
			Expect(updated.ClientName).To(Equal("Luisa"))
		})
	})
})
