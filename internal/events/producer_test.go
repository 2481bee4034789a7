package events

import (
	"bytes"
	"context"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type captureWriter struct {
	lock   sync.Mutex
	topics []string
	events []cloudevents.Event
}

func (w *captureWriter) Write(_ context.Context, topic string, e cloudevents.Event) error {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.topics = append(w.topics, topic)
	w.events = append(w.events, e)
	return nil
}

func (w *captureWriter) Close(_ context.Context) error {
	return nil
}

func (w *captureWriter) count() int {
	w.lock.Lock()
	defer w.lock.Unlock()
	return len(w.events)
}

var _ = Describe("producer", func() {
	It("envelopes and forwards buffered messages", func() {
		w := &captureWriter{}
		ep := NewEventProducer(w)

		err := ep.Write(context.TODO(), FormSubmittedKind, bytes.NewBufferString(`{"form_id":"form_1"}`))
		Expect(err).To(BeNil())

		Eventually(w.count).Should(Equal(1))

		w.lock.Lock()
		defer w.lock.Unlock()
		Expect(w.topics[0]).To(Equal(defaultTopic))
		Expect(w.events[0].Type()).To(Equal(FormSubmittedKind))
		Expect(w.events[0].Source()).To(Equal("fieldforms"))
		Expect(w.events[0].ID()).NotTo(BeEmpty())
		Expect(w.events[0].Data()).To(MatchJSON(`{"form_id":"form_1"}`))

		Expect(ep.Close()).To(BeNil())
	})

	It("honors a custom topic", func() {
		w := &captureWriter{}
		ep := NewEventProducer(w, WithOutputTopic("ops.events"))

		err := ep.Write(context.TODO(), FSOStatusChangedKind, bytes.NewBufferString(`{"fso_id":"fso_001","status":"completed"}`))
		Expect(err).To(BeNil())

		Eventually(w.count).Should(Equal(1))

		w.lock.Lock()
		defer w.lock.Unlock()
		Expect(w.topics[0]).To(Equal("ops.events"))

		Expect(ep.Close()).To(BeNil())
	})
})

var _ = Describe("buffer", func() {
	It("keeps FIFO order", func() {
		b := newBuffer()
		b.PushBack(&message{Kind: FormSubmittedKind, Data: []byte("msg1")})
		b.PushBack(&message{Kind: FormSubmittedKind, Data: []byte("msg2")})
		Expect(b.Size()).To(Equal(2))

		Expect(b.Pop().Data).To(Equal([]byte("msg1")))
		Expect(b.Pop().Data).To(Equal([]byte("msg2")))
		Expect(b.Pop()).To(BeNil())
		Expect(b.Size()).To(Equal(0))
	})
})
