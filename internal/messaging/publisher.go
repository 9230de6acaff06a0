// internal/messaging/publisher.go
package messaging

import (
	"log"

	"github.com/streadway/amqp"
)

// Nama exchange dan routing key yang dipakai seluruh service.
const (
	Exchange = "store_events"

	KeyPreorderCreated   = "preorder.created"
	KeyPreorderConfirmed = "preorder.confirmed"
	KeyPaymentUpdated    = "payment.updated"
)

// Publisher adalah kontrak publikasi event domain. Service layer hanya
// bergantung pada interface ini sehingga mudah di-mock di test.
type Publisher interface {
	Publish(routingKey string, body []byte) error
}

// --- Implementasi AMQP ---

type amqpPublisher struct {
	ch *amqp.Channel
}

// NewAMQPPublisher membungkus channel RabbitMQ sebagai Publisher.
func NewAMQPPublisher(ch *amqp.Channel) Publisher {
	return &amqpPublisher{ch: ch}
}

func (p *amqpPublisher) Publish(routingKey string, body []byte) error {
	return p.ch.Publish(
		Exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// --- Implementasi no-op ---

type nopPublisher struct{}

// NewNopPublisher dipakai ketika RABBITMQ_URL tidak diset; event hanya
// dicatat ke log, service tetap berjalan.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(routingKey string, body []byte) error {
	log.Printf("[EVENT SKIP] %s: %s", routingKey, body)
	return nil
}

// DeclareExchange memastikan exchange 'store_events' ada.
func DeclareExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		Exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
}

// StartEventLogger menjalankan consumer yang mencatat semua event
// preorder/payment ke log operator.
func StartEventLogger(ch *amqp.Channel) {
	q, err := ch.QueueDeclare(
		"q.store.log", // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		log.Printf("Gagal declare queue 'q.store.log': %v", err)
		return
	}

	for _, key := range []string{"preorder.*", "payment.*"} {
		if err := ch.QueueBind(q.Name, key, Exchange, false, nil); err != nil {
			log.Printf("Gagal bind queue 'q.store.log' (%s): %v", key, err)
			return
		}
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		log.Printf("Gagal register consumer 'q.store.log': %v", err)
		return
	}

	log.Println("Goroutine (Logger) untuk event store dimulai...")
	for d := range msgs {
		log.Printf("[EVENT LOGGER] %s: %s", d.RoutingKey, d.Body)
	}
}
