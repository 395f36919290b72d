package kafka

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"
)

// ProducerAPI is the publishing interface services depend on.
type ProducerAPI interface {
	Publish(key string, message []byte) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Printf("[KafkaProducer] initialized topic=%s brokers=%v", topic, brokers)
	return &Producer{writer: w, topic: topic}
}

// Publish writes a single keyed message to the producer's topic.
func (p *Producer) Publish(key string, message []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: message,
	}
	return p.writer.WriteMessages(context.Background(), msg)
}

func (p *Producer) Close() error {
	log.Printf("[KafkaProducer] closing writer topic=%s", p.topic)
	return p.writer.Close()
}
