package kafka

import (
	"context"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/kimnamhyeong01/bookstore-service/pkg/breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const EventsTopic = "bookstore.events"

type Config struct {
	Addrs   []string       `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	Topic   string         `yaml:"topic" envconfig:"KAFKA_TOPIC" default:"bookstore.events"`
	Breaker breaker.Config `yaml:"breaker"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher encodes values as JSON and sends them to a single topic.
// Calls go through a circuit breaker so an unavailable broker fails fast.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       *breaker.Breaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, cfg Config, log *zap.Logger) *Publisher {
	topic := cfg.Topic
	if topic == "" {
		topic = EventsTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       breaker.New(cfg.Breaker),
		log:      log.Named("kafka"),
	}
}

func (p *Publisher) Publish(ctx context.Context, key string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "producer.SendMessage")
		}
		p.log.Debug("event published",
			zap.String("key", key),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
