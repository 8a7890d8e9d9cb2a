package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const LoansTopic = "library.loans"

type Config struct {
	Enable     bool          `yaml:"enable" envconfig:"KAFKA_ENABLE" default:"false"`
	Addrs      []string      `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	ClientID   string        `yaml:"clientID" envconfig:"KAFKA_CLIENT_ID" default:"library"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"KAFKA_TIMEOUT" default:"5s"`
	Partitions int32         `yaml:"partitions" envconfig:"KAFKA_PARTITIONS" default:"3"`
	Replicas   int16         `yaml:"replicas" envconfig:"KAFKA_REPLICAS" default:"1"`
}

func (cfg Config) sarama() *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = 3
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	if cfg.Timeout > 0 {
		sc.Producer.Timeout = cfg.Timeout
		sc.Net.DialTimeout = cfg.Timeout
		sc.Admin.Timeout = cfg.Timeout
	}
	return sc
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Addrs, cfg.sarama())
	if err != nil {
		return nil, errors.Wrap(err, "sarama.NewSyncProducer")
	}
	return producer, nil
}

// EnsureTopic creates topic unless the cluster already has it.
func EnsureTopic(cfg Config, topic string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, cfg.sarama())
	if err != nil {
		return errors.Wrap(err, "sarama.NewClusterAdmin")
	}
	defer admin.Close()

	err = admin.CreateTopic(topic, &sarama.TopicDetail{
		NumPartitions:     cfg.Partitions,
		ReplicationFactor: cfg.Replicas,
	}, false)
	var topicErr *sarama.TopicError
	if errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists {
		return nil
	}
	return errors.Wrapf(err, "create topic %s", topic)
}
