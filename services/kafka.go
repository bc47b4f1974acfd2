package services

import (
	"encoding/json"

	"github.com/galpartuk/Ironvest-assignment/config"
	"github.com/galpartuk/Ironvest-assignment/dtos/request"

	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2/log"
)

// SendValidationEventToKafka publishes a verification outcome for
// downstream consumers. Best-effort: callers treat a returned error as
// telemetry loss, never as a flow failure.
func SendValidationEventToKafka(event *request.ValidationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	producer, err := sarama.NewSyncProducer(config.Conf.Application.Kafka.Brokers, nil)
	if err != nil {
		log.Error("Failed to create sync producer: ", err)
		return err
	}
	defer producer.Close()

	msg := &sarama.ProducerMessage{
		Topic: config.Conf.Application.Kafka.Topic,
		Value: sarama.StringEncoder(data),
	}
	partition, offset, err := producer.SendMessage(msg)
	if err != nil {
		log.Error("Failed to send validation event: ", err)
		return err
	}
	log.Infof("Validation event sent to partition %d at offset %d", partition, offset)
	return nil
}
