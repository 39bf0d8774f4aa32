package kafka_test

import (
	"context"
	"testing"

	"hotelinv/config"
	"hotelinv/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	BookingID string `json:"booking_id"`
	Nights    int    `json:"nights"`
}

func TestToKafkaMessageAndDecode(t *testing.T) {
	msg := kafka.Message{Key: "DEMO000000001", Value: payload{BookingID: "DEMO000000001", Nights: 2}}

	kafkaMsg, err := msg.ToKafkaMessage()
	assert.NoError(t, err)
	assert.Equal(t, []byte("DEMO000000001"), kafkaMsg.Key)

	decoded, err := kafka.Decode[payload](kafkaMsg)
	assert.NoError(t, err)
	assert.Equal(t, payload{BookingID: "DEMO000000001", Nights: 2}, decoded)
}

func TestDecodeInvalidPayload(t *testing.T) {
	_, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestClientWithoutBrokers(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k"}), kafka.ErrNoBrokers)
	assert.ErrorIs(t, client.Consume(context.Background(), "", "topic", nil), kafka.ErrNoBrokers)
	assert.NoError(t, client.Close())
}
