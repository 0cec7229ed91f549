package kafka

import (
	"context"
	"log"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"tradevault/internal/consts"
)

// Kafka 生产者服务
// 定义接口，方便测试和替换
type ProducerService interface {
	ProduceIngestReport(ctx context.Context, key []byte, report interface{}) error
	Close()
}

type kafkaProducer struct {
	reportWriter *kafka.Writer // 同步入库报告
}

func NewKafkaProducer(brokerURL string) ProducerService {
	reportWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokerURL),
		Topic:    consts.KafkaTopicIngestReport,
		Balancer: &kafka.LeastBytes{}, // 保证写入负载均衡
	}
	return &kafkaProducer{reportWriter: reportWriter}
}

// ProduceIngestReport 序列化入库报告并写入 Kafka
// key使用用户id，确保同一用户的报告进入同一个 Partition（有序性）
func (p *kafkaProducer) ProduceIngestReport(ctx context.Context, key []byte, report interface{}) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return p.reportWriter.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: payload,
	})
}

func (p *kafkaProducer) Close() {
	if err := p.reportWriter.Close(); err != nil {
		log.Printf("Error closing report writer: %v", err)
	}
}
