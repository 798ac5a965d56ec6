//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	ikafka "github.com/dinet/pedidos-importacion/internal/kafka"
	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/dinet/pedidos-importacion/internal/testutil"
	"github.com/dinet/pedidos-importacion/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// El resumen publicado llega con la clave de idempotencia como key del mensaje.
func TestPublisher_PublicaYSeLee_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "cargas-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	pub := ikafka.NewPublisher(ikafka.PublisherConfig{Brokers: kf.Brokers, Topic: topic}, logg)
	t.Cleanup(func() { _ = pub.Close() })

	evento := ports.EventoCarga{
		ClaveIdempotencia: "carga-tc-1",
		ArchivoHash:       "abc",
		TotalProcesados:   3,
		Guardados:         2,
		ConError:          1,
	}
	require.NoError(t, pub.PublicarResumen(ctx, evento))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	t.Cleanup(func() { _ = r.Close() })

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "carga-tc-1", string(msg.Key))

	var got ports.EventoCarga
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, evento, got)
}

// Dos cargas con la misma clave caen en la misma partición (key = clave).
func TestPublisher_MismaClaveMismaParticion_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "cargas-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-particion-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	pub := ikafka.NewPublisher(ikafka.PublisherConfig{Brokers: kf.Brokers, Topic: topic}, logg)
	t.Cleanup(func() { _ = pub.Close() })

	for i := 0; i < 2; i++ {
		require.NoError(t, pub.PublicarResumen(ctx, ports.EventoCarga{
			ClaveIdempotencia: "carga-rep",
			ArchivoHash:       "h",
			TotalProcesados:   i,
		}))
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	t.Cleanup(func() { _ = r.Close() })

	m1, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	m2, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, m1.Partition, m2.Partition)
}
