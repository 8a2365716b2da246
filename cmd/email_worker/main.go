package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/messaging"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/mailer"
	mailtpl "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/mailer/templates"
)

// errBadJob marks messages that will never succeed and must not be requeued.
var errBadJob = errors.New("bad email job")

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	if err := messaging.DeclareQueue(ch, cfg.RabbitMQEmailQueue); err != nil {
		logger.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	sender := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			settle(logger, msg, deliver(ctx, sender, msg.Body))
		}
		close(done)
	}()

	helpers.LogInfo(logger, "email worker listening", logrus.Fields{"queue": cfg.RabbitMQEmailQueue})
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// settle acks delivered jobs, drops bad ones and requeues a failed send once.
// A redelivered message that fails again is dropped so an outage cannot spin
// the queue.
func settle(logger *logrus.Logger, msg amqp.Delivery, err error) {
	fields := logrus.Fields{"delivery_tag": msg.DeliveryTag, "redelivered": msg.Redelivered}
	switch {
	case err == nil:
		_ = msg.Ack(false)
	case errors.Is(err, errBadJob):
		helpers.LogError(logger, "dropping email job", err, fields)
		_ = msg.Nack(false, false)
	case msg.Redelivered:
		helpers.LogError(logger, "send failed again, dropping", err, fields)
		_ = msg.Nack(false, false)
	default:
		helpers.LogWarn(logger, "send failed, requeueing", err, fields)
		_ = msg.Nack(false, true)
	}
}

// deliver decodes one queued job, renders its template when it names one and
// hands the result to the sender.
func deliver(ctx context.Context, sender mailer.Sender, body []byte) error {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: %v", errBadJob, err)
	}
	if !job.Valid() {
		return fmt.Errorf("%w: missing recipient or content", errBadJob)
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", errBadJob, job.Template, err)
		}
		subject, text, html = s, t, h
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return sender.Send(c, job.To, subject, text, html)
}
