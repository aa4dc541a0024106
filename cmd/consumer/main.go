package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

const groupID = "campuscart-notification-consumer"

// The consumer turns marketplace events into user-facing notification
// lines. Real delivery channels (push, email) hang off this loop later;
// for now it prints what it would send.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}

	log.Println("Starting notification consumer...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(brokers, ","),
		GroupID: groupID,
		GroupTopics: []string{
			storage.EventOrderCreated,
			storage.EventOrderCancelled,
			storage.EventDeliveryClaimed,
			storage.EventDeliveryStatusChanged,
			storage.EventBorrowRequested,
			storage.EventBorrowDecided,
			storage.EventBorrowReturned,
		},
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Println("Closing Kafka reader...")
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to brokers %s", brokers)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutdown signal received, stopping consumer.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Println("Context cancelled, exiting message loop.")
					return
				}
				log.Printf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}

			var event storage.MarketplaceEvent
			if err := json.Unmarshal(m.Value, &event); err != nil {
				log.Printf("Skipping malformed event on %s at offset %d: %v", m.Topic, m.Offset, err)
				continue
			}

			fmt.Printf("\n--- NOTIFICATION ---\n")
			fmt.Printf("Topic:     %s\n", m.Topic)
			fmt.Printf("Timestamp: %s\n", m.Time.Format(time.RFC3339))
			fmt.Printf("Message:   %s\n", describe(event))
			fmt.Println("--- END NOTIFICATION ---")
		}
	}
}

func describe(e storage.MarketplaceEvent) string {
	switch e.Kind {
	case storage.EventOrderCreated:
		return fmt.Sprintf("Order %s placed for %d", e.OrderID, e.Amount)
	case storage.EventOrderCancelled:
		return fmt.Sprintf("Order %s was cancelled", e.OrderID)
	case storage.EventDeliveryClaimed:
		return fmt.Sprintf("Delivery %s picked by rider %s", e.DeliveryID, e.ActorID)
	case storage.EventDeliveryStatusChanged:
		return fmt.Sprintf("Delivery %s is now %s", e.DeliveryID, e.Status)
	case storage.EventBorrowRequested:
		return fmt.Sprintf("Borrow request %s for item %s (cost %d)", e.RequestID, e.ItemID, e.Amount)
	case storage.EventBorrowDecided:
		return fmt.Sprintf("Borrow request %s was %s", e.RequestID, e.Status)
	case storage.EventBorrowReturned:
		return fmt.Sprintf("Item %s returned on request %s", e.ItemID, e.RequestID)
	default:
		return fmt.Sprintf("Unknown event %s", e.Kind)
	}
}
