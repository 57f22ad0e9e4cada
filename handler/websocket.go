package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	kitchenRooms = make(map[uint]map[*websocket.Conn]bool)
	mu           sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// KitchenEvent is pushed to the kitchen display whenever an order changes.
type KitchenEvent struct {
	Type       string    `json:"type"` // order_created | item_updated | order_completed
	OrderID    uint      `json:"orderId"`
	OrderCode  string    `json:"orderCode"`
	ItemID     uint      `json:"itemId,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PublishKitchenEvent fans the event out through redis so every app instance
// reaches its connected kitchen displays.
func PublishKitchenEvent(ownerId uint, event KitchenEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal kitchen event: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), fmt.Sprintf("kitchen:%d", ownerId), payload).Err(); err != nil {
		log.Printf("failed to publish kitchen event: %v", err)
	}
}

// KitchenSocket joins a kitchen display to its owner's room and relays redis
// messages until the client disconnects.
func KitchenSocket(c *websocket.Conn) {
	ownerIdStr := c.Params("ownerId")
	id64, _ := strconv.ParseUint(ownerIdStr, 10, 64)
	ownerId := uint(id64)

	defer func() {
		mu.Lock()
		if kitchenRooms[ownerId] != nil {
			delete(kitchenRooms[ownerId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if kitchenRooms[ownerId] == nil {
		kitchenRooms[ownerId] = make(map[*websocket.Conn]bool)
	}
	kitchenRooms[ownerId][c] = true
	mu.Unlock()

	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("kitchen:%d", ownerId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range kitchenRooms[ownerId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(kitchenRooms[ownerId], conn)
			}
		}
		mu.Unlock()
	}
}
