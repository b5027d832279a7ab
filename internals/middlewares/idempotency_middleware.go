package middlewares

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// IdempotencyMiddleware guards state-changing routes behind an
// Idempotency-Key header backed by Redis SETNX. Requests without the
// header pass through. A nil client disables the guard entirely.
func IdempotencyMiddleware(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPut && c.Method() != fiber.MethodPatch {
			return c.Next()
		}

		key := c.Get("Idempotency-Key")
		if key == "" {
			return c.Next()
		}

		idemKey := fmt.Sprintf("idempotency:%s", key)
		ctx := c.UserContext()

		// Already processed or in flight?
		if _, err := rdb.Get(ctx, idemKey).Result(); err == nil {
			c.Set("X-Idempotency-Hit", "true")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "request already processed",
			})
		} else if err != redis.Nil {
			// Redis down: let the request through rather than failing it
			log.Printf("[WARN] idempotency check skipped: %v", err)
			return c.Next()
		}

		// Lock with a short TTL so a crash never leaves a forever-lock.
		acquired, err := rdb.SetNX(ctx, idemKey, "PROCESSING", 10*time.Second).Result()
		if err != nil || !acquired {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "concurrent request",
			})
		}

		err = c.Next()

		if err == nil && c.Response().StatusCode() < 400 {
			rdb.Set(ctx, idemKey, "COMPLETED", 24*time.Hour)
		} else {
			// failed request may be retried with the same key
			rdb.Del(ctx, idemKey)
		}
		return err
	}
}

// NewRedisClient connects and pings; returns nil when REDIS_ADDR is unset
// so the idempotency guard degrades to a no-op.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return client
}
