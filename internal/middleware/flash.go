package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

func AddFlash(c *fiber.Ctx, store *session.Store, message string, category string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set("flash_message", message)
	sess.Set("flash_category", category)
	_ = sess.Save()
}

// ConsumeFlash returns the pending notice, if any, and clears it.
func ConsumeFlash(c *fiber.Ctx, store *session.Store) *Flash {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}
	message, ok := sess.Get("flash_message").(string)
	if !ok || message == "" {
		return nil
	}
	category, _ := sess.Get("flash_category").(string)
	sess.Delete("flash_message")
	sess.Delete("flash_category")
	_ = sess.Save()
	return &Flash{Message: message, Category: category}
}
