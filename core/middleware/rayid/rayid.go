package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header carries the request id in requests and responses.
	Header = "X-Ray-ID"
	// LocalKey is the fiber.Ctx locals key holding the request id.
	LocalKey = "ray_id"
)

// New returns a middleware that assigns every request a ray id. An id sent by
// the client is kept, otherwise a random UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
