package share

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller"
)

func (s *Controller) shareURL(c *fiber.Ctx, uuid string) string {
	return fmt.Sprintf("%s://%s%s/%s/shared/%s",
		c.Protocol(),
		s.config.Hostname,
		controller.UrlPort(c.Protocol(), s.config.Port),
		c.Params("lang", "en"),
		uuid,
	)
}
