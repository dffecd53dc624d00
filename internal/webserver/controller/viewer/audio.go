package viewer

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// PageTurnSound answers with the procedurally synthesized page-turn
// sound as a WAV buffer. The sound is generated, not an asset: no audio
// files ship with the application.
func (v *Controller) PageTurnSound(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	wav, err := session.PageTurnWAV()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	c.Set("Cache-Control", "private, max-age=86400")
	c.Response().Header.Set(fiber.HeaderContentType, "audio/wav")
	c.Response().BodyWriter().Write(wav)
	return nil
}
