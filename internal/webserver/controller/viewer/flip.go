package viewer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/flip"
)

// FlipNext begins a flip to the next page. At the last page, or while
// another flip is still animating, the request is a no-op.
func (v *Controller) FlipNext(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}
	session.Flip().FlipNext()
	return c.JSON(state(session))
}

// FlipPrev begins a flip to the previous page, a no-op at the first page
func (v *Controller) FlipPrev(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}
	session.Flip().FlipPrev()
	return c.JSON(state(session))
}

// TurnTo jumps straight to the passed 1-based page number, clamped into
// the document's range
func (v *Controller) TurnTo(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	session.Flip().TurnToPage(number)
	return c.JSON(state(session))
}

// CompleteFlip reports that the client finished the flip animation
func (v *Controller) CompleteFlip(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}
	session.Flip().CompleteFlip()
	return c.JSON(state(session))
}

// AutoPlay toggles timed automatic page advance
func (v *Controller) AutoPlay(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	enabled, err := strconv.ParseBool(c.FormValue("enabled"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	session.Flip().SetAutoPlay(enabled)
	return c.JSON(state(session))
}

// Zoom updates the zoom percentage of the session, clamped by the
// controller
func (v *Controller) Zoom(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	percentage, err := strconv.Atoi(c.FormValue("percentage"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	session.Flip().SetZoom(percentage)
	return c.JSON(state(session))
}

// Fullscreen records whether the viewer is currently full screen
func (v *Controller) Fullscreen(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	enabled, err := strconv.ParseBool(c.FormValue("enabled"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	session.SetFullscreen(enabled)
	return c.JSON(state(session))
}

// Press dispatches a keyboard key to the session's keymap. Only keys
// bound while the viewer is active have an effect; anything else is
// reported back as unbound.
func (v *Controller) Press(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	key := c.Params("key")
	if key != flip.KeyArrowLeft && key != flip.KeyArrowRight {
		return fiber.ErrBadRequest
	}

	bound := session.Keymap().Press(key)
	return c.JSON(fiber.Map{
		"bound": bound,
		"state": state(session),
	})
}
