package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Root redirects to the language section best matching the request's
// Accept-Language header
func Root(c *fiber.Ctx, supportedLanguages []string) error {
	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = language.Make(lang)
	}

	preferred, _, _ := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	tag, _, _ := language.NewMatcher(tags).Match(preferred...)
	base, _ := tag.Base()

	return c.Redirect("/" + base.String())
}
