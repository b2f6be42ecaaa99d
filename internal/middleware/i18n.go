// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/practicebay/practicebay-api/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// resolveLanguage picks the first preference of a header such as
// "zh-TW,zh;q=0.9,en;q=0.8".
func resolveLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLanguage
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW":
		return "zh_TW"
	case "en", "en-US", "en-GB":
		return "en"
	}

	if i18n.IsSupported(first) {
		return first
	}
	return i18n.DefaultLanguage
}
