package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"portfolioapi/docs"
)

// SwaggerUI serves the API docs with the host and scheme of the current request.
// defaultHost is used when the request carries no Host header.
func SwaggerUI(defaultHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		host, scheme := swaggerTarget(c.Get("Host"), c.Get("X-Forwarded-Proto"), c.Protocol(), defaultHost)
		docs.SwaggerInfo.Host = host
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

func swaggerTarget(host, forwardedProto, protocol, defaultHost string) (string, string) {
	if host == "" {
		host = defaultHost
	}
	scheme := protocol
	if forwardedProto != "" {
		scheme = strings.TrimSpace(strings.Split(forwardedProto, ",")[0])
	}
	return host, scheme
}
