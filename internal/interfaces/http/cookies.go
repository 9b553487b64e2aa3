package http

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
)

// CookieConfig parámetros de la cookie de sesión.
type CookieConfig struct {
	Name   string
	Secure bool // false solo en development
}

const flashCookie = "flash"

func setSessionCookie(c *fiber.Ctx, cfg CookieConfig, token string, maxAge time.Duration) {
	ck := &fiber.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if maxAge > 0 {
		ck.Expires = time.Now().Add(maxAge)
		ck.MaxAge = int(maxAge / time.Second)
	} else {
		ck.SessionOnly = true
	}
	c.Cookie(ck)
}

func clearSessionCookie(c *fiber.Ctx, cfg CookieConfig) {
	expireCookie(c, cfg.Name, cfg.Secure)
}

func expireCookie(c *fiber.Ctx, name string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// setFlash guarda un mensaje de un solo uso para la próxima respuesta.
func setFlash(c *fiber.Ctx, kind, message string) {
	raw, err := json.Marshal(dto.FlashMessage{Kind: kind, Message: message})
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// popFlash lee y consume el mensaje flash pendiente.
func popFlash(c *fiber.Ctx) *dto.FlashMessage {
	v := c.Cookies(flashCookie)
	if v == "" {
		return nil
	}
	expireCookie(c, flashCookie, false)
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var f dto.FlashMessage
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}
