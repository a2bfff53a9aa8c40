package handler

import "github.com/labstack/echo/v4"

// UsernameKey is the echo.Context key under which the auth middleware stores
// the authenticated username.
const UsernameKey = "username"

func ctxUsername(c echo.Context) string {
	username, _ := c.Get(UsernameKey).(string)
	return username
}
