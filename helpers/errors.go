package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"matkabook/games"
	"matkabook/services"
)

// ServiceError maps engine errors to the response envelope. Unknown errors
// become a generic 500 so internals never leak to callers.
func ServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInsufficientBalance):
		return JSONError(c, "INSUFFICIENT_BALANCE")
	case errors.Is(err, services.ErrOddsNotConfigured):
		return JSONError(c, "BETTING_UNAVAILABLE_FOR_GAME_TYPE")
	case errors.Is(err, services.ErrMarketClosed):
		return JSONError(c, "MARKET_CLOSED")
	case errors.Is(err, services.ErrMarketNotFound):
		return JSONErrorStatus(c, fiber.StatusNotFound, "MARKET_NOT_FOUND")
	case errors.Is(err, services.ErrUserNotFound):
		return JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
	case errors.Is(err, services.ErrUserBlocked):
		return JSONErrorStatus(c, fiber.StatusForbidden, "USER_BLOCKED")
	case errors.Is(err, services.ErrAlreadyResulted):
		return JSONErrorStatus(c, fiber.StatusConflict, "MARKET_ALREADY_RESULTED")
	case errors.Is(err, services.ErrRequestNotPending):
		return JSONErrorStatus(c, fiber.StatusConflict, "REQUEST_NOT_PENDING")
	case errors.Is(err, services.ErrOutOfRange):
		return JSONError(c, "VALUE_OUT_OF_RANGE")
	case errors.Is(err, services.ErrForbidden):
		return JSONErrorStatus(c, fiber.StatusForbidden, "NOT_ALLOWED")
	case errors.Is(err, games.ErrBadPrediction):
		return JSONError(c, "INVALID_PREDICTION")
	case errors.Is(err, games.ErrBadResult):
		return JSONError(c, "INVALID_RESULT_FORMAT")
	case errors.Is(err, games.ErrUnknownGameType):
		return JSONError(c, "UNKNOWN_GAME_TYPE")
	}
	return JSONErrorStatus(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
}
