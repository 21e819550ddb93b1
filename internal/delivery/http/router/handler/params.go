package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for business dates.
const dateLayout = "2006-01-02"

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid id parameter")
	}

	return id, nil
}

// parseDateRange reads the from/to query parameters. Missing values
// default to the last 30 days ending today.
func parseDateRange(c echo.Context) (from, to time.Time, err error) {
	now := time.Now()
	to = now
	from = now.AddDate(0, 0, -30)

	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, errors.Wrap(err, "invalid from date")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, errors.Wrap(err, "invalid to date")
		}
	}

	return from, to, nil
}

// parseActiveOnly reads the activeOnly query parameter, defaulting to true
// so pickers only see usable records unless the caller asks for everything.
func parseActiveOnly(c echo.Context) bool {
	return c.QueryParam("activeOnly") != "false"
}
