package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/courtside-stats/internal/analytics"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/service"
	"github.com/maxviazov/courtside-stats/pkg/response"
)

const gameKey = "game"

var registerTagsOnce sync.Once

// useJSONFieldNames makes validator report fields by their JSON name.
func useJSONFieldNames() {
	registerTagsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst, writing a 400 when that fails.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.WriteError(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return service.NewInvalidInputError([]service.FieldError{{Field: "body", Message: "malformed JSON"}})
	}
	fe := make([]service.FieldError, 0, len(verrs))
	for _, v := range verrs {
		field := v.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		fe = append(fe, service.FieldError{Field: field, Message: ruleMessage(v)})
	}
	return service.NewInvalidInputError(fe)
}

func ruleMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be >= " + v.Param()
	case "max":
		return "must be <= " + v.Param()
	case "oneof":
		return "must be one of " + v.Param()
	}
	return "failed " + v.Tag() + " check"
}

// requireGame resolves :id for game-scoped routes so an unknown game answers 404.
func requireGame(games service.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := games.GetGame(c.Request.Context(), c.Param("id"))
		if err != nil {
			response.WriteError(c, err)
			return
		}
		c.Set(gameKey, g)
		c.Next()
	}
}

func currentGame(c *gin.Context) model.Game {
	g, _ := c.Get(gameKey)
	game, _ := g.(model.Game)
	return game
}

func invalid(field, msg string) error {
	return service.NewInvalidInputError([]service.FieldError{{Field: field, Message: msg}})
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(name, "must be an integer")
	}
	return n, nil
}

// squash folds a zone name or slug to a comparable form: "Mid-Range Left" and "mid_range_left" match.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

func parseZone(s string) (model.Zone, error) {
	want := squash(s)
	for _, z := range model.Zones {
		if squash(z.String()) == want {
			return z, nil
		}
	}
	return model.ZoneUnknown, invalid("zone", "unknown zone")
}

// parseShotType accepts 2PT, 3PT or FT; blank means "derive from coordinates".
func parseShotType(field, s string) (model.ShotType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return model.ShotTypeUnknown, nil
	}
	t, err := model.ParseShotType(s)
	if err != nil {
		return model.ShotTypeUnknown, invalid(field, "must be one of 2PT|3PT|FT")
	}
	return t, nil
}

// shotFilter reads player_id, zone, quarter and shot_type from the query string.
func shotFilter(c *gin.Context) (analytics.ShotFilter, error) {
	f := analytics.ShotFilter{PlayerID: strings.TrimSpace(c.Query("player_id"))}
	var ferrs []service.FieldError
	if raw := c.Query("zone"); raw != "" {
		z, err := parseZone(raw)
		if err != nil {
			ferrs = append(ferrs, service.FieldErrors(err)...)
		}
		f.Zone = z
	}
	q, err := queryInt(c, "quarter")
	if err != nil {
		ferrs = append(ferrs, service.FieldErrors(err)...)
	}
	f.Quarter = q
	t, err := parseShotType("shot_type", c.Query("shot_type"))
	if err != nil {
		ferrs = append(ferrs, service.FieldErrors(err)...)
	}
	f.ShotType = t
	if len(ferrs) > 0 {
		return analytics.ShotFilter{}, service.NewInvalidInputError(ferrs)
	}
	return f, nil
}
