package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagPid     = "pid"
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

// FuncTag вычисляет значение поля лога по контексту запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

var funcTagMap = map[string]FuncTag{
	TagPid:     func(c *fiber.Ctx, d *data) interface{} { return d.pid },
	TagStatus:  func(c *fiber.Ctx, d *data) interface{} { return c.Response().StatusCode() },
	TagLatency: func(c *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() },
	TagMethod:  func(c *fiber.Ctx, d *data) interface{} { return c.Method() },
	TagPath:    func(c *fiber.Ctx, d *data) interface{} { return c.Path() },
	TagIP:      func(c *fiber.Ctx, d *data) interface{} { return c.IP() },
	TagBody:    func(c *fiber.Ctx, d *data) interface{} { return string(c.Body()) },
	TagResBody: func(c *fiber.Ctx, d *data) interface{} { return string(c.Response().Body()) },
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		rid, ok := c.Locals(RequestID).(string)
		if !ok || rid == "" {
			rid = uuid.New().String()
			c.Locals(RequestID, rid)
		}
		return rid
	},
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTagMap[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
