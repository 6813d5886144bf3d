package shared

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const (
	ContextSessionLoggerKey string = "session_logger"
	ContextI18NLangKey             = "lang_key"
)

const (
	HeaderAcceptLanguage = "Accept-Language"
)

var cacheObj *cache.Cache

func init() {
	cacheObj = cache.New(30*time.Second, 5*time.Minute)
}

type Context struct {
	echo.Context
}

type contextFunc func(c *Context) error

// C カスタマイズしたコンテキストをWrapする
func C(ctxFunc contextFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return ctxFunc(c.(*Context))
	}
}

func (c *Context) GetCache() *cache.Cache {
	return cacheObj
}

func (c *Context) Log() *logrus.Entry {
	return c.Get(ContextSessionLoggerKey).(*logrus.Entry)
}
