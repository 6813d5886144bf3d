package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
)

// HttpTest APIに対するテーブルテストの1ケース。
type HttpTest struct {
	Name   string
	Method string
	Path   string
	Query  func(q url.Values)
	Body   interface{}
	Check  func(t *testing.T, rec *httptest.ResponseRecorder)
}

type HttpTests []HttpTest

func (tests HttpTests) Run(t *testing.T, handler http.Handler) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			target := tt.Path

			if tt.Query != nil {
				q := url.Values{}
				tt.Query(q)
				target = target + "?" + q.Encode()
			}

			var reader io.Reader
			if tt.Body != nil {
				b, e := json.Marshal(tt.Body)
				if e != nil {
					t.Fatal(e)
				}
				reader = bytes.NewReader(b)
			}

			req := httptest.NewRequest(tt.Method, target, reader)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			tt.Check(t, rec)
		})
	}
}
