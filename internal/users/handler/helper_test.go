package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"

	"userdir/internal/users/handler"
	"userdir/internal/users/router"
	"userdir/internal/users/service"

	"github.com/labstack/echo/v4"
)

func SetupServer(svc service.UserService) *echo.Echo {
	e := echo.New()
	router.RegisterRoutes(e, handler.NewUserHandler(svc))
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func PerformUpload(e *echo.Echo, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, _ := w.CreateFormFile(field, filename)
	fw.Write(content)
	w.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
