package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/gin-gonic/gin"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state, and clear, focused behavior.

// Fail writes err as {"error": message}. *apperr.Error values keep their
// status and message; anything else is logged and answered with a 500.
func Fail(c *gin.Context, log *slog.Logger, err error) {
	var e *apperr.Error
	if apperr.As(err, &e) && e.Code != apperr.CodeInternal {
		c.JSON(e.HTTPStatus(), gin.H{"error": e.Message})
		return
	}
	log.Error("request failed",
		"method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.ErrInternal.Message})
}

// Empty answers 200 with {}.
func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Object is a decoded JSON object body, values left raw.
type Object map[string]json.RawMessage

// BindObject decodes the request body as a JSON object. Anything else,
// including an empty object, null or an array, is apperr.ErrNotJSON.
func BindObject(c *gin.Context) (Object, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, apperr.ErrNotJSON
	}
	var obj Object
	if err := json.Unmarshal(body, &obj); err != nil || len(obj) == 0 {
		return nil, apperr.ErrNotJSON
	}
	return obj, nil
}

// String returns the value of key when it is present and a JSON string.
// present reports whether key was in the object at all.
func (o Object) String(key string) (s string, present, ok bool) {
	raw, present := o[key]
	if !present {
		return "", false, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", true, false
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, false
	}
	return s, true, true
}

// Drop removes keys from the object.
func (o Object) Drop(keys ...string) {
	for _, k := range keys {
		delete(o, k)
	}
}
