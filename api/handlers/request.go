package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"blogger/services"
)

// blogRequest is the body of create, update and delete. Pointer fields
// distinguish "not sent" from "sent empty". Tags stays raw so update can
// tell an array apart from any other JSON value.
type blogRequest struct {
	BlogID      *string         `json:"blog_id"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Content     *string         `json:"content"`
	Tags        json.RawMessage `json:"tags"`
	Type        *string         `json:"type"`

	tags    []string
	tagsSet bool
}

const tagsFormatMessage = "Each tag must be a string with max 30 characters"

// bindBlogRequest reads a JSON or urlencoded body. A missing body is not an
// error: every field is simply absent.
func bindBlogRequest(c *gin.Context) (blogRequest, error) {
	var req blogRequest

	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(32 << 10); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return req, bodyError(err)
		}
		req.BlogID = postForm(c, "blog_id")
		req.Title = postForm(c, "title")
		req.Description = postForm(c, "description")
		req.Content = postForm(c, "content")
		req.Type = postForm(c, "type")
		if tags, ok := c.GetPostFormArray("tags"); ok {
			req.tags, req.tagsSet = tags, true
		} else if tags, ok := c.GetPostFormArray("tags[]"); ok {
			req.tags, req.tagsSet = tags, true
		}
		return req, nil
	default:
		if c.Request.Body == nil {
			return req, nil
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return req, nil
			}
			return req, bodyError(err)
		}
		tags, isArray, err := decodeTags(req.Tags)
		if err != nil {
			return req, services.NewValidationError(services.BlogValidationMessage, tagsFormatMessage)
		}
		req.tags, req.tagsSet = tags, isArray
		return req, nil
	}
}

func postForm(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// decodeTags accepts a JSON array of scalars. Numbers and booleans are
// stored in their text form; nested values are rejected. Anything that is
// not an array reports isArray=false.
func decodeTags(raw json.RawMessage) (tags []string, isArray bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, nil
	}

	var items []any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, true, err
	}

	tags = make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			tags = append(tags, v)
		case json.Number:
			tags = append(tags, v.String())
		case bool:
			tags = append(tags, strconv.FormatBool(v))
		default:
			return nil, true, fmt.Errorf("unsupported tag %T", item)
		}
	}
	return tags, true, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return services.NewValidationError("Invalid request body", err.Error())
}
